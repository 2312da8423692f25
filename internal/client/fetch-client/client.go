package fetch_client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"twitch_live_notifier/internal/models"
)

const (
	DefaultTimeout    = time.Second * 10
	DefaultRetryDelay = time.Second * 2
)

// Request describes one upstream call. Attempts <= 1 means no retry.
type Request struct {
	Method     string
	URL        string
	Header     http.Header
	Body       []byte
	Timeout    time.Duration
	Attempts   int
	RetryDelay time.Duration
}

type FetchClient struct {
}

func NewFetchClient() *FetchClient {
	return &FetchClient{}
}

// Do issues the request under its timeout and validates the response shape.
// Network failures, non-success statuses and non-JSON bodies are retried with
// a fixed delay while attempts remain; the last error is surfaced.
func (fc *FetchClient) Do(ctx context.Context, request Request) (data []byte, err error) {

	if request.Timeout <= 0 {
		request.Timeout = DefaultTimeout
	}
	if request.Attempts < 1 {
		request.Attempts = 1
	}
	if request.RetryDelay <= 0 {
		request.RetryDelay = DefaultRetryDelay
	}

	for attempt := 1; ; attempt++ {

		data, err = fc.doOnce(ctx, request)
		if err == nil {
			return data, nil
		}

		if attempt >= request.Attempts {
			return nil, err
		}

		logrus.Infof("fetch %s %s: attempt %d/%d failed: %v", request.Method, request.URL, attempt, request.Attempts, err)

		select {
		case <-ctx.Done():
			return nil, &models.NetworkError{Err: ctx.Err()}
		case <-time.After(request.RetryDelay):
		}
	}
}

func (fc *FetchClient) doOnce(ctx context.Context, request Request) ([]byte, error) {

	client := http.Client{
		Timeout: request.Timeout,
	}

	var body io.Reader
	if len(request.Body) > 0 {
		body = bytes.NewReader(request.Body)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, request.URL, body)
	if err != nil {
		return nil, &models.NetworkError{Err: err}
	}

	for key, values := range request.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Err: err}
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &models.HTTPError{
			Status: resp.StatusCode,
			Body:   string(readedResp),
		}
	}

	// some upstreams serve transient HTML error pages with a 200 status
	trimmed := bytes.TrimSpace(readedResp)
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return nil, &models.UnexpectedFormatError{Body: string(trimmed)}
	}

	if !jsoniter.Valid(readedResp) {
		return nil, &models.UnexpectedFormatError{Body: string(trimmed)}
	}

	return readedResp, nil
}
