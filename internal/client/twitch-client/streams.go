package twitch_client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	fetchClient "twitch_live_notifier/internal/client/fetch-client"
	"twitch_live_notifier/internal/models"
)

// the streams endpoint is retried because the upstream intermittently
// serves HTML error pages
const streamsAttempts = 3

func (twc *TwitchClient) GetActiveStreamInfoByUser(ctx context.Context, userLogin string) (data *models.Streams, err error) {

	query := url.Values{}
	query.Add("user_login", userLogin)

	header := http.Header{}
	header.Add("Client-Id", clientID())
	header.Add("Authorization", fmt.Sprintf("Bearer %s", twc.twitchTokenService.CurrentToken(ctx)))

	readedResp, err := twc.fetchClient.Do(ctx, fetchClient.Request{
		Method:   "GET",
		URL:      twc.apiSchemeHost + "/helix/streams?" + query.Encode(),
		Header:   header,
		Attempts: streamsAttempts,
	})
	if err != nil {
		return nil, err
	}

	var streamsInfo models.Streams
	err = jsoniter.Unmarshal(readedResp, &streamsInfo)
	if err != nil {
		return nil, errors.Wrap(err, "Unmarshal")
	}

	data = &streamsInfo

	return
}
