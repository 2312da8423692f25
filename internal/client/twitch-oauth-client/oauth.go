package twitch_oauth_client

import (
	"context"
	"io"
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"twitch_live_notifier/internal/models"
)

// TwitchOAuthGetToken performs the client-credentials exchange. The call is
// not retried: a credential misconfiguration should surface, not be masked.
func (twc *TwitchOauthClient) TwitchOAuthGetToken(ctx context.Context) (data *models.TwitchOauthGetTokenResponse, err error) {

	client := http.Client{
		Timeout: oauthTimeout,
	}

	req, err := http.NewRequestWithContext(ctx, "POST", twc.oauthSchemeHost+"/oauth2/token", nil)
	if err != nil {
		return nil, err
	}

	query := req.URL.Query()
	query.Add("client_id", os.Getenv("TWITCH_CLIENT_ID"))
	query.Add("client_secret", os.Getenv("TWITCH_SECRET"))
	query.Add("grant_type", "client_credentials")
	req.URL.RawQuery = query.Encode()

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return
	}

	defer resp.Body.Close()

	readedResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("twitch oauth failed with status code %d: %s", resp.StatusCode, string(readedResp))
	}

	var tokenInfo models.TwitchOauthGetTokenResponse
	err = jsoniter.Unmarshal(readedResp, &tokenInfo)
	if err != nil {
		return
	}

	if tokenInfo.AccessToken == "" {
		return nil, errors.New("empty access token in oauth response")
	}

	data = &tokenInfo

	return
}
