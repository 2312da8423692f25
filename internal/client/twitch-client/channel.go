package twitch_client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	fetchClient "twitch_live_notifier/internal/client/fetch-client"
	"twitch_live_notifier/internal/models"
)

// SearchChannelInfoByName resolves channel metadata through the search
// endpoint and returns the case-insensitive exact login match, or nil when
// the search yields no such channel.
func (twc *TwitchClient) SearchChannelInfoByName(ctx context.Context, channelName string) (data *models.ChannelInfo, err error) {

	query := url.Values{}
	query.Add("query", channelName)

	header := http.Header{}
	header.Add("Client-Id", clientID())
	header.Add("Authorization", fmt.Sprintf("Bearer %s", twc.twitchTokenService.CurrentToken(ctx)))

	readedResp, err := twc.fetchClient.Do(ctx, fetchClient.Request{
		Method: "GET",
		URL:    twc.apiSchemeHost + "/helix/search/channels?" + query.Encode(),
		Header: header,
	})
	if err != nil {
		return nil, err
	}

	var searchInfo models.ChannelSearchResponse
	err = jsoniter.Unmarshal(readedResp, &searchInfo)
	if err != nil {
		return nil, errors.Wrap(err, "Unmarshal")
	}

	for _, channelInfo := range searchInfo.Data {
		if strings.EqualFold(channelInfo.BroadcasterLogin, channelName) {
			channelInfo := channelInfo
			return &channelInfo, nil
		}
	}

	return nil, nil
}
