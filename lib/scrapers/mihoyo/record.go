package mihoyo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

func decodeData[T any](data json.RawMessage) (T, error) {
	var out T
	// a zero retcode promises a payload; json null would unmarshal
	// into out as a no-op and hide the violation
	if len(data) == 0 || string(data) == "null" {
		return out, fmt.Errorf("%w: missing data payload", ErrInvalidResponse)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out, nil
}

// Search looks up community users by keyword, returning up to size
// results. no credentials required.
func (c *Client) Search(ctx context.Context, keyword string, size int) (SearchResult, error) {
	data, err := c.fetchEndpoint(ctx, c.recordBase, "/community/apihub/wapi/search", url.Values{
		"keyword": {keyword},
		"size":    {strconv.Itoa(size)},
		"gids":    {"2"},
	}, authNone)
	if err != nil {
		return SearchResult{}, err
	}
	return decodeData[SearchResult](data)
}

// GetCommunityUserInfo gets the community profile behind a community
// uid, which can be found with Search.
func (c *Client) GetCommunityUserInfo(ctx context.Context, communityUID int) (CommunityUser, error) {
	data, err := c.fetchEndpoint(ctx, c.recordBase, "/community/user/wapi/getUserFullInfo", url.Values{
		"uid": {strconv.Itoa(communityUID)},
	}, authCookie)
	if err != nil {
		return CommunityUser{}, err
	}
	wrapper, err := decodeData[struct {
		UserInfo CommunityUser `json:"user_info"`
	}](data)
	return wrapper.UserInfo, err
}

// GetRecordCard gets the game record card of a community user. returns
// nil without error when the user has no public card.
func (c *Client) GetRecordCard(ctx context.Context, communityUID int) (*RecordCard, error) {
	data, err := c.fetchEndpoint(ctx, c.recordBase, "/game_record/card/wapi/getGameRecordCard", url.Values{
		"uid":  {strconv.Itoa(communityUID)},
		"gids": {"2"},
	}, authCookie)
	if err != nil {
		return nil, err
	}
	wrapper, err := decodeData[struct {
		List []RecordCard `json:"list"`
	}](data)
	if err != nil {
		return nil, err
	}
	if len(wrapper.List) == 0 {
		return nil, nil
	}
	return &wrapper.List[0], nil
}

// GetUIDFromCommunity resolves a community uid to the game uid on its
// record card, or 0 when the card is private.
func (c *Client) GetUIDFromCommunity(ctx context.Context, communityUID int) (int, error) {
	card, err := c.GetRecordCard(ctx, communityUID)
	if err != nil {
		return 0, err
	}
	if card == nil {
		return 0, nil
	}
	uid, err := strconv.Atoi(card.GameRoleID)
	if err != nil {
		return 0, fmt.Errorf("%w: bad game_role_id %q", ErrInvalidResponse, card.GameRoleID)
	}
	return uid, nil
}

// GetUserStats gets the game stats behind a game uid. server may be
// empty, in which case it is recognized from the uid.
func (c *Client) GetUserStats(ctx context.Context, uid int, server string) (UserStats, error) {
	if server == "" {
		var err error
		server, err = RecognizeServer(uid)
		if err != nil {
			return UserStats{}, err
		}
	}
	data, err := c.fetchEndpoint(ctx, c.recordBase, "/game_record/genshin/api/index", url.Values{
		"server":  {server},
		"role_id": {strconv.Itoa(uid)},
	}, authCookie)
	if err != nil {
		return UserStats{}, err
	}
	return decodeData[UserStats](data)
}

// GetSpiralAbyss gets spiral abyss progress for the current season, or
// the previous one when previous is set.
func (c *Client) GetSpiralAbyss(ctx context.Context, uid int, server string, previous bool) (SpiralAbyss, error) {
	if server == "" {
		var err error
		server, err = RecognizeServer(uid)
		if err != nil {
			return SpiralAbyss{}, err
		}
	}
	scheduleType := "1"
	if previous {
		scheduleType = "2"
	}
	data, err := c.fetchEndpoint(ctx, c.recordBase, "/game_record/genshin/api/spiralAbyss", url.Values{
		"server":        {server},
		"role_id":       {strconv.Itoa(uid)},
		"schedule_type": {scheduleType},
	}, authCookie)
	if err != nil {
		return SpiralAbyss{}, err
	}
	return decodeData[SpiralAbyss](data)
}
