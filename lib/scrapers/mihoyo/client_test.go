package mihoyo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"genshinstats/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Cleanup(telemetry.SetupForTesting(t, "scrapers/mihoyo"))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientOptions{
		RecordBaseURL: srv.URL,
		GachaBaseURL:  srv.URL,
	})
	require.NoError(t, err)
	return client
}

func TestSetCookieValidation(t *testing.T) {
	client, err := NewClient(ClientOptions{})
	require.NoError(t, err)

	require.ErrorIs(t, client.SetCookie("", "token"), ErrNotLoggedIn)
	require.ErrorIs(t, client.SetCookie("123456", ""), ErrNotLoggedIn)
	require.NoError(t, client.SetCookie("123456", "token"))

	require.ErrorIs(t, client.SetAuthkey(""), ErrNoAuthkey)
	require.NoError(t, client.SetAuthkey("key"))
}

func TestMissingCredentialsFailBeforeNetworkIO(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the network without credentials")
	}))

	ctx := context.Background()
	_, err := client.GetUserStats(ctx, 710785423, "")
	require.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = client.FetchGachaEndpoint(ctx, "/getGachaLog", nil)
	require.ErrorIs(t, err, ErrNoAuthkey)
}

func TestFetchEnvelopeSuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": {"foo": 1}}`))
	}))
	require.NoError(t, client.SetAuthkey("key"))

	data, err := client.FetchGachaEndpoint(context.Background(), "/getGachaLog", nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"foo": 1}`, string(data))
}

func TestFetchEnvelopeUpstreamError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retcode": 10001, "message": "Invalid cookie", "data": null}`))
	}))
	require.NoError(t, client.SetAuthkey("key"))

	data, err := client.FetchGachaEndpoint(context.Background(), "/getGachaLog", nil)
	require.Nil(t, data)

	uerr := &UpstreamError{}
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, RetcodeNotLoggedIn, uerr.Code)
	require.Equal(t, "Invalid cookie", uerr.Message)
}

func TestFetchEnvelopeMalformed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	require.NoError(t, client.SetAuthkey("key"))

	_, err := client.FetchGachaEndpoint(context.Background(), "/getGachaLog", nil)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchEnvelopeBadStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	require.NoError(t, client.SetAuthkey("key"))

	_, err := client.FetchGachaEndpoint(context.Background(), "/getGachaLog", nil)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAuthkeyQueryParams(t *testing.T) {
	var query url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": {}}`))
	}))
	require.NoError(t, client.SetAuthkey("some-authkey"))

	_, err := client.FetchGachaEndpoint(context.Background(), "/getGachaLog", url.Values{
		"gacha_type": {"301"},
	})
	require.NoError(t, err)
	require.Equal(t, "some-authkey", query.Get("authkey"))
	require.Equal(t, "1", query.Get("authkey_ver"))
	require.Equal(t, "2", query.Get("sign_type"))
	require.Equal(t, "301", query.Get("gacha_type"))
}

func TestCookieAuthAttachesCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := r.Cookie("account_id")
		require.NoError(t, err)
		require.Equal(t, "123456", accountID.Value)
		cookieToken, err := r.Cookie("cookie_token")
		require.NoError(t, err)
		require.Equal(t, "token", cookieToken.Value)
		require.NotEmpty(t, r.Header.Get("ds"))

		require.Equal(t, "os_usa", r.URL.Query().Get("server"))
		require.Equal(t, "610785423", r.URL.Query().Get("role_id"))

		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": {
			"role": {"nickname": "traveler", "region": "os_usa", "level": 58},
			"stats": {"active_day_number": 300, "achievement_number": 420, "spiral_abyss": "12-3"},
			"avatars": [{"id": 10000007, "name": "Traveler", "rarity": 5, "level": 90}],
			"world_explorations": [{"id": 1, "name": "Mondstadt", "exploration_percentage": 1000}]
		}}`))
	}))
	require.NoError(t, client.SetCookie("123456", "token"))

	stats, err := client.GetUserStats(context.Background(), 610785423, "")
	require.NoError(t, err)
	require.Equal(t, "traveler", stats.Role.Nickname)
	require.Equal(t, 300, stats.Stats.ActiveDays)
	require.Equal(t, "12-3", stats.Stats.SpiralAbyss)
	require.Len(t, stats.Avatars, 1)
	require.Equal(t, 1000, stats.Explorations[0].Percentage)
}

func TestGetRecordCardPrivateProfile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": {"list": []}}`))
	}))
	require.NoError(t, client.SetCookie("123456", "token"))

	card, err := client.GetRecordCard(context.Background(), 987654)
	require.NoError(t, err)
	require.Nil(t, card)

	uid, err := client.GetUIDFromCommunity(context.Background(), 987654)
	require.NoError(t, err)
	require.Equal(t, 0, uid)
}

func TestGetCommunityUserInfo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "987654", r.URL.Query().Get("uid"))
		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": {"user_info": {
			"uid": "987654", "nickname": "traveler", "introduce": "hello", "gender": 1
		}}}`))
	}))
	require.NoError(t, client.SetCookie("123456", "token"))

	user, err := client.GetCommunityUserInfo(context.Background(), 987654)
	require.NoError(t, err)
	require.Equal(t, "987654", user.UID)
	require.Equal(t, "traveler", user.Nickname)
	require.Equal(t, "hello", user.Introduce)
	require.Equal(t, 1, user.Gender)
}

func TestNullDataWithZeroRetcode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": null}`))
	}))
	require.NoError(t, client.SetCookie("123456", "token"))

	_, err := client.GetUserStats(context.Background(), 710785423, "")
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetUIDFromCommunity(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": {"list": [
			{"game_role_id": "710785423", "nickname": "traveler", "region": "os_euro", "level": 58}
		]}}`))
	}))
	require.NoError(t, client.SetCookie("123456", "token"))

	uid, err := client.GetUIDFromCommunity(context.Background(), 987654)
	require.NoError(t, err)
	require.Equal(t, 710785423, uid)
}

func TestGetSpiralAbyssScheduleType(t *testing.T) {
	var scheduleType string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheduleType = r.URL.Query().Get("schedule_type")
		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": {
			"schedule_id": 29, "max_floor": "12-3", "total_star": 33, "is_unlock": true
		}}`))
	}))
	require.NoError(t, client.SetCookie("123456", "token"))

	abyss, err := client.GetSpiralAbyss(context.Background(), 810785423, "", false)
	require.NoError(t, err)
	require.Equal(t, "1", scheduleType)
	require.Equal(t, "12-3", abyss.MaxFloor)
	require.True(t, abyss.IsUnlock)

	_, err = client.GetSpiralAbyss(context.Background(), 810785423, "", true)
	require.NoError(t, err)
	require.Equal(t, "2", scheduleType)
}

func TestSearchNeedsNoCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Cookies())
		require.Equal(t, "traveler", r.URL.Query().Get("keyword"))
		w.Write([]byte(`{"retcode": 0, "message": "OK", "data": {"users": [
			{"uid": "987654", "nickname": "traveler"}
		]}}`))
	}))

	result, err := client.Search(context.Background(), "traveler", 20)
	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	require.Equal(t, "987654", result.Users[0].UID)
}
