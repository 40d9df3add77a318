package gachastore

import (
	"context"
	"testing"

	"genshinstats/lib/scrapers/mihoyo/gachalog"
	"genshinstats/lib/testutil"

	"github.com/stretchr/testify/require"
)

func testPulls() []gachalog.Pull {
	return []gachalog.Pull{
		{ID: "103", UID: "710785423", Type: "301", Time: "2021-03-27 09:29:03", Name: "Venti", Lang: "en-us", ItemType: "Character", RankType: "5"},
		{ID: "102", UID: "710785423", Type: "301", Time: "2021-03-27 09:29:02", Name: "Slingshot", Lang: "en-us", ItemType: "Weapon", RankType: "3"},
		{ID: "101", UID: "710785423", Type: "200", Time: "2021-03-27 09:29:01", Name: "Thrilling Tales of Dragon Slayers", Lang: "en-us", ItemType: "Weapon", RankType: "3"},
	}
}

func newTestStore(t *testing.T) *Store {
	return New(testutil.SetupDB(t, Schema))
}

func TestInsertPullsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	inserted, err := store.InsertPulls(ctx, testPulls())
	require.NoError(t, err)
	require.Equal(t, 3, inserted)

	// dumping the same history again inserts nothing new
	inserted, err = store.InsertPulls(ctx, testPulls())
	require.NoError(t, err)
	require.Equal(t, 0, inserted)
}

func TestBanners(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.InsertPulls(ctx, testPulls())
	require.NoError(t, err)

	banners, err := store.Banners(ctx)
	require.NoError(t, err)
	require.Equal(t, []gachalog.BannerType{gachalog.BannerPermanent, gachalog.BannerCharacterEvent}, banners)
}

func TestPullsChronologicalOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.InsertPulls(ctx, testPulls())
	require.NoError(t, err)

	pulls, err := store.Pulls(ctx, gachalog.BannerCharacterEvent)
	require.NoError(t, err)
	require.Len(t, pulls, 2)
	// oldest first
	require.Equal(t, "102", pulls[0].ID)
	require.Equal(t, "103", pulls[1].ID)

	require.Equal(t, 3, pulls[0].Rarity())
	require.Equal(t, gachalog.BannerCharacterEvent, pulls[0].Banner())
	require.Equal(t, "Venti", pulls[1].Name)
}
