package gachalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"genshinstats/lib/scrapers/mihoyo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/mihoyo/gachalog")

// BannerType identifies one wish banner history. the values are the
// gacha_type codes the api uses.
type BannerType int

const (
	BannerNovice         BannerType = 100
	BannerPermanent      BannerType = 200
	BannerCharacterEvent BannerType = 301
	BannerWeaponEvent    BannerType = 302
)

// every banner with its own pull history, in the order the game lists
// them
var BannerTypes = []BannerType{
	BannerNovice,
	BannerPermanent,
	BannerCharacterEvent,
	BannerWeaponEvent,
}

func (b BannerType) String() string {
	switch b {
	case BannerNovice:
		return "Novice Wishes"
	case BannerPermanent:
		return "Permanent Wish"
	case BannerCharacterEvent:
		return "Character Event Wish"
	case BannerWeaponEvent:
		return "Weapon Event Wish"
	}
	return fmt.Sprintf("BannerType(%d)", int(b))
}

// Pull is a single gacha pull as the api reports it. numeric fields
// arrive as json strings and are kept that way, with typed accessors
// below.
type Pull struct {
	ID       string `json:"id"`
	UID      string `json:"uid"`
	Type     string `json:"gacha_type"`
	Time     string `json:"time"`
	Name     string `json:"name"`
	Lang     string `json:"lang"`
	ItemType string `json:"item_type"`
	RankType string `json:"rank_type"`
}

func (p Pull) Rarity() int {
	rarity, _ := strconv.Atoi(p.RankType)
	return rarity
}

func (p Pull) Banner() BannerType {
	banner, _ := strconv.Atoi(p.Type)
	return BannerType(banner)
}

// older api revisions omitted the pull id, fall back to time plus item
// name which is unique enough to detect a page overlap
func (p Pull) dedupKey() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Time + "|" + p.Name
}

// Client fetches wish histories through an authkey-configured core
// client.
type Client struct {
	Core *mihoyo.Client
}

func NewClient(core *mihoyo.Client) Client {
	return Client{Core: core}
}

// Banner is one entry of the live banner list.
type Banner struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// GetBannerTypes fetches the current banner list, including the name
// of whatever event banners are running.
func (c Client) GetBannerTypes(ctx context.Context) ([]Banner, error) {
	ctx, span := tracer.Start(ctx, "client:GetBannerTypes")
	defer span.End()

	data, err := c.Core.FetchGachaEndpoint(ctx, "/getConfigList", url.Values{
		"lang": {c.Core.Lang()},
	})
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}

	var wrapper struct {
		List []Banner `json:"gacha_type_list"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed banner list")
		return nil, fmt.Errorf("%w: %v", mihoyo.ErrInvalidResponse, err)
	}
	return wrapper.List, nil
}

const pageSize = 20

// GetBannerLog fetches the entire pull history of one banner, newest
// first as the api returns it. pages are requested sequentially, each
// cursor derived from the last pull of the previous page. fetching
// stops on a short page or as soon as a pull repeats, whichever comes
// first; upstream pagination re-emits tail records when the cursor
// points at the end of the history, so a repeat is a definite end
// rather than an error. any fetch error discards everything, no
// partial history is returned.
func (c Client) GetBannerLog(ctx context.Context, banner BannerType) ([]Pull, error) {
	ctx, span := tracer.Start(ctx, "client:GetBannerLog")
	defer span.End()
	span.SetAttributes(attribute.Int("banner", int(banner)))

	var pulls []Pull
	seen := map[string]bool{}
	endID := "0"

	for {
		data, err := c.Core.FetchGachaEndpoint(ctx, "/getGachaLog", url.Values{
			"gacha_type": {strconv.Itoa(int(banner))},
			"size":       {strconv.Itoa(pageSize)},
			"end_id":     {endID},
			"lang":       {c.Core.Lang()},
		})
		if err != nil {
			span.SetStatus(codes.Error, "failed to fetch page")
			return nil, err
		}

		var page struct {
			List []Pull `json:"list"`
		}
		if err := json.Unmarshal(data, &page); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "malformed log page")
			return nil, fmt.Errorf("%w: %v", mihoyo.ErrInvalidResponse, err)
		}

		for _, pull := range page.List {
			key := pull.dedupKey()
			if seen[key] {
				span.SetAttributes(attribute.Int("pulls", len(pulls)))
				return pulls, nil
			}
			seen[key] = true
			pulls = append(pulls, pull)
		}

		if len(page.List) < pageSize {
			span.SetAttributes(attribute.Int("pulls", len(pulls)))
			return pulls, nil
		}
		// old api revisions omit pull ids; without one the cursor
		// cannot advance past this page, so the history ends here
		last := page.List[len(page.List)-1].ID
		if last == "" {
			span.SetAttributes(attribute.Int("pulls", len(pulls)))
			return pulls, nil
		}
		endID = last
	}
}

// GetEntireLog fetches the pull history of every banner, concatenated
// in BannerTypes order.
func (c Client) GetEntireLog(ctx context.Context) ([]Pull, error) {
	ctx, span := tracer.Start(ctx, "client:GetEntireLog")
	defer span.End()

	var pulls []Pull
	for _, banner := range BannerTypes {
		bannerPulls, err := c.GetBannerLog(ctx, banner)
		if err != nil {
			span.SetStatus(codes.Error, "failed to fetch banner log")
			return nil, err
		}
		pulls = append(pulls, bannerPulls...)
	}
	span.SetAttributes(attribute.Int("pulls", len(pulls)))
	return pulls, nil
}
