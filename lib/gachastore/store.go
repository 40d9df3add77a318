package gachastore

import (
	"context"
	"database/sql"
	"strconv"

	"genshinstats/lib/scrapers/mihoyo/gachalog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	_ "embed"

	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("gachastore")

//go:embed schema.sql
var Schema string

// Store persists dumped wish histories in a local sqlite database.
// pulls are keyed by their upstream id so dumping twice is harmless.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(Schema)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertPulls writes pulls into the store, skipping ids already
// present. returns the number of newly inserted rows.
func (s *Store) InsertPulls(ctx context.Context, pulls []gachalog.Pull) (int, error) {
	ctx, span := tracer.Start(ctx, "InsertPulls")
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	defer tx.Rollback()

	inserted := 0
	for _, p := range pulls {
		res, err := tx.ExecContext(
			ctx,
			`INSERT OR IGNORE INTO pulls (id, uid, gacha_type, time, name, lang, item_type, rank_type)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.UID, int(p.Banner()), p.Time, p.Name, p.Lang, p.ItemType, p.Rarity(),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
		inserted += int(n)
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Int("inserted", inserted))
	return inserted, nil
}

// Banners lists the banner types present in the store.
func (s *Store) Banners(ctx context.Context) ([]gachalog.BannerType, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT gacha_type FROM pulls ORDER BY gacha_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banners []gachalog.BannerType
	for rows.Next() {
		var banner int
		if err := rows.Scan(&banner); err != nil {
			return nil, err
		}
		banners = append(banners, gachalog.BannerType(banner))
	}
	return banners, rows.Err()
}

// Pulls returns the stored history of one banner in chronological
// order (oldest first). upstream pull ids are fixed-width decimal
// strings, so text order matches numeric order.
func (s *Store) Pulls(ctx context.Context, banner gachalog.BannerType) ([]gachalog.Pull, error) {
	ctx, span := tracer.Start(ctx, "Pulls")
	defer span.End()
	span.SetAttributes(attribute.Int("banner", int(banner)))

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, uid, gacha_type, time, name, lang, item_type, rank_type
		 FROM pulls WHERE gacha_type = ? ORDER BY id ASC`,
		int(banner),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer rows.Close()

	var pulls []gachalog.Pull
	for rows.Next() {
		var p gachalog.Pull
		var gachaType, rankType int
		err := rows.Scan(&p.ID, &p.UID, &gachaType, &p.Time, &p.Name, &p.Lang, &p.ItemType, &rankType)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		p.Type = strconv.Itoa(gachaType)
		p.RankType = strconv.Itoa(rankType)
		pulls = append(pulls, p)
	}
	return pulls, rows.Err()
}
