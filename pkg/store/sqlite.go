package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/rating"
)

//go:embed schema.sql
var schema string

const sqliteFile = "mhc.db"

type sqliteStore struct {
	db *sqlx.DB
}

type ratingRow struct {
	Date   string `db:"date"`
	Rating int    `db:"rating"`
}

func (r ratingRow) record() (Record, error) {
	d, err := day.ParseISO(r.Date)
	if err != nil {
		return Record{}, fmt.Errorf("store: bad stored date %q: %w", r.Date, err)
	}
	return Record{Date: d, Rating: rating.Rating(r.Rating)}, nil
}

// openSQLite keeps every day in <base>/mhc.db.
func openSQLite(basePath string) (*sqliteStore, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	db, err := sqlx.Open("sqlite3", filepath.Join(basePath, sqliteFile))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Upsert(ctx context.Context, d day.Date, r rating.Rating) error {
	if err := checkDate(d); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ratings (date, rating) VALUES (?, ?)
		 ON CONFLICT(date) DO UPDATE SET rating = excluded.rating`,
		d.String(), int(r),
	)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, d day.Date) (rating.Rating, bool, error) {
	if err := checkDate(d); err != nil {
		return 0, false, err
	}
	var v int
	err := s.db.GetContext(ctx, &v, "SELECT rating FROM ratings WHERE date = ?", d.String())
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get rating: %w", err)
	}
	return rating.Rating(v), true, nil
}

func (s *sqliteStore) GetRange(ctx context.Context, start, end day.Date) (map[day.Date]*rating.Rating, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	var rows []ratingRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT date, rating FROM ratings WHERE date BETWEEN ? AND ? ORDER BY date",
		start.String(), end.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("get range: %w", err)
	}

	out := emptyRange(start, end)
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		r := rec.Rating
		out[rec.Date] = &r
	}
	return out, nil
}

func (s *sqliteStore) All(ctx context.Context) ([]Record, error) {
	var rows []ratingRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT date, rating FROM ratings ORDER BY date"); err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	all := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		all = append(all, rec)
	}
	return all, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
