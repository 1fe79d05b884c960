package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/mhc/pkg/day"
	"tableflip.dev/mhc/pkg/rating"
)

const diskvDir = "days"

var errClosed = errors.New("store: closed")

// openDiskv keeps each day as a JSON file at <base>/days/YYYY/MM/DD.
func openDiskv(basePath string) (*diskvStore, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	dir := filepath.Join(basePath, diskvDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath:          dir,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type diskvStore struct {
	d      *diskv.Diskv
	closed bool
}

func (p *diskvStore) read(key string) (*Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	rec := &Record{}
	if err := json.Unmarshal(val, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (p *diskvStore) Upsert(_ context.Context, d day.Date, r rating.Rating) error {
	if p.closed {
		return errClosed
	}
	if err := checkDate(d); err != nil {
		return err
	}
	data, err := json.Marshal(Record{Date: d, Rating: r})
	if err != nil {
		return err
	}
	return p.d.Write(toKey(d), data)
}

func (p *diskvStore) Get(_ context.Context, d day.Date) (rating.Rating, bool, error) {
	if p.closed {
		return 0, false, errClosed
	}
	if err := checkDate(d); err != nil {
		return 0, false, err
	}
	key := toKey(d)
	if !p.d.Has(key) {
		return 0, false, nil
	}
	rec, err := p.read(key)
	if err != nil {
		return 0, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return rec.Rating, true, nil
}

func (p *diskvStore) GetRange(ctx context.Context, start, end day.Date) (map[day.Date]*rating.Rating, error) {
	if p.closed {
		return nil, errClosed
	}
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	out := emptyRange(start, end)
	for d := range out {
		r, ok, err := p.Get(ctx, d)
		if err != nil {
			return nil, err
		}
		if ok {
			out[d] = &r
		}
	}
	return out, nil
}

func (p *diskvStore) All(ctx context.Context) ([]Record, error) {
	if p.closed {
		return nil, errClosed
	}
	all := make([]Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		rec, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, *rec)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})
	return all, ctx.Err()
}

func (p *diskvStore) Close() error {
	p.closed = true
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `YYYY-MM-DD`
func toKey(d day.Date) string {
	return d.Format(day.LayoutISO)
}
