// Package store persists the dayboard state as a single snapshot record.
//
// There is no transactional backing store: the whole board is serialized in
// memory and written with one call, so a crash or reload mid-save never
// leaves a torn record. A missing or unparsable snapshot is an empty initial
// state, never an error.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/catalog"
)

const (
	// snapshotKey is the single key holding the serialized board.
	snapshotKey = "tasks"

	// catalogKey holds the list/tag catalog, separate from card state so a
	// board clear can leave the catalog intact if asked to.
	catalogKey = "catalog"
)

// Persistence is the persistence contract for the board and the catalog.
type Persistence interface {
	Save(b *board.Board) error
	Restore() (*board.Board, error)
	SaveCatalog(c *catalog.Catalog) error
	LoadCatalog() (*catalog.Catalog, error)
	Clear() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, log *zap.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      log,
		now:      time.Now,
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
	now      func() time.Time
}

// Save writes the full board as one snapshot record. The record is built and
// marshaled completely before the single write call.
func (p *persistence) Save(b *board.Board) error {
	snapshot := BuildSnapshot(b, p.now())
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	if err := p.d.Write(snapshotKey, data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}

// Restore reads the snapshot and reconstructs the board. An absent or
// malformed record yields an empty board.
func (p *persistence) Restore() (*board.Board, error) {
	data, err := p.d.Read(snapshotKey)
	if err != nil {
		return board.New(), nil
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		if p.log != nil {
			p.log.Warn("ignoring unparsable snapshot", zap.Error(err))
		}
		return board.New(), nil
	}
	return snapshot.Restore(p.now(), p.log), nil
}

// SaveCatalog writes the list/tag catalog.
func (p *persistence) SaveCatalog(c *catalog.Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("store: marshal catalog: %w", err)
	}
	if err := p.d.Write(catalogKey, data); err != nil {
		return fmt.Errorf("store: write catalog: %w", err)
	}
	return nil
}

// LoadCatalog reads the list/tag catalog, empty when absent or malformed.
func (p *persistence) LoadCatalog() (*catalog.Catalog, error) {
	data, err := p.d.Read(catalogKey)
	if err != nil {
		return catalog.New(), nil
	}
	c := catalog.New()
	if err := json.Unmarshal(data, c); err != nil {
		if p.log != nil {
			p.log.Warn("ignoring unparsable catalog", zap.Error(err))
		}
		return catalog.New(), nil
	}
	return c, nil
}

// Clear erases the snapshot and the catalog. The destructive counterpart of
// Save; there is no undo.
func (p *persistence) Clear() error {
	for _, key := range []string{snapshotKey, catalogKey} {
		if err := p.d.Erase(key); err != nil && p.d.Has(key) {
			return fmt.Errorf("store: erase %s: %w", key, err)
		}
	}
	return nil
}
