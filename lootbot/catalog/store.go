package catalog

import (
	"context"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"
)

const queryCacheSize = 256

// Store owns the loaded catalog and its load-error state. The item list is
// rebuilt wholesale by Reload and published in a single locked swap, so
// queries see either the fully-old or fully-new catalog, never an
// in-progress rebuild.
type Store struct {
	baseSrc Source
	lootSrc Source

	mu      sync.RWMutex
	items   []Item
	hasTags bool
	loadErr error
	loaded  bool
	cache   *lru.Cache
}

// NewStore creates an unloaded store over the two table sources. Call Reload
// before serving queries.
func NewStore(baseSrc, lootSrc Source) *Store {
	cache, _ := lru.New(queryCacheSize)
	return &Store{
		baseSrc: baseSrc,
		lootSrc: lootSrc,
		cache:   cache,
	}
}

// Reload re-reads both tables and rebuilds the catalog from scratch. On
// failure the previous items are discarded along with any previous error;
// the store never serves a stale or partial catalog. The returned error is
// also retained as the store's error state.
func (s *Store) Reload(ctx context.Context) error {
	items, hasTags, err := s.rebuild(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	// Fresh cache per load; in-flight searches may still add to the old one.
	s.cache, _ = lru.New(queryCacheSize)
	if err != nil {
		s.items = nil
		s.hasTags = false
		s.loadErr = err
		slog.Error("Failed to load loot catalog",
			slog.String("type", "error"),
			slog.Any("error", err))
		return err
	}
	s.items = items
	s.hasTags = hasTags
	s.loadErr = nil
	slog.Info("Loot catalog loaded",
		slog.String("type", "data"),
		slog.Int("items", len(items)),
		slog.Bool("has_tags", hasTags))
	return nil
}

func (s *Store) rebuild(ctx context.Context) ([]Item, bool, error) {
	var base, loot *Table

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := ReadTable(ctx, s.baseSrc)
		if err != nil {
			return err
		}
		base = t
		return nil
	})
	g.Go(func() error {
		t, err := ReadTable(ctx, s.lootSrc)
		if err != nil {
			return err
		}
		loot = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	if err := ValidateColumns(s.baseSrc.Label(), base, RequiredBaseColumns); err != nil {
		return nil, false, err
	}
	if err := ValidateColumns(s.lootSrc.Label(), loot, RequiredLootColumns); err != nil {
		return nil, false, err
	}
	return BuildItems(base, loot)
}

// Items returns the current catalog in build order. Callers must not modify
// the returned slice.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Len reports how many items the current catalog holds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// HasTags reports whether the last successful load resolved a tag column.
func (s *Store) HasTags() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasTags
}

// LoadErr returns the error from the last load attempt, or nil.
func (s *Store) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Ready reports whether the store has loaded at least once without error.
// Callers must check this before querying.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded && s.loadErr == nil
}

// Search runs f against the current catalog. Repeated filters are served
// from an LRU cache that is replaced on every reload.
func (s *Store) Search(f Filter) []Item {
	key := f.Key()

	s.mu.RLock()
	items := s.items
	cache := s.cache
	s.mu.RUnlock()

	if cached, ok := cache.Get(key); ok {
		return cached.([]Item)
	}
	matched := SearchItems(items, f)
	cache.Add(key, matched)
	return matched
}
