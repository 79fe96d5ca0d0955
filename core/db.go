package core

import (
	"descstats/stats"
	"descstats/storage"
	"errors"
	"fmt"
	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog"
	"io"
	"sync"
)

var (
	ErrSampleNotFound = errors.New("sample not found")
	ErrInvalidName    = errors.New("sample name cannot be empty")
)

// DB is a catalog of named samples. Summaries are computed on first use,
// persisted next to the sample and cached in memory.
type DB struct {
	backend storage.Backend
	cache   *ristretto.Cache
	log     zerolog.Logger
	// generation of each sample name; bumped on every write so cached
	// summaries of an older version are never served.
	generations map[string]uint64
	mu          sync.Mutex
}

func New(config *StoreConfig) (*DB, error) {
	backend, err := storage.OpenBadgerBackend(config.BadgerConfig)
	if err != nil {
		return nil, err
	}
	db, err := NewWithBackend(backend, config)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return db, nil
}

func Open(path string) (*DB, error) {
	return New(DefaultStoreConfig(path))
}

func NewWithBackend(backend storage.Backend, config *StoreConfig) (*DB, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.CacheCounters,
		MaxCost:     config.CacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &DB{
		backend:     backend,
		cache:       cache,
		log:         config.Logger.With().Str("component", "db").Logger(),
		generations: make(map[string]uint64),
	}, nil
}

func (db *DB) cacheKey(name string) string {
	return fmt.Sprintf("%d/%s", db.generations[name], name)
}

func (db *DB) PutSample(name string, sample []float64) error {
	if name == "" {
		return ErrInvalidName
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	err := db.backend.Merge(storage.SampleKind, name, storage.EncodeSample(sample),
		[]storage.Kind{storage.SummaryKind})
	if err != nil {
		return err
	}
	db.generations[name]++
	db.log.Debug().Str("sample", name).Int("count", len(sample)).Msg("stored sample")
	return nil
}

func (db *DB) GetSample(name string) ([]float64, error) {
	buf, err := db.backend.Get(storage.SampleKind, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrSampleNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return storage.DecodeSample(buf)
}

func (db *DB) DeleteSample(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := db.backend.Delete(storage.SummaryKind, name); err != nil {
		return err
	}
	if err := db.backend.Delete(storage.SampleKind, name); err != nil {
		return err
	}
	db.generations[name]++
	db.log.Debug().Str("sample", name).Msg("deleted sample")
	return nil
}

// Names lists the stored samples in ascending order.
func (db *DB) Names() ([]string, error) {
	names := make([]string, 0)
	err := db.backend.IterateIndex(storage.SampleKind, func(name string) error {
		names = append(names, name)
		return nil
	})
	return names, err
}

func (db *DB) Summary(name string) (stats.SummaryStats, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := db.cacheKey(name)
	if v, ok := db.cache.Get(key); ok {
		return v.(stats.SummaryStats), nil
	}

	summary, err := db.loadSummary(name)
	if err != nil {
		return summary, err
	}
	db.cache.Set(key, summary, 1)
	return summary, nil
}

func (db *DB) loadSummary(name string) (stats.SummaryStats, error) {
	buf, err := db.backend.Get(storage.SummaryKind, name)
	if err == nil {
		return storage.DecodeSummary(buf)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return stats.SummaryStats{}, err
	}

	db.log.Debug().Str("sample", name).Msg("summary not stored, computing")
	sample, err := db.GetSample(name)
	if err != nil {
		return stats.SummaryStats{}, err
	}
	summary := stats.Summarize(sample)
	err = db.backend.Put(storage.SummaryKind, name, storage.EncodeSummary(summary))
	if err != nil {
		return summary, err
	}
	return summary, nil
}

func (db *DB) Report(name string) (*Report, error) {
	sample, err := db.GetSample(name)
	if err != nil {
		return nil, err
	}
	return NewReport(name, sample)
}

// Describe writes the summary report of the named sample to w.
func (db *DB) Describe(name string, w io.Writer) error {
	summary, err := db.Summary(name)
	if err != nil {
		return err
	}
	_, err = summary.WriteTo(w)
	return err
}

func (db *DB) Close() error {
	db.cache.Close()
	return db.backend.Close()
}
