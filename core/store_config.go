package core

import (
	"descstats/storage"
	"github.com/rs/zerolog"
)

type StoreConfig struct {
	BadgerConfig  *storage.BadgerBackendConfig
	CacheCounters int64
	CacheMaxCost  int64
	Logger        zerolog.Logger
}

func DefaultStoreConfig(path string) *StoreConfig {
	return &StoreConfig{
		BadgerConfig: &storage.BadgerBackendConfig{
			Path:   path,
			Logger: zerolog.Nop(),
		},
		CacheCounters: 10000,
		CacheMaxCost:  1000,
		Logger:        zerolog.Nop(),
	}
}

func TestStoreConfig() *StoreConfig {
	config := DefaultStoreConfig("")
	config.BadgerConfig = storage.TestBadgerBackendConfig()
	return config
}
