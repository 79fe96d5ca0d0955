package storage

import (
	"errors"
	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"
)

type BadgerBackendConfig struct {
	Path     string
	InMemory bool
	Logger   zerolog.Logger
}

func TestBadgerBackendConfig() *BadgerBackendConfig {
	return &BadgerBackendConfig{
		InMemory: true,
		Logger:   zerolog.Nop(),
	}
}

func OpenBadgerDB(config *BadgerBackendConfig) (*badger.DB, error) {
	options := badger.DefaultOptions(config.Path).
		WithLogger(NewBadgerLogger(config.Logger))
	if config.InMemory {
		options = options.WithInMemory(true).WithDir("").WithValueDir("")
	}
	return badger.Open(options)
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBacked(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func OpenBadgerBackend(config *BadgerBackendConfig) (*BadgerBackend, error) {
	db, err := OpenBadgerDB(config)
	if err != nil {
		return nil, err
	}
	return NewBadgerBacked(db), nil
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func (backend *BadgerBackend) txnGet(key []byte) ([]byte, error) {
	var buf []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return buf, err
}

func (backend *BadgerBackend) txnPut(key, buf []byte) error {
	err := backend.db.Update(func(txn *badger.Txn) error {
		err := txn.Set(key, buf)
		return err
	})
	return err
}

func (backend *BadgerBackend) txnDelete(key []byte) error {
	err := backend.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(key)
		return err
	})
	return err
}

func (backend *BadgerBackend) Get(kind Kind, name string) ([]byte, error) {
	return backend.txnGet(GetKey(kind, name))
}

func (backend *BadgerBackend) Put(kind Kind, name string, buf []byte) error {
	return backend.txnPut(GetKey(kind, name), buf)
}

func (backend *BadgerBackend) Delete(kind Kind, name string) error {
	return backend.txnDelete(GetKey(kind, name))
}

func mergeTxnFunc(txn *badger.Txn,
	wKey []byte, wBuf []byte, delKeys [][]byte) error {
	err := txn.Set(wKey, wBuf)
	if err != nil {
		return err
	}

	for _, delKey := range delKeys {
		err := txn.Delete(delKey)
		if err != nil {
			return err
		}
	}
	return nil
}

func (backend *BadgerBackend) Merge(
	kind Kind,
	name string,
	buf []byte,
	deleted []Kind) error {

	key := GetKey(kind, name)
	delKeys := make([][]byte, len(deleted))
	for i, k := range deleted {
		delKeys[i] = GetKey(k, name)
	}

	err := backend.db.Update(func(txn *badger.Txn) error {
		return mergeTxnFunc(txn, key, buf, delKeys)
	})
	return err
}

func (backend *BadgerBackend) IterateIndex(kind Kind, lambda func(string) error) error {
	prefix := GetKeyPrefix(kind)
	iterOpts := badger.DefaultIteratorOptions
	iterOpts.PrefetchValues = false
	iterOpts.Prefix = prefix
	err := backend.db.View(func(txn *badger.Txn) error {
		iter := txn.NewIterator(iterOpts)
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			err := lambda(GetNameFromKey(iter.Item().Key()))
			if err != nil {
				return err
			}
		}
		return nil
	})
	return err
}
