package storage

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound = errors.New("storage: key not found")
	ErrClosed   = errors.New("storage: backend closed")
)

// Kind tags what a key holds for a given sample name.
type Kind byte

const (
	SampleKind Kind = iota
	SummaryKind
)

// <1 byte kind> <name bytes>
func GetKey(kind Kind, name string) []byte {
	buf := make([]byte, 1+len(name))
	buf[0] = byte(kind)
	copy(buf[1:], name)
	return buf
}

func GetKindFromKey(buf []byte) Kind {
	return Kind(buf[0])
}

func GetNameFromKey(buf []byte) string {
	return string(buf[1:])
}

func GetKeyPrefix(kind Kind) []byte {
	return []byte{byte(kind)}
}

type Backend interface {
	Get(Kind, string) ([]byte, error)
	Put(Kind, string, []byte) error
	Delete(Kind, string) error
	// Merge writes buf under (kind, name) and removes the other kinds listed
	// for the same name in one step.
	Merge(Kind, string, []byte, []Kind) error

	IterateIndex(Kind, func(string) error) error

	Close() error
}

type InMemoryBackend struct {
	entries map[string][]byte
	mu      sync.Mutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		entries: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) Get(kind Kind, name string) ([]byte, error) {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.entries == nil {
		return nil, ErrClosed
	}
	buf, ok := backend.entries[string(GetKey(kind, name))]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) Put(kind Kind, name string, buf []byte) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.entries == nil {
		return ErrClosed
	}
	backend.entries[string(GetKey(kind, name))] = buf
	return nil
}

func (backend *InMemoryBackend) Delete(kind Kind, name string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.entries == nil {
		return ErrClosed
	}
	delete(backend.entries, string(GetKey(kind, name)))
	return nil
}

func (backend *InMemoryBackend) Merge(kind Kind, name string, buf []byte, deleted []Kind) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	if backend.entries == nil {
		return ErrClosed
	}

	backend.entries[string(GetKey(kind, name))] = buf
	for _, k := range deleted {
		delete(backend.entries, string(GetKey(k, name)))
	}
	return nil
}

// IterateIndex calls lambda with every name stored under kind, in ascending
// key order like the badger backend.
func (backend *InMemoryBackend) IterateIndex(kind Kind, lambda func(string) error) error {
	backend.mu.Lock()
	if backend.entries == nil {
		backend.mu.Unlock()
		return ErrClosed
	}
	names := make([]string, 0)
	for k := range backend.entries {
		buf := []byte(k)
		if GetKindFromKey(buf) == kind {
			names = append(names, GetNameFromKey(buf))
		}
	}
	backend.mu.Unlock()

	sort.Strings(names)
	for _, name := range names {
		if err := lambda(name); err != nil {
			return err
		}
	}
	return nil
}

// Close drops all entries; later calls return ErrClosed.
func (backend *InMemoryBackend) Close() error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.entries = nil
	return nil
}
