package inmemory

import (
	"sort"
	"sync"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
)

type store struct {
	lock   *sync.RWMutex
	values map[string][]byte
}

// NewStore returns a volatile KVStore, mainly meant for tests and dry runs.
func NewStore() ports.KVStore {
	return &store{
		lock:   &sync.RWMutex{},
		values: make(map[string][]byte),
	}
}

func (s *store) Get(key string) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	return copyBytes(value), nil
}

func (s *store) Set(key string, value []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.values[key] = copyBytes(value)
	return nil
}

func (s *store) Delete(key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.values, key)
	return nil
}

func (s *store) Keys() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *store) Close() error {
	return nil
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
