package storage

import (
	"encoding/json"
	"fmt"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
)

// SimpleObjectStorage persists a single JSON encoded value of type E without
// any schema versioning.
type SimpleObjectStorage[E interface{}] struct {
	kv  ports.KVStore
	key Key
}

func NewSimpleObjectStorage[E interface{}](
	kv ports.KVStore, key Key,
) (*SimpleObjectStorage[E], error) {
	if len(key) <= 0 {
		return nil, ErrNullKey
	}
	return &SimpleObjectStorage[E]{kv, key}, nil
}

// Get returns the stored value, false if the slot is empty.
func (s *SimpleObjectStorage[E]) Get() (E, bool, error) {
	var value E

	raw, err := s.kv.Get(string(s.key))
	if err != nil {
		return value, false, err
	}
	if raw == nil {
		return value, false, nil
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("decoding %s: %w", s.key, err)
	}
	return value, true, nil
}

func (s *SimpleObjectStorage[E]) Set(value E) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.key, err)
	}
	return s.kv.Set(string(s.key), raw)
}

func (s *SimpleObjectStorage[E]) Remove() error {
	return s.kv.Delete(string(s.key))
}
