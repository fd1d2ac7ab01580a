package storage

import (
	"sync"
	"time"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
)

// NetworkBasedEntry is the value stored for a single network instance.
type NetworkBasedEntry[E interface{}] struct {
	GenerationHash string `json:"generationHash"`
	Data           E      `json:"data"`
	// Timestamp is the unix time in milliseconds of the last write.
	Timestamp int64 `json:"timestamp"`
}

// NetworkBasedObjectStorage keeps one value of type E per network
// generation hash. Entries of networks no longer in use are never purged.
type NetworkBasedObjectStorage[E interface{}] struct {
	store *VersionedObjectStorage[map[string]NetworkBasedEntry[E]]
	lock  *sync.Mutex
	now   func() time.Time
}

// NewNetworkBasedObjectStorage returns a network-scoped storage. Migrations
// operate on the whole map of entries.
func NewNetworkBasedObjectStorage[E interface{}](
	kv ports.KVStore, key Key, migrations []Migration,
) (*NetworkBasedObjectStorage[E], error) {
	store, err := NewVersionedObjectStorage[map[string]NetworkBasedEntry[E]](
		kv, key, migrations,
	)
	if err != nil {
		return nil, err
	}
	return &NetworkBasedObjectStorage[E]{
		store: store,
		lock:  &sync.Mutex{},
		now:   time.Now,
	}, nil
}

// Get returns the entry stored for the given generation hash.
func (s *NetworkBasedObjectStorage[E]) Get(generationHash string) (E, bool, error) {
	var value E

	s.lock.Lock()
	defer s.lock.Unlock()

	entries, _, err := s.store.Get()
	if err != nil {
		return value, false, err
	}
	entry, ok := entries[generationHash]
	if !ok {
		return value, false, nil
	}
	return entry.Data, true, nil
}

// GetLatest returns the most recently written entry among all networks.
func (s *NetworkBasedObjectStorage[E]) GetLatest() (*NetworkBasedEntry[E], error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	entries, _, err := s.store.Get()
	if err != nil {
		return nil, err
	}

	var latest *NetworkBasedEntry[E]
	for _, entry := range entries {
		entry := entry
		if latest == nil || entry.Timestamp > latest.Timestamp ||
			// ties are broken by hash to keep the result deterministic.
			(entry.Timestamp == latest.Timestamp &&
				entry.GenerationHash > latest.GenerationHash) {
			latest = &entry
		}
	}
	return latest, nil
}

// Set overwrites the entry for the given generation hash, stamping the
// current time.
func (s *NetworkBasedObjectStorage[E]) Set(generationHash string, value E) error {
	if len(generationHash) <= 0 {
		return ErrNullGenerationHash
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	entries, _, err := s.store.Get()
	if err != nil {
		return err
	}
	if entries == nil {
		entries = make(map[string]NetworkBasedEntry[E])
	}
	entries[generationHash] = NetworkBasedEntry[E]{
		GenerationHash: generationHash,
		Data:           value,
		Timestamp:      s.now().UnixMilli(),
	}
	return s.store.Set(entries)
}

// Remove deletes only the entry of the given generation hash.
func (s *NetworkBasedObjectStorage[E]) Remove(generationHash string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	entries, ok, err := s.store.Get()
	if err != nil || !ok {
		return err
	}
	if _, ok := entries[generationHash]; !ok {
		return nil
	}
	delete(entries, generationHash)
	return s.store.Set(entries)
}

// RemoveAll drops the whole slot.
func (s *NetworkBasedObjectStorage[E]) RemoveAll() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.store.Remove()
}
