package storage

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
)

// MigrateFunc upgrades a stored shape to the next version. It receives the
// generic JSON decoding of the previous shape (maps, slices, float64s...) and
// must return a JSON encodable value without mutating its input.
type MigrateFunc func(data interface{}) (interface{}, error)

// Migration is one step of a schema upgrade chain. The version of the stored
// payload is the number of migrations applied to it.
type Migration struct {
	Description string
	Migrate     MigrateFunc
}

type versionedModel struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// VersionedObjectStorage persists a value of type E as {version, data} and
// upgrades older payloads lazily, on first read.
type VersionedObjectStorage[E interface{}] struct {
	kv         ports.KVStore
	key        Key
	migrations []Migration
}

func NewVersionedObjectStorage[E interface{}](
	kv ports.KVStore, key Key, migrations []Migration,
) (*VersionedObjectStorage[E], error) {
	if len(key) <= 0 {
		return nil, ErrNullKey
	}
	m := make([]Migration, len(migrations))
	copy(m, migrations)
	return &VersionedObjectStorage[E]{kv, key, m}, nil
}

// CurrentVersion is the version stamped on every write.
func (s *VersionedObjectStorage[E]) CurrentVersion() int {
	return len(s.migrations)
}

// Get returns the stored value, upgraded to the current version. The upgraded
// payload is written back only if every pending migration succeeded.
func (s *VersionedObjectStorage[E]) Get() (E, bool, error) {
	var value E

	raw, err := s.kv.Get(string(s.key))
	if err != nil {
		return value, false, err
	}
	if raw == nil {
		return value, false, nil
	}

	stored := versionedModel{}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return value, false, fmt.Errorf("decoding %s: %w", s.key, err)
	}

	data := []byte(stored.Data)
	switch current := s.CurrentVersion(); {
	case stored.Version < 0:
		return value, false, fmt.Errorf(
			"%s at version %d: %w", s.key, stored.Version, ErrMalformedVersion,
		)
	case stored.Version > current:
		return value, false, fmt.Errorf(
			"%s at version %d: %w", s.key, stored.Version, ErrUnsupportedVersion,
		)
	case stored.Version < current:
		upgraded, err := s.migrate(stored)
		if err != nil {
			return value, false, err
		}
		if err := s.write(upgraded); err != nil {
			return value, false, err
		}
		data = upgraded
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, fmt.Errorf("decoding %s: %w", s.key, err)
	}
	return value, true, nil
}

// Set always stamps the latest version.
func (s *VersionedObjectStorage[E]) Set(value E) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.key, err)
	}
	return s.write(data)
}

func (s *VersionedObjectStorage[E]) Remove() error {
	return s.kv.Delete(string(s.key))
}

func (s *VersionedObjectStorage[E]) migrate(stored versionedModel) ([]byte, error) {
	var data interface{}
	if len(stored.Data) > 0 {
		if err := json.Unmarshal(stored.Data, &data); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", s.key, err)
		}
	}

	for version := stored.Version; version < s.CurrentVersion(); version++ {
		m := s.migrations[version]
		log.Infof(
			"migrating %s from version %d to %d: %s",
			s.key, version, version+1, m.Description,
		)

		next, err := m.Migrate(data)
		if err != nil {
			return nil, fmt.Errorf(
				"migrating %s to version %d: %w", s.key, version+1, err,
			)
		}
		data = next
	}

	return json.Marshal(data)
}

func (s *VersionedObjectStorage[E]) write(data []byte) error {
	raw, err := json.Marshal(versionedModel{
		Version: s.CurrentVersion(),
		Data:    data,
	})
	if err != nil {
		return err
	}
	return s.kv.Set(string(s.key), raw)
}
