package boltkv

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
)

const defaultDBTimeout = 5 * time.Second

var rootBucket = []byte("wallet")

type store struct {
	db *bbolt.DB
}

// NewStore opens (or creates if not exists) a single file bolt KVStore.
func NewStore(datadir, filename string) (ports.KVStore, error) {
	if err := os.MkdirAll(datadir, os.ModeDir|0755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(
		filepath.Join(datadir, filename), 0600,
		&bbolt.Options{Timeout: defaultDBTimeout},
	)
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(rootBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &store{db}, nil
}

func (s *store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(rootBucket)
		if bucket == nil {
			return ErrRootBucketNotFound
		}
		v := bucket.Get([]byte(key))
		if v == nil {
			return nil
		}
		// bolt values are only valid for the lifetime of the tx.
		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})
	return value, err
}

func (s *store) Set(key string, value []byte) error {
	if len(key) <= 0 {
		return ErrMissingKey
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(rootBucket)
		if bucket == nil {
			return ErrRootBucketNotFound
		}
		return bucket.Put([]byte(key), value)
	})
}

func (s *store) Delete(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(rootBucket)
		if bucket == nil {
			return ErrRootBucketNotFound
		}
		return bucket.Delete([]byte(key))
	})
}

func (s *store) Keys() ([]string, error) {
	keys := make([]string, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(rootBucket)
		if bucket == nil {
			return ErrRootBucketNotFound
		}
		return bucket.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *store) Close() error {
	return s.db.Close()
}
