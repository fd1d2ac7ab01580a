package badgerkv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
)

const gcInterval = 30 * time.Minute

// entry is the record type stored for every slot.
type entry struct {
	Key   string
	Value []byte
}

type store struct {
	db   *badgerhold.Store
	quit chan struct{}
}

// NewStore opens (or creates if not exists) a badger backed KVStore in dbDir.
// An empty dbDir opens an in-memory database.
func NewStore(dbDir string, logger badger.Logger) (ports.KVStore, error) {
	db, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening badger db: %w", err)
	}

	s := &store{db: db, quit: make(chan struct{})}
	if len(dbDir) > 0 {
		go s.runValueLogGC()
	}
	return s, nil
}

func (s *store) Get(key string) ([]byte, error) {
	var e entry
	if err := s.db.Get(key, &e); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return e.Value, nil
}

func (s *store) Set(key string, value []byte) error {
	return s.db.Upsert(key, &entry{Key: key, Value: value})
}

func (s *store) Delete(key string) error {
	if err := s.db.Delete(key, entry{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return err
	}
	return nil
}

func (s *store) Keys() ([]string, error) {
	var entries []entry
	if err := s.db.Find(&entries, nil); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *store) Close() error {
	close(s.quit)
	return s.db.Close()
}

func (s *store) runValueLogGC() {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return
		case <-ticker.C:
			if err := s.db.Badger().RunValueLogGC(0.5); err != nil &&
				err != badger.ErrNoRewrite {
				log.WithError(err).Warn("badger value log gc")
			}
		}
	}
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          jsonEncode,
		Decoder:          jsonDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}

// jsonEncode keeps records readable with the badger CLI tools.
func jsonEncode(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func jsonDecode(data []byte, value interface{}) error {
	return json.NewDecoder(bytes.NewReader(data)).Decode(value)
}
