package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
)

var (
	// ErrNullTable is returned when a nil table is given.
	ErrNullTable = errors.New("table must not be null")
	// ErrNullModel is returned when a nil model is given.
	ErrNullModel = errors.New("model must not be null")
	// ErrNullIdentifier is returned when saving a model without primary key
	// values.
	ErrNullIdentifier = errors.New("model identifier must not be empty")
	// ErrUnknownTable is returned when resolving a relation towards a table
	// that was never registered.
	ErrUnknownTable = errors.New("table is not registered")
	// ErrUnknownRelation is returned when resolving a relation the model does
	// not declare.
	ErrUnknownRelation = errors.New("model does not declare relation")
	// ErrUnsupportedTableVersion is returned when rows have been written by a
	// newer schema.
	ErrUnsupportedTableVersion = errors.New("stored table version is newer than latest known")
)

const keyPrefix = "table:"

type storedRow struct {
	Version int                    `json:"version"`
	Data    map[string]interface{} `json:"data"`
}

type storedTable struct {
	Version int                  `json:"version"`
	Rows    map[string]storedRow `json:"rows"`
}

// Database stores the rows of every table in a dedicated slot of a KVStore.
type Database struct {
	kv     ports.KVStore
	tables map[string]Table
	lock   *sync.Mutex
}

// NewDatabase returns a database over the given store. Tables must be
// registered to be the target of relations.
func NewDatabase(kv ports.KVStore, tables ...Table) *Database {
	d := &Database{
		kv:     kv,
		tables: make(map[string]Table),
		lock:   &sync.Mutex{},
	}
	for _, t := range tables {
		d.tables[t.Name()] = t
	}
	return d
}

// Rows returns all rows of the given table keyed by identifier. Rows stored
// at an older version are migrated and persisted before being returned.
func (d *Database) Rows(t Table) (map[string]Model, error) {
	if t == nil {
		return nil, ErrNullTable
	}

	d.lock.Lock()
	defer d.lock.Unlock()

	return d.rows(t)
}

// SaveRows replaces the whole content of the table.
func (d *Database) SaveRows(t Table, rows map[string]Model) error {
	if t == nil {
		return ErrNullTable
	}

	d.lock.Lock()
	defer d.lock.Unlock()

	return d.write(t, rows)
}

// SaveModel inserts or replaces the row with the model's identifier.
func (d *Database) SaveModel(t Table, m Model) error {
	if t == nil {
		return ErrNullTable
	}
	if m == nil {
		return ErrNullModel
	}
	if len(m.Identifier()) <= 0 {
		return ErrNullIdentifier
	}

	d.lock.Lock()
	defer d.lock.Unlock()

	rows, err := d.rows(t)
	if err != nil {
		return err
	}
	rows[m.Identifier()] = m
	return d.write(t, rows)
}

// DeleteModel removes the row with the given identifier, if any.
func (d *Database) DeleteModel(t Table, identifier string) error {
	if t == nil {
		return ErrNullTable
	}

	d.lock.Lock()
	defer d.lock.Unlock()

	rows, err := d.rows(t)
	if err != nil {
		return err
	}
	if _, ok := rows[identifier]; !ok {
		return nil
	}
	delete(rows, identifier)
	return d.write(t, rows)
}

// Drop removes every row of the table.
func (d *Database) Drop(t Table) error {
	if t == nil {
		return ErrNullTable
	}

	d.lock.Lock()
	defer d.lock.Unlock()

	return d.kv.Delete(tableKey(t))
}

// Find returns the rows matching the given predicate.
func (d *Database) Find(t Table, match func(Model) bool) ([]Model, error) {
	rows, err := d.Rows(t)
	if err != nil {
		return nil, err
	}

	found := make([]Model, 0)
	for _, m := range rows {
		if match(m) {
			found = append(found, m)
		}
	}
	return found, nil
}

// Related returns the row of the foreign table referenced by the given local
// column of the model.
func (d *Database) Related(m Model, column string) (Model, bool, error) {
	if m == nil {
		return nil, false, ErrNullModel
	}
	relation, ok := m.Relations()[column]
	if !ok {
		return nil, false, fmt.Errorf("%s: %w", column, ErrUnknownRelation)
	}
	t, ok := d.tables[relation.Table]
	if !ok {
		return nil, false, fmt.Errorf("%s: %w", relation.Table, ErrUnknownTable)
	}

	value := fmt.Sprint(m.Get(column))
	found, err := d.Find(t, func(row Model) bool {
		return fmt.Sprint(row.Get(relation.Column)) == value
	})
	if err != nil {
		return nil, false, err
	}
	if len(found) <= 0 {
		return nil, false, nil
	}
	return found[0], true, nil
}

func (d *Database) rows(t Table) (map[string]Model, error) {
	raw, err := d.kv.Get(tableKey(t))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]Model{}, nil
	}

	stored := storedTable{}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decoding table %s: %w", t.Name(), err)
	}
	if stored.Version > t.Version() {
		return nil, fmt.Errorf(
			"%s at version %d: %w", t.Name(), stored.Version,
			ErrUnsupportedTableVersion,
		)
	}

	rows := make(map[string]Model, len(stored.Rows))
	for id, row := range stored.Rows {
		rows[id] = t.CreateModel(row.Data)
	}

	if stored.Version == t.Version() {
		return rows, nil
	}

	for _, m := range pendingMigrations(t, stored.Version) {
		log.Infof(
			"migrating table %s to version %d: %s", t.Name(), m.Version,
			m.Description,
		)
		if rows, err = m.Migrate(rows); err != nil {
			return nil, fmt.Errorf(
				"migrating table %s to version %d: %w", t.Name(), m.Version, err,
			)
		}
	}

	if err := d.write(t, rows); err != nil {
		return nil, err
	}
	return d.rows(t)
}

// write stores rows at the latest table version, keyed by their (possibly
// new) identifiers.
func (d *Database) write(t Table, rows map[string]Model) error {
	stored := storedTable{
		Version: t.Version(),
		Rows:    make(map[string]storedRow, len(rows)),
	}
	for _, m := range rows {
		stored.Rows[m.Identifier()] = storedRow{
			Version: t.Version(),
			Data:    filterColumns(t, m.Values()),
		}
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding table %s: %w", t.Name(), err)
	}
	return d.kv.Set(tableKey(t), raw)
}

func tableKey(t Table) string {
	return keyPrefix + t.Name()
}
