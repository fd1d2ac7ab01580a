package database

import (
	"strings"

	"github.com/spf13/cast"
)

// Relation points to the column of a foreign table referenced by the value of
// a model column.
type Relation struct {
	Table  string
	Column string
}

// Model is a single row of a table.
type Model interface {
	Values() map[string]interface{}
	PrimaryKeys() []string
	// Identifier is the row key, the primary key values joined with "-".
	Identifier() string
	// Relations maps a local column to the foreign column it references.
	Relations() map[string]Relation
	Get(column string) interface{}
	Set(column string, value interface{})
}

// BaseModel implements Model over a plain map of column values.
type BaseModel struct {
	values      map[string]interface{}
	primaryKeys []string
	relations   map[string]Relation
}

// NewBaseModel copies the given values into a new model.
func NewBaseModel(
	primaryKeys []string, values map[string]interface{},
	relations map[string]Relation,
) *BaseModel {
	v := make(map[string]interface{}, len(values))
	for k, val := range values {
		v[k] = val
	}
	if relations == nil {
		relations = map[string]Relation{}
	}
	return &BaseModel{
		values:      v,
		primaryKeys: primaryKeys,
		relations:   relations,
	}
}

// Values returns a copy of the column values.
func (m *BaseModel) Values() map[string]interface{} {
	v := make(map[string]interface{}, len(m.values))
	for k, val := range m.values {
		v[k] = val
	}
	return v
}

func (m *BaseModel) PrimaryKeys() []string {
	return m.primaryKeys
}

func (m *BaseModel) Identifier() string {
	ids := make([]string, 0, len(m.primaryKeys))
	for _, k := range m.primaryKeys {
		ids = append(ids, cast.ToString(m.values[k]))
	}
	return strings.Join(ids, "-")
}

func (m *BaseModel) Relations() map[string]Relation {
	return m.relations
}

func (m *BaseModel) Get(column string) interface{} {
	return m.values[column]
}

func (m *BaseModel) Set(column string, value interface{}) {
	m.values[column] = value
}

func (m *BaseModel) getString(column string) string {
	return cast.ToString(m.values[column])
}

func (m *BaseModel) getBool(column string) bool {
	return cast.ToBool(m.values[column])
}

func (m *BaseModel) getInt(column string) int {
	return cast.ToInt(m.values[column])
}

func (m *BaseModel) getUint64(column string) uint64 {
	return cast.ToUint64(m.values[column])
}

func (m *BaseModel) getStringSlice(column string) []string {
	return cast.ToStringSlice(m.values[column])
}
