package formatter

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DetailMap is an insertion ordered map of display fields, marshalled to
// JSON in insertion order.
type DetailMap struct {
	fields *orderedmap.OrderedMap[string, interface{}]
}

func NewDetailMap() *DetailMap {
	return &DetailMap{orderedmap.New[string, interface{}]()}
}

// Set adds or replaces a field. Replaced fields keep their position.
func (m *DetailMap) Set(key string, value interface{}) {
	m.fields.Set(key, value)
}

func (m *DetailMap) Get(key string) (interface{}, bool) {
	return m.fields.Get(key)
}

func (m *DetailMap) Keys() []string {
	keys := make([]string, 0, m.fields.Len())
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (m *DetailMap) Len() int {
	return m.fields.Len()
}

func (m *DetailMap) MarshalJSON() ([]byte, error) {
	return m.fields.MarshalJSON()
}
