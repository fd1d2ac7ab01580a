package database

import "sort"

// MigrateRowsFunc upgrades all the rows of a table to a new version. It must
// not mutate the models it receives.
type MigrateRowsFunc func(rows map[string]Model) (map[string]Model, error)

// TableMigration upgrades rows stored at Version-1 to Version.
type TableMigration struct {
	Version     int
	Description string
	Migrate     MigrateRowsFunc
}

// Table describes the schema of a collection of models.
type Table interface {
	Name() string
	Columns() []string
	Version() int
	Migrations() []TableMigration
	CreateModel(values map[string]interface{}) Model
}

type baseTable struct {
	name       string
	columns    []string
	version    int
	migrations []TableMigration
}

func (t baseTable) Name() string {
	return t.name
}

func (t baseTable) Columns() []string {
	return t.columns
}

// Version defaults to 1 for tables that never migrated.
func (t baseTable) Version() int {
	if t.version <= 0 {
		return 1
	}
	return t.version
}

func (t baseTable) Migrations() []TableMigration {
	return t.migrations
}

// pendingMigrations returns the migrations to apply to rows stored at the
// given version, in ascending order.
func pendingMigrations(t Table, from int) []TableMigration {
	pending := make([]TableMigration, 0)
	for _, m := range t.Migrations() {
		if m.Version > from && m.Version <= t.Version() {
			pending = append(pending, m)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})
	return pending
}

// filterColumns drops the values of columns unknown to the table.
func filterColumns(t Table, values map[string]interface{}) map[string]interface{} {
	filtered := make(map[string]interface{}, len(values))
	for _, c := range t.Columns() {
		if v, ok := values[c]; ok {
			filtered[c] = v
		}
	}
	return filtered
}
