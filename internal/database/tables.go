package database

// LegacyGenerationHash is assigned to rows persisted before they were scoped
// by network.
const LegacyGenerationHash = "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"

const (
	AccountsTableName = "accounts"
	WalletsTableName  = "wallets"
	MosaicsTableName  = "mosaics"
	PeersTableName    = "peers"
	SettingsTableName = "settings"
)

// Tables returns every table of the wallet database.
func Tables() []Table {
	return []Table{
		NewAccountsTable(),
		NewWalletsTable(),
		NewMosaicsTable(),
		NewPeersTable(),
		NewSettingsTable(),
	}
}

// AccountsTable stores the user profiles.
type AccountsTable struct {
	baseTable
}

func NewAccountsTable() *AccountsTable {
	return &AccountsTable{baseTable{
		name: AccountsTableName,
		columns: []string{
			"accountName", "wallets", "password", "hint", "networkType", "seed",
			"generationHash",
		},
		version: 2,
		migrations: []TableMigration{
			{
				Version:     2,
				Description: "scope profiles by network generation hash",
				Migrate:     setMissing(NewAccountsTable, "generationHash", LegacyGenerationHash),
			},
		},
	}}
}

func (t *AccountsTable) CreateModel(values map[string]interface{}) Model {
	return &AccountModel{NewBaseModel([]string{"accountName"}, values, nil)}
}

// WalletsTable stores the accounts derived or imported in a profile.
type WalletsTable struct {
	baseTable
}

func NewWalletsTable() *WalletsTable {
	return &WalletsTable{baseTable{
		name: WalletsTableName,
		columns: []string{
			"id", "accountName", "name", "type", "address", "publicKey",
			"encPrivate", "encIv", "path", "isMultisig",
		},
	}}
}

func (t *WalletsTable) CreateModel(values map[string]interface{}) Model {
	return &WalletModel{NewBaseModel(
		[]string{"id"}, values,
		map[string]Relation{
			"accountName": {Table: AccountsTableName, Column: "accountName"},
		},
	)}
}

// MosaicsTable caches the mosaics known by a profile, per network.
type MosaicsTable struct {
	baseTable
}

func NewMosaicsTable() *MosaicsTable {
	return &MosaicsTable{baseTable{
		name: MosaicsTableName,
		columns: []string{
			"hexId", "name", "flags", "divisibility", "ownerPublicKey", "supply",
			"balance", "isCurrencyMosaic", "isHarvestMosaic", "isHidden",
			"startHeight", "duration", "generationHash",
		},
		version: 2,
		migrations: []TableMigration{
			{
				Version:     2,
				Description: "key mosaics by id and network generation hash",
				Migrate:     setMissing(NewMosaicsTable, "generationHash", LegacyGenerationHash),
			},
		},
	}}
}

func (t *MosaicsTable) CreateModel(values map[string]interface{}) Model {
	return &MosaicModel{NewBaseModel(
		[]string{"hexId", "generationHash"}, values, nil,
	)}
}

// PeersTable stores the nodes the user connected to.
type PeersTable struct {
	baseTable
}

func NewPeersTable() *PeersTable {
	return &PeersTable{baseTable{
		name: PeersTableName,
		columns: []string{
			"rest_url", "host", "port", "protocol", "networkType",
			"generationHash", "roles", "is_default", "friendly_name",
		},
		version: 2,
		migrations: []TableMigration{
			{
				Version:     2,
				Description: "name peers after their host",
				Migrate: func(rows map[string]Model) (map[string]Model, error) {
					t := NewPeersTable()
					migrated := make(map[string]Model, len(rows))
					for _, row := range rows {
						m := t.CreateModel(row.Values())
						if len(m.(*PeerModel).FriendlyName()) <= 0 {
							m.Set("friendly_name", m.Get("host"))
						}
						migrated[m.Identifier()] = m
					}
					return migrated, nil
				},
			},
		},
	}}
}

func (t *PeersTable) CreateModel(values map[string]interface{}) Model {
	return &PeerModel{NewBaseModel([]string{"rest_url"}, values, nil)}
}

// SettingsTable stores the preferences of a profile.
type SettingsTable struct {
	baseTable
}

func NewSettingsTable() *SettingsTable {
	return &SettingsTable{baseTable{
		name: SettingsTableName,
		columns: []string{
			"accountName", "default_fee", "default_wallet", "language",
			"explorer_url",
		},
	}}
}

func (t *SettingsTable) CreateModel(values map[string]interface{}) Model {
	return &SettingsModel{NewBaseModel(
		[]string{"accountName"}, values,
		map[string]Relation{
			"accountName":    {Table: AccountsTableName, Column: "accountName"},
			"default_wallet": {Table: WalletsTableName, Column: "id"},
		},
	)}
}

// setMissing returns a migration filling an empty column with a constant
// value. Rows are rebuilt, and thus rekeyed, with the current schema.
func setMissing[T Table](
	newTable func() T, column string, value interface{},
) MigrateRowsFunc {
	return func(rows map[string]Model) (map[string]Model, error) {
		t := newTable()
		migrated := make(map[string]Model, len(rows))
		for _, row := range rows {
			m := t.CreateModel(row.Values())
			if v := m.Get(column); v == nil || v == "" {
				m.Set(column, value)
			}
			migrated[m.Identifier()] = m
		}
		return migrated, nil
	}
}
