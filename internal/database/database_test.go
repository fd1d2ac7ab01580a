package database_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nem2-wallet/walletcore/internal/database"
	"github.com/nem2-wallet/walletcore/internal/infrastructure/storage/kv/inmemory"
)

func TestModelIdentifier(t *testing.T) {
	m := database.NewMosaicsTable().CreateModel(map[string]interface{}{
		"hexId":          "6BED913FA20223F8",
		"generationHash": "HASH",
		"divisibility":   float64(6),
	})
	require.Equal(t, "6BED913FA20223F8-HASH", m.Identifier())
	require.Equal(t, []string{"hexId", "generationHash"}, m.PrimaryKeys())
	require.Equal(t, 6, m.(*database.MosaicModel).Divisibility())

	values := m.Values()
	values["hexId"] = "changed"
	require.Equal(t, "6BED913FA20223F8", m.Get("hexId"))
}

func TestDatabase(t *testing.T) {
	accounts := database.NewAccountsTable()
	wallets := database.NewWalletsTable()
	db := database.NewDatabase(inmemory.NewStore(), database.Tables()...)

	rows, err := db.Rows(accounts)
	require.NoError(t, err)
	require.Empty(t, rows)

	account := accounts.CreateModel(map[string]interface{}{
		"accountName": "alice",
		"networkType": 152,
		"wallets":     []string{"w1"},
		"unknown":     "dropped",
	})
	require.NoError(t, db.SaveModel(accounts, account))

	wallet := wallets.CreateModel(map[string]interface{}{
		"id":          "w1",
		"accountName": "alice",
		"name":        "Seed Account 1",
		"isMultisig":  false,
	})
	require.NoError(t, db.SaveModel(wallets, wallet))

	rows, err = db.Rows(accounts)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	got := rows["alice"].(*database.AccountModel)
	require.Equal(t, "alice", got.Name())
	require.Equal(t, 152, got.NetworkType())
	require.Equal(t, []string{"w1"}, got.Wallets())
	require.Nil(t, got.Get("unknown"))

	related, ok, err := db.Related(wallet, "accountName")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "alice", related.Identifier())

	_, _, err = db.Related(wallet, "name")
	require.ErrorIs(t, err, database.ErrUnknownRelation)

	found, err := db.Find(wallets, func(m database.Model) bool {
		return m.(*database.WalletModel).AccountName() == "alice"
	})
	require.NoError(t, err)
	require.Len(t, found, 1)

	require.NoError(t, db.DeleteModel(wallets, "w1"))
	require.NoError(t, db.DeleteModel(wallets, "w1"))
	rows, err = db.Rows(wallets)
	require.NoError(t, err)
	require.Empty(t, rows)

	require.Equal(t, database.ErrNullIdentifier, db.SaveModel(
		wallets, wallets.CreateModel(map[string]interface{}{}),
	))

	require.NoError(t, db.Drop(accounts))
	rows, err = db.Rows(accounts)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestTableMigrations(t *testing.T) {
	kv := inmemory.NewStore()
	legacyMosaics, _ := json.Marshal(map[string]interface{}{
		"version": 1,
		"rows": map[string]interface{}{
			"6BED913FA20223F8": map[string]interface{}{
				"version": 1,
				"data": map[string]interface{}{
					"hexId": "6BED913FA20223F8", "name": "cat.currency",
					"supply": "8999999998000000",
				},
			},
		},
	})
	legacyPeers, _ := json.Marshal(map[string]interface{}{
		"version": 1,
		"rows": map[string]interface{}{
			"http://node:3000": map[string]interface{}{
				"version": 1,
				"data": map[string]interface{}{
					"rest_url": "http://node:3000", "host": "node", "port": 3000,
				},
			},
		},
	})
	require.NoError(t, kv.Set("table:mosaics", legacyMosaics))
	require.NoError(t, kv.Set("table:peers", legacyPeers))

	db := database.NewDatabase(kv, database.Tables()...)

	mosaics, err := db.Rows(database.NewMosaicsTable())
	require.NoError(t, err)
	require.Len(t, mosaics, 1)
	id := "6BED913FA20223F8-" + database.LegacyGenerationHash
	require.Contains(t, mosaics, id)
	mosaic := mosaics[id].(*database.MosaicModel)
	require.Equal(t, database.LegacyGenerationHash, mosaic.GenerationHash())
	require.Equal(t, uint64(8999999998000000), mosaic.Supply())

	raw, err := kv.Get("table:mosaics")
	require.NoError(t, err)
	stored := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Equal(t, float64(2), stored["version"])

	peers, err := db.Rows(database.NewPeersTable())
	require.NoError(t, err)
	peer := peers["http://node:3000"].(*database.PeerModel)
	require.Equal(t, "node", peer.FriendlyName())
	require.Equal(t, 3000, peer.Port())
}

type brokenTable struct {
	*database.SettingsTable
}

var errBroken = errors.New("broken")

func (brokenTable) Version() int { return 2 }

func (brokenTable) Migrations() []database.TableMigration {
	return []database.TableMigration{{
		Version: 2,
		Migrate: func(map[string]database.Model) (map[string]database.Model, error) {
			return nil, errBroken
		},
	}}
}

func TestFailingTableMigration(t *testing.T) {
	kv := inmemory.NewStore()
	settings := database.NewSettingsTable()
	db := database.NewDatabase(kv)
	require.NoError(t, db.SaveModel(settings, settings.CreateModel(
		map[string]interface{}{"accountName": "alice", "language": "en-US"},
	)))
	before, err := kv.Get("table:settings")
	require.NoError(t, err)

	_, err = db.Rows(brokenTable{settings})
	require.ErrorIs(t, err, errBroken)

	after, err := kv.Get("table:settings")
	require.NoError(t, err)
	require.Equal(t, before, after)
}
