package badgerkv_test

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	badgerkv "github.com/nem2-wallet/walletcore/internal/infrastructure/storage/kv/badger"
)

func TestStore(t *testing.T) {
	tests := []struct {
		name string
		dir  string
	}{
		{"in-memory", ""},
		{"on-disk", t.TempDir()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			store, err := badgerkv.NewStore(tt.dir, log.StandardLogger())
			require.NoError(t, err)
			defer store.Close()

			value, err := store.Get("missing")
			require.NoError(t, err)
			require.Nil(t, value)

			require.NoError(t, store.Set("accounts", []byte(`{"version":1}`)))
			require.NoError(t, store.Set("accounts", []byte(`{"version":2}`)))
			require.NoError(t, store.Set("network", []byte(`{}`)))

			value, err = store.Get("accounts")
			require.NoError(t, err)
			require.Equal(t, []byte(`{"version":2}`), value)

			keys, err := store.Keys()
			require.NoError(t, err)
			require.Equal(t, []string{"accounts", "network"}, keys)

			require.NoError(t, store.Delete("accounts"))
			require.NoError(t, store.Delete("accounts"))
			value, err = store.Get("accounts")
			require.NoError(t, err)
			require.Nil(t, value)
		})
	}
}
