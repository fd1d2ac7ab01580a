package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
	"github.com/nem2-wallet/walletcore/internal/infrastructure/storage/kv/inmemory"
)

func TestSimpleObjectStorage(t *testing.T) {
	s, err := NewSimpleObjectStorage[int](inmemory.NewStore(), "test")
	require.NoError(t, err)
	testRoundTrip(t, s.Get, s.Set, s.Remove)

	_, err = NewSimpleObjectStorage[int](inmemory.NewStore(), "")
	require.Equal(t, ErrNullKey, err)
}

func TestVersionedObjectStorage(t *testing.T) {
	s, err := NewVersionedObjectStorage[int](inmemory.NewStore(), "test", nil)
	require.NoError(t, err)
	testRoundTrip(t, s.Get, s.Set, s.Remove)
}

type profile struct {
	Name    string `json:"name"`
	Network string `json:"network"`
	Hint    string `json:"hint"`
}

var profileMigrations = []Migration{
	{
		Description: "rename networkType to network",
		Migrate: func(data interface{}) (interface{}, error) {
			in := data.(map[string]interface{})
			out := map[string]interface{}{}
			for k, v := range in {
				if k == "networkType" {
					k = "network"
				}
				out[k] = v
			}
			return out, nil
		},
	},
	{
		Description: "add empty hint",
		Migrate: func(data interface{}) (interface{}, error) {
			in := data.(map[string]interface{})
			out := map[string]interface{}{"hint": ""}
			for k, v := range in {
				out[k] = v
			}
			return out, nil
		},
	},
}

func TestVersionedObjectStorageMigrations(t *testing.T) {
	kv := inmemory.NewStore()
	require.NoError(t, kv.Set(
		"profiles", []byte(`{"version":0,"data":{"name":"alice","networkType":"TEST_NET"}}`),
	))

	s, err := NewVersionedObjectStorage[profile](kv, "profiles", profileMigrations)
	require.NoError(t, err)
	require.Equal(t, 2, s.CurrentVersion())

	got, ok, err := s.Get()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, profile{Name: "alice", Network: "TEST_NET"}, got)

	raw, err := kv.Get("profiles")
	require.NoError(t, err)
	require.JSONEq(
		t, `{"version":2,"data":{"name":"alice","network":"TEST_NET","hint":""}}`,
		string(raw),
	)

	// Only pending migrations run.
	require.NoError(t, kv.Set(
		"profiles", []byte(`{"version":1,"data":{"name":"bob","network":"MAIN_NET"}}`),
	))
	got, ok, err = s.Get()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, profile{Name: "bob", Network: "MAIN_NET"}, got)

	require.NoError(t, s.Set(profile{Name: "carol"}))
	raw, err = kv.Get("profiles")
	require.NoError(t, err)
	require.Contains(t, string(raw), `"version":2`)
}

func TestFailingVersionedObjectStorage(t *testing.T) {
	kv := inmemory.NewStore()
	stored := []byte(`{"version":0,"data":{"name":"alice"}}`)
	require.NoError(t, kv.Set("profiles", stored))

	errBroken := errors.New("broken")
	migrations := []Migration{
		profileMigrations[0],
		{
			Description: "fail",
			Migrate: func(interface{}) (interface{}, error) {
				return nil, errBroken
			},
		},
	}

	s, err := NewVersionedObjectStorage[profile](kv, "profiles", migrations)
	require.NoError(t, err)

	_, ok, err := s.Get()
	require.ErrorIs(t, err, errBroken)
	require.False(t, ok)

	raw, err := kv.Get("profiles")
	require.NoError(t, err)
	require.Equal(t, stored, raw)

	require.NoError(t, kv.Set("profiles", []byte(`{"version":5,"data":{}}`)))
	_, _, err = s.Get()
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	corrupted := []byte(`{"version":-1,"data":{"name":"alice"}}`)
	require.NoError(t, kv.Set("profiles", corrupted))
	require.NotPanics(t, func() {
		_, ok, err = s.Get()
	})
	require.ErrorIs(t, err, ErrMalformedVersion)
	require.False(t, ok)

	raw, err = kv.Get("profiles")
	require.NoError(t, err)
	require.Equal(t, corrupted, raw)
}

func TestNetworkBasedObjectStorage(t *testing.T) {
	s, err := NewNetworkBasedObjectStorage[string](inmemory.NewStore(), KeyNetworkCache, nil)
	require.NoError(t, err)

	clock := time.Unix(1600000000, 0)
	s.now = func() time.Time { return clock }

	latest, err := s.GetLatest()
	require.NoError(t, err)
	require.Nil(t, latest)

	require.NoError(t, s.Set("HASH_A", "a"))
	clock = clock.Add(time.Second)
	require.NoError(t, s.Set("HASH_B", "b"))

	latest, err = s.GetLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, "HASH_B", latest.GenerationHash)
	require.Equal(t, "b", latest.Data)
	require.Equal(t, clock.UnixMilli(), latest.Timestamp)

	clock = clock.Add(time.Second)
	require.NoError(t, s.Set("HASH_A", "a2"))
	latest, err = s.GetLatest()
	require.NoError(t, err)
	require.Equal(t, "a2", latest.Data)

	value, ok, err := s.Get("HASH_B")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "b", value)

	require.NoError(t, s.Remove("HASH_A"))
	_, ok, err = s.Get("HASH_A")
	require.NoError(t, err)
	require.False(t, ok)

	value, ok, err = s.Get("HASH_B")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "b", value)

	require.NoError(t, s.Remove("UNKNOWN"))
	require.Equal(t, ErrNullGenerationHash, s.Set("", "x"))

	require.NoError(t, s.RemoveAll())
	latest, err = s.GetLatest()
	require.NoError(t, err)
	require.Nil(t, latest)
}

var _ ports.KVStore = inmemory.NewStore()

func testRoundTrip(
	t *testing.T,
	get func() (int, bool, error), set func(int) error, remove func() error,
) {
	_, ok, err := get()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, set(123))
	value, ok, err := get()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 123, value)

	require.NoError(t, set(456))
	value, _, err = get()
	require.NoError(t, err)
	require.Equal(t, 456, value)

	require.NoError(t, remove())
	_, ok, err = get()
	require.NoError(t, err)
	require.False(t, ok)
}
