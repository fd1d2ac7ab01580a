package application_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nem2-wallet/walletcore/internal/core/application"
	"github.com/nem2-wallet/walletcore/internal/core/domain"
	"github.com/nem2-wallet/walletcore/internal/database"
	"github.com/nem2-wallet/walletcore/internal/infrastructure/storage/kv/inmemory"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

var testCurrency = domain.NetworkCurrency{
	NamespaceID:  "E74B99BA41F4AFEE",
	Ticker:       "XYM",
	Divisibility: 6,
}

func newSnapshot(hash string, median uint64) networkSnapshot {
	return networkSnapshot{
		info: nodeInfo{
			generationHash: hash,
			networkID:      int(wallet.TestNet),
			host:           "node.example.com",
		},
		props: networkProperties{
			epochAdjustment: 1637848847,
			currencyID:      "72C0212E67A08BCE",
		},
		fees:   transactionFees{median: median},
		height: 100,
	}
}

func TestNetworkService(t *testing.T) {
	kv := inmemory.NewStore()
	db := database.NewDatabase(kv, database.Tables()...)
	node := &mockNodeService{}
	node.On("GetNetworkSnapshot", mock.Anything).Return(newSnapshot("HASH_A", 0), nil).Once()
	node.On("GetNetworkSnapshot", mock.Anything).Return(newSnapshot("HASH_B", 25), nil).Once()

	svc, err := application.NewNetworkService(
		node, "https://node.example.com:3001", wallet.TestNet, testCurrency, kv, db,
	)
	require.NoError(t, err)

	_, err = svc.Latest(ctx)
	require.Equal(t, application.ErrNetworkNotFound, err)

	cache, err := svc.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, "HASH_A", cache.Properties.GenerationHash)
	require.Equal(t, int64(1637848847), cache.Properties.EpochAdjustment)
	require.Equal(t, "72C0212E67A08BCE", cache.Properties.Currency.MosaicID)
	require.Equal(t, domain.DefaultDynamicFeeMultiplier, cache.Properties.Currency.DynamicFeeMultiplier)
	require.Equal(t, uint64(100), cache.ChainHeight)

	_, err = svc.Refresh(ctx)
	require.NoError(t, err)

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, "HASH_B", latest.Properties.GenerationHash)
	require.Equal(t, uint64(25), latest.Properties.Currency.DynamicFeeMultiplier)

	first, err := svc.ForNetwork(ctx, "HASH_A")
	require.NoError(t, err)
	require.Equal(t, "HASH_A", first.Properties.GenerationHash)

	_, err = svc.ForNetwork(ctx, "HASH_C")
	require.Equal(t, application.ErrNetworkNotFound, err)

	peers, err := db.Rows(database.NewPeersTable())
	require.NoError(t, err)
	peer := peers["https://node.example.com:3001"].(*database.PeerModel)
	require.Equal(t, "https", peer.Protocol())
	require.Equal(t, "node.example.com", peer.FriendlyName())
	require.Equal(t, "HASH_B", peer.GenerationHash())

	require.NoError(t, svc.Forget(ctx, "HASH_B"))
	latest, err = svc.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, "HASH_A", latest.Properties.GenerationHash)

	require.NoError(t, svc.Forget(ctx, ""))
	_, err = svc.Latest(ctx)
	require.Equal(t, application.ErrNetworkNotFound, err)

	node.AssertExpectations(t)
}

func TestFailingNetworkService(t *testing.T) {
	kv := inmemory.NewStore()
	db := database.NewDatabase(kv)
	errUnreachable := errors.New("unreachable")

	node := &mockNodeService{}
	node.On("GetNetworkSnapshot", mock.Anything).Return(nil, errUnreachable).Once()
	node.On("GetNetworkSnapshot", mock.Anything).Return(newSnapshot("HASH_A", 10), nil).Once()

	svc, err := application.NewNetworkService(
		node, "http://localhost:3000", wallet.MainNet, testCurrency, kv, db,
	)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx)
	require.ErrorIs(t, err, errUnreachable)

	_, err = svc.Refresh(ctx)
	require.ErrorIs(t, err, application.ErrNetworkMismatch)

	_, err = application.NewNetworkService(
		node, "", wallet.MainNet, domain.NetworkCurrency{}, kv, db,
	)
	require.Equal(t, domain.ErrNullTicker, err)
}
