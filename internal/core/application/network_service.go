package application

import (
	"context"
	"fmt"
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/nem2-wallet/walletcore/internal/core/domain"
	"github.com/nem2-wallet/walletcore/internal/core/ports"
	"github.com/nem2-wallet/walletcore/internal/database"
	"github.com/nem2-wallet/walletcore/internal/storage"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

// NetworkService keeps the properties of every network the wallet connected
// to, scoped by generation hash.
type NetworkService interface {
	// Refresh fetches the properties of the network of the configured node.
	Refresh(ctx context.Context) (*NetworkCache, error)
	// Latest returns the properties of the network refreshed last.
	Latest(ctx context.Context) (*NetworkCache, error)
	ForNetwork(ctx context.Context, generationHash string) (*NetworkCache, error)
	// Forget drops the cached properties of a network, or of all networks if
	// generationHash is empty.
	Forget(ctx context.Context, generationHash string) error
}

type networkService struct {
	node        ports.NodeService
	nodeURL     string
	networkType wallet.NetworkType
	currency    domain.NetworkCurrency
	cache       *storage.NetworkBasedObjectStorage[NetworkCache]
	db          *database.Database
	peers       *database.PeersTable
}

// NewNetworkService returns a NetworkService. The currency ticker and
// divisibility are not exposed by nodes and are given by config, while its
// id and the fee multiplier are overwritten on every refresh.
func NewNetworkService(
	node ports.NodeService, nodeURL string, networkType wallet.NetworkType,
	currency domain.NetworkCurrency, kv ports.KVStore, db *database.Database,
) (NetworkService, error) {
	if err := currency.Validate(); err != nil {
		return nil, err
	}
	cache, err := storage.NewNetworkBasedObjectStorage[NetworkCache](
		kv, storage.KeyNetworkCache, nil,
	)
	if err != nil {
		return nil, err
	}
	return &networkService{
		node:        node,
		nodeURL:     nodeURL,
		networkType: networkType,
		currency:    currency,
		cache:       cache,
		db:          db,
		peers:       database.NewPeersTable(),
	}, nil
}

func (s *networkService) Refresh(ctx context.Context) (*NetworkCache, error) {
	snapshot, err := s.node.GetNetworkSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching network snapshot: %w", err)
	}

	info := snapshot.GetNodeInfo()
	props := snapshot.GetNetworkProperties()
	fees := snapshot.GetTransactionFees()

	networkType := wallet.NetworkType(info.GetNetworkIdentifier())
	if s.networkType.IsValid() && networkType != s.networkType {
		return nil, fmt.Errorf(
			"%w: got %s, expected %s", ErrNetworkMismatch, networkType, s.networkType,
		)
	}

	currency := s.currency
	if id := props.GetCurrencyMosaicID(); len(id) > 0 {
		currency.MosaicID = id
	}
	currency.DynamicFeeMultiplier = fees.GetMedianFeeMultiplier()
	if currency.DynamicFeeMultiplier == 0 {
		currency.DynamicFeeMultiplier = domain.DefaultDynamicFeeMultiplier
	}

	epoch := props.GetEpochAdjustment()
	if epoch <= 0 {
		epoch = domain.DefaultEpochAdjustment
	}

	cache := NetworkCache{
		Properties: domain.NetworkProperties{
			GenerationHash:  info.GetGenerationHash(),
			EpochAdjustment: epoch,
			NetworkType:     networkType,
			Currency:        currency,
		},
		NodeURL:     s.nodeURL,
		ChainHeight: snapshot.GetChainHeight(),
	}
	if err := cache.Properties.Validate(); err != nil {
		return nil, fmt.Errorf("invalid network properties: %w", err)
	}

	if err := s.cache.Set(cache.Properties.GenerationHash, cache); err != nil {
		return nil, err
	}
	if err := s.savePeer(info); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"generation_hash": cache.Properties.GenerationHash,
		"height":          cache.ChainHeight,
	}).Debug("refreshed network properties")
	return &cache, nil
}

func (s *networkService) Latest(ctx context.Context) (*NetworkCache, error) {
	entry, err := s.cache.GetLatest()
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNetworkNotFound
	}
	return &entry.Data, nil
}

func (s *networkService) ForNetwork(
	ctx context.Context, generationHash string,
) (*NetworkCache, error) {
	cache, ok, err := s.cache.Get(generationHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNetworkNotFound
	}
	return &cache, nil
}

func (s *networkService) Forget(ctx context.Context, generationHash string) error {
	if len(generationHash) <= 0 {
		return s.cache.RemoveAll()
	}
	return s.cache.Remove(generationHash)
}

func (s *networkService) savePeer(info ports.NodeInfo) error {
	protocol := "http"
	if u, err := url.Parse(s.nodeURL); err == nil && len(u.Scheme) > 0 {
		protocol = u.Scheme
	}
	peer := s.peers.CreateModel(map[string]interface{}{
		"rest_url":       s.nodeURL,
		"host":           info.GetHost(),
		"port":           info.GetPort(),
		"protocol":       protocol,
		"networkType":    info.GetNetworkIdentifier(),
		"generationHash": info.GetGenerationHash(),
		"roles":          info.GetRoles(),
		"is_default":     false,
		"friendly_name":  info.GetFriendlyName(),
	})
	if len(peer.(*database.PeerModel).FriendlyName()) <= 0 {
		peer.Set("friendly_name", info.GetHost())
	}
	return s.db.SaveModel(s.peers, peer)
}
