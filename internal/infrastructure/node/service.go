package node

import (
	"context"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
	"github.com/nem2-wallet/walletcore/pkg/nodeclient"
)

type service struct {
	client *nodeclient.Client
}

// NewService returns a NodeService talking to the REST gateway at url.
func NewService(url string, requestsPerSecond int) (ports.NodeService, error) {
	client, err := nodeclient.NewClient(
		url, nodeclient.WithRequestsPerSecond(requestsPerSecond),
	)
	if err != nil {
		return nil, err
	}
	return &service{client}, nil
}

func (s *service) GetChainHeight(ctx context.Context) (uint64, error) {
	return s.client.GetChainHeight(ctx)
}

func (s *service) GetNetworkSnapshot(ctx context.Context) (ports.NetworkSnapshot, error) {
	snapshot, err := s.client.GetNetworkSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return networkSnapshot{snapshot}, nil
}

type networkSnapshot struct {
	*nodeclient.Snapshot
}

func (s networkSnapshot) GetNodeInfo() ports.NodeInfo {
	return s.NodeInfo
}

func (s networkSnapshot) GetNetworkProperties() ports.NetworkProperties {
	return s.NetworkProperties
}

func (s networkSnapshot) GetTransactionFees() ports.TransactionFees {
	return s.TransactionFees
}

func (s networkSnapshot) GetChainHeight() uint64 {
	return s.ChainHeight
}
