package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nem2-wallet/walletcore/internal/core/ports"
)

// **** Node ****

type mockNodeService struct {
	mock.Mock
}

func (m *mockNodeService) GetChainHeight(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *mockNodeService) GetNetworkSnapshot(
	ctx context.Context,
) (ports.NetworkSnapshot, error) {
	args := m.Called(ctx)

	var res ports.NetworkSnapshot
	if a := args.Get(0); a != nil {
		res = a.(ports.NetworkSnapshot)
	}
	return res, args.Error(1)
}

type nodeInfo struct {
	generationHash string
	networkID      int
	host           string
}

func (i nodeInfo) GetPublicKey() string      { return "" }
func (i nodeInfo) GetGenerationHash() string { return i.generationHash }
func (i nodeInfo) GetNetworkIdentifier() int { return i.networkID }
func (i nodeInfo) GetFriendlyName() string   { return "" }
func (i nodeInfo) GetHost() string           { return i.host }
func (i nodeInfo) GetPort() int              { return 3000 }
func (i nodeInfo) GetRoles() int             { return 2 }

type networkProperties struct {
	epochAdjustment int64
	currencyID      string
}

func (p networkProperties) GetEpochAdjustment() int64            { return p.epochAdjustment }
func (p networkProperties) GetCurrencyMosaicID() string          { return p.currencyID }
func (p networkProperties) GetHarvestingMosaicID() string        { return p.currencyID }
func (p networkProperties) GetBlockGenerationTargetTime() string { return "30s" }
func (p networkProperties) GetMaxMosaicDivisibility() int        { return 6 }
func (p networkProperties) GetMaxNamespaceDuration() string      { return "365d" }

type transactionFees struct {
	median uint64
}

func (f transactionFees) GetAverageFeeMultiplier() uint64 { return f.median }
func (f transactionFees) GetMedianFeeMultiplier() uint64  { return f.median }
func (f transactionFees) GetMinFeeMultiplier() uint64     { return 10 }

type networkSnapshot struct {
	info   nodeInfo
	props  networkProperties
	fees   transactionFees
	height uint64
}

func (s networkSnapshot) GetNodeInfo() ports.NodeInfo                   { return s.info }
func (s networkSnapshot) GetNetworkProperties() ports.NetworkProperties { return s.props }
func (s networkSnapshot) GetTransactionFees() ports.TransactionFees     { return s.fees }
func (s networkSnapshot) GetChainHeight() uint64                        { return s.height }
