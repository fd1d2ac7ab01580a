package ports

import "context"

// NodeInfo is the subset of a node's /node/info resource the wallet uses.
type NodeInfo interface {
	GetPublicKey() string
	GetGenerationHash() string
	GetNetworkIdentifier() int
	GetFriendlyName() string
	GetHost() string
	GetPort() int
	GetRoles() int
}

// NetworkProperties is the subset of /network/properties the wallet uses.
type NetworkProperties interface {
	GetEpochAdjustment() int64
	GetCurrencyMosaicID() string
	GetHarvestingMosaicID() string
	GetBlockGenerationTargetTime() string
	GetMaxMosaicDivisibility() int
	GetMaxNamespaceDuration() string
}

// TransactionFees is the /network/fees/transaction resource.
type TransactionFees interface {
	GetAverageFeeMultiplier() uint64
	GetMedianFeeMultiplier() uint64
	GetMinFeeMultiplier() uint64
}

// NetworkSnapshot bundles everything fetched from a node in one go.
type NetworkSnapshot interface {
	GetNodeInfo() NodeInfo
	GetNetworkProperties() NetworkProperties
	GetTransactionFees() TransactionFees
	GetChainHeight() uint64
}

// NodeService is the client of a REST node.
type NodeService interface {
	GetChainHeight(ctx context.Context) (uint64, error)
	GetNetworkSnapshot(ctx context.Context) (NetworkSnapshot, error)
}
