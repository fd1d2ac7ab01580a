package nodeclient

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// NodeInfo is the /node/info resource.
type NodeInfo struct {
	Version                   int    `json:"version"`
	PublicKey                 string `json:"publicKey"`
	NetworkGenerationHashSeed string `json:"networkGenerationHashSeed"`
	NetworkIdentifier         int    `json:"networkIdentifier"`
	Roles                     int    `json:"roles"`
	Port                      int    `json:"port"`
	Host                      string `json:"host"`
	FriendlyName              string `json:"friendlyName"`
}

func (i *NodeInfo) GetPublicKey() string      { return i.PublicKey }
func (i *NodeInfo) GetGenerationHash() string { return i.NetworkGenerationHashSeed }
func (i *NodeInfo) GetNetworkIdentifier() int { return i.NetworkIdentifier }
func (i *NodeInfo) GetFriendlyName() string   { return i.FriendlyName }
func (i *NodeInfo) GetHost() string           { return i.Host }
func (i *NodeInfo) GetPort() int              { return i.Port }
func (i *NodeInfo) GetRoles() int             { return i.Roles }

// NetworkProperties is the /network/properties resource. Values are
// returned by nodes as formatted strings, ie. "0x6BED'913F'A202'23F8" or
// "1615853185s".
type NetworkProperties struct {
	Network struct {
		Identifier         string `json:"identifier"`
		GenerationHashSeed string `json:"generationHashSeed"`
		EpochAdjustment    string `json:"epochAdjustment"`
	} `json:"network"`
	Chain struct {
		CurrencyMosaicID          string `json:"currencyMosaicId"`
		HarvestingMosaicID        string `json:"harvestingMosaicId"`
		BlockGenerationTargetTime string `json:"blockGenerationTargetTime"`
		MaxMosaicDivisibility     string `json:"maxMosaicDivisibility"`
	} `json:"chain"`
	Plugins struct {
		Namespace struct {
			MaxNamespaceDuration string `json:"maxNamespaceDuration"`
		} `json:"namespace"`
	} `json:"plugins"`
}

// GetEpochAdjustment returns the network epoch in unix seconds.
func (p *NetworkProperties) GetEpochAdjustment() int64 {
	return cast.ToInt64(strings.TrimSuffix(p.Network.EpochAdjustment, "s"))
}

func (p *NetworkProperties) GetCurrencyMosaicID() string {
	return normalizeHexID(p.Chain.CurrencyMosaicID)
}

func (p *NetworkProperties) GetHarvestingMosaicID() string {
	return normalizeHexID(p.Chain.HarvestingMosaicID)
}

func (p *NetworkProperties) GetBlockGenerationTargetTime() string {
	return p.Chain.BlockGenerationTargetTime
}

func (p *NetworkProperties) GetMaxMosaicDivisibility() int {
	return cast.ToInt(strings.ReplaceAll(p.Chain.MaxMosaicDivisibility, "'", ""))
}

func (p *NetworkProperties) GetMaxNamespaceDuration() string {
	return p.Plugins.Namespace.MaxNamespaceDuration
}

// TransactionFees is the /network/fees/transaction resource.
type TransactionFees struct {
	AverageFeeMultiplier uint64 `json:"averageFeeMultiplier"`
	MedianFeeMultiplier  uint64 `json:"medianFeeMultiplier"`
	HighestFeeMultiplier uint64 `json:"highestFeeMultiplier"`
	LowestFeeMultiplier  uint64 `json:"lowestFeeMultiplier"`
	MinFeeMultiplier     uint64 `json:"minFeeMultiplier"`
}

func (f *TransactionFees) GetAverageFeeMultiplier() uint64 { return f.AverageFeeMultiplier }
func (f *TransactionFees) GetMedianFeeMultiplier() uint64  { return f.MedianFeeMultiplier }
func (f *TransactionFees) GetMinFeeMultiplier() uint64     { return f.MinFeeMultiplier }

// ChainInfo is the /chain/info resource.
type ChainInfo struct {
	Height string `json:"height"`
}

func (i *ChainInfo) GetHeight() (uint64, error) {
	return strconv.ParseUint(i.Height, 10, 64)
}

func normalizeHexID(id string) string {
	id = strings.TrimPrefix(strings.ToLower(id), "0x")
	return strings.ToUpper(strings.ReplaceAll(id, "'", ""))
}
