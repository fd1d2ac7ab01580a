package formatter

import (
	"time"

	"github.com/nem2-wallet/walletcore/internal/core/domain"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

// TimeLayout is the layout of TransactionHeader.Time.
const TimeLayout = "2006-01-02 15:04:05"

const (
	TagReceipt     = "receipt"
	TagPayment     = "payment"
	TagUnsupported = "unsupported"
)

var tags = map[domain.TransactionType]string{
	domain.TransactionTypeNamespaceRegistration:       "create_namespace",
	domain.TransactionTypeAddressAlias:                "address_alias",
	domain.TransactionTypeMosaicAlias:                 "mosaic_alias",
	domain.TransactionTypeMosaicDefinition:            "create_mosaic",
	domain.TransactionTypeMosaicSupplyChange:          "supply_change",
	domain.TransactionTypeMultisigAccountModification: "multisig_modification",
	domain.TransactionTypeAggregateComplete:           "aggregate_complete",
	domain.TransactionTypeAggregateBonded:             "aggregate_bonded",
	domain.TransactionTypeHashLock:                    "hash_lock",
	domain.TransactionTypeSecretLock:                  "secret_lock",
	domain.TransactionTypeSecretProof:                 "secret_proof",
	domain.TransactionTypeAccountAddressRestriction:   "address_restriction",
	domain.TransactionTypeAccountMosaicRestriction:    "mosaic_restriction",
	domain.TransactionTypeAccountOperationRestriction: "operation_restriction",
	domain.TransactionTypeAccountKeyLink:              "account_link",
	domain.TransactionTypeNodeKeyLink:                 "node_link",
	domain.TransactionTypeVrfKeyLink:                  "vrf_link",
	domain.TransactionTypeVotingKeyLink:               "voting_link",
	domain.TransactionTypeMosaicAddressRestriction:    "mosaic_address_restriction",
	domain.TransactionTypeMosaicGlobalRestriction:     "mosaic_global_restriction",
	domain.TransactionTypeAccountMetadata:             "account_metadata",
	domain.TransactionTypeMosaicMetadata:              "mosaic_metadata",
	domain.TransactionTypeNamespaceMetadata:           "namespace_metadata",
}

// TransactionHeader is the summary row of a transaction, as shown in
// transaction lists.
type TransactionHeader struct {
	IsReceipt bool
	Tag       string
	// Time is derived from the deadline, not from the confirmation time.
	Time string
	Date time.Time
	// Block is nil and Hash is empty for unconfirmed transactions.
	Block *uint64
	Hash  string
}

// NewTransactionHeader builds the header of tx as seen by the viewer
// address.
func NewTransactionHeader(
	tx domain.Transaction, viewer wallet.Address, props domain.NetworkProperties,
) TransactionHeader {
	base := tx.Base()
	isReceipt := isReceipt(tx, viewer)

	formatted := base.Deadline.Time(props.EpochAdjustment).Format(TimeLayout)
	date, _ := time.Parse(TimeLayout, formatted)

	header := TransactionHeader{
		IsReceipt: isReceipt,
		Tag:       tag(base.Type, isReceipt),
		Time:      formatted,
		Date:      date,
	}
	if info := base.TransactionInfo; info != nil {
		if info.Height > 0 {
			height := info.Height
			header.Block = &height
		}
		header.Hash = info.Hash
	}
	return header
}

func isReceipt(tx domain.Transaction, viewer wallet.Address) bool {
	transfer, ok := tx.(*domain.TransferTransaction)
	if !ok || transfer.Type != domain.TransactionTypeTransfer {
		return false
	}
	recipient := transfer.Recipient
	return recipient.IsAddress() && recipient.Address.Equals(viewer)
}

func tag(t domain.TransactionType, isReceipt bool) string {
	if t == domain.TransactionTypeTransfer {
		if isReceipt {
			return TagReceipt
		}
		return TagPayment
	}
	if tag, ok := tags[t]; ok {
		return tag
	}
	return TagUnsupported
}
