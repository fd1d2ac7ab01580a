package formatter

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/nem2-wallet/walletcore/internal/core/domain"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

var (
	// ErrNullViewer is returned when the formatting context has no wallet.
	ErrNullViewer = errors.New("viewer address must not be empty")
)

// Context is the snapshot of wallet and network state transactions are
// formatted against.
type Context struct {
	// Viewer is the address of the active wallet.
	Viewer  wallet.Address
	Network domain.NetworkProperties
	// Names maps known mosaic and namespace ids to their names.
	Names map[string]string
}

func (c Context) validate() error {
	if c.Viewer.IsZero() {
		return ErrNullViewer
	}
	return c.Network.Currency.Validate()
}

// name returns the name of a mosaic or namespace id, or the id itself.
func (c Context) name(id string) string {
	if name, ok := c.Names[id]; ok && len(name) > 0 {
		return name
	}
	return id
}

// FormattedTransaction is the presentation of a single transaction.
type FormattedTransaction struct {
	Header  TransactionHeader
	Type    domain.TransactionType
	Details *DetailMap
	// InnerTransactions is set for aggregates only.
	InnerTransactions []*FormattedTransaction
	// CosignedBy is set for bonded aggregates only, the signer included.
	CosignedBy []wallet.Address
	Raw        domain.Transaction
}

// AlreadyCosignedBy tells whether address already signed or cosigned the
// transaction.
func (f *FormattedTransaction) AlreadyCosignedBy(address wallet.Address) bool {
	for _, a := range f.CosignedBy {
		if a.Equals(address) {
			return true
		}
	}
	return false
}

// FormatFunc formats a transaction of a given type.
type FormatFunc func(tx domain.Transaction, ctx Context) *FormattedTransaction

// detailsFunc adds the type specific fields of tx to f.
type detailsFunc func(tx domain.Transaction, ctx Context, f *FormattedTransaction)

var formatters map[domain.TransactionType]FormatFunc

func init() {
	formatters = map[domain.TransactionType]FormatFunc{
		domain.TransactionTypeTransfer:                    formatWith(transferDetails),
		domain.TransactionTypeNamespaceRegistration:       formatWith(namespaceRegistrationDetails),
		domain.TransactionTypeAddressAlias:                formatWith(addressAliasDetails),
		domain.TransactionTypeMosaicAlias:                 formatWith(mosaicAliasDetails),
		domain.TransactionTypeMosaicDefinition:            formatWith(mosaicDefinitionDetails),
		domain.TransactionTypeMosaicSupplyChange:          formatWith(mosaicSupplyChangeDetails),
		domain.TransactionTypeMultisigAccountModification: formatWith(multisigModificationDetails),
		domain.TransactionTypeAggregateComplete:           formatWith(aggregateDetails),
		domain.TransactionTypeAggregateBonded:             formatWith(aggregateDetails),
		domain.TransactionTypeHashLock:                    formatWith(hashLockDetails),
		domain.TransactionTypeSecretLock:                  formatWith(secretLockDetails),
		domain.TransactionTypeSecretProof:                 formatWith(secretProofDetails),
		domain.TransactionTypeAccountAddressRestriction:   formatWith(addressRestrictionDetails),
		domain.TransactionTypeAccountMosaicRestriction:    formatWith(mosaicRestrictionDetails),
		domain.TransactionTypeAccountOperationRestriction: formatWith(operationRestrictionDetails),
		domain.TransactionTypeAccountKeyLink:              formatWith(keyLinkDetails),
		domain.TransactionTypeNodeKeyLink:                 formatWith(keyLinkDetails),
		domain.TransactionTypeVrfKeyLink:                  formatWith(keyLinkDetails),
		domain.TransactionTypeVotingKeyLink:               formatWith(keyLinkDetails),
		domain.TransactionTypeMosaicAddressRestriction:    formatWith(mosaicAddressRestrictionDetails),
		domain.TransactionTypeMosaicGlobalRestriction:     formatWith(mosaicGlobalRestrictionDetails),
		domain.TransactionTypeAccountMetadata:             formatWith(metadataDetails),
		domain.TransactionTypeMosaicMetadata:              formatWith(metadataDetails),
		domain.TransactionTypeNamespaceMetadata:           formatWith(metadataDetails),
	}
}

// TransactionTypeToFormatter returns the format function of the given type,
// false if the type is not supported.
func TransactionTypeToFormatter(t domain.TransactionType) (FormatFunc, bool) {
	f, ok := formatters[t]
	return f, ok
}

// Formatter formats transactions against a fixed context.
type Formatter struct {
	ctx Context
}

func NewFormatter(ctx Context) (*Formatter, error) {
	if err := ctx.validate(); err != nil {
		return nil, err
	}
	return &Formatter{ctx}, nil
}

// Format formats tx, false if its type is not supported.
func (f *Formatter) Format(tx domain.Transaction) (*FormattedTransaction, bool) {
	if tx == nil {
		return nil, false
	}
	format, ok := TransactionTypeToFormatter(tx.Base().Type)
	if !ok {
		return nil, false
	}
	return format(tx, f.ctx), true
}

// FormatAll formats every transaction, unsupported ones included as generic
// rows.
func (f *Formatter) FormatAll(txs []domain.Transaction) []*FormattedTransaction {
	formatted := make([]*FormattedTransaction, 0, len(txs))
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		formatted = append(formatted, formatOrFallback(tx, f.ctx))
	}
	return formatted
}

func formatOrFallback(tx domain.Transaction, ctx Context) *FormattedTransaction {
	if format, ok := TransactionTypeToFormatter(tx.Base().Type); ok {
		return format(tx, ctx)
	}
	log.Debugf("formatting unsupported transaction type %s", tx.Base().Type)
	f := formatCommon(tx, ctx)
	f.Header.Tag = TagUnsupported
	return f
}

func formatWith(details detailsFunc) FormatFunc {
	return func(tx domain.Transaction, ctx Context) *FormattedTransaction {
		f := formatCommon(tx, ctx)
		details(tx, ctx, f)
		return f
	}
}

// formatCommon adds the fields shared by every transaction kind.
func formatCommon(tx domain.Transaction, ctx Context) *FormattedTransaction {
	base := tx.Base()
	f := &FormattedTransaction{
		Header:  NewTransactionHeader(tx, ctx.Viewer, ctx.Network),
		Type:    base.Type,
		Details: NewDetailMap(),
		Raw:     tx,
	}

	f.Details.Set("self", signerAddress(base, ctx).Pretty())
	f.Details.Set("transaction_type", base.Type.String())
	f.Details.Set("fee", relative(base.MaxFee, ctx))
	if f.Header.Block != nil {
		f.Details.Set("block", *f.Header.Block)
	} else {
		f.Details.Set("block", nil)
	}
	if len(f.Header.Hash) > 0 {
		f.Details.Set("hash", f.Header.Hash)
	} else {
		f.Details.Set("hash", nil)
	}
	return f
}

// signerAddress falls back to the viewer for not yet signed transactions.
func signerAddress(base *domain.TransactionBase, ctx Context) wallet.Address {
	if base.Signer == nil || base.Signer.Address.IsZero() {
		return ctx.Viewer
	}
	return base.Signer.Address
}
