package formatter

import (
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/nem2-wallet/walletcore/internal/core/domain"
	"github.com/nem2-wallet/walletcore/pkg/mathutil"
	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

func transferDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.TransferTransaction)
	if !ok {
		return
	}

	if f.Header.IsReceipt {
		f.Details.Set("transfer_type", TagReceipt)
	} else {
		f.Details.Set("transfer_type", TagPayment)
	}
	f.Details.Set("sender", signerAddress(&t.TransactionBase, ctx).Pretty())
	f.Details.Set("recipient", recipient(t.Recipient, ctx))
	f.Details.Set("mosaics", t.Mosaics)
	for _, m := range t.Mosaics {
		if ctx.Network.Currency.IsCurrency(m.ID) {
			f.Details.Set("amount", relative(m.Amount, ctx))
			break
		}
	}
	f.Details.Set("message", message(t.Message))
}

func namespaceRegistrationDetails(
	tx domain.Transaction, ctx Context, f *FormattedTransaction,
) {
	t, ok := tx.(*domain.NamespaceRegistrationTransaction)
	if !ok {
		return
	}

	f.Details.Set("namespace", t.NamespaceName)
	if t.RegistrationType == domain.NamespaceRegistrationTypeSub {
		f.Details.Set("parent_namespace", ctx.name(t.ParentID))
		return
	}
	f.Details.Set("duration_blocks", t.Duration)
	rent, err := domain.RentFromDurationInBlocks(t.Duration, ctx.Network.Currency)
	if err != nil {
		log.WithError(err).Debug("namespace rent not displayable")
		f.Details.Set("rent", nil)
		return
	}
	f.Details.Set("rent", rent.RelativeWithTicker)
}

func addressAliasDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.AddressAliasTransaction)
	if !ok {
		return
	}

	f.Details.Set("action", t.AliasAction.String())
	f.Details.Set("namespace", ctx.name(t.NamespaceID))
	f.Details.Set("address", t.Address.Pretty())
}

func mosaicAliasDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.MosaicAliasTransaction)
	if !ok {
		return
	}

	f.Details.Set("action", t.AliasAction.String())
	f.Details.Set("namespace", ctx.name(t.NamespaceID))
	f.Details.Set("mosaic", ctx.name(t.MosaicID))
}

func mosaicDefinitionDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.MosaicDefinitionTransaction)
	if !ok {
		return
	}

	f.Details.Set("mosaic", ctx.name(t.MosaicID))
	f.Details.Set("divisibility", t.Divisibility)
	f.Details.Set("supply_mutable", t.Flags.SupplyMutable)
	f.Details.Set("transferable", t.Flags.Transferable)
	f.Details.Set("restrictable", t.Flags.Restrictable)
	f.Details.Set("revokable", t.Flags.Revokable)
	// A zero duration is an eternal mosaic.
	if t.Duration == 0 {
		f.Details.Set("duration_blocks", "unlimited")
	} else {
		f.Details.Set("duration_blocks", t.Duration)
	}
}

func mosaicSupplyChangeDetails(
	tx domain.Transaction, ctx Context, f *FormattedTransaction,
) {
	t, ok := tx.(*domain.MosaicSupplyChangeTransaction)
	if !ok {
		return
	}

	f.Details.Set("mosaic", ctx.name(t.MosaicID))
	f.Details.Set("direction", t.Action.String())
	f.Details.Set("delta", t.Delta)
}

func multisigModificationDetails(
	tx domain.Transaction, ctx Context, f *FormattedTransaction,
) {
	t, ok := tx.(*domain.MultisigAccountModificationTransaction)
	if !ok {
		return
	}

	f.Details.Set("min_approval_delta", t.MinApprovalDelta)
	f.Details.Set("min_removal_delta", t.MinRemovalDelta)
	f.Details.Set("address_additions", recipients(t.AddressAdditions, ctx))
	f.Details.Set("address_deletions", recipients(t.AddressDeletions, ctx))
}

func aggregateDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.AggregateTransaction)
	if !ok {
		return
	}

	f.InnerTransactions = make([]*FormattedTransaction, 0, len(t.InnerTransactions))
	for _, inner := range t.InnerTransactions {
		if inner == nil {
			continue
		}
		f.InnerTransactions = append(f.InnerTransactions, formatOrFallback(inner, ctx))
	}
	f.Details.Set("inner_transactions", len(f.InnerTransactions))

	if t.Type != domain.TransactionTypeAggregateBonded {
		return
	}

	f.CosignedBy = []wallet.Address{signerAddress(&t.TransactionBase, ctx)}
	for _, c := range t.Cosignatures {
		if c.Signer.Address.IsZero() {
			continue
		}
		f.CosignedBy = append(f.CosignedBy, c.Signer.Address)
	}
	cosigners := make([]string, 0, len(f.CosignedBy))
	for _, a := range f.CosignedBy {
		cosigners = append(cosigners, a.Pretty())
	}
	f.Details.Set("cosigned_by", cosigners)
}

func hashLockDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.HashLockTransaction)
	if !ok {
		return
	}

	f.Details.Set("mosaics", []domain.Mosaic{t.Mosaic})
	f.Details.Set("duration_blocks", t.Duration)
	f.Details.Set("lock_hash", t.Hash)
}

func secretLockDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.SecretLockTransaction)
	if !ok {
		return
	}

	f.Details.Set("mosaics", []domain.Mosaic{t.Mosaic})
	f.Details.Set("duration_blocks", t.Duration)
	f.Details.Set("hash_algorithm", t.HashAlgorithm.String())
	f.Details.Set("secret", t.Secret)
	f.Details.Set("recipient", recipient(t.Recipient, ctx))
}

func secretProofDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.SecretProofTransaction)
	if !ok {
		return
	}

	f.Details.Set("hash_algorithm", t.HashAlgorithm.String())
	f.Details.Set("secret", t.Secret)
	f.Details.Set("recipient", recipient(t.Recipient, ctx))
	f.Details.Set("proof", t.Proof)
}

func addressRestrictionDetails(
	tx domain.Transaction, ctx Context, f *FormattedTransaction,
) {
	t, ok := tx.(*domain.AccountAddressRestrictionTransaction)
	if !ok {
		return
	}

	f.Details.Set("restriction_type", restrictionType(t.RestrictionFlags))
	f.Details.Set("addresses_added", recipients(t.Additions, ctx))
	f.Details.Set("addresses_removed", recipients(t.Deletions, ctx))
}

func mosaicRestrictionDetails(
	tx domain.Transaction, ctx Context, f *FormattedTransaction,
) {
	t, ok := tx.(*domain.AccountMosaicRestrictionTransaction)
	if !ok {
		return
	}

	f.Details.Set("restriction_type", restrictionType(t.RestrictionFlags))
	f.Details.Set("mosaics_added", names(t.Additions, ctx))
	f.Details.Set("mosaics_removed", names(t.Deletions, ctx))
}

func operationRestrictionDetails(
	tx domain.Transaction, ctx Context, f *FormattedTransaction,
) {
	t, ok := tx.(*domain.AccountOperationRestrictionTransaction)
	if !ok {
		return
	}

	f.Details.Set("restriction_type", restrictionType(t.RestrictionFlags))
	f.Details.Set("operations_added", transactionTypes(t.Additions))
	f.Details.Set("operations_removed", transactionTypes(t.Deletions))
}

func keyLinkDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.KeyLinkTransaction)
	if !ok {
		return
	}

	f.Details.Set("action", t.LinkAction.String())
	if t.Type == domain.TransactionTypeAccountKeyLink {
		f.Details.Set("Remote_public_key", t.LinkedPublicKey)
		return
	}
	f.Details.Set("linked_public_key", t.LinkedPublicKey)
	if t.Type == domain.TransactionTypeVotingKeyLink {
		f.Details.Set("start_epoch", t.StartEpoch)
		f.Details.Set("end_epoch", t.EndEpoch)
	}
}

func mosaicAddressRestrictionDetails(
	tx domain.Transaction, ctx Context, f *FormattedTransaction,
) {
	t, ok := tx.(*domain.MosaicAddressRestrictionTransaction)
	if !ok {
		return
	}

	f.Details.Set("mosaic", ctx.name(t.MosaicID))
	f.Details.Set("restriction_key", hexKey(t.RestrictionKey))
	f.Details.Set("target_address", recipient(t.TargetAddress, ctx))
	f.Details.Set("previous_value", t.PreviousValue)
	f.Details.Set("new_value", t.NewValue)
}

func mosaicGlobalRestrictionDetails(
	tx domain.Transaction, ctx Context, f *FormattedTransaction,
) {
	t, ok := tx.(*domain.MosaicGlobalRestrictionTransaction)
	if !ok {
		return
	}

	f.Details.Set("mosaic", ctx.name(t.MosaicID))
	if len(t.ReferenceMosaicID) > 0 {
		f.Details.Set("reference_mosaic", ctx.name(t.ReferenceMosaicID))
	}
	f.Details.Set("restriction_key", hexKey(t.RestrictionKey))
	f.Details.Set("previous_value", t.PreviousValue)
	f.Details.Set("previous_type", t.PreviousType.String())
	f.Details.Set("new_value", t.NewValue)
	f.Details.Set("new_type", t.NewType.String())
}

func metadataDetails(tx domain.Transaction, ctx Context, f *FormattedTransaction) {
	t, ok := tx.(*domain.MetadataTransaction)
	if !ok {
		return
	}

	f.Details.Set("target_address", recipient(t.TargetAddress, ctx))
	switch t.Type {
	case domain.TransactionTypeMosaicMetadata:
		f.Details.Set("mosaic", ctx.name(t.TargetID))
	case domain.TransactionTypeNamespaceMetadata:
		f.Details.Set("namespace", ctx.name(t.TargetID))
	}
	f.Details.Set("scoped_metadata_key", hexKey(t.ScopedMetadataKey))
	f.Details.Set("value_size_delta", t.ValueSizeDelta)
	f.Details.Set("value", t.Value)
}

func relative(amount uint64, ctx Context) decimal.Decimal {
	return mathutil.AbsoluteToRelative(amount, ctx.Network.Currency.Divisibility)
}

// recipient shows concrete addresses in pretty form and aliases by name.
func recipient(a domain.UnresolvedAddress, ctx Context) string {
	if a.IsAddress() {
		return a.Address.Pretty()
	}
	return ctx.name(a.NamespaceID)
}

func recipients(list []domain.UnresolvedAddress, ctx Context) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, recipient(a, ctx))
	}
	return out
}

func names(ids []string, ctx Context) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, ctx.name(id))
	}
	return out
}

func transactionTypes(types []domain.TransactionType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.String())
	}
	return out
}

func message(m domain.Message) string {
	if m.Type == domain.MessageTypeEncrypted {
		return "encrypted message"
	}
	return m.Payload
}

func restrictionType(flags domain.AccountRestrictionFlags) string {
	action := "Allow"
	if flags.IsBlocking() {
		action = "Block"
	}
	direction := "Incoming"
	if flags.IsOutgoing() {
		direction = "Outgoing"
	}
	return action + direction
}

func hexKey(key uint64) string {
	return fmt.Sprintf("%016X", key)
}
