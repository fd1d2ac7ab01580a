package domain

import (
	"time"

	"github.com/nem2-wallet/walletcore/pkg/wallet"
)

// Transaction is implemented by every concrete transaction kind. The set of
// kinds is closed, see AllTransactionTypes.
type Transaction interface {
	Base() *TransactionBase
}

// Deadline is expressed in milliseconds since the network epoch.
type Deadline uint64

// Time returns the deadline as an absolute time given the network epoch
// adjustment in seconds.
func (d Deadline) Time(epochAdjustment int64) time.Time {
	return time.Unix(epochAdjustment, 0).Add(time.Duration(d) * time.Millisecond).UTC()
}

// DeadlineFromTime is the inverse of Deadline.Time.
func DeadlineFromTime(t time.Time, epochAdjustment int64) Deadline {
	ms := t.UnixMilli() - epochAdjustment*1000
	if ms < 0 {
		return 0
	}
	return Deadline(ms)
}

// PublicAccount is the signer or cosigner of a transaction.
type PublicAccount struct {
	PublicKey string
	Address   wallet.Address
}

// TransactionInfo is set only for transactions included in a block.
type TransactionInfo struct {
	Height uint64
	Hash   string
	// AggregateHash is set for inner transactions of an aggregate.
	AggregateHash string
	Index         uint32
}

// TransactionBase holds the fields shared by every transaction kind.
type TransactionBase struct {
	Type            TransactionType
	NetworkType     wallet.NetworkType
	Version         uint8
	Signer          *PublicAccount
	Signature       string
	MaxFee          uint64
	Deadline        Deadline
	TransactionInfo *TransactionInfo
}

func (b *TransactionBase) Base() *TransactionBase {
	return b
}

// IsSigned tells whether the transaction has a signer.
func (b *TransactionBase) IsSigned() bool {
	return b.Signer != nil
}

// IsConfirmed tells whether the transaction has been included in a block.
func (b *TransactionBase) IsConfirmed() bool {
	return b.TransactionInfo != nil && b.TransactionInfo.Height > 0
}

// Mosaic is an amount, in absolute units, of a mosaic or mosaic alias.
type Mosaic struct {
	ID     string
	Amount uint64
}

// UnresolvedAddress is either a concrete address or a namespace alias
// pointing to one.
type UnresolvedAddress struct {
	Address     *wallet.Address
	NamespaceID string
}

// NewUnresolvedAddress wraps a concrete address.
func NewUnresolvedAddress(address wallet.Address) UnresolvedAddress {
	return UnresolvedAddress{Address: &address}
}

// NewAliasAddress wraps a namespace alias.
func NewAliasAddress(namespaceID string) UnresolvedAddress {
	return UnresolvedAddress{NamespaceID: namespaceID}
}

func (u UnresolvedAddress) IsAddress() bool {
	return u.Address != nil
}

func (u UnresolvedAddress) String() string {
	if u.Address != nil {
		return u.Address.Pretty()
	}
	return u.NamespaceID
}

type MessageType uint8

const (
	MessageTypePlain     MessageType = 0x00
	MessageTypeEncrypted MessageType = 0x01
	MessageTypeRaw       MessageType = 0xFF
)

type Message struct {
	Type    MessageType
	Payload string
}

type AliasAction uint8

const (
	AliasActionUnlink AliasAction = iota
	AliasActionLink
)

func (a AliasAction) String() string {
	if a == AliasActionLink {
		return "Link"
	}
	return "Unlink"
}

// LinkAction is the action of key link transactions.
type LinkAction = AliasAction

type NamespaceRegistrationType uint8

const (
	NamespaceRegistrationTypeRoot NamespaceRegistrationType = iota
	NamespaceRegistrationTypeSub
)

type MosaicSupplyChangeAction uint8

const (
	MosaicSupplyChangeActionDecrease MosaicSupplyChangeAction = iota
	MosaicSupplyChangeActionIncrease
)

func (a MosaicSupplyChangeAction) String() string {
	if a == MosaicSupplyChangeActionIncrease {
		return "Increase"
	}
	return "Decrease"
}

type MosaicFlags struct {
	SupplyMutable bool
	Transferable  bool
	Restrictable  bool
	Revokable     bool
}

type LockHashAlgorithm uint8

const (
	LockHashAlgorithmSha3256 LockHashAlgorithm = iota
	LockHashAlgorithmHash160
	LockHashAlgorithmHash256
)

func (a LockHashAlgorithm) String() string {
	switch a {
	case LockHashAlgorithmHash160:
		return "HASH_160"
	case LockHashAlgorithmHash256:
		return "HASH_256"
	default:
		return "SHA3_256"
	}
}

// AccountRestrictionFlags is the bitmask of account restrictions.
type AccountRestrictionFlags uint16

const (
	AccountRestrictionFlagAddress   AccountRestrictionFlags = 0x0001
	AccountRestrictionFlagMosaicID  AccountRestrictionFlags = 0x0002
	AccountRestrictionFlagOperation AccountRestrictionFlags = 0x0004
	AccountRestrictionFlagOutgoing  AccountRestrictionFlags = 0x4000
	AccountRestrictionFlagBlock     AccountRestrictionFlags = 0x8000
)

// IsBlocking tells whether the restriction blocks (rather than allows) the
// listed values.
func (f AccountRestrictionFlags) IsBlocking() bool {
	return f&AccountRestrictionFlagBlock != 0
}

// IsOutgoing tells whether the restriction applies to outgoing
// transactions.
func (f AccountRestrictionFlags) IsOutgoing() bool {
	return f&AccountRestrictionFlagOutgoing != 0
}

type MosaicRestrictionType uint8

const (
	MosaicRestrictionTypeNone MosaicRestrictionType = iota
	MosaicRestrictionTypeEQ
	MosaicRestrictionTypeNE
	MosaicRestrictionTypeLT
	MosaicRestrictionTypeLE
	MosaicRestrictionTypeGT
	MosaicRestrictionTypeGE
)

func (t MosaicRestrictionType) String() string {
	return [...]string{"NONE", "EQ", "NE", "LT", "LE", "GT", "GE"}[t%7]
}

type TransferTransaction struct {
	TransactionBase
	Recipient UnresolvedAddress
	Mosaics   []Mosaic
	Message   Message
}

type NamespaceRegistrationTransaction struct {
	TransactionBase
	RegistrationType NamespaceRegistrationType
	NamespaceName    string
	NamespaceID      string
	// Duration is set for root namespaces only.
	Duration uint64
	// ParentID is set for sub namespaces only.
	ParentID string
}

type AddressAliasTransaction struct {
	TransactionBase
	AliasAction AliasAction
	NamespaceID string
	Address     wallet.Address
}

type MosaicAliasTransaction struct {
	TransactionBase
	AliasAction AliasAction
	NamespaceID string
	MosaicID    string
}

type MosaicDefinitionTransaction struct {
	TransactionBase
	MosaicID     string
	Nonce        uint32
	Flags        MosaicFlags
	Divisibility uint8
	Duration     uint64
}

type MosaicSupplyChangeTransaction struct {
	TransactionBase
	MosaicID string
	Action   MosaicSupplyChangeAction
	Delta    uint64
}

type MultisigAccountModificationTransaction struct {
	TransactionBase
	MinApprovalDelta int8
	MinRemovalDelta  int8
	AddressAdditions []UnresolvedAddress
	AddressDeletions []UnresolvedAddress
}

type Cosignature struct {
	Signer    PublicAccount
	Signature string
}

// AggregateTransaction is used for both complete and bonded aggregates.
type AggregateTransaction struct {
	TransactionBase
	InnerTransactions []Transaction
	Cosignatures      []Cosignature
}

// HashLockTransaction locks funds to announce an aggregate bonded.
type HashLockTransaction struct {
	TransactionBase
	Mosaic   Mosaic
	Duration uint64
	Hash     string
}

type SecretLockTransaction struct {
	TransactionBase
	Mosaic        Mosaic
	Duration      uint64
	HashAlgorithm LockHashAlgorithm
	Secret        string
	Recipient     UnresolvedAddress
}

type SecretProofTransaction struct {
	TransactionBase
	HashAlgorithm LockHashAlgorithm
	Secret        string
	Recipient     UnresolvedAddress
	Proof         string
}

type AccountAddressRestrictionTransaction struct {
	TransactionBase
	RestrictionFlags AccountRestrictionFlags
	Additions        []UnresolvedAddress
	Deletions        []UnresolvedAddress
}

type AccountMosaicRestrictionTransaction struct {
	TransactionBase
	RestrictionFlags AccountRestrictionFlags
	Additions        []string
	Deletions        []string
}

type AccountOperationRestrictionTransaction struct {
	TransactionBase
	RestrictionFlags AccountRestrictionFlags
	Additions        []TransactionType
	Deletions        []TransactionType
}

// KeyLinkTransaction is used for account, node, vrf and voting key links.
type KeyLinkTransaction struct {
	TransactionBase
	LinkedPublicKey string
	LinkAction      LinkAction
	// StartEpoch and EndEpoch are set for voting key links only.
	StartEpoch uint32
	EndEpoch   uint32
}

type MosaicAddressRestrictionTransaction struct {
	TransactionBase
	MosaicID       string
	RestrictionKey uint64
	TargetAddress  UnresolvedAddress
	PreviousValue  uint64
	NewValue       uint64
}

type MosaicGlobalRestrictionTransaction struct {
	TransactionBase
	MosaicID          string
	ReferenceMosaicID string
	RestrictionKey    uint64
	PreviousValue     uint64
	NewValue          uint64
	PreviousType      MosaicRestrictionType
	NewType           MosaicRestrictionType
}

// MetadataTransaction is used for account, mosaic and namespace metadata.
type MetadataTransaction struct {
	TransactionBase
	TargetAddress     UnresolvedAddress
	ScopedMetadataKey uint64
	// TargetID is the mosaic or namespace id, empty for account metadata.
	TargetID       string
	ValueSizeDelta int16
	Value          string
}
