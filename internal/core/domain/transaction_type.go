package domain

import "fmt"

// TransactionType is the entity type of a transaction as defined by the
// catapult protocol.
type TransactionType uint16

const (
	TransactionTypeTransfer                    TransactionType = 0x4154
	TransactionTypeNamespaceRegistration       TransactionType = 0x414E
	TransactionTypeAddressAlias                TransactionType = 0x424E
	TransactionTypeMosaicAlias                 TransactionType = 0x434E
	TransactionTypeMosaicDefinition            TransactionType = 0x414D
	TransactionTypeMosaicSupplyChange          TransactionType = 0x424D
	TransactionTypeMultisigAccountModification TransactionType = 0x4155
	TransactionTypeAggregateComplete           TransactionType = 0x4141
	TransactionTypeAggregateBonded             TransactionType = 0x4241
	TransactionTypeHashLock                    TransactionType = 0x4148
	TransactionTypeSecretLock                  TransactionType = 0x4152
	TransactionTypeSecretProof                 TransactionType = 0x4252
	TransactionTypeAccountAddressRestriction   TransactionType = 0x4150
	TransactionTypeAccountMosaicRestriction    TransactionType = 0x4250
	TransactionTypeAccountOperationRestriction TransactionType = 0x4350
	TransactionTypeAccountKeyLink              TransactionType = 0x414C
	TransactionTypeNodeKeyLink                 TransactionType = 0x424C
	TransactionTypeVrfKeyLink                  TransactionType = 0x4243
	TransactionTypeVotingKeyLink               TransactionType = 0x4143
	TransactionTypeMosaicAddressRestriction    TransactionType = 0x4251
	TransactionTypeMosaicGlobalRestriction     TransactionType = 0x4151
	TransactionTypeAccountMetadata             TransactionType = 0x4144
	TransactionTypeMosaicMetadata              TransactionType = 0x4244
	TransactionTypeNamespaceMetadata           TransactionType = 0x4344
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeTransfer:                    "TRANSFER",
	TransactionTypeNamespaceRegistration:       "NAMESPACE_REGISTRATION",
	TransactionTypeAddressAlias:                "ADDRESS_ALIAS",
	TransactionTypeMosaicAlias:                 "MOSAIC_ALIAS",
	TransactionTypeMosaicDefinition:            "MOSAIC_DEFINITION",
	TransactionTypeMosaicSupplyChange:          "MOSAIC_SUPPLY_CHANGE",
	TransactionTypeMultisigAccountModification: "MULTISIG_ACCOUNT_MODIFICATION",
	TransactionTypeAggregateComplete:           "AGGREGATE_COMPLETE",
	TransactionTypeAggregateBonded:             "AGGREGATE_BONDED",
	TransactionTypeHashLock:                    "HASH_LOCK",
	TransactionTypeSecretLock:                  "SECRET_LOCK",
	TransactionTypeSecretProof:                 "SECRET_PROOF",
	TransactionTypeAccountAddressRestriction:   "ACCOUNT_ADDRESS_RESTRICTION",
	TransactionTypeAccountMosaicRestriction:    "ACCOUNT_MOSAIC_RESTRICTION",
	TransactionTypeAccountOperationRestriction: "ACCOUNT_OPERATION_RESTRICTION",
	TransactionTypeAccountKeyLink:              "ACCOUNT_KEY_LINK",
	TransactionTypeNodeKeyLink:                 "NODE_KEY_LINK",
	TransactionTypeVrfKeyLink:                  "VRF_KEY_LINK",
	TransactionTypeVotingKeyLink:               "VOTING_KEY_LINK",
	TransactionTypeMosaicAddressRestriction:    "MOSAIC_ADDRESS_RESTRICTION",
	TransactionTypeMosaicGlobalRestriction:     "MOSAIC_GLOBAL_RESTRICTION",
	TransactionTypeAccountMetadata:             "ACCOUNT_METADATA",
	TransactionTypeMosaicMetadata:              "MOSAIC_METADATA",
	TransactionTypeNamespaceMetadata:           "NAMESPACE_METADATA",
}

// AllTransactionTypes returns every known transaction type, in protocol
// declaration order.
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeTransfer,
		TransactionTypeNamespaceRegistration,
		TransactionTypeAddressAlias,
		TransactionTypeMosaicAlias,
		TransactionTypeMosaicDefinition,
		TransactionTypeMosaicSupplyChange,
		TransactionTypeMultisigAccountModification,
		TransactionTypeAggregateComplete,
		TransactionTypeAggregateBonded,
		TransactionTypeHashLock,
		TransactionTypeSecretLock,
		TransactionTypeSecretProof,
		TransactionTypeAccountAddressRestriction,
		TransactionTypeAccountMosaicRestriction,
		TransactionTypeAccountOperationRestriction,
		TransactionTypeAccountKeyLink,
		TransactionTypeNodeKeyLink,
		TransactionTypeVrfKeyLink,
		TransactionTypeVotingKeyLink,
		TransactionTypeMosaicAddressRestriction,
		TransactionTypeMosaicGlobalRestriction,
		TransactionTypeAccountMetadata,
		TransactionTypeMosaicMetadata,
		TransactionTypeNamespaceMetadata,
	}
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_0x%04X", uint16(t))
}

func (t TransactionType) IsValid() bool {
	_, ok := transactionTypeNames[t]
	return ok
}

// IsAggregate tells whether the transaction embeds inner transactions.
func (t TransactionType) IsAggregate() bool {
	return t == TransactionTypeAggregateComplete ||
		t == TransactionTypeAggregateBonded
}

// TransactionTypeFromString is the inverse of String, for known types.
func TransactionTypeFromString(s string) (TransactionType, error) {
	for t, name := range transactionTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%s: %w", s, ErrUnknownTransactionType)
}
