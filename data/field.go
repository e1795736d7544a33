package data

import (
	"fmt"
	"sort"
	"strings"
)

type TypeID uint16

const (
	ST_NOTPRESENT TypeID = 0
	ST_UINT16     TypeID = 1
	ST_UINT32     TypeID = 2
	ST_UINT64     TypeID = 3
	ST_HASH128    TypeID = 4
	ST_HASH256    TypeID = 5
	ST_AMOUNT     TypeID = 6
	ST_VL         TypeID = 7
	ST_ACCOUNT    TypeID = 8
	ST_UINT8      TypeID = 16
	ST_HASH160    TypeID = 17
	ST_PATHSET    TypeID = 18
	ST_VECTOR256  TypeID = 19
)

// FieldID is the wire identity of a field: the type of its value and a
// value that disambiguates fields of the same type.
type FieldID struct {
	Type  TypeID
	Value uint16
}

// Priority defines the canonical total order over fields, lexicographic
// on (type, value). Records serialize their fields in this order.
func (id FieldID) Priority() uint32 {
	return uint32(id.Type)<<16 | uint32(id.Value)
}

// FieldPolicy is how the record layer treats an absent value for the
// field.
type FieldPolicy uint8

const (
	POLICY_OPTIONAL FieldPolicy = iota // omitted when at its default
	POLICY_REQUIRED                    // always serialized
	POLICY_DEFAULT                     // serialized even when default
)

// Field is the process-wide identity of a named field. Fields are
// registered once at startup and referenced, never owned, by values.
// Compare fields by pointer.
type Field struct {
	ID      FieldID
	Name    string
	Policy  FieldPolicy
	Signing bool // set for fields whose name contains "Signature"
}

// See rippled's SField.cpp for the strings and corresponding encoding values.
var fieldNames = map[FieldID]string{
	// 16-bit unsigned integers
	{ST_UINT16, 1}: "LedgerEntryType",
	{ST_UINT16, 2}: "TransactionType",
	{ST_UINT16, 3}: "SignerWeight",
	// 32-bit unsigned integers
	{ST_UINT32, 2}:  "Flags",
	{ST_UINT32, 3}:  "SourceTag",
	{ST_UINT32, 4}:  "Sequence",
	{ST_UINT32, 5}:  "PreviousTxnLgrSeq",
	{ST_UINT32, 6}:  "LedgerSequence",
	{ST_UINT32, 7}:  "CloseTime",
	{ST_UINT32, 8}:  "ParentCloseTime",
	{ST_UINT32, 9}:  "SigningTime",
	{ST_UINT32, 10}: "Expiration",
	{ST_UINT32, 11}: "TransferRate",
	{ST_UINT32, 12}: "WalletSize",
	{ST_UINT32, 13}: "OwnerCount",
	{ST_UINT32, 14}: "DestinationTag",
	{ST_UINT32, 16}: "HighQualityIn",
	{ST_UINT32, 17}: "HighQualityOut",
	{ST_UINT32, 18}: "LowQualityIn",
	{ST_UINT32, 19}: "LowQualityOut",
	{ST_UINT32, 20}: "QualityIn",
	{ST_UINT32, 21}: "QualityOut",
	{ST_UINT32, 25}: "OfferSequence",
	{ST_UINT32, 26}: "FirstLedgerSequence",
	{ST_UINT32, 27}: "LastLedgerSequence",
	{ST_UINT32, 28}: "TransactionIndex",
	{ST_UINT32, 29}: "OperationLimit",
	{ST_UINT32, 30}: "ReferenceFeeUnits",
	{ST_UINT32, 31}: "ReserveBase",
	{ST_UINT32, 32}: "ReserveIncrement",
	{ST_UINT32, 33}: "SetFlag",
	{ST_UINT32, 34}: "ClearFlag",
	// 64-bit unsigned integers
	{ST_UINT64, 1}: "IndexNext",
	{ST_UINT64, 2}: "IndexPrevious",
	{ST_UINT64, 3}: "BookNode",
	{ST_UINT64, 4}: "OwnerNode",
	{ST_UINT64, 5}: "BaseFee",
	{ST_UINT64, 6}: "ExchangeRate",
	{ST_UINT64, 7}: "LowNode",
	{ST_UINT64, 8}: "HighNode",
	// 128-bit
	{ST_HASH128, 1}: "EmailHash",
	// 256-bit
	{ST_HASH256, 1}:  "LedgerHash",
	{ST_HASH256, 2}:  "ParentHash",
	{ST_HASH256, 3}:  "TransactionHash",
	{ST_HASH256, 4}:  "AccountHash",
	{ST_HASH256, 5}:  "PreviousTxnID",
	{ST_HASH256, 6}:  "LedgerIndex",
	{ST_HASH256, 7}:  "WalletLocator",
	{ST_HASH256, 8}:  "RootIndex",
	{ST_HASH256, 9}:  "AccountTxnID",
	{ST_HASH256, 16}: "BookDirectory",
	{ST_HASH256, 17}: "InvoiceID",
	{ST_HASH256, 18}: "Nickname",
	{ST_HASH256, 19}: "Amendment",
	// currency amount
	{ST_AMOUNT, 1}:  "Amount",
	{ST_AMOUNT, 2}:  "Balance",
	{ST_AMOUNT, 3}:  "LimitAmount",
	{ST_AMOUNT, 4}:  "TakerPays",
	{ST_AMOUNT, 5}:  "TakerGets",
	{ST_AMOUNT, 6}:  "LowLimit",
	{ST_AMOUNT, 7}:  "HighLimit",
	{ST_AMOUNT, 8}:  "Fee",
	{ST_AMOUNT, 9}:  "SendMax",
	{ST_AMOUNT, 10}: "DeliverMin",
	{ST_AMOUNT, 16}: "MinimumOffer",
	{ST_AMOUNT, 18}: "DeliveredAmount",
	// variable length
	{ST_VL, 1}:  "PublicKey",
	{ST_VL, 2}:  "MessageKey",
	{ST_VL, 3}:  "SigningPubKey",
	{ST_VL, 4}:  "TxnSignature",
	{ST_VL, 6}:  "Signature",
	{ST_VL, 7}:  "Domain",
	{ST_VL, 12}: "MemoType",
	{ST_VL, 13}: "MemoData",
	{ST_VL, 14}: "MemoFormat",
	// account
	{ST_ACCOUNT, 1}: "Account",
	{ST_ACCOUNT, 2}: "Owner",
	{ST_ACCOUNT, 3}: "Destination",
	{ST_ACCOUNT, 4}: "Issuer",
	{ST_ACCOUNT, 7}: "Target",
	{ST_ACCOUNT, 8}: "RegularKey",
	// 8-bit unsigned integers
	{ST_UINT8, 1}:  "CloseResolution",
	{ST_UINT8, 2}:  "Method",
	{ST_UINT8, 3}:  "TransactionResult",
	{ST_UINT8, 16}: "TickSize",
	// 160-bit
	{ST_HASH160, 1}: "TakerPaysCurrency",
	{ST_HASH160, 2}: "TakerPaysIssuer",
	{ST_HASH160, 3}: "TakerGetsCurrency",
	{ST_HASH160, 4}: "TakerGetsIssuer",
	// path set
	{ST_PATHSET, 1}: "Paths",
	// vector of 256-bit
	{ST_VECTOR256, 1}: "Indexes",
	{ST_VECTOR256, 2}: "Hashes",
	{ST_VECTOR256, 3}: "Amendments",
}

// Fields a record cannot omit.
var requiredFields = map[string]struct{}{
	"TransactionType": {},
	"LedgerEntryType": {},
	"Account":         {},
	"Sequence":        {},
	"Fee":             {},
	"SigningPubKey":   {},
}

// The registry is built by a variable initializer rather than init(), so
// that other package-level variables may look fields up.
var (
	fieldsByID, fieldsByName = buildRegistry()
	genericField             = &Field{Name: "Generic"}
)

func buildRegistry() (map[FieldID]*Field, map[string]*Field) {
	fieldsByID := make(map[FieldID]*Field, len(fieldNames))
	fieldsByName := make(map[string]*Field, len(fieldNames))
	for id, name := range fieldNames {
		f := &Field{
			ID:      id,
			Name:    name,
			Signing: strings.Contains(name, "Signature"),
		}
		if _, ok := requiredFields[name]; ok {
			f.Policy = POLICY_REQUIRED
		}
		fieldsByID[id] = f
		fieldsByName[name] = f
	}
	return fieldsByID, fieldsByName
}

// LookupField returns the registered field for a wire field-id.
func LookupField(typ TypeID, value uint16) (*Field, error) {
	f, ok := fieldsByID[FieldID{typ, value}]
	if !ok {
		return nil, fmt.Errorf("%w: type %d value %d", ErrUnknownField, typ, value)
	}
	return f, nil
}

// FieldByName returns the registered field with the given name.
func FieldByName(name string) (*Field, error) {
	f, ok := fieldsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return f, nil
}

// GenericField is the sentinel identity of values not yet attached to a
// named field. Its ID is (0, 0), which AddFieldID writes as the single
// byte 0x00.
func GenericField() *Field {
	return genericField
}

// Fields returns every registered field in canonical order.
func Fields() []*Field {
	all := make([]*Field, 0, len(fieldsByID))
	for _, f := range fieldsByID {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID.Priority() < all[j].ID.Priority()
	})
	return all
}
