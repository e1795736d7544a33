package data

import (
	"encoding/hex"
	"fmt"
)

type Hash128 [16]byte
type Hash160 [20]byte
type Hash256 [32]byte
type Account [20]byte
type VariableLength []byte

var (
	zero128     Hash128
	zero160     Hash160
	zero256     Hash256
	zeroAccount Account

	// Placeholder identities used by dimensionless rate amounts.
	accountOne = Account{19: 1}
)

func (h Hash128) IsZero() bool {
	return h == zero128
}

func (h Hash128) String() string {
	return string(b2h(h[:]))
}

func (h Hash160) IsZero() bool {
	return h == zero160
}

func (h Hash160) String() string {
	return string(b2h(h[:]))
}

func (h *Hash160) Account() Account {
	var a Account
	copy(a[:], h[:])
	return a
}

func (h *Hash160) Currency() Currency {
	var c Currency
	copy(c[:], h[:])
	return c
}

// NewHash256 accepts either a byte slice or hex string of length 32 bytes.
func NewHash256(value interface{}) (*Hash256, error) {
	var h Hash256
	switch v := value.(type) {
	case []byte:
		if len(v) != 32 {
			return nil, fmt.Errorf("NewHash256: wrong length %X", v)
		}
		copy(h[:], v)
	case string:
		n, err := hex.Decode(h[:], []byte(v))
		if err != nil {
			return nil, err
		}
		if n != 32 {
			return nil, fmt.Errorf("NewHash256: wrong length %s", v)
		}
	default:
		return nil, fmt.Errorf("NewHash256: wrong type %+v", v)
	}
	return &h, nil
}

func (h Hash256) IsZero() bool {
	return h == zero256
}

func (h Hash256) String() string {
	return string(b2h(h[:]))
}

// NewAccount accepts either a byte slice or hex string of length 20 bytes.
func NewAccount(value interface{}) (*Account, error) {
	var a Account
	switch v := value.(type) {
	case []byte:
		if len(v) != 20 {
			return nil, fmt.Errorf("NewAccount: wrong length %X", v)
		}
		copy(a[:], v)
	case string:
		n, err := hex.Decode(a[:], []byte(v))
		if err != nil {
			return nil, err
		}
		if n != 20 {
			return nil, fmt.Errorf("NewAccount: wrong length %s", v)
		}
	default:
		return nil, fmt.Errorf("NewAccount: wrong type %+v", v)
	}
	return &a, nil
}

func (a Account) IsZero() bool {
	return a == zeroAccount
}

func (a Account) Hash160() Hash160 {
	var h Hash160
	copy(h[:], a[:])
	return h
}

func (a Account) String() string {
	return string(b2h(a[:]))
}

func (v VariableLength) String() string {
	return string(b2h(v))
}
