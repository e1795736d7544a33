package data

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Currency is a 160-bit currency identifier. The zero value denotes the
// native currency. A standard currency places three ASCII characters at
// bytes 12..14 and zeroes elsewhere.
type Currency [20]byte

var (
	zeroCurrency Currency

	// currencyOne is the placeholder identity of dimensionless rates.
	currencyOne = Currency{19: 1}

	// currencyBad is the standard encoding of the native currency code,
	// which is forbidden for issued amounts.
	currencyBad = Currency{12: 'X', 13: 'R', 14: 'P'}
)

// NewCurrency accepts a currency as either a 3 character code or a
// 40 character hex string. "XRP" yields the native zero identifier.
func NewCurrency(s string) (Currency, error) {
	var currency Currency
	if s == "XRP" {
		return currency, nil
	}
	switch len(s) {
	case 3:
		copy(currency[12:], []byte(s))
		return currency, nil
	case 40:
		c, err := hex.DecodeString(s)
		if err != nil {
			return currency, fmt.Errorf("bad currency: %s", s)
		}
		copy(currency[:], c)
		return currency, nil
	default:
		return currency, fmt.Errorf("bad currency: %s", s)
	}
}

func (c Currency) IsNative() bool {
	return c == zeroCurrency
}

// IsStandard reports whether the currency is the native identifier or a
// three character code in the standard slot.
func (c Currency) IsStandard() bool {
	if c.IsNative() {
		return true
	}
	for i, b := range c {
		if (i < 12 || i > 14) && b != 0 {
			return false
		}
	}
	return true
}

func (c Currency) Equals(other Currency) bool {
	return c == other
}

func (c *Currency) Bytes() []byte {
	if c != nil {
		return c[:]
	}
	return []byte(nil)
}

func (c Currency) Hash160() Hash160 {
	var h Hash160
	copy(h[:], c[:])
	return h
}

// Machine renders the currency in computer parsable form: "XRP" for the
// native identifier, the three character code when standard and
// printable, hex otherwise.
func (c Currency) Machine() string {
	if c.IsNative() {
		return "XRP"
	}
	if c.IsStandard() {
		for _, r := range string(c[12:15]) {
			if !strconv.IsPrint(r) {
				return string(b2h(c[:]))
			}
		}
		return string(c[12:15])
	}
	return string(b2h(c[:]))
}

func (c Currency) String() string {
	return c.Machine()
}
