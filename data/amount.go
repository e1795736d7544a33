package data

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/crosspay/ledgercodec/params"
)

const (
	cMinOffset    int64  = -96
	cMaxOffset    int64  = 80
	cMinValue     uint64 = 1000000000000000
	cMaxValue     uint64 = 9999999999999999
	cMaxNative    uint64 = 9000000000000000000
	cNotNative    uint64 = 0x8000000000000000
	cPosNative    uint64 = 0x4000000000000000
	maxNativeSqrt uint64 = 3000000000
	maxNativeDiv  uint64 = 2095475792 // cMaxNative / 2^32
	tenTo14       uint64 = 100000000000000
	tenTo14m1     uint64 = tenTo14 - 1
	tenTo17       uint64 = tenTo14 * 1000

	// QualityOne is a transfer rate of exactly 1.0, in billionths.
	QualityOne uint32 = 1000000000
)

// Amount is a currency amount: either an integer quantity of the native
// currency, or a signed base-10 floating point quantity of an issued
// currency. The mantissa of a canonical nonzero issued amount lies in
// [1e15, 1e16-1] and its exponent in [-96, 80]. The issuer is a
// provenance tag and takes no part in numeric identity.
type Amount struct {
	fname
	Currency Currency
	Issuer   Account
	num      uint64
	offset   int64
	negative bool
}

// NewNativeAmount returns an amount of n units of the native currency.
func NewNativeAmount(n int64) (*Amount, error) {
	a := &Amount{num: abs(n), negative: n < 0}
	return a, a.canonicalize()
}

// NewIssuedAmount returns mantissa*10^exponent of currency/issuer.
func NewIssuedAmount(currency Currency, issuer Account, mantissa int64, exponent int64) (*Amount, error) {
	if currency.IsNative() {
		return nil, fmt.Errorf("%w: issued amount with native currency", ErrMalformedAmount)
	}
	if currency == currencyBad {
		return nil, fmt.Errorf("%w: forbidden currency", ErrMalformedAmount)
	}
	a := &Amount{
		Currency: currency,
		Issuer:   issuer,
		num:      abs(mantissa),
		offset:   exponent,
		negative: mantissa < 0,
	}
	return a, a.canonicalize()
}

// Match fields:
// 1 = sign
// 2 = integer portion
// 4 = fraction (without '.')
// 7 = exponent number, 6 = exponent sign
var amountRegex = regexp.MustCompile(`^([+-]?)(\d*)(\.(\d*))?([eE]([+-]?)(\d+))?$`)

// NewAmount parses "value", "value/CUR" or "value/CUR/ISSUER", where
// CUR is a three character code or 40 character hex and ISSUER is a
// 40 character hex account. A bare value or the XRP currency yields a
// native amount counted in integer units.
func NewAmount(s string) (*Amount, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	a := new(Amount)
	if len(parts) > 1 && parts[1] != "XRP" {
		currency, err := NewCurrency(parts[1])
		if err != nil {
			return nil, err
		}
		if currency == currencyBad {
			return nil, fmt.Errorf("%w: forbidden currency", ErrMalformedAmount)
		}
		a.Currency = currency
	}
	if len(parts) > 2 {
		issuer, err := NewAccount(parts[2])
		if err != nil {
			return nil, err
		}
		a.Issuer = *issuer
	}
	if err := a.setValue(parts[0]); err != nil {
		return nil, err
	}
	return a, a.canonicalize()
}

func (a *Amount) setValue(s string) error {
	matches := amountRegex.FindStringSubmatch(s)
	if matches == nil || len(matches[2])+len(matches[4]) == 0 {
		return fmt.Errorf("invalid number: %s", s)
	}
	if len(matches[2])+len(matches[4]) > 32 {
		return fmt.Errorf("overlong number: %s", s)
	}
	var err error
	a.negative = matches[1] == "-"
	if a.num, err = strconv.ParseUint(matches[2]+matches[4], 10, 64); err != nil {
		return fmt.Errorf("invalid number: %s: %s", s, err.Error())
	}
	a.offset = -int64(len(matches[4]))
	if len(matches[7]) > 0 {
		exp, err := strconv.ParseInt(matches[7], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid number: %s: %s", s, err.Error())
		}
		if matches[6] == "-" {
			exp = -exp
		}
		a.offset += exp
	}
	return nil
}

// canonicalize enforces the internal invariants after any mutation.
func (a *Amount) canonicalize() error {
	if a.IsNative() {
		a.Issuer = zeroAccount
		if a.num == 0 {
			a.offset = 0
			a.negative = false
			return nil
		}
		for a.offset < 0 {
			a.num /= 10
			a.offset++
		}
		for a.offset > 0 {
			if a.num > cMaxNative {
				return fmt.Errorf("%w: native %d", ErrAmountOverflow, a.num)
			}
			a.num *= 10
			a.offset--
		}
		if a.num == 0 {
			a.offset = 0
			a.negative = false
		}
		if a.num > cMaxNative {
			return fmt.Errorf("%w: native %d", ErrAmountOverflow, a.num)
		}
		return nil
	}
	if a.num == 0 {
		a.offset = -100
		a.negative = false
		return nil
	}
	for a.num < cMinValue && a.offset > cMinOffset {
		a.num *= 10
		a.offset--
	}
	for a.num > cMaxValue {
		if a.offset >= cMaxOffset {
			return fmt.Errorf("%w: %s", ErrAmountOverflow, a.debug())
		}
		a.num /= 10
		a.offset++
	}
	if a.offset < cMinOffset || a.num < cMinValue {
		// Underflow is silent and yields a canonical zero.
		a.num = 0
		a.offset = -100
		a.negative = false
		return nil
	}
	if a.offset > cMaxOffset {
		return fmt.Errorf("%w: %s", ErrAmountOverflow, a.debug())
	}
	return nil
}

func (a *Amount) IsNative() bool {
	return a.Currency.IsNative()
}

func (a *Amount) IsZero() bool {
	return a.num == 0
}

func (a *Amount) IsNegative() bool {
	return a.negative && !a.IsZero()
}

func (a *Amount) IsPositive() bool {
	return !a.negative && !a.IsZero()
}

// IsLegalNet reports whether the amount is small enough to appear on
// the network.
func (a *Amount) IsLegalNet() bool {
	return !a.IsNative() || a.num < params.GetConfig().MaxNativeNetwork
}

func (a *Amount) Mantissa() uint64 {
	return a.num
}

func (a *Amount) Exponent() int64 {
	return a.offset
}

func (a *Amount) signum() int {
	switch {
	case a.num == 0:
		return 0
	case a.negative:
		return -1
	default:
		return 1
	}
}

func (a *Amount) clone() *Amount {
	clone := *a
	return &clone
}

// ZeroClone returns a zero amount with the same currency and issuer.
func (a *Amount) ZeroClone() *Amount {
	zero := &Amount{fname: a.fname, Currency: a.Currency, Issuer: a.Issuer}
	if !zero.IsNative() {
		zero.offset = -100
	}
	return zero
}

func (a *Amount) Negate() *Amount {
	clone := a.clone()
	if !clone.IsZero() {
		clone.negative = !clone.negative
	}
	return clone
}

func (a *Amount) Abs() *Amount {
	clone := a.clone()
	clone.negative = false
	return clone
}

// IsComparable reports whether a and b share a comparison domain:
// native with native, issued with issued of the same currency.
func (a *Amount) IsComparable(b *Amount) bool {
	if a.IsNative() != b.IsNative() {
		return false
	}
	return a.IsNative() || a.Currency == b.Currency
}

// Compare returns -1, 0 or 1 as a is less than, equal to or greater
// than b. Amounts that are not comparable cannot be ordered.
func (a *Amount) Compare(b *Amount) (int, error) {
	if !a.IsComparable(b) {
		return 0, fmt.Errorf("%w: %s vs %s", ErrAmountTypeMismatch, a.Currency, b.Currency)
	}
	as, bs := a.signum(), b.signum()
	switch {
	case as < bs:
		return -1, nil
	case as > bs:
		return 1, nil
	case as == 0:
		return 0, nil
	}
	m := a.compareMagnitude(b)
	if as < 0 {
		m = -m
	}
	return m, nil
}

// Canonical form bounds the mantissa, so issued magnitudes order
// lexicographically by (exponent, mantissa).
func (a *Amount) compareMagnitude(b *Amount) int {
	if !a.IsNative() {
		switch {
		case a.offset < b.offset:
			return -1
		case a.offset > b.offset:
			return 1
		}
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	default:
		return 0
	}
}

// Equals reports numeric identity. The issuer is ignored; amounts of
// different comparison domains are never equal.
func (a *Amount) Equals(b *Amount) bool {
	cmp, err := a.Compare(b)
	return err == nil && cmp == 0
}

func (a *Amount) SType() TypeID {
	return ST_AMOUNT
}

func (a *Amount) Clone() SerializedType {
	return a.clone()
}

func (a *Amount) headerWord() uint64 {
	var u uint64
	if a.IsNative() {
		u = a.num & (cPosNative - 1)
		if !a.negative || a.num == 0 {
			u |= cPosNative
		}
		return u
	}
	u = cNotNative
	if a.num > 0 {
		u |= a.num & ((1 << 54) - 1)
		u |= uint64(a.offset+97) << 54
		if !a.negative {
			u |= cPosNative
		}
	}
	return u
}

func (a *Amount) Serialize(s *Serializer) error {
	s.Add64(a.headerWord())
	if !a.IsNative() {
		s.Add160(a.Currency.Hash160())
		s.Add160(a.Issuer.Hash160())
	}
	return nil
}

func deserializeAmount(it *SerializerIterator, f *Field) (*Amount, error) {
	u, err := it.Read64()
	if err != nil {
		return nil, err
	}
	if u&cNotNative == 0 {
		a := &Amount{fname: fname{f}}
		switch {
		case u&cPosNative != 0:
			a.num = u &^ cPosNative
		case u == 0:
			return nil, fmt.Errorf("%w: negative native zero", ErrMalformedAmount)
		default:
			a.num = u
			a.negative = true
		}
		if a.num > cMaxNative {
			return nil, fmt.Errorf("%w: native %d", ErrMalformedAmount, a.num)
		}
		return a, nil
	}
	h, err := it.Read160()
	if err != nil {
		return nil, err
	}
	currency := h.Currency()
	if currency.IsNative() {
		return nil, fmt.Errorf("%w: issued amount with native currency", ErrMalformedAmount)
	}
	if currency == currencyBad {
		return nil, fmt.Errorf("%w: forbidden currency", ErrMalformedAmount)
	}
	h, err = it.Read160()
	if err != nil {
		return nil, err
	}
	issuer := h.Account()
	num := u & ((1 << 54) - 1)
	top := u >> 54 // not-native flag, sign and biased exponent
	if num == 0 {
		if top != 1<<9 {
			return nil, fmt.Errorf("%w: non-canonical zero", ErrMalformedAmount)
		}
		return &Amount{fname: fname{f}, Currency: currency, Issuer: issuer, offset: -100}, nil
	}
	offset := int64(top&0xFF) - 97
	if num < cMinValue || num > cMaxValue || offset < cMinOffset || offset > cMaxOffset {
		return nil, fmt.Errorf("%w: mantissa %d exponent %d", ErrMalformedAmount, num, offset)
	}
	return &Amount{
		fname:    fname{f},
		Currency: currency,
		Issuer:   issuer,
		num:      num,
		offset:   offset,
		negative: top&(1<<8) == 0,
	}, nil
}

func (a *Amount) Equivalent(other SerializedType) bool {
	o, ok := other.(*Amount)
	return ok && o.Currency == a.Currency && o.num == a.num &&
		o.offset == a.offset && o.negative == a.negative
}

func (a *Amount) IsDefault() bool {
	return a.num == 0 && a.Issuer.IsZero() && a.Currency.IsNative()
}

// Text renders the numeric part: integer units for native amounts,
// mantissa and exponent for issued ones.
func (a *Amount) Text() string {
	if a.IsZero() {
		return "0"
	}
	var sign string
	if a.negative {
		sign = "-"
	}
	if a.IsNative() {
		return sign + strconv.FormatUint(a.num, 10)
	}
	return fmt.Sprintf("%s%de%d", sign, a.num, a.offset)
}

// FullText renders the value with its currency and issuer.
func (a *Amount) FullText() string {
	switch {
	case a.IsNative():
		return a.Text() + "/XRP"
	case a.Issuer.IsZero():
		return a.Text() + "/" + a.Currency.Machine()
	default:
		return a.Text() + "/" + a.Currency.Machine() + "/" + a.Issuer.String()
	}
}

func (a *Amount) JSON() interface{} {
	if a.IsNative() {
		return a.Text()
	}
	return map[string]string{
		"value":    a.Text(),
		"currency": a.Currency.Machine(),
		"issuer":   a.Issuer.String(),
	}
}

func (a *Amount) String() string {
	return a.FullText()
}

func (a *Amount) debug() string {
	return fmt.Sprintf("negative: %t value: %d offset: %d currency: %s", a.negative, a.num, a.offset, a.Currency)
}
