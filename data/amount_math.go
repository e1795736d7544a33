package data

import (
	"fmt"
	"math/big"
)

var (
	bigTenTo14 = big.NewInt(0).SetUint64(tenTo14)
	bigTenTo17 = big.NewInt(0).SetUint64(tenTo17)
)

// signed returns the mantissa with its sign applied.
func (a *Amount) signed() int64 {
	v := int64(a.num)
	if a.negative {
		return -v
	}
	return v
}

func fromSigned(tmpl *Amount, v int64, offset int64) *Amount {
	return &Amount{
		fname:    tmpl.fname,
		Currency: tmpl.Currency,
		Issuer:   tmpl.Issuer,
		num:      abs(v),
		offset:   offset,
		negative: v < 0,
	}
}

// alignForAdd brings both mantissas to a common exponent, scaling the
// operand with the larger exponent up within the 10^17 headroom. An
// operand too small to be representable at the common exponent is
// dropped; the dropped return reports whether anything was discarded.
func alignForAdd(a, b *Amount) (va, vb, offset int64, dropped bool) {
	va, vb = a.signed(), b.signed()
	ao, bo := a.offset, b.offset
	for ao > bo && abs(va) < tenTo17 {
		va *= 10
		ao--
	}
	for bo > ao && abs(vb) < tenTo17 {
		vb *= 10
		bo--
	}
	if ao > bo {
		dropped = vb != 0
		vb = 0
		bo = ao
	}
	if bo > ao {
		dropped = va != 0
		va = 0
		ao = bo
	}
	return va, vb, ao, dropped
}

func addInternal(a, b *Amount, rounded, roundUp bool) (*Amount, error) {
	if !a.IsComparable(b) {
		return nil, fmt.Errorf("%w: %s vs %s", ErrAmountTypeMismatch, a.Currency, b.Currency)
	}
	if a.IsNative() {
		va, vb := a.signed(), b.signed()
		sum := va + vb
		if (va > 0 && vb > 0 && sum < va) || (va < 0 && vb < 0 && sum > va) {
			return nil, fmt.Errorf("%w: native sum", ErrAmountOverflow)
		}
		result := fromSigned(a, sum, 0)
		return result, result.canonicalize()
	}
	if a.IsZero() {
		result := b.clone()
		result.fname = a.fname
		result.Currency = a.Currency
		result.Issuer = a.Issuer
		return result, nil
	}
	if b.IsZero() {
		return a.clone(), nil
	}
	va, vb, offset, dropped := alignForAdd(a, b)
	sum := va + vb
	result := fromSigned(a, sum, offset)
	if !rounded || sum == 0 {
		return result, result.canonicalize()
	}
	// Normalize by hand so digits discarded on the way down are known,
	// then round the last truncation toward the requested direction.
	sticky := dropped
	for result.num > cMaxValue {
		if result.offset >= cMaxOffset {
			return nil, fmt.Errorf("%w: %s", ErrAmountOverflow, result.debug())
		}
		sticky = sticky || result.num%10 != 0
		result.num /= 10
		result.offset++
	}
	if sticky && (sum > 0) == roundUp {
		result.num++
		if result.num > cMaxValue {
			result.num /= 10
			result.offset++
		}
	}
	return result, result.canonicalize()
}

// Add returns a+b. Operands must be comparable.
func (a *Amount) Add(b *Amount) (*Amount, error) {
	return addInternal(a, b, false, false)
}

// Subtract returns a-b. Operands must be comparable.
func (a *Amount) Subtract(b *Amount) (*Amount, error) {
	return addInternal(a, b.Negate(), false, false)
}

// AddRound is Add with any precision loss rounded in the direction of
// roundUp.
func AddRound(a, b *Amount, roundUp bool) (*Amount, error) {
	return addInternal(a, b, true, roundUp)
}

// SubRound is Subtract with any precision loss rounded in the direction
// of roundUp.
func SubRound(a, b *Amount, roundUp bool) (*Amount, error) {
	return addInternal(a, b.Negate(), true, roundUp)
}

// normalized returns the mantissa and exponent with native amounts
// scaled into the issued mantissa band for intermediate math.
func (a *Amount) normalized() (uint64, int64) {
	num, offset := a.num, a.offset
	if a.IsNative() && num != 0 {
		for num < cMinValue {
			num *= 10
			offset--
		}
	}
	return num, offset
}

// Multiply returns a*b expressed in the given currency and issuer.
func Multiply(a, b *Amount, currency Currency, issuer Account) (*Amount, error) {
	if a.IsZero() || b.IsZero() {
		return zeroAmount(currency, issuer), nil
	}
	if a.IsNative() && b.IsNative() && currency.IsNative() {
		min := min64(a.num, b.num)
		max := max64(a.num, b.num)
		if min > maxNativeSqrt || ((max>>32)*min) > maxNativeDiv {
			return nil, fmt.Errorf("%w: native product %s * %s", ErrAmountOverflow, a.debug(), b.debug())
		}
		result := &Amount{num: min * max, negative: a.negative != b.negative}
		return result, result.canonicalize()
	}
	av, ao := a.normalized()
	bv, bo := b.normalized()
	// (av * bv) / 10^14 keeps the product within [10^16, 10^18].
	m := big.NewInt(0).SetUint64(av)
	m.Mul(m, big.NewInt(0).SetUint64(bv))
	m.Div(m, bigTenTo14)
	if !m.IsUint64() {
		return nil, fmt.Errorf("%w: %s * %s", ErrAmountOverflow, a.debug(), b.debug())
	}
	result := &Amount{
		Currency: currency,
		Issuer:   issuer,
		num:      m.Uint64() + 7,
		offset:   ao + bo + 14,
		negative: a.negative != b.negative,
	}
	return result, result.canonicalize()
}

// Divide returns a/b expressed in the given currency and issuer.
func Divide(a, b *Amount, currency Currency, issuer Account) (*Amount, error) {
	if b.IsZero() {
		return nil, ErrAmountDivideByZero
	}
	if a.IsZero() {
		return zeroAmount(currency, issuer), nil
	}
	av, ao := a.normalized()
	bv, bo := b.normalized()
	// (av * 10^17) / bv keeps the quotient within [10^16, 10^18].
	d := big.NewInt(0).SetUint64(av)
	d.Mul(d, bigTenTo17)
	d.Div(d, big.NewInt(0).SetUint64(bv))
	if !d.IsUint64() {
		return nil, fmt.Errorf("%w: %s / %s", ErrAmountOverflow, a.debug(), b.debug())
	}
	result := &Amount{
		Currency: currency,
		Issuer:   issuer,
		num:      d.Uint64() + 5,
		offset:   ao - bo - 17,
		negative: a.negative != b.negative,
	}
	return result, result.canonicalize()
}

// canonicalizeRound pre-rounds a raw (value, offset) pair so that the
// truncation performed by canonicalize lands on the rounded-up result.
func canonicalizeRound(isNative bool, value *uint64, offset *int64, magnitudeUp bool) {
	if !magnitudeUp {
		// canonicalize already truncates.
		return
	}
	if isNative {
		if *offset < 0 {
			loops := 0
			for *offset < -1 {
				*value /= 10
				*offset++
				loops++
			}
			if loops >= 2 {
				*value += 9
			} else {
				*value += 10
			}
			*value /= 10
			*offset++
		}
		return
	}
	if *value > cMaxValue {
		for *value > 10*cMaxValue {
			*value /= 10
			*offset++
		}
		*value += 9
		*value /= 10
		*offset++
	}
}

// MulRound is Multiply with the final digit drop rounded toward +inf
// when roundUp is set, toward -inf otherwise.
func MulRound(a, b *Amount, currency Currency, issuer Account, roundUp bool) (*Amount, error) {
	if a.IsZero() || b.IsZero() {
		return zeroAmount(currency, issuer), nil
	}
	if a.IsNative() && b.IsNative() && currency.IsNative() {
		return Multiply(a, b, currency, issuer)
	}
	av, ao := a.normalized()
	bv, bo := b.normalized()
	negative := a.negative != b.negative
	magnitudeUp := negative != roundUp
	m := big.NewInt(0).SetUint64(av)
	m.Mul(m, big.NewInt(0).SetUint64(bv))
	if magnitudeUp {
		m.Add(m, big.NewInt(0).SetUint64(tenTo14m1))
	}
	m.Div(m, bigTenTo14)
	if !m.IsUint64() {
		return nil, fmt.Errorf("%w: %s * %s", ErrAmountOverflow, a.debug(), b.debug())
	}
	num := m.Uint64()
	offset := ao + bo + 14
	canonicalizeRound(currency.IsNative(), &num, &offset, magnitudeUp)
	result := &Amount{
		Currency: currency,
		Issuer:   issuer,
		num:      num,
		offset:   offset,
		negative: negative,
	}
	return result, result.canonicalize()
}

// DivRound is Divide with the final digit drop rounded toward +inf
// when roundUp is set, toward -inf otherwise.
func DivRound(a, b *Amount, currency Currency, issuer Account, roundUp bool) (*Amount, error) {
	if b.IsZero() {
		return nil, ErrAmountDivideByZero
	}
	if a.IsZero() {
		return zeroAmount(currency, issuer), nil
	}
	av, ao := a.normalized()
	bv, bo := b.normalized()
	negative := a.negative != b.negative
	magnitudeUp := negative != roundUp
	d := big.NewInt(0).SetUint64(av)
	d.Mul(d, bigTenTo17)
	if magnitudeUp {
		d.Add(d, big.NewInt(0).SetUint64(bv-1))
	}
	d.Div(d, big.NewInt(0).SetUint64(bv))
	if !d.IsUint64() {
		return nil, fmt.Errorf("%w: %s / %s", ErrAmountOverflow, a.debug(), b.debug())
	}
	num := d.Uint64()
	offset := ao - bo - 17
	canonicalizeRound(currency.IsNative(), &num, &offset, magnitudeUp)
	result := &Amount{
		Currency: currency,
		Issuer:   issuer,
		num:      num,
		offset:   offset,
		negative: negative,
	}
	return result, result.canonicalize()
}

// Multiply returns a*b in a's currency and issuer.
func (a *Amount) Multiply(b *Amount) (*Amount, error) {
	return Multiply(a, b, a.Currency, a.Issuer)
}

// Divide returns a/b in a's currency and issuer.
func (a *Amount) Divide(b *Amount) (*Amount, error) {
	return Divide(a, b, a.Currency, a.Issuer)
}

func zeroAmount(currency Currency, issuer Account) *Amount {
	a := &Amount{Currency: currency, Issuer: issuer}
	if !a.IsNative() {
		a.offset = -100
	} else {
		a.Issuer = zeroAccount
	}
	return a
}

// GetRate returns the price of an offer, in/out, as a compact 64-bit
// encoding: the biased exponent in the top 8 bits, the mantissa below.
// A zero offer has rate zero.
func GetRate(offerOut, offerIn *Amount) uint64 {
	if offerOut.IsZero() {
		return 0
	}
	r, err := Divide(offerIn, offerOut, currencyOne, accountOne)
	if err != nil || r.IsZero() {
		return 0
	}
	return uint64(r.offset+100)<<56 | r.num
}

// SetRate decodes the compact rate encoding produced by GetRate into a
// dimensionless amount.
func SetRate(rate uint64) *Amount {
	if rate == 0 {
		return zeroAmount(currencyOne, accountOne)
	}
	a := &Amount{
		Currency: currencyOne,
		Issuer:   accountOne,
		num:      rate & ((1 << 56) - 1),
		offset:   int64(rate>>56) - 100,
	}
	if err := a.canonicalize(); err != nil {
		return zeroAmount(currencyOne, accountOne)
	}
	return a
}

// AmountFromRate converts a transfer rate in billionths into a
// dimensionless multiplier.
func AmountFromRate(rate uint64) *Amount {
	a := &Amount{
		Currency: currencyOne,
		Issuer:   accountOne,
		num:      rate,
		offset:   -9,
	}
	if err := a.canonicalize(); err != nil {
		return zeroAmount(currencyOne, accountOne)
	}
	return a
}

// GetPay returns how much of offerIn must be paid to receive needed of
// offerOut at the offer's rate, capped by the offer's input.
func GetPay(offerOut, offerIn, needed *Amount) (*Amount, error) {
	if offerOut.IsZero() || offerIn.IsZero() {
		return offerIn.ZeroClone(), nil
	}
	product, err := Multiply(needed, offerIn, offerIn.Currency, offerIn.Issuer)
	if err != nil {
		return nil, err
	}
	pay, err := Divide(product, offerOut, offerIn.Currency, offerIn.Issuer)
	if err != nil {
		return nil, err
	}
	cmp, err := pay.Compare(offerIn)
	if err != nil {
		return nil, err
	}
	if cmp > 0 {
		return offerIn.clone(), nil
	}
	return pay, nil
}

// Round re-rounds an amount to the precision the network accepts for
// its kind, dropping sub-representable digits.
func (a *Amount) Round() (*Amount, error) {
	clone := a.clone()
	return clone, clone.canonicalize()
}
