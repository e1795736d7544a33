package data

import (
	"fmt"
)

// OfferCross is the outcome of crossing a taker against a standing
// offer: what the taker actually paid and got, and the transfer fee
// charged by the issuer on each leg.
type OfferCross struct {
	TakerPaid      *Amount
	TakerGot       *Amount
	TakerIssuerFee *Amount
	OfferIssuerFee *Amount
}

// fundsAfterRate discounts funds by a transfer rate in billionths, so
// comparisons see what the payer can actually deliver.
func fundsAfterRate(funds *Amount, rate uint32) (*Amount, error) {
	if rate == QualityOne || funds.IsNative() {
		return funds.clone(), nil
	}
	return Divide(funds, AmountFromRate(uint64(rate)), funds.Currency, funds.Issuer)
}

// transferFee is the issuer's cut of a delivered amount at the given
// transfer rate: amount * (rate - 1) / rate, rounded against the payer.
func transferFee(amount *Amount, rate uint32) (*Amount, error) {
	if amount.IsNative() || rate == QualityOne || amount.IsZero() {
		return amount.ZeroClone(), nil
	}
	gross, err := MulRound(amount, AmountFromRate(uint64(rate-QualityOne)), amount.Currency, amount.Issuer, true)
	if err != nil {
		return nil, err
	}
	return DivRound(gross, AmountFromRate(uint64(rate)), amount.Currency, amount.Issuer, true)
}

func minAmount(a, b *Amount) (*Amount, error) {
	cmp, err := a.Compare(b)
	if err != nil {
		return nil, err
	}
	if cmp <= 0 {
		return a, nil
	}
	return b, nil
}

// ApplyOffer crosses a taker against a standing offer.
//
// The offer exchanges offerPays for offerGets at the price offerRate
// (in/out, as built by GetRate and decoded by SetRate), backed by
// offerFunds. The taker brings takerFunds and wants to exchange
// takerPays for takerGets. Transfer rates are in billionths and apply
// to the issued legs only.
//
// Every intermediate result is rounded in favour of the counterparty:
// the taker never receives more than exact and the issuer is never
// undercharged. The second return is false when the offer fully
// crosses while delivering nothing to the taker, which marks the offer
// as dust to be removed.
func ApplyOffer(
	sell bool,
	takerPaysRate, offerPaysRate uint32,
	offerRate *Amount,
	offerFunds, takerFunds *Amount,
	offerPays, offerGets *Amount,
	takerPays, takerGets *Amount,
) (*OfferCross, bool, error) {
	if !offerGets.IsComparable(takerPays) || !offerPays.IsComparable(takerGets) {
		return nil, false, fmt.Errorf("%w: offer and taker disagree", ErrAmountTypeMismatch)
	}
	if !offerFunds.IsPositive() || !takerFunds.IsPositive() {
		return nil, false, fmt.Errorf("%w: unfunded crossing", ErrMalformedAmount)
	}

	offerFundsAvailable, err := fundsAfterRate(offerFunds, offerPaysRate)
	if err != nil {
		return nil, false, err
	}
	takerFundsAvailable, err := fundsAfterRate(takerFunds, takerPaysRate)
	if err != nil {
		return nil, false, err
	}

	// Cap the offer's legs by what its owner can actually deliver.
	var offerPaysAvailable, offerGetsAvailable *Amount
	cmp, err := offerFundsAvailable.Compare(offerPays)
	if err != nil {
		return nil, false, err
	}
	if cmp >= 0 {
		offerPaysAvailable = offerPays.clone()
		offerGetsAvailable = offerGets.clone()
	} else {
		offerPaysAvailable = offerFundsAvailable
		offerGetsAvailable, err = MulRound(offerPaysAvailable, offerRate, offerGets.Currency, offerGets.Issuer, true)
		if err != nil {
			return nil, false, err
		}
	}

	var takerPaid, takerGot *Amount
	if sell {
		// Sell semantics: spend everything the taker can deliver.
		takerPaid, err = minAmount(offerGetsAvailable, takerFundsAvailable)
		if err != nil {
			return nil, false, err
		}
		takerPaid = takerPaid.clone()
		takerGot, err = DivRound(takerPaid, offerRate, offerPays.Currency, offerPays.Issuer, false)
		if err != nil {
			return nil, false, err
		}
		cmp, err = takerGot.Compare(offerPaysAvailable)
		if err != nil {
			return nil, false, err
		}
		if cmp > 0 {
			takerGot = offerPaysAvailable
			takerPaid, err = MulRound(takerGot, offerRate, offerGets.Currency, offerGets.Issuer, true)
			if err != nil {
				return nil, false, err
			}
		}
	} else {
		// Buy semantics: also cap by the amount the taker asked for.
		wanted, err := minAmount(offerPaysAvailable, takerGets)
		if err != nil {
			return nil, false, err
		}
		takerGot = wanted.clone()
		takerPaid, err = MulRound(takerGot, offerRate, offerGets.Currency, offerGets.Issuer, true)
		if err != nil {
			return nil, false, err
		}
		cmp, err = takerPaid.Compare(takerFundsAvailable)
		if err != nil {
			return nil, false, err
		}
		if cmp > 0 {
			takerPaid = takerFundsAvailable
			takerGot, err = DivRound(takerPaid, offerRate, offerPays.Currency, offerPays.Issuer, false)
			if err != nil {
				return nil, false, err
			}
		}
	}

	takerIssuerFee, err := transferFee(takerPaid, takerPaysRate)
	if err != nil {
		return nil, false, err
	}
	offerIssuerFee, err := transferFee(takerGot, offerPaysRate)
	if err != nil {
		return nil, false, err
	}

	result := &OfferCross{
		TakerPaid:      takerPaid,
		TakerGot:       takerGot,
		TakerIssuerFee: takerIssuerFee,
		OfferIssuerFee: offerIssuerFee,
	}
	return result, !takerGot.IsZero(), nil
}
