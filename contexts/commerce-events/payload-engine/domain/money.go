package domain

import "github.com/shopspring/decimal"

// Currencies whose canonical exponent differs from the default of 2,
// per ISO 4217 minor units.
var zeroDecimalCurrencies = map[string]struct{}{
	"BIF": {}, "CLP": {}, "DJF": {}, "GNF": {}, "ISK": {}, "JPY": {},
	"KMF": {}, "KRW": {}, "PYG": {}, "RWF": {}, "UGX": {}, "UYI": {},
	"VND": {}, "VUV": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

var threeDecimalCurrencies = map[string]struct{}{
	"BHD": {}, "IQD": {}, "JOD": {}, "KWD": {}, "LYD": {}, "OMR": {}, "TND": {},
}

// CurrencyFraction returns the number of minor-unit digits for a currency.
func CurrencyFraction(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return 0
	}
	if _, ok := threeDecimalCurrencies[currency]; ok {
		return 3
	}
	return 2
}

// Amount is a monetary value already quantized to its currency exponent. It
// marshals as an exact fixed-point JSON number, so 20.00 USD stays "20.00"
// on the wire rather than collapsing to "20" or drifting through a float.
type Amount struct {
	value  decimal.Decimal
	places int32
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.StringFixed(a.places)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.StringFixed(a.places)), nil
}

// Quantize rounds a value to the currency's canonical exponent using
// bankers' rounding, the same convention the pricing engine applies.
// A half-up mismatch here would disagree with the engine by a minor unit.
func Quantize(value decimal.Decimal, currency string) Amount {
	places := CurrencyFraction(currency)
	return Amount{value: value.RoundBank(places), places: places}
}

// Number is a non-monetary decimal (tax rates, weights) rendered exactly.
type Number struct {
	value decimal.Decimal
}

func NewNumber(value decimal.Decimal) Number {
	return Number{value: value}
}

func (n Number) Decimal() decimal.Decimal {
	return n.value
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.value.String()), nil
}

// Money is a single amount in a currency.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// TaxedMoney is the net/gross pair the pricing engine produces for every
// monetary figure.
type TaxedMoney struct {
	Net      decimal.Decimal
	Gross    decimal.Decimal
	Currency string
}

// BasePrice selects the single displayed amount from a taxed pair. The
// useGross flag states whether displayed prices are tax-inclusive.
func BasePrice(price TaxedMoney, useGross bool) decimal.Decimal {
	if useGross {
		return price.Gross
	}
	return price.Net
}
