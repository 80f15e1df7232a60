package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuantizeUsesBankersRounding(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"10.005", "10.00"},
		{"10.015", "10.02"},
		{"10.025", "10.02"},
		{"10.035", "10.04"},
		{"10.004", "10.00"},
		{"10.006", "10.01"},
	}
	for _, tc := range cases {
		got := Quantize(decimal.RequireFromString(tc.input), "USD").String()
		if got != tc.want {
			t.Fatalf("quantize %s: expected %s, got %s", tc.input, tc.want, got)
		}
	}
}

func TestQuantizeIsIdempotent(t *testing.T) {
	once := Quantize(decimal.RequireFromString("19.995"), "USD")
	twice := Quantize(once.Decimal(), "USD")
	if once.String() != twice.String() {
		t.Fatalf("expected stable result, got %s then %s", once.String(), twice.String())
	}
}

func TestCurrencyFraction(t *testing.T) {
	cases := map[string]int32{
		"USD": 2,
		"EUR": 2,
		"JPY": 0,
		"ISK": 0,
		"KWD": 3,
		"TND": 3,
	}
	for currency, want := range cases {
		if got := CurrencyFraction(currency); got != want {
			t.Fatalf("fraction for %s: expected %d, got %d", currency, want, got)
		}
	}
}

func TestQuantizeRespectsCurrencyExponent(t *testing.T) {
	if got := Quantize(decimal.RequireFromString("1000.4"), "JPY").String(); got != "1000" {
		t.Fatalf("expected 1000 for JPY, got %s", got)
	}
	if got := Quantize(decimal.RequireFromString("1.2345"), "KWD").String(); got != "1.234" {
		t.Fatalf("expected 1.234 for KWD, got %s", got)
	}
}

func TestAmountMarshalsExactFixedPoint(t *testing.T) {
	amount := Quantize(decimal.RequireFromString("20"), "USD")
	raw, err := json.Marshal(amount)
	if err != nil {
		t.Fatalf("marshal amount: %v", err)
	}
	if string(raw) != "20.00" {
		t.Fatalf("expected 20.00 on the wire, got %s", raw)
	}
}

func TestBasePriceSelection(t *testing.T) {
	price := TaxedMoney{
		Net:      decimal.RequireFromString("10.00"),
		Gross:    decimal.RequireFromString("12.30"),
		Currency: "USD",
	}
	if got := BasePrice(price, true); !got.Equal(price.Gross) {
		t.Fatalf("expected gross when prices include tax, got %s", got)
	}
	if got := BasePrice(price, false); !got.Equal(price.Net) {
		t.Fatalf("expected net when prices exclude tax, got %s", got)
	}
}
