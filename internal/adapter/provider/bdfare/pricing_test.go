package bdfare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babuas25/tf-sub001/internal/domain"
)

func TestParsePricing_CountWeightedBreakdown(t *testing.T) {
	// Two adults at baseFare 100 each plus one infant at 20: the aggregated
	// base fare is 2*100 + 1*20
	items := []FareDetailItem{
		{FareDetail: FareDetail{PaxType: "ADT", PaxCount: 2, BaseFare: 100, Tax: 30, VAT: 5}},
		{FareDetail: FareDetail{PaxType: "INF", PaxCount: 1, BaseFare: 20, Tax: 4, VAT: 1}},
	}
	price := &RawPrice{Total: 300, Currency: "BDT"}

	pricing := parsePricing(items, price)

	assert.Equal(t, 220.0, pricing.Breakdown.BaseFare)
	assert.Equal(t, 64.0, pricing.Breakdown.Tax)
	assert.Equal(t, 11.0, pricing.Breakdown.VAT)
	assert.Equal(t, 300.0, pricing.Total)
	assert.Equal(t, "BDT", pricing.Currency)

	require.Len(t, pricing.PassengerFares, 2)

	adult := pricing.PassengerFares[0]
	assert.Equal(t, domain.PaxAdult, adult.Type)
	assert.Equal(t, 2, adult.Count)
	assert.Equal(t, 100.0, adult.BaseFare)
	// Per-unit total: (100 + 30 + 5 + 0) / 2
	assert.Equal(t, 67.5, adult.PerUnitTotal)

	infant := pricing.PassengerFares[1]
	assert.Equal(t, domain.PaxInfant, infant.Type)
	assert.Equal(t, 25.0, infant.PerUnitTotal)
}

func TestParsePricing_ZeroCountTreatedAsOne(t *testing.T) {
	items := []FareDetailItem{
		{FareDetail: FareDetail{PaxType: "Adult", PaxCount: 0, BaseFare: 4200, Tax: 925, VAT: 75}},
	}

	pricing := parsePricing(items, nil)

	require.Len(t, pricing.PassengerFares, 1)
	assert.Equal(t, 1, pricing.PassengerFares[0].Count)
	assert.Equal(t, 5200.0, pricing.PassengerFares[0].PerUnitTotal)
	// Weighting also treats the missing count as one passenger
	assert.Equal(t, 4200.0, pricing.Breakdown.BaseFare)
}

func TestParsePricing_CurrencyDefaults(t *testing.T) {
	tests := []struct {
		name  string
		price *RawPrice
		want  string
	}{
		{name: "nil price block", price: nil, want: domain.DefaultCurrency},
		{name: "empty currency", price: &RawPrice{Total: 100}, want: domain.DefaultCurrency},
		{name: "explicit currency", price: &RawPrice{Total: 100, Currency: "USD"}, want: "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pricing := parsePricing(nil, tt.price)
			assert.Equal(t, tt.want, pricing.Currency)
		})
	}
}

func TestParsePricing_CopiesGrossAndVAT(t *testing.T) {
	gross := 5500.0
	vat := 75.0
	price := &RawPrice{Total: 5200, Currency: "BDT", Gross: &gross, TotalVAT: &vat}

	pricing := parsePricing(nil, price)

	require.NotNil(t, pricing.Gross)
	assert.Equal(t, 5500.0, *pricing.Gross)
	require.NotNil(t, pricing.TotalVAT)
	assert.Equal(t, 75.0, *pricing.TotalVAT)
	assert.Equal(t, 5500.0, pricing.EffectiveAmount())
}

func TestParsePricing_EnvelopedFareDetails(t *testing.T) {
	// Wrapped delivery form carries the fare under an inner "fareDetail" field
	inner := FareDetail{PaxType: "CHD", PaxCount: 1, BaseFare: 3000, Tax: 600}
	items := []FareDetailItem{{Inner: &inner}}

	pricing := parsePricing(items, nil)

	require.Len(t, pricing.PassengerFares, 1)
	assert.Equal(t, domain.PaxChild, pricing.PassengerFares[0].Type)
	assert.Equal(t, 3000.0, pricing.Breakdown.BaseFare)
}

func TestParsePricing_DiscountAggregation(t *testing.T) {
	items := []FareDetailItem{
		{FareDetail: FareDetail{PaxType: "ADT", PaxCount: 2, BaseFare: 100, Discount: 10}},
	}

	pricing := parsePricing(items, nil)
	assert.Equal(t, 20.0, pricing.Breakdown.Discount)
}
