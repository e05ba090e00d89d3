package bdfare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babuas25/tf-sub001/internal/domain"
)

func TestParsePenalties_Nil(t *testing.T) {
	assert.Nil(t, parsePenalties(nil))
}

func TestParsePenalties_RefundAndExchangeBlocks(t *testing.T) {
	p := &RawPenalty{
		RefundPenaltyList: []RoutePenaltyBlock{
			{
				Departure: "DAC",
				Arrival:   "CGP",
				PenaltyInfoList: []PenaltyInfo{
					{
						Type: "Before",
						TextInfoList: []TextInfo{
							{PaxType: "ADT", Info: []string{"Refund fee BDT 1500"}},
						},
					},
					{
						Type: "After",
						TextInfoList: []TextInfo{
							{PaxType: "ADT", Info: []string{"Non-refundable after departure"}},
						},
					},
				},
			},
		},
		ExchangePenaltyList: []RoutePenaltyBlock{
			{
				Departure: "DAC",
				Arrival:   "CGP",
				PenaltyInfoList: []PenaltyInfo{
					{
						Type: "Before",
						TextInfoList: []TextInfo{
							{PaxType: "ADT", Info: []string{"Exchange fee BDT 1000"}},
						},
					},
				},
			},
		},
	}

	out := parsePenalties(p)
	require.Len(t, out, 2)

	refund := out[0]
	assert.Equal(t, "DAC-CGP", refund.Route)
	assert.Equal(t, domain.PenaltyRefund, refund.Category)
	require.Len(t, refund.Rules, 2)
	assert.Equal(t, domain.TimingBeforeDeparture, refund.Rules[0].Timing)
	assert.Equal(t, "ADT", refund.Rules[0].PassengerType)
	assert.Equal(t, []string{"Refund fee BDT 1500"}, refund.Rules[0].Details)
	assert.Equal(t, domain.TimingAfterDeparture, refund.Rules[1].Timing)

	exchange := out[1]
	assert.Equal(t, domain.PenaltyExchange, exchange.Category)
	require.Len(t, exchange.Rules, 1)
	assert.Equal(t, []string{"Exchange fee BDT 1000"}, exchange.Rules[0].Details)
}

func TestParsePenalties_FlattensAllTextInfoLines(t *testing.T) {
	p := &RawPenalty{
		RefundPenaltyList: []RoutePenaltyBlock{
			{
				Departure: "DAC",
				Arrival:   "CXB",
				PenaltyInfoList: []PenaltyInfo{
					{
						Type: "Before",
						TextInfoList: []TextInfo{
							{PaxType: "ADT", Info: []string{"Line one", "Line two"}},
							{PaxType: "CHD", Info: []string{"Line three"}},
						},
					},
				},
			},
		},
	}

	out := parsePenalties(p)
	require.Len(t, out, 1)
	require.Len(t, out[0].Rules, 1)

	rule := out[0].Rules[0]
	// Scope comes from the first entry, details from every entry
	assert.Equal(t, "ADT", rule.PassengerType)
	assert.Equal(t, []string{"Line one", "Line two", "Line three"}, rule.Details)
}

func TestParsePenalties_EmptyLists(t *testing.T) {
	out := parsePenalties(&RawPenalty{})
	assert.Empty(t, out)
}
