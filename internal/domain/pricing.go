package domain

import "strconv"

// DefaultCurrency is used when the source price block omits a currency code.
// The upstream distribution API prices in Bangladeshi taka unless told
// otherwise, so this is a documented default, not a silent error.
const DefaultCurrency = "BDT"

// PassengerType classifies a traveller for fare and baggage purposes.
type PassengerType string

// Recognized passenger types.
const (
	PaxAdult  PassengerType = "Adult"
	PaxChild  PassengerType = "Child"
	PaxInfant PassengerType = "Infant"
)

// NormalizePassengerType maps the upstream passenger-type spellings onto the
// canonical values. The source mixes IATA codes and words: "ADT"/"Adult",
// "CHD"/"Child" (any token starting with C), "INF"/"Infant". Unrecognized
// values fall back to Adult.
func NormalizePassengerType(raw string) PassengerType {
	if raw == "" {
		return PaxAdult
	}
	switch raw[0] {
	case 'C', 'c':
		return PaxChild
	case 'I', 'i':
		return PaxInfant
	default:
		return PaxAdult
	}
}

// PassengerFare is the fare breakdown for one passenger type.
type PassengerFare struct {
	// Type is the passenger type this entry applies to
	Type PassengerType `json:"type"`

	// Count is the number of passengers of this type
	Count int `json:"count"`

	// BaseFare, Tax, VAT and OtherFee are per-entry amounts as delivered
	BaseFare float64 `json:"baseFare"`
	Tax      float64 `json:"tax"`
	VAT      float64 `json:"vat"`
	OtherFee float64 `json:"otherFee"`

	// PerUnitTotal is (BaseFare + Tax + VAT + OtherFee) / Count
	PerUnitTotal float64 `json:"perUnitTotal"`
}

// FareBreakdown aggregates fare components across all passenger types,
// each weighted by that type's passenger count.
type FareBreakdown struct {
	BaseFare float64 `json:"baseFare"`
	Tax      float64 `json:"tax"`
	OtherFee float64 `json:"otherFee"`
	Discount float64 `json:"discount"`
	VAT      float64 `json:"vat"`
}

// Pricing is the complete price view of an offer or an upsell brand.
type Pricing struct {
	// Total is the payable amount from the offer's price summary
	Total float64 `json:"total"`

	// Currency is the ISO 4217 currency code; defaults to DefaultCurrency
	Currency string `json:"currency"`

	// Gross is the gross amount, when the source provides one
	Gross *float64 `json:"gross,omitempty"`

	// TotalVAT is the summed VAT, when the source provides one
	TotalVAT *float64 `json:"totalVAT,omitempty"`

	// Breakdown is the aggregated, count-weighted component view
	Breakdown FareBreakdown `json:"breakdown"`

	// PassengerFares is the per-passenger-type view
	PassengerFares []PassengerFare `json:"passengerFares"`
}

// EffectiveAmount returns the price used for comparing offers of the same
// flight: the gross amount when present, otherwise the total.
func (p Pricing) EffectiveAmount() float64 {
	if p.Gross != nil {
		return *p.Gross
	}
	return p.Total
}

// FormatAmount renders a price for display labels, grouping the integer part
// with commas and keeping two decimals only when the amount is fractional
// (e.g., 1500000 -> "1,500,000", 499.5 -> "499.50").
func FormatAmount(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart := s[:len(s)-3]
	frac := s[len(s)-2:]

	var grouped []byte
	for i, d := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	out := string(grouped)
	if frac != "00" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
