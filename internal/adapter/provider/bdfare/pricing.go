package bdfare

import "github.com/babuas25/tf-sub001/internal/domain"

// parsePricing aggregates the per-passenger fare breakdowns into the
// canonical pricing view. Breakdown components are summed across all entries,
// each weighted by that entry's passenger count; the per-passenger view keeps
// the delivered amounts plus a computed per-unit total. Total and currency
// come from the offer's price summary block; the currency defaults to
// domain.DefaultCurrency when the source omits it.
func parsePricing(items []FareDetailItem, price *RawPrice) domain.Pricing {
	details := unwrapFareDetails(items)

	var breakdown domain.FareBreakdown
	fares := make([]domain.PassengerFare, 0, len(details))
	for _, d := range details {
		count := d.PaxCount.Int()
		if count < 1 {
			count = 1
		}

		weight := float64(count)
		breakdown.BaseFare += d.BaseFare * weight
		breakdown.Tax += d.Tax * weight
		breakdown.OtherFee += d.OtherFee * weight
		breakdown.Discount += d.Discount * weight
		breakdown.VAT += d.VAT * weight

		subtotal := d.BaseFare + d.Tax + d.VAT + d.OtherFee
		fares = append(fares, domain.PassengerFare{
			Type:         domain.NormalizePassengerType(d.PaxType),
			Count:        count,
			BaseFare:     d.BaseFare,
			Tax:          d.Tax,
			VAT:          d.VAT,
			OtherFee:     d.OtherFee,
			PerUnitTotal: subtotal / float64(count),
		})
	}

	pricing := domain.Pricing{
		Currency:       domain.DefaultCurrency,
		Breakdown:      breakdown,
		PassengerFares: fares,
	}
	if price != nil {
		pricing.Total = price.Total
		if price.Currency != "" {
			pricing.Currency = price.Currency
		}
		pricing.Gross = price.Gross
		pricing.TotalVAT = price.TotalVAT
	}
	return pricing
}
