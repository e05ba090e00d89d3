package bdfare

import (
	"strings"

	"github.com/babuas25/tf-sub001/internal/domain"
)

// parseUpsellOptions builds the alternate-fare-brand records. A brand shares
// the parent offer's itinerary and brings only its own price, fare-detail and
// baggage blocks, so the pricing and baggage parsers are re-run against those
// blocks (the parent's leg records still drive the baggage route fallback).
func parseUpsellOptions(items []UpSellBrandItem, records []PaxSegment) []domain.UpsellOption {
	brands := unwrapBrands(items)
	if len(brands) == 0 {
		return nil
	}

	out := make([]domain.UpsellOption, 0, len(brands))
	for _, brand := range brands {
		out = append(out, domain.UpsellOption{
			BrandID:    brand.UpSellBrandID.String(),
			BrandName:  brand.BrandName,
			Refundable: brand.Refundable,
			Pricing:    parsePricing(brand.FareDetailList, brand.Price),
			Baggage:    parseBaggage(brand.BaggageAllowanceList, records),
			Features: domain.UpsellFeatures{
				Meal:            brand.Meal,
				Seat:            brand.Seat,
				Miles:           brand.Miles,
				RefundAllowed:   brand.RefundAllowed,
				ExchangeAllowed: brand.ExchangeAllowed,
			},
			BookingClass: brandBookingClass(brand.RBD),
		})
	}
	return out
}

// brandBookingClass takes the first semicolon-delimited token of the brand's
// rbd field.
func brandBookingClass(rbd string) string {
	if rbd == "" {
		return ""
	}
	token, _, _ := strings.Cut(rbd, ";")
	return strings.TrimSpace(token)
}
