// Package usecase contains the business logic for offer search operations:
// fetching the raw response, normalizing it, and deduplicating fare-level
// duplicates into a single offer per physical flight.
package usecase

import (
	"sort"

	"github.com/babuas25/tf-sub001/internal/domain"
)

// GroupTwoOnewayOffersByFlight deduplicates offers that describe the same
// physical flight at different fare levels. Offers are partitioned by
// signature; a partition of one passes through unchanged, a larger partition
// is merged into its cheapest member with one synthetic upsell option per
// fare point. Every input price point stays reachable in the output, either
// as a merged offer's primary pricing or inside its upsell ladder.
//
// Output order across partitions is not significant; callers that need a
// stable display order sort the result themselves.
func GroupTwoOnewayOffersByFlight(offers []domain.FlightOffer) []domain.FlightOffer {
	if len(offers) == 0 {
		return []domain.FlightOffer{}
	}

	partitions := make(map[string][]domain.FlightOffer)
	var order []string
	for _, offer := range offers {
		sig := offer.Signature()
		if _, seen := partitions[sig]; !seen {
			order = append(order, sig)
		}
		partitions[sig] = append(partitions[sig], offer)
	}

	merged := make([]domain.FlightOffer, 0, len(order))
	for _, sig := range order {
		merged = append(merged, mergeFareGroup(partitions[sig]))
	}
	return merged
}

// mergeFareGroup collapses one signature partition into a single offer.
func mergeFareGroup(group []domain.FlightOffer) domain.FlightOffer {
	if len(group) == 1 {
		return group[0]
	}

	// Cheapest first; ties keep their original relative order
	sorted := make([]domain.FlightOffer, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pricing.EffectiveAmount() < sorted[j].Pricing.EffectiveAmount()
	})

	base := sorted[0]
	options := make([]domain.UpsellOption, 0, len(sorted))
	for _, offer := range sorted {
		options = append(options, syntheticUpsell(offer))
	}

	merged := base
	merged.UpsellOptions = options
	return merged
}

// syntheticUpsell turns one fare point of a merged group into an upsell
// option. The brand label carries the booking class of the offer's first
// segment when one is available.
func syntheticUpsell(offer domain.FlightOffer) domain.UpsellOption {
	price := offer.Pricing.EffectiveAmount()
	label := offer.Pricing.Currency + " " + domain.FormatAmount(price)

	bookingClass := firstBookingClass(offer)
	if bookingClass != "" {
		label = "Economy (" + bookingClass + ") - " + label
	}

	return domain.UpsellOption{
		BrandID:      offer.ID,
		BrandName:    label,
		Refundable:   offer.Refundable,
		Pricing:      offer.Pricing,
		Baggage:      offer.Baggage,
		BookingClass: bookingClass,
	}
}

// firstBookingClass returns the booking class of the offer's first segment,
// or "" when none is set.
func firstBookingClass(offer domain.FlightOffer) string {
	if len(offer.SegmentGroups) == 0 || len(offer.SegmentGroups[0].Segments) == 0 {
		return ""
	}
	return offer.SegmentGroups[0].Segments[0].BookingClass
}
