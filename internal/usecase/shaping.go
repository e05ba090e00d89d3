package usecase

import (
	"sort"

	"github.com/babuas25/tf-sub001/internal/domain"
)

// applyFilters drops offers that fail the filter criteria.
func applyFilters(offers []domain.FlightOffer, opts *domain.FilterOptions) []domain.FlightOffer {
	if opts == nil {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if opts.Matches(&offer) {
			result = append(result, offer)
		}
	}
	return result
}

// sortOffers orders offers for presentation. The engine itself guarantees no
// inter-group order, so this is where a stable display order is imposed when
// the caller asks for one. Sorting is stable: equal keys keep their relative
// order.
func sortOffers(offers []domain.FlightOffer, by domain.SortOption) []domain.FlightOffer {
	if by == domain.SortNone || len(offers) < 2 {
		return offers
	}

	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)

	switch by {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Pricing.EffectiveAmount() < result[j].Pricing.EffectiveAmount()
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return totalDuration(result[i]) < totalDuration(result[j])
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			if len(result[i].SegmentGroups) == 0 || len(result[j].SegmentGroups) == 0 {
				return false
			}
			return result[i].SegmentGroups[0].Departure.DateTime.Before(
				result[j].SegmentGroups[0].Departure.DateTime)
		})
	}
	return result
}

// totalDuration sums the leg durations of an offer.
func totalDuration(offer domain.FlightOffer) int {
	total := 0
	for _, g := range offer.SegmentGroups {
		total += g.TotalDurationMinutes
	}
	return total
}

// shapeOffers applies filtering then sorting.
func shapeOffers(offers []domain.FlightOffer, opts SearchOptions) []domain.FlightOffer {
	return sortOffers(applyFilters(offers, opts.Filters), opts.SortBy)
}
