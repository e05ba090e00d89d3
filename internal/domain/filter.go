package domain

import "strings"

// SortOption defines the available sorting options for normalized offers.
type SortOption string

// Available sort options.
const (
	// SortNone keeps the engine's output order (not significant across
	// signature groups)
	SortNone SortOption = ""

	// SortByPrice sorts by effective price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by total itinerary duration ascending
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by first departure time ascending
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortNone, SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortNone if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortNone
}

// FilterOptions defines optional filters to apply to normalized offers.
type FilterOptions struct {
	// MaxPrice filters out offers whose effective price is above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops filters out offers where any leg has more stops than this.
	// 0 = direct flights only, 1 = max 1 stop, etc.
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines filters to only include offers validated by these airline
	// codes. Empty slice means no filtering by airline.
	Airlines []string `json:"airlines,omitempty"`

	// RefundableOnly keeps only refundable offers
	RefundableOnly bool `json:"refundableOnly,omitempty"`
}

// Matches checks if an offer passes all the filter criteria.
func (f *FilterOptions) Matches(offer *FlightOffer) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && offer.Pricing.EffectiveAmount() > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil {
		for _, g := range offer.SegmentGroups {
			if g.Stops > *f.MaxStops {
				return false
			}
		}
	}

	// Airline filter matches the validating carrier, case-insensitive
	if len(f.Airlines) > 0 {
		found := false
		carrier := strings.ToUpper(offer.ValidatingCarrier.Code)
		for _, code := range f.Airlines {
			if strings.ToUpper(code) == carrier {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.RefundableOnly && !offer.Refundable {
		return false
	}

	return true
}
