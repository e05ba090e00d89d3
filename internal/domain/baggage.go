package domain

// NotAvailable is the sentinel used wherever the source omits a baggage
// route or allowance string.
const NotAvailable = "N/A"

// BaggageAllowance holds the allowance strings per passenger type for one
// kind of baggage (check-in or cabin). Values are free text as delivered by
// the source (e.g., "20 Kg", "2 Pieces") or NotAvailable.
type BaggageAllowance struct {
	Adult  string `json:"adult"`
	Child  string `json:"child"`
	Infant string `json:"infant"`
}

// SegmentBaggage is the baggage allowance for one leg of the itinerary.
type SegmentBaggage struct {
	// Route is "DEP-ARR", a positionally derived fallback route, or NotAvailable
	Route string `json:"route"`

	// CheckIn is the checked baggage allowance per passenger type
	CheckIn BaggageAllowance `json:"checkIn"`

	// Cabin is the cabin baggage allowance per passenger type
	Cabin BaggageAllowance `json:"cabin"`
}
