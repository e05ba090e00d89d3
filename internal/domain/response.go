package domain

// SearchResult is the aggregated response returned by a flight search.
// Exactly one of Offers or Pair is populated: Offers for one-way and
// combined-return searches, Pair for two-oneway and split multi-city flows.
type SearchResult struct {
	// SearchCriteria echoes the original search parameters
	SearchCriteria SearchCriteria `json:"searchCriteria"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Offers is the normalized offer list
	Offers []FlightOffer `json:"offers,omitempty"`

	// Pair holds the outbound/inbound lists for two-oneway results
	Pair *OfferPair `json:"pair,omitempty"`
}

// SearchMetadata contains metadata about the search execution.
type SearchMetadata struct {
	// TraceID is the upstream trace id for this search
	TraceID string `json:"traceId"`

	// TotalOffers is the total number of offers returned after grouping
	TotalOffers int `json:"totalOffers"`

	// RawOffers is the number of raw offers the upstream returned before
	// deduplication and fault-isolation skips
	RawOffers int `json:"rawOffers"`

	// SkippedOffers counts raw offers dropped as structurally malformed
	SkippedOffers int `json:"skippedOffers"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewSearchResult builds a SearchResult for a flat offer list.
func NewSearchResult(criteria SearchCriteria, offers []FlightOffer, meta SearchMetadata) *SearchResult {
	if offers == nil {
		offers = []FlightOffer{}
	}
	meta.TotalOffers = len(offers)

	return &SearchResult{
		SearchCriteria: criteria,
		Metadata:       meta,
		Offers:         offers,
	}
}

// NewPairedSearchResult builds a SearchResult for a two-oneway offer pair.
func NewPairedSearchResult(criteria SearchCriteria, pair OfferPair, meta SearchMetadata) *SearchResult {
	if pair.OBOffers == nil {
		pair.OBOffers = []FlightOffer{}
	}
	if pair.IBOffers == nil {
		pair.IBOffers = []FlightOffer{}
	}
	meta.TotalOffers = len(pair.OBOffers) + len(pair.IBOffers)

	return &SearchResult{
		SearchCriteria: criteria,
		Metadata:       meta,
		Pair:           &pair,
	}
}
