package domain

// RuleTiming says whether a fare rule applies before or after departure.
type RuleTiming string

// Rule timings as delivered by the source penalty blocks.
const (
	TimingBeforeDeparture RuleTiming = "Before"
	TimingAfterDeparture  RuleTiming = "After"
)

// PenaltyCategory separates refund rules from exchange (date change) rules.
type PenaltyCategory string

// Penalty categories.
const (
	PenaltyRefund   PenaltyCategory = "Refund"
	PenaltyExchange PenaltyCategory = "Exchange"
)

// FareRule is one refund or exchange rule.
type FareRule struct {
	// Timing tags the rule as before or after departure
	Timing RuleTiming `json:"timing"`

	// PassengerType is the scope of the rule, taken from the first
	// text-info entry of the source rule
	PassengerType string `json:"passengerType,omitempty"`

	// Details are the flattened free-text rule lines
	Details []string `json:"details"`
}

// RoutePenalty groups the refund or exchange rules that apply to one route.
type RoutePenalty struct {
	// Route is "DEP-ARR" for the leg the rules apply to
	Route string `json:"route"`

	// Category is Refund or Exchange
	Category PenaltyCategory `json:"category"`

	// Rules are the restructured rules for this route
	Rules []FareRule `json:"rules"`
}
