package bdfare

import (
	"sort"

	"github.com/babuas25/tf-sub001/internal/domain"
)

// placeholder route values the upstream serializer leaks into baggage
// records; treated the same as an absent field.
func isPlaceholderCode(code string) bool {
	return code == "" || code == "undefined" || code == "null"
}

// parseBaggage extracts the per-leg baggage allowances. When a baggage
// entry's own route codes are missing or placeholders, the route is derived
// positionally: the i-th entry takes the i-th segment group's route (first
// departure to last arrival, groups sorted by id), or "N/A" past the end of
// that list.
func parseBaggage(items []BaggageItem, records []PaxSegment) []domain.SegmentBaggage {
	fallback := fallbackRoutes(records)

	out := make([]domain.SegmentBaggage, 0, len(items))
	for i, item := range items {
		raw := item.Unwrap()

		route := domain.NotAvailable
		switch {
		case !isPlaceholderCode(raw.Departure) && !isPlaceholderCode(raw.Arrival):
			route = raw.Departure + "-" + raw.Arrival
		case i < len(fallback):
			route = fallback[i]
		}

		out = append(out, domain.SegmentBaggage{
			Route:   route,
			CheckIn: allowanceByPaxType(raw.CheckIn),
			Cabin:   allowanceByPaxType(raw.Cabin),
		})
	}
	return out
}

// fallbackRoutes derives one "DEP-ARR" route per segment group, in ascending
// group-id order, for positional substitution into baggage entries.
func fallbackRoutes(records []PaxSegment) []string {
	byGroup := make(map[int][]PaxSegment)
	var order []int
	for _, rec := range records {
		id := rec.SegmentGroup.Int()
		if _, seen := byGroup[id]; !seen {
			order = append(order, id)
		}
		byGroup[id] = append(byGroup[id], rec)
	}
	sort.Ints(order)

	routes := make([]string, 0, len(order))
	for _, id := range order {
		group := byGroup[id]
		first, last := group[0], group[len(group)-1]
		routes = append(routes, first.Departure.IATACode+"-"+last.Arrival.IATACode)
	}
	return routes
}

// allowanceByPaxType distributes allowance strings over the three canonical
// passenger types, tolerating the upstream's mixed type spellings. Types with
// no entry stay "N/A".
func allowanceByPaxType(entries []PaxAllowance) domain.BaggageAllowance {
	out := domain.BaggageAllowance{
		Adult:  domain.NotAvailable,
		Child:  domain.NotAvailable,
		Infant: domain.NotAvailable,
	}
	for _, e := range entries {
		if e.Allowance == "" {
			continue
		}
		switch domain.NormalizePassengerType(e.PaxType) {
		case domain.PaxChild:
			out.Child = e.Allowance
		case domain.PaxInfant:
			out.Infant = e.Allowance
		default:
			out.Adult = e.Allowance
		}
	}
	return out
}
