package bdfare

import "github.com/babuas25/tf-sub001/internal/domain"

// parsePenalties restructures the refund and exchange rule blocks by route.
// Each source rule keeps its Before/After tag, takes its passenger scope from
// the first text-info entry, and flattens every text-info line into the
// details list.
func parsePenalties(p *RawPenalty) []domain.RoutePenalty {
	if p == nil {
		return nil
	}

	var out []domain.RoutePenalty
	out = append(out, penaltiesByRoute(p.RefundPenaltyList, domain.PenaltyRefund)...)
	out = append(out, penaltiesByRoute(p.ExchangePenaltyList, domain.PenaltyExchange)...)
	return out
}

func penaltiesByRoute(blocks []RoutePenaltyBlock, category domain.PenaltyCategory) []domain.RoutePenalty {
	out := make([]domain.RoutePenalty, 0, len(blocks))
	for _, block := range blocks {
		rules := make([]domain.FareRule, 0, len(block.PenaltyInfoList))
		for _, info := range block.PenaltyInfoList {
			rule := domain.FareRule{Timing: domain.RuleTiming(info.Type)}
			for j, text := range info.TextInfoList {
				if j == 0 {
					rule.PassengerType = text.PaxType
				}
				rule.Details = append(rule.Details, text.Info...)
			}
			rules = append(rules, rule)
		}
		out = append(out, domain.RoutePenalty{
			Route:    block.Departure + "-" + block.Arrival,
			Category: category,
			Rules:    rules,
		})
	}
	return out
}
