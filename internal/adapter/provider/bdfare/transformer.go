package bdfare

import (
	"github.com/rs/zerolog"

	"github.com/babuas25/tf-sub001/internal/domain"
)

// Transformer converts raw search responses into canonical flight offers.
// It is stateless and safe for concurrent use; every call allocates its own
// output.
//
// Fault isolation is per offer: a structurally malformed offer (no leg
// records, an empty segment group, unreadable timestamps) is logged and
// dropped, and the rest of the batch is processed normally. A malformed
// entry must never abort the whole transform call.
type Transformer struct {
	log zerolog.Logger
}

// NewTransformer creates a Transformer that logs skipped offers to the given
// logger.
func NewTransformer(log zerolog.Logger) *Transformer {
	return &Transformer{log: log}
}

// Transform converts every raw offer in the response. For special-return
// responses the outbound and inbound lists are appended after the primary
// list.
func (t *Transformer) Transform(resp *Response) []domain.FlightOffer {
	if resp == nil {
		return []domain.FlightOffer{}
	}

	offers := t.transformList(resp.OffersGroup, resp.TraceID)
	if resp.SpecialReturn {
		offers = append(offers, t.transformList(resp.OutboundOffers(), resp.TraceID)...)
		offers = append(offers, t.transformList(resp.InboundOffers(), resp.TraceID)...)
	}
	return offers
}

// TransformTwoOneway converts the outbound and inbound lists of a
// special-return response separately. Fare grouping of each half is the
// caller's concern.
func (t *Transformer) TransformTwoOneway(resp *Response) domain.OfferPair {
	if resp == nil {
		return domain.OfferPair{OBOffers: []domain.FlightOffer{}, IBOffers: []domain.FlightOffer{}}
	}

	return domain.OfferPair{
		OBOffers: t.transformList(resp.OutboundOffers(), resp.TraceID),
		IBOffers: t.transformList(resp.InboundOffers(), resp.TraceID),
	}
}

// RawOfferCount reports how many raw offers the response carries across all
// its lists, before any fault-isolation skips.
func RawOfferCount(resp *Response) int {
	if resp == nil {
		return 0
	}
	n := len(resp.OffersGroup)
	if resp.SpecialReturn {
		n += len(resp.OutboundOffers()) + len(resp.InboundOffers())
	}
	return n
}

// transformList is the skip-and-continue fold over one raw offer list.
func (t *Transformer) transformList(wrappers []OfferWrapper, traceID string) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, 0, len(wrappers))
	for _, w := range wrappers {
		offer, err := t.transformOffer(w.Offer, traceID)
		if err != nil {
			t.log.Debug().
				Err(err).
				Str("offer_id", w.Offer.OfferID).
				Str("trace_id", traceID).
				Msg("Skipping malformed offer")
			continue
		}
		offers = append(offers, offer)
	}
	return offers
}

// transformOffer assembles one canonical offer from the parser outputs.
func (t *Transformer) transformOffer(raw RawOffer, traceID string) (domain.FlightOffer, error) {
	if len(raw.PaxSegmentList) == 0 {
		return domain.FlightOffer{}, domain.ErrNoSegments
	}

	groups, err := parseSegmentGroups(raw.PaxSegmentList)
	if err != nil {
		return domain.FlightOffer{}, err
	}

	// The tag is copied through only when it is exactly one of the two
	// two-oneway literals
	tag := domain.JourneyTag(raw.TwoOnewayIndex)
	if !tag.IsValid() {
		tag = ""
	}

	return domain.FlightOffer{
		ID:         raw.OfferID,
		TraceID:    traceID,
		JourneyTag: tag,
		ValidatingCarrier: domain.AirlineInfo{
			Code: raw.ValidatingCarrier,
			Name: raw.ValidatingCarrierName,
		},
		Refundable:     raw.Refundable,
		FareType:       raw.FareType,
		SegmentGroups:  groups,
		Pricing:        parsePricing(raw.FareDetailList, raw.Price),
		Baggage:        parseBaggage(raw.BaggageAllowanceList, raw.PaxSegmentList),
		SeatsRemaining: raw.SeatsRemaining.Int(),
		UpsellOptions:  parseUpsellOptions(raw.UpSellBrandList, raw.PaxSegmentList),
		Penalties:      parsePenalties(raw.Penalty),
	}, nil
}

// SplitMulticityToTwoOneway splits already-transformed offers that contain
// exactly two segment groups into two independent one-way offers, tagged OB
// and IB with suffixed ids. Offers with any other group count are excluded
// from both lists; that is a scope restriction of the two-oneway view, not an
// error.
func SplitMulticityToTwoOneway(offers []domain.FlightOffer) domain.OfferPair {
	pair := domain.OfferPair{
		OBOffers: []domain.FlightOffer{},
		IBOffers: []domain.FlightOffer{},
	}

	for _, offer := range offers {
		if len(offer.SegmentGroups) != 2 {
			continue
		}

		ob := offer
		ob.ID = offer.ID + "-OB"
		ob.JourneyTag = domain.TagOutbound
		ob.SegmentGroups = []domain.SegmentGroup{offer.SegmentGroups[0]}

		ib := offer
		ib.ID = offer.ID + "-IB"
		ib.JourneyTag = domain.TagInbound
		ib.SegmentGroups = []domain.SegmentGroup{offer.SegmentGroups[1]}

		pair.OBOffers = append(pair.OBOffers, ob)
		pair.IBOffers = append(pair.IBOffers, ib)
	}
	return pair
}
