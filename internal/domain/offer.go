package domain

import (
	"strings"
	"time"
)

// JourneyTag marks one half of a two-oneway search result.
type JourneyTag string

// Journey tags used by two-oneway search modes. Any other value coming from
// the source is dropped during normalization.
const (
	TagOutbound JourneyTag = "OB"
	TagInbound  JourneyTag = "IB"
)

// IsValid reports whether the tag is one of the two recognized literals.
func (t JourneyTag) IsValid() bool {
	return t == TagOutbound || t == TagInbound
}

// UpsellFeatures is the feature bag advertised by an alternate fare brand.
type UpsellFeatures struct {
	// Meal indicates whether a meal is included
	Meal bool `json:"meal"`

	// Seat describes the seat selection entitlement
	Seat string `json:"seat,omitempty"`

	// Miles describes the mileage accrual
	Miles string `json:"miles,omitempty"`

	// RefundAllowed and ExchangeAllowed are the brand's rule flags
	RefundAllowed   bool `json:"refundAllowed"`
	ExchangeAllowed bool `json:"exchangeAllowed"`
}

// UpsellOption is an alternate fare brand for the same itinerary, either
// delivered by the source or synthesized by the fare-grouping engine.
type UpsellOption struct {
	// BrandID identifies the brand within the source system
	BrandID string `json:"brandId"`

	// BrandName is the display label (e.g., "Economy Flex")
	BrandName string `json:"brandName"`

	// Refundable is the brand's refundability flag
	Refundable bool `json:"refundable"`

	// Pricing is the brand's own price view
	Pricing Pricing `json:"pricing"`

	// Baggage is the brand's own baggage allowance per leg
	Baggage []SegmentBaggage `json:"baggage,omitempty"`

	// Features is the brand's feature bag
	Features UpsellFeatures `json:"features"`

	// BookingClass is the brand's booking designator, when known
	BookingClass string `json:"bookingClass,omitempty"`
}

// FlightOffer is the canonical unit produced by the normalization engine:
// one priced itinerary with an optional ladder of alternate fare brands.
type FlightOffer struct {
	// ID is the offer id copied from the source
	ID string `json:"id"`

	// TraceID ties the offer back to the search it came from
	TraceID string `json:"traceId"`

	// JourneyTag is set for two-oneway results ("OB"/"IB"), empty otherwise
	JourneyTag JourneyTag `json:"journeyTag,omitempty"`

	// ValidatingCarrier is the airline that validates the ticket
	ValidatingCarrier AirlineInfo `json:"validatingCarrier"`

	// Refundable is the offer-level refundability flag
	Refundable bool `json:"refundable"`

	// FareType is the source fare type label (e.g., "OnHold")
	FareType string `json:"fareType,omitempty"`

	// SegmentGroups are the directional legs in ascending group-id order;
	// never empty
	SegmentGroups []SegmentGroup `json:"segmentGroups"`

	// Pricing is the offer's primary price view
	Pricing Pricing `json:"pricing"`

	// Baggage is the allowance per leg
	Baggage []SegmentBaggage `json:"baggage,omitempty"`

	// SeatsRemaining is the number of seats left at this fare
	SeatsRemaining int `json:"seatsRemaining"`

	// UpsellOptions are the alternate fare brands, when any exist
	UpsellOptions []UpsellOption `json:"upSellOptions,omitempty"`

	// Penalties are the refund/exchange rules per route
	Penalties []RoutePenalty `json:"penalties,omitempty"`
}

// Signature derives the key that identifies "the same physical flight"
// independent of fare: the validating carrier code followed by, for every
// segment in source order, the marketing carrier, flight number and the two
// timestamps. Price and booking class never participate, so the same
// itinerary sold at different fare levels collides by design.
func (o *FlightOffer) Signature() string {
	var b strings.Builder
	b.WriteString(o.ValidatingCarrier.Code)
	for _, g := range o.SegmentGroups {
		for _, s := range g.Segments {
			b.WriteString(s.Airline.Code)
			b.WriteString(s.FlightNumber)
			b.WriteByte('_')
			b.WriteString(s.Departure.DateTime.Format(time.RFC3339))
			b.WriteByte('_')
			b.WriteString(s.Arrival.DateTime.Format(time.RFC3339))
		}
	}
	return b.String()
}

// OfferPair holds the two halves of a two-oneway or split multi-city result.
type OfferPair struct {
	// OBOffers are the outbound one-way offers
	OBOffers []FlightOffer `json:"obOffers"`

	// IBOffers are the inbound one-way offers
	IBOffers []FlightOffer `json:"ibOffers"`
}
