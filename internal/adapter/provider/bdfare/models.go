// Package bdfare is the anti-corruption layer for the BDFare flight
// distribution API. It owns the raw response DTOs, the envelope/casing
// normalization for the API's structurally inconsistent variants, and the
// parsers that turn a raw search response into canonical domain.FlightOffer
// values. Nothing outside this package sees the raw shapes.
package bdfare

// Response is the deserialized search response.
//
// The special-return section is delivered under two different field-name
// casings by different search modes; both spellings are declared here and
// resolved by OutboundOffers/InboundOffers, first non-empty wins.
type Response struct {
	// TraceID correlates the response with the upstream search session
	TraceID string `json:"traceId"`

	// SpecialReturn marks responses whose round trip is priced as two
	// independent one-way offer lists
	SpecialReturn bool `json:"specialReturn"`

	// OffersGroup is the primary offer list
	OffersGroup []OfferWrapper `json:"offersGroup"`

	// Outbound/inbound lists for special-return responses, both casings
	OBOffersGroup      []OfferWrapper `json:"obOffersGroup"`
	OBOffersGroupUpper []OfferWrapper `json:"OBOffersGroup"`
	IBOffersGroup      []OfferWrapper `json:"ibOffersGroup"`
	IBOffersGroupUpper []OfferWrapper `json:"IBOffersGroup"`
}

// OfferWrapper is the envelope around each raw offer in an offer list.
type OfferWrapper struct {
	Offer RawOffer `json:"offer"`
}

// RawOffer is one priced itinerary as delivered by the API.
type RawOffer struct {
	OfferID               string `json:"offerId"`
	ValidatingCarrier     string `json:"validatingCarrier"`
	ValidatingCarrierName string `json:"validatingCarrierName"`
	Refundable            bool   `json:"refundable"`
	FareType              string `json:"fareType"`

	// PaxSegmentList is the flat list of leg records; each record carries
	// its segment-group id and return-journey flag
	PaxSegmentList []PaxSegment `json:"paxSegmentList"`

	// FareDetailList entries arrive either as direct records or wrapped
	// in a "fareDetail" envelope field
	FareDetailList []FareDetailItem `json:"fareDetailList"`

	// Price is the offer-level price summary
	Price *RawPrice `json:"price"`

	// BaggageAllowanceList has the same direct-or-enveloped ambiguity
	BaggageAllowanceList []BaggageItem `json:"baggageAllowanceList"`

	// Penalty holds the refund/exchange rule blocks
	Penalty *RawPenalty `json:"penalty"`

	// UpSellBrandList has the same direct-or-enveloped ambiguity
	UpSellBrandList []UpSellBrandItem `json:"upSellBrandList"`

	// SeatsRemaining arrives as a string or a number depending on variant
	SeatsRemaining FlexInt `json:"seatsRemaining"`

	// TwoOnewayIndex is "OB" or "IB" for two-oneway search modes; any
	// other value is dropped during normalization
	TwoOnewayIndex string `json:"twoOnewayIndex"`
}

// PaxSegment is one raw flight-leg record.
type PaxSegment struct {
	Departure RawPoint `json:"departure"`
	Arrival   RawPoint `json:"arrival"`

	MarketingCarrier RawCarrier `json:"marketingCarrierInfo"`
	OperatingCarrier RawCarrier `json:"operatingCarrierInfo"`

	// FlightNumber is numeric upstream but occasionally quoted
	FlightNumber FlexString `json:"flightNumber"`

	AircraftType string `json:"iataAircraftType"`

	// Duration is the segment's airborne time in minutes
	Duration FlexInt `json:"duration"`

	CabinType string `json:"cabinType"`

	// RBD is the booking class designator
	RBD string `json:"rbd"`

	// SegmentGroup groups records into directional legs
	SegmentGroup FlexInt `json:"segmentGroup"`

	// ReturnJourney flags records belonging to the inbound leg
	ReturnJourney bool `json:"returnJourney"`
}

// RawPoint is one end of a raw segment.
type RawPoint struct {
	IATACode      string `json:"iataCode"`
	AirportName   string `json:"airportName"`
	TerminalName  string `json:"terminalName"`
	ScheduledTime string `json:"scheduledTime"`
}

// RawCarrier identifies a carrier on a raw segment.
type RawCarrier struct {
	CarrierCode string `json:"carrierCode"`
	CarrierName string `json:"carrierName"`
}

// FareDetail is the per-passenger-type fare breakdown.
type FareDetail struct {
	PaxType  string  `json:"paxType"`
	PaxCount FlexInt `json:"paxCount"`
	BaseFare float64 `json:"baseFare"`
	Tax      float64 `json:"tax"`
	OtherFee float64 `json:"otherFee"`
	Discount float64 `json:"discount"`
	VAT      float64 `json:"vat"`
	Currency string  `json:"currency"`
}

// FareDetailItem absorbs both delivery forms of a fare-detail entry: the
// fields inline (direct form) or nested under "fareDetail" (enveloped form).
type FareDetailItem struct {
	FareDetail
	Inner *FareDetail `json:"fareDetail"`
}

// RawPrice is the offer-level price summary block.
type RawPrice struct {
	Total    float64  `json:"total"`
	Currency string   `json:"currency"`
	Gross    *float64 `json:"gross"`
	TotalVAT *float64 `json:"totalVAT"`
}

// RawBaggage is the per-leg baggage allowance record. Departure and Arrival
// may be empty or carry the literal placeholder strings "undefined"/"null"
// left behind by the upstream serializer.
type RawBaggage struct {
	Departure string         `json:"departure"`
	Arrival   string         `json:"arrival"`
	CheckIn   []PaxAllowance `json:"checkIn"`
	Cabin     []PaxAllowance `json:"cabin"`
}

// PaxAllowance is one passenger-type allowance string.
type PaxAllowance struct {
	PaxType   string `json:"paxType"`
	Allowance string `json:"allowance"`
}

// BaggageItem absorbs both delivery forms of a baggage entry.
type BaggageItem struct {
	RawBaggage
	Inner *RawBaggage `json:"baggageAllowance"`
}

// RawPenalty holds the refund and exchange rule blocks.
type RawPenalty struct {
	RefundPenaltyList   []RoutePenaltyBlock `json:"refundPenaltyList"`
	ExchangePenaltyList []RoutePenaltyBlock `json:"exchangePenaltyList"`
}

// RoutePenaltyBlock scopes a set of rules to one route.
type RoutePenaltyBlock struct {
	Departure       string        `json:"departure"`
	Arrival         string        `json:"arrival"`
	PenaltyInfoList []PenaltyInfo `json:"penaltyInfoList"`
}

// PenaltyInfo is one rule, tagged "Before" or "After" departure.
type PenaltyInfo struct {
	Type         string     `json:"type"`
	TextInfoList []TextInfo `json:"textInfoList"`
}

// TextInfo carries the free-text rule lines for one passenger type.
type TextInfo struct {
	PaxType string   `json:"paxType"`
	Info    []string `json:"info"`
}

// UpSellBrand is one alternate fare brand. A brand carries its own price,
// fare-detail and baggage blocks but no segment data; it shares the parent
// offer's itinerary.
type UpSellBrand struct {
	UpSellBrandID FlexString `json:"upSellBrandId"`
	BrandName     string     `json:"brandName"`
	Refundable    bool       `json:"refundable"`

	Price                *RawPrice        `json:"price"`
	FareDetailList       []FareDetailItem `json:"fareDetailList"`
	BaggageAllowanceList []BaggageItem    `json:"baggageAllowanceList"`

	// RBD is semicolon-delimited per leg; the first token is the brand's
	// booking class
	RBD string `json:"rbd"`

	Meal            bool   `json:"meal"`
	Seat            string `json:"seat"`
	Miles           string `json:"miles"`
	RefundAllowed   bool   `json:"refundAllowed"`
	ExchangeAllowed bool   `json:"exchangeAllowed"`
}

// UpSellBrandItem absorbs both delivery forms of a brand entry.
type UpSellBrandItem struct {
	UpSellBrand
	Inner *UpSellBrand `json:"upSellBrand"`
}
