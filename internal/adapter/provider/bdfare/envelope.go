package bdfare

// Boundary normalization for the API's structurally inconsistent variants.
// Everything here runs before any parser touches the data, so the parsers
// only ever see the direct record shapes.

// Unwrap returns the fare detail regardless of delivery form.
func (i FareDetailItem) Unwrap() FareDetail {
	if i.Inner != nil {
		return *i.Inner
	}
	return i.FareDetail
}

// Unwrap returns the baggage record regardless of delivery form.
func (i BaggageItem) Unwrap() RawBaggage {
	if i.Inner != nil {
		return *i.Inner
	}
	return i.RawBaggage
}

// Unwrap returns the brand record regardless of delivery form.
func (i UpSellBrandItem) Unwrap() UpSellBrand {
	if i.Inner != nil {
		return *i.Inner
	}
	return i.UpSellBrand
}

// unwrapFareDetails normalizes a fare-detail list to direct records.
func unwrapFareDetails(items []FareDetailItem) []FareDetail {
	out := make([]FareDetail, 0, len(items))
	for _, it := range items {
		out = append(out, it.Unwrap())
	}
	return out
}

// unwrapBaggage normalizes a baggage list to direct records.
func unwrapBaggage(items []BaggageItem) []RawBaggage {
	out := make([]RawBaggage, 0, len(items))
	for _, it := range items {
		out = append(out, it.Unwrap())
	}
	return out
}

// unwrapBrands normalizes a brand list to direct records.
func unwrapBrands(items []UpSellBrandItem) []UpSellBrand {
	out := make([]UpSellBrand, 0, len(items))
	for _, it := range items {
		out = append(out, it.Unwrap())
	}
	return out
}

// OutboundOffers resolves the special-return outbound list across the two
// field-name casings the API uses; the first non-empty spelling wins.
func (r *Response) OutboundOffers() []OfferWrapper {
	if len(r.OBOffersGroup) > 0 {
		return r.OBOffersGroup
	}
	return r.OBOffersGroupUpper
}

// InboundOffers resolves the special-return inbound list the same way.
func (r *Response) InboundOffers() []OfferWrapper {
	if len(r.IBOffersGroup) > 0 {
		return r.IBOffersGroup
	}
	return r.IBOffersGroupUpper
}
