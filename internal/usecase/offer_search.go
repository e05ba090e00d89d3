package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/babuas25/tf-sub001/internal/adapter/provider/bdfare"
	"github.com/babuas25/tf-sub001/internal/domain"
	"github.com/babuas25/tf-sub001/internal/infrastructure/timeutil"
)

// SearchClient fetches a raw search response from the distribution API.
//
//go:generate mockgen -source=offer_search.go -destination=../../test/mock/search_client.go -package=mock
type SearchClient interface {
	Search(ctx context.Context, criteria domain.SearchCriteria) (*bdfare.Response, error)
}

// OfferSearchUseCase defines the interface for offer search operations.
type OfferSearchUseCase interface {
	// Search fetches, normalizes and (for two-oneway flows) fare-groups the
	// offers for the given criteria.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResult, error)
}

// offerSearchUseCase implements OfferSearchUseCase on top of a SearchClient
// and the offer transformer.
type offerSearchUseCase struct {
	client      SearchClient
	transformer *bdfare.Transformer
	clock       timeutil.Clock
	log         zerolog.Logger
}

// NewOfferSearchUseCase creates an OfferSearchUseCase. A nil clock defaults
// to the system clock.
func NewOfferSearchUseCase(client SearchClient, transformer *bdfare.Transformer, clock timeutil.Clock, log zerolog.Logger) OfferSearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &offerSearchUseCase{
		client:      client,
		transformer: transformer,
		clock:       clock,
		log:         log,
	}
}

// Search implements OfferSearchUseCase.
func (uc *offerSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResult, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	start := uc.clock.Now()

	resp, err := uc.client.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	rawCount := bdfare.RawOfferCount(resp)
	meta := domain.SearchMetadata{
		TraceID:   resp.TraceID,
		RawOffers: rawCount,
	}

	var result *domain.SearchResult
	switch {
	case resp.SpecialReturn && criteria.TripType == domain.TripReturn:
		// Two-oneway flow: each half is transformed and fare-grouped
		// independently; only the outbound/inbound lists participate
		pair := uc.transformer.TransformTwoOneway(resp)
		meta.RawOffers = len(resp.OutboundOffers()) + len(resp.InboundOffers())
		meta.SkippedOffers = meta.RawOffers - len(pair.OBOffers) - len(pair.IBOffers)

		pair.OBOffers = shapeOffers(GroupTwoOnewayOffersByFlight(pair.OBOffers), opts)
		pair.IBOffers = shapeOffers(GroupTwoOnewayOffersByFlight(pair.IBOffers), opts)
		result = domain.NewPairedSearchResult(criteria, pair, meta)

	case criteria.TripType == domain.TripMulticity:
		// Two-leg multi-city offers are split into independent one-ways;
		// offers with any other leg count are dropped
		offers := uc.transformer.Transform(resp)
		meta.SkippedOffers = rawCount - len(offers)

		pair := bdfare.SplitMulticityToTwoOneway(offers)
		pair.OBOffers = shapeOffers(pair.OBOffers, opts)
		pair.IBOffers = shapeOffers(pair.IBOffers, opts)
		result = domain.NewPairedSearchResult(criteria, pair, meta)

	default:
		offers := uc.transformer.Transform(resp)
		meta.SkippedOffers = rawCount - len(offers)
		result = domain.NewSearchResult(criteria, shapeOffers(offers, opts), meta)
	}

	result.Metadata.SearchTimeMs = uc.clock.Now().Sub(start).Milliseconds()

	uc.log.Info().
		Str("trace_id", result.Metadata.TraceID).
		Int("raw_offers", result.Metadata.RawOffers).
		Int("total_offers", result.Metadata.TotalOffers).
		Int("skipped_offers", result.Metadata.SkippedOffers).
		Int64("search_time_ms", result.Metadata.SearchTimeMs).
		Msg("Offer search completed")

	return result, nil
}
