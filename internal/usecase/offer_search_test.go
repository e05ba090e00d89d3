package usecase

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/babuas25/tf-sub001/internal/adapter/provider/bdfare"
	"github.com/babuas25/tf-sub001/internal/domain"
	"github.com/babuas25/tf-sub001/internal/infrastructure/timeutil"
	"github.com/babuas25/tf-sub001/test/mock"
)

func onewayCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "DAC",
		Destination:   "CXB",
		DepartureDate: "2026-09-15",
		Adults:        1,
		TripType:      domain.TripOneway,
	}
}

// onewayResponse is a minimal raw response with the given offer ids, all on
// distinct flights.
func onewayResponse(traceID string, offerIDs ...string) *bdfare.Response {
	wrappers := make([]bdfare.OfferWrapper, 0, len(offerIDs))
	for i, id := range offerIDs {
		wrappers = append(wrappers, bdfare.OfferWrapper{
			Offer: bdfare.RawOffer{
				OfferID:           id,
				ValidatingCarrier: "BG",
				PaxSegmentList: []bdfare.PaxSegment{
					{
						Departure: bdfare.RawPoint{
							IATACode:      "DAC",
							ScheduledTime: "2026-09-15T08:30:00Z",
						},
						Arrival: bdfare.RawPoint{
							IATACode:      "CXB",
							ScheduledTime: "2026-09-15T09:35:00Z",
						},
						MarketingCarrier: bdfare.RawCarrier{CarrierCode: "BG"},
						FlightNumber:     bdfare.FlexString(rune('0' + i)),
						Duration:         65,
					},
				},
				Price: &bdfare.RawPrice{Total: 5200, Currency: "BDT"},
			},
		})
	}
	return &bdfare.Response{TraceID: traceID, OffersGroup: wrappers}
}

func newTestUseCase(t *testing.T, client SearchClient) OfferSearchUseCase {
	t.Helper()
	transformer := bdfare.NewTransformer(zerolog.Nop())
	clock := timeutil.NewMockClockFromString("2026-09-01T00:00:00Z")
	return NewOfferSearchUseCase(client, transformer, clock, zerolog.Nop())
}

func TestOfferSearchUseCase_Search_Oneway(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSearchClient(ctrl)

	client.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(onewayResponse("trace-1", "offer-1", "offer-2"), nil)

	uc := newTestUseCase(t, client)
	result, err := uc.Search(context.Background(), onewayCriteria(), DefaultSearchOptions())
	require.NoError(t, err)

	assert.Equal(t, "trace-1", result.Metadata.TraceID)
	assert.Equal(t, 2, result.Metadata.RawOffers)
	assert.Equal(t, 2, result.Metadata.TotalOffers)
	assert.Equal(t, 0, result.Metadata.SkippedOffers)
	require.Len(t, result.Offers, 2)
	assert.Nil(t, result.Pair)
}

func TestOfferSearchUseCase_Search_SkipsMalformedOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSearchClient(ctrl)

	resp := onewayResponse("trace-1", "good")
	resp.OffersGroup = append(resp.OffersGroup, bdfare.OfferWrapper{
		Offer: bdfare.RawOffer{OfferID: "no-segments"},
	})

	client.EXPECT().Search(gomock.Any(), gomock.Any()).Return(resp, nil)

	uc := newTestUseCase(t, client)
	result, err := uc.Search(context.Background(), onewayCriteria(), DefaultSearchOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Metadata.RawOffers)
	assert.Equal(t, 1, result.Metadata.TotalOffers)
	assert.Equal(t, 1, result.Metadata.SkippedOffers)
}

func TestOfferSearchUseCase_Search_ValidatesCriteria(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSearchClient(ctrl)
	// The client must not be called for invalid criteria

	uc := newTestUseCase(t, client)
	criteria := onewayCriteria()
	criteria.Origin = "DAC"
	criteria.Destination = "DAC"

	_, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestOfferSearchUseCase_Search_AppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSearchClient(ctrl)

	var captured domain.SearchCriteria
	client.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.SearchCriteria) (*bdfare.Response, error) {
			captured = c
			return onewayResponse("trace-1"), nil
		})

	uc := newTestUseCase(t, client)
	criteria := domain.SearchCriteria{
		Origin:        "DAC",
		Destination:   "CXB",
		DepartureDate: "2026-09-15",
		Adults:        1,
	}

	_, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.TripOneway, captured.TripType)
	assert.Equal(t, "Economy", captured.CabinClass)
}

func TestOfferSearchUseCase_Search_PropagatesClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSearchClient(ctrl)

	client.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUpstreamUnavailable)

	uc := newTestUseCase(t, client)
	_, err := uc.Search(context.Background(), onewayCriteria(), DefaultSearchOptions())

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestOfferSearchUseCase_Search_SpecialReturnGroupsFares(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSearchClient(ctrl)

	segment := func() []bdfare.PaxSegment {
		return []bdfare.PaxSegment{
			{
				Departure: bdfare.RawPoint{IATACode: "DAC", ScheduledTime: "2026-09-15T08:30:00Z"},
				Arrival:   bdfare.RawPoint{IATACode: "CXB", ScheduledTime: "2026-09-15T09:35:00Z"},
				MarketingCarrier: bdfare.RawCarrier{
					CarrierCode: "BG",
				},
				FlightNumber: "147",
				Duration:     65,
			},
		}
	}

	obOffer := func(id string, total float64) bdfare.OfferWrapper {
		return bdfare.OfferWrapper{Offer: bdfare.RawOffer{
			OfferID:           id,
			ValidatingCarrier: "BG",
			PaxSegmentList:    segment(),
			Price:             &bdfare.RawPrice{Total: total, Currency: "BDT"},
			TwoOnewayIndex:    "OB",
		}}
	}

	resp := &bdfare.Response{
		TraceID:       "trace-sr",
		SpecialReturn: true,
		// Two fare levels of the same outbound flight plus an empty inbound list
		OBOffersGroup: []bdfare.OfferWrapper{
			obOffer("ob-500", 500),
			obOffer("ob-400", 400),
		},
	}

	client.EXPECT().Search(gomock.Any(), gomock.Any()).Return(resp, nil)

	uc := newTestUseCase(t, client)
	criteria := onewayCriteria()
	criteria.TripType = domain.TripReturn
	criteria.ReturnDate = "2026-09-20"

	result, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())
	require.NoError(t, err)

	require.NotNil(t, result.Pair)
	assert.Nil(t, result.Offers)

	// The two fare points collapsed into one offer with a synthetic ladder
	require.Len(t, result.Pair.OBOffers, 1)
	merged := result.Pair.OBOffers[0]
	assert.Equal(t, "ob-400", merged.ID)
	require.Len(t, merged.UpsellOptions, 2)
	assert.Equal(t, 400.0, merged.UpsellOptions[0].Pricing.Total)
	assert.Equal(t, 500.0, merged.UpsellOptions[1].Pricing.Total)

	assert.Empty(t, result.Pair.IBOffers)
	assert.Equal(t, 2, result.Metadata.RawOffers)
	assert.Equal(t, 1, result.Metadata.TotalOffers)
}

func TestOfferSearchUseCase_Search_MulticitySplits(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSearchClient(ctrl)

	resp := &bdfare.Response{
		TraceID: "trace-mc",
		OffersGroup: []bdfare.OfferWrapper{
			{Offer: bdfare.RawOffer{
				OfferID:           "mc-1",
				ValidatingCarrier: "BG",
				PaxSegmentList: []bdfare.PaxSegment{
					{
						Departure:        bdfare.RawPoint{IATACode: "DAC", ScheduledTime: "2026-09-15T08:30:00Z"},
						Arrival:          bdfare.RawPoint{IATACode: "CXB", ScheduledTime: "2026-09-15T09:35:00Z"},
						MarketingCarrier: bdfare.RawCarrier{CarrierCode: "BG"},
						FlightNumber:     "147",
						Duration:         65,
						SegmentGroup:     0,
					},
					{
						Departure:        bdfare.RawPoint{IATACode: "CXB", ScheduledTime: "2026-09-20T17:00:00Z"},
						Arrival:          bdfare.RawPoint{IATACode: "DAC", ScheduledTime: "2026-09-20T18:05:00Z"},
						MarketingCarrier: bdfare.RawCarrier{CarrierCode: "BG"},
						FlightNumber:     "148",
						Duration:         65,
						SegmentGroup:     1,
					},
				},
				Price: &bdfare.RawPrice{Total: 10400, Currency: "BDT"},
			}},
		},
	}

	client.EXPECT().Search(gomock.Any(), gomock.Any()).Return(resp, nil)

	uc := newTestUseCase(t, client)
	criteria := onewayCriteria()
	criteria.TripType = domain.TripMulticity

	result, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())
	require.NoError(t, err)

	require.NotNil(t, result.Pair)
	require.Len(t, result.Pair.OBOffers, 1)
	require.Len(t, result.Pair.IBOffers, 1)
	assert.Equal(t, "mc-1-OB", result.Pair.OBOffers[0].ID)
	assert.Equal(t, "mc-1-IB", result.Pair.IBOffers[0].ID)
}

func TestOfferSearchUseCase_Search_SortsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSearchClient(ctrl)

	resp := onewayResponse("trace-1", "pricey", "cheap")
	resp.OffersGroup[0].Offer.Price = &bdfare.RawPrice{Total: 9000, Currency: "BDT"}
	resp.OffersGroup[1].Offer.Price = &bdfare.RawPrice{Total: 4000, Currency: "BDT"}

	client.EXPECT().Search(gomock.Any(), gomock.Any()).Return(resp, nil)

	uc := newTestUseCase(t, client)
	result, err := uc.Search(context.Background(), onewayCriteria(), SearchOptions{SortBy: domain.SortByPrice})
	require.NoError(t, err)

	require.Len(t, result.Offers, 2)
	assert.Equal(t, "cheap", result.Offers[0].ID)
	assert.Equal(t, "pricey", result.Offers[1].ID)
}
