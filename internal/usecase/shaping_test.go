package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babuas25/tf-sub001/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestApplyFilters(t *testing.T) {
	offers := []domain.FlightOffer{
		fareOffer("cheap", 400, "L"),
		fareOffer("mid", 500, "M"),
		fareOffer("pricey", 600, "Y"),
	}

	t.Run("nil filters keep everything", func(t *testing.T) {
		out := applyFilters(offers, nil)
		assert.Len(t, out, 3)
	})

	t.Run("max price drops expensive offers", func(t *testing.T) {
		out := applyFilters(offers, &domain.FilterOptions{MaxPrice: floatPtr(500)})
		require.Len(t, out, 2)
		assert.Equal(t, "cheap", out[0].ID)
		assert.Equal(t, "mid", out[1].ID)
	})
}

func TestSortOffers(t *testing.T) {
	dep := time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC)

	short := flightOffer("short", "147", 600, "L", dep.Add(4*time.Hour))
	short.SegmentGroups[0].TotalDurationMinutes = 65

	long := flightOffer("long", "149", 400, "L", dep)
	long.SegmentGroups[0].TotalDurationMinutes = 200

	offers := []domain.FlightOffer{short, long}

	t.Run("none keeps input order", func(t *testing.T) {
		out := sortOffers(offers, domain.SortNone)
		assert.Equal(t, "short", out[0].ID)
		assert.Equal(t, "long", out[1].ID)
	})

	t.Run("by price ascending", func(t *testing.T) {
		out := sortOffers(offers, domain.SortByPrice)
		assert.Equal(t, "long", out[0].ID)
		assert.Equal(t, "short", out[1].ID)
	})

	t.Run("by duration ascending", func(t *testing.T) {
		out := sortOffers(offers, domain.SortByDuration)
		assert.Equal(t, "short", out[0].ID)
		assert.Equal(t, "long", out[1].ID)
	})

	t.Run("by departure ascending", func(t *testing.T) {
		out := sortOffers(offers, domain.SortByDeparture)
		assert.Equal(t, "long", out[0].ID)
		assert.Equal(t, "short", out[1].ID)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		_ = sortOffers(offers, domain.SortByPrice)
		assert.Equal(t, "short", offers[0].ID)
	})
}

func TestSortOffers_StableOnTies(t *testing.T) {
	a := fareOffer("first", 500, "L")
	b := fareOffer("second", 500, "M")

	out := sortOffers([]domain.FlightOffer{a, b}, domain.SortByPrice)
	assert.Equal(t, "first", out[0].ID)
	assert.Equal(t, "second", out[1].ID)
}

func TestShapeOffers_FilterThenSort(t *testing.T) {
	offers := []domain.FlightOffer{
		fareOffer("pricey", 600, "Y"),
		fareOffer("cheap", 400, "L"),
		fareOffer("over-budget", 900, "J"),
	}

	out := shapeOffers(offers, SearchOptions{
		Filters: &domain.FilterOptions{MaxPrice: floatPtr(700)},
		SortBy:  domain.SortByPrice,
	})

	require.Len(t, out, 2)
	assert.Equal(t, "cheap", out[0].ID)
	assert.Equal(t, "pricey", out[1].ID)
}

func TestDefaultSearchOptions(t *testing.T) {
	opts := DefaultSearchOptions()
	assert.Nil(t, opts.Filters)
	assert.Equal(t, domain.SortNone, opts.SortBy)
}
