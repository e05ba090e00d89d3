// Package http provides the HTTP handler layer for the offer search API.
package http

import (
	"strings"

	"github.com/babuas25/tf-sub001/internal/domain"
	"github.com/babuas25/tf-sub001/internal/usecase"
)

// ToDomainCriteria converts a SearchOffersRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchOffersRequest) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:        strings.ToUpper(req.Origin),
		Destination:   strings.ToUpper(req.Destination),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
		Children:      req.Children,
		Infants:       req.Infants,
		TripType:      domain.TripType(strings.ToLower(req.TripType)),
		CabinClass:    req.CabinClass,
	}
	criteria.SetDefaults()
	return criteria
}

// ToDomainFilters converts a FilterDTO to domain.FilterOptions.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}

	return &domain.FilterOptions{
		MaxPrice:       dto.MaxPrice,
		MaxStops:       dto.MaxStops,
		Airlines:       dto.Airlines,
		RefundableOnly: dto.RefundableOnly,
	}
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchOffersRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToDomainFilters(req.Filters),
		SortBy:  domain.ParseSortOption(strings.ToLower(req.SortBy)),
	}
}
