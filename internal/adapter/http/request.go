// Package http provides the HTTP handler layer for the offer search API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchOffersRequest represents the request body for an offer search.
type SearchOffersRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "DAC")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "CGP")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date for return trips, YYYY-MM-DD
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers (1-9)
	Adults int `json:"adults"`

	// Children and Infants are the remaining passenger counts
	Children int `json:"children,omitempty"`
	Infants  int `json:"infants,omitempty"`

	// TripType is oneway, return, or multicity (default: oneway)
	TripType string `json:"tripType,omitempty"`

	// CabinClass is the requested cabin (default: Economy)
	CabinClass string `json:"cabinClass,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: price, duration, departure
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO represents optional filters for an offer search.
// Example: {"maxPrice": 50000, "maxStops": 0, "airlines": ["BG"]}
type FilterDTO struct {
	// MaxPrice filters offers priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"50000"`

	// MaxStops filters offers where any leg has more stops (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Airlines filters to only include these validating carrier codes
	Airlines []string `json:"airlines,omitempty" example:"BG,BS"`

	// RefundableOnly keeps only refundable offers
	RefundableOnly bool `json:"refundableOnly,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid trip types.
var validTripTypes = map[string]bool{
	"oneway":    true,
	"return":    true,
	"multicity": true,
	"":          true, // Empty is valid (defaults to oneway)
}

// Valid sort options.
var validSortOptions = map[string]bool{
	"price":     true,
	"duration":  true,
	"departure": true,
	"":          true, // Empty is valid (keeps engine order)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateAirports(errs)
	r.validateDates(errs)
	r.validatePassengers(errs)
	r.validateTripType(errs)
	r.validateSortBy(errs)
	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchOffersRequest) validateAirports(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
	} else {
		origin := strings.ToUpper(r.Origin)
		if !airportCodePattern.MatchString(origin) {
			errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		}
		r.Origin = origin
	}

	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	} else {
		dest := strings.ToUpper(r.Destination)
		if !airportCodePattern.MatchString(dest) {
			errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		}
		r.Destination = dest
	}

	if r.Origin != "" && r.Destination != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchOffersRequest) validateDates(errs *ValidationErrors) {
	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
	} else if !datePattern.MatchString(r.DepartureDate) {
		errs.Add("departureDate", "departureDate must be in YYYY-MM-DD format")
	} else if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		errs.Add("departureDate", "departureDate is not a valid date")
	}

	if strings.ToLower(r.TripType) == "return" {
		if r.ReturnDate == "" {
			errs.Add("returnDate", "returnDate is required for return trips")
		} else if !datePattern.MatchString(r.ReturnDate) {
			errs.Add("returnDate", "returnDate must be in YYYY-MM-DD format")
		} else if _, err := time.Parse("2006-01-02", r.ReturnDate); err != nil {
			errs.Add("returnDate", "returnDate is not a valid date")
		}
	}
}

func (r *SearchOffersRequest) validatePassengers(errs *ValidationErrors) {
	if r.Adults < 1 {
		errs.Add("adults", "at least 1 adult passenger is required")
		return
	}
	if r.Children < 0 || r.Infants < 0 {
		errs.Add("passengers", "passenger counts cannot be negative")
		return
	}
	if r.Adults+r.Children+r.Infants > 9 {
		errs.Add("passengers", "total passengers cannot exceed 9")
	}
	if r.Infants > r.Adults {
		errs.Add("infants", "infants cannot exceed adults")
	}
}

func (r *SearchOffersRequest) validateTripType(errs *ValidationErrors) {
	if !validTripTypes[strings.ToLower(r.TripType)] {
		errs.Add("tripType", "tripType must be one of: oneway, return, multicity")
	}
}

func (r *SearchOffersRequest) validateSortBy(errs *ValidationErrors) {
	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: price, duration, departure")
	}
}

func (r *SearchOffersRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}

	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}

	for i, airline := range r.Filters.Airlines {
		normalized := strings.ToUpper(airline)
		if len(normalized) < 2 || len(normalized) > 3 {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i),
				"airline code must be 2 or 3 characters")
		}
		r.Filters.Airlines[i] = normalized
	}
}
