package domain

import (
	"fmt"
	"regexp"
	"time"
)

// TripType selects the search mode sent to the distribution API.
type TripType string

// Supported trip types.
const (
	TripOneway    TripType = "oneway"
	TripReturn    TripType = "return"
	TripMulticity TripType = "multicity"
)

// IsValid checks if the trip type is a supported value.
func (t TripType) IsValid() bool {
	switch t {
	case TripOneway, TripReturn, TripMulticity:
		return true
	default:
		return false
	}
}

// SearchCriteria defines the parameters for a flight search request.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "DAC")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "CGP")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date for return trips, YYYY-MM-DD
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults, Children and Infants are the passenger counts (adults >= 1)
	Adults   int `json:"adults"`
	Children int `json:"children,omitempty"`
	Infants  int `json:"infants,omitempty"`

	// TripType selects oneway, return, or multicity search (default: oneway)
	TripType TripType `json:"tripType,omitempty"`

	// CabinClass is the requested cabin (default: Economy)
	CabinClass string `json:"cabinClass,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
	}
	if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
		return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
	}

	// Return trips need a valid return date on or after departure
	if s.TripType == TripReturn {
		if s.ReturnDate == "" {
			return fmt.Errorf("%w: returnDate is required for return trips", ErrInvalidRequest)
		}
		if !dateRegex.MatchString(s.ReturnDate) {
			return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.ReturnDate)
		}
		if _, err := time.Parse("2006-01-02", s.ReturnDate); err != nil {
			return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrInvalidRequest, s.ReturnDate)
		}
		if s.ReturnDate < s.DepartureDate {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: at least one adult passenger is required", ErrInvalidRequest)
	}
	if s.Children < 0 || s.Infants < 0 {
		return fmt.Errorf("%w: passenger counts cannot be negative", ErrInvalidRequest)
	}
	if s.Adults+s.Children+s.Infants > 9 {
		return fmt.Errorf("%w: total passengers cannot exceed 9", ErrInvalidRequest)
	}
	if s.Infants > s.Adults {
		return fmt.Errorf("%w: infants cannot exceed adults", ErrInvalidRequest)
	}

	if s.TripType != "" && !s.TripType.IsValid() {
		return fmt.Errorf("%w: tripType must be one of: oneway, return, multicity; got %q", ErrInvalidRequest, s.TripType)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.TripType == "" {
		s.TripType = TripOneway
	}
	if s.CabinClass == "" {
		s.CabinClass = "Economy"
	}
}
