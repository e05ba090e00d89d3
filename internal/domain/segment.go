// Package domain contains the canonical flight-offer entities produced by the
// normalization engine. These entities are provider-agnostic value objects:
// they are created fresh on every transform call and carry no identity beyond
// the ids copied from the source payload.
package domain

import "time"

// AirlineInfo identifies an airline.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "BG" for Biman Bangladesh)
	Code string `json:"code"`

	// Name is the full airline name (e.g., "Biman Bangladesh Airlines")
	Name string `json:"name,omitempty"`
}

// FlightPoint represents one end of a segment (departure or arrival).
type FlightPoint struct {
	// AirportCode is the IATA airport code (e.g., "DAC")
	AirportCode string `json:"airportCode"`

	// AirportName is the full airport name, when the source provides it
	AirportName string `json:"airportName,omitempty"`

	// Terminal is the terminal identifier (e.g., "1")
	Terminal string `json:"terminal,omitempty"`

	// DateTime is the scheduled local departure or arrival time
	DateTime time.Time `json:"dateTime"`
}

// Layover is the connection gap between two consecutive segments of a leg.
// It is attached to the earlier segment of the pair, never to the last
// segment of a segment group.
type Layover struct {
	// DurationMinutes is the gap between arrival and the next departure
	DurationMinutes int `json:"durationMinutes"`

	// Airport is the IATA code of the connecting airport
	Airport string `json:"airport"`
}

// Segment is one flown flight leg (single takeoff and landing).
type Segment struct {
	// FlightNumber is the numeric flight designator without the airline prefix
	FlightNumber string `json:"flightNumber"`

	// Airline is the marketing carrier
	Airline AirlineInfo `json:"airline"`

	// OperatingAirline is the carrier actually operating the flight
	OperatingAirline AirlineInfo `json:"operatingAirline"`

	// Aircraft is the equipment type (e.g., "Boeing 787-9")
	Aircraft string `json:"aircraft,omitempty"`

	// Departure and Arrival describe the two ends of the segment
	Departure FlightPoint `json:"departure"`
	Arrival   FlightPoint `json:"arrival"`

	// DurationMinutes is the airborne duration of this segment
	DurationMinutes int `json:"durationMinutes"`

	// CabinClass is the cabin (e.g., "Economy")
	CabinClass string `json:"cabinClass,omitempty"`

	// BookingClass is the reservation booking designator (e.g., "V")
	BookingClass string `json:"bookingClass,omitempty"`

	// Layover is set only on non-terminal segments of a segment group
	Layover *Layover `json:"layover,omitempty"`
}

// SegmentGroup is one directional leg of a trip (outbound, inbound, or one
// multi-city leg), composed of one or more segments in flight order.
type SegmentGroup struct {
	// GroupID is the numeric segment-group id from the source payload
	GroupID int `json:"groupId"`

	// Segments is the ordered segment list; never empty
	Segments []Segment `json:"segments"`

	// IsReturn is true when any underlying record is flagged as a return journey
	IsReturn bool `json:"isReturn"`

	// TotalDurationMinutes is the sum of segment durations plus layovers
	TotalDurationMinutes int `json:"totalDurationMinutes"`

	// Stops is the number of intermediate stops (segments - 1)
	Stops int `json:"stops"`

	// Departure summarizes the first segment's departure
	Departure FlightPoint `json:"departure"`

	// Arrival summarizes the last segment's arrival
	Arrival FlightPoint `json:"arrival"`
}
