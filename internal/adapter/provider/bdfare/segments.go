package bdfare

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/babuas25/tf-sub001/internal/domain"
)

// parseSegmentGroups groups the raw leg records into ordered directional
// legs. Groups are emitted in ascending numeric order of their source group
// id; within a group the source record order is preserved. Layovers are
// computed for every adjacent segment pair and attached to the earlier
// segment; the group total is the sum of segment durations plus layovers.
//
// An empty group, or a segment whose timestamps cannot be read, indicates
// malformed upstream data and fails the whole offer (the caller skips it and
// keeps processing the batch).
func parseSegmentGroups(records []PaxSegment) ([]domain.SegmentGroup, error) {
	if len(records) == 0 {
		return nil, domain.ErrNoSegments
	}

	byGroup := make(map[int][]PaxSegment)
	var order []int
	for _, rec := range records {
		id := rec.SegmentGroup.Int()
		if _, seen := byGroup[id]; !seen {
			order = append(order, id)
		}
		byGroup[id] = append(byGroup[id], rec)
	}
	sort.Ints(order)

	groups := make([]domain.SegmentGroup, 0, len(order))
	for _, id := range order {
		group, err := buildSegmentGroup(id, byGroup[id])
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// buildSegmentGroup assembles one directional leg from its raw records.
func buildSegmentGroup(id int, records []PaxSegment) (domain.SegmentGroup, error) {
	if len(records) == 0 {
		return domain.SegmentGroup{}, fmt.Errorf("%w: group %d", domain.ErrEmptySegmentGroup, id)
	}

	segments := make([]domain.Segment, 0, len(records))
	isReturn := false
	for _, rec := range records {
		seg, err := buildSegment(rec)
		if err != nil {
			return domain.SegmentGroup{}, fmt.Errorf("group %d: %w", id, err)
		}
		segments = append(segments, seg)
		if rec.ReturnJourney {
			isReturn = true
		}
	}

	// Layovers between adjacent segments, attached to the earlier one
	total := 0
	for i := range segments {
		total += segments[i].DurationMinutes
		if i == len(segments)-1 {
			break
		}
		gap := segments[i+1].Departure.DateTime.Sub(segments[i].Arrival.DateTime)
		layover := &domain.Layover{
			DurationMinutes: int(math.Round(gap.Minutes())),
			Airport:         segments[i].Arrival.AirportCode,
		}
		segments[i].Layover = layover
		total += layover.DurationMinutes
	}

	first, last := segments[0], segments[len(segments)-1]
	return domain.SegmentGroup{
		GroupID:              id,
		Segments:             segments,
		IsReturn:             isReturn,
		TotalDurationMinutes: total,
		Stops:                len(segments) - 1,
		Departure:            first.Departure,
		Arrival:              last.Arrival,
	}, nil
}

// buildSegment converts one raw leg record to a canonical segment.
func buildSegment(rec PaxSegment) (domain.Segment, error) {
	dep, err := parseDateTime(rec.Departure.ScheduledTime)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("departure time: %w", err)
	}
	arr, err := parseDateTime(rec.Arrival.ScheduledTime)
	if err != nil {
		return domain.Segment{}, fmt.Errorf("arrival time: %w", err)
	}

	operating := rec.OperatingCarrier
	if operating.CarrierCode == "" {
		operating = rec.MarketingCarrier
	}

	return domain.Segment{
		FlightNumber: rec.FlightNumber.String(),
		Airline: domain.AirlineInfo{
			Code: rec.MarketingCarrier.CarrierCode,
			Name: rec.MarketingCarrier.CarrierName,
		},
		OperatingAirline: domain.AirlineInfo{
			Code: operating.CarrierCode,
			Name: operating.CarrierName,
		},
		Aircraft: rec.AircraftType,
		Departure: domain.FlightPoint{
			AirportCode: rec.Departure.IATACode,
			AirportName: rec.Departure.AirportName,
			Terminal:    rec.Departure.TerminalName,
			DateTime:    dep,
		},
		Arrival: domain.FlightPoint{
			AirportCode: rec.Arrival.IATACode,
			AirportName: rec.Arrival.AirportName,
			Terminal:    rec.Arrival.TerminalName,
			DateTime:    arr,
		},
		DurationMinutes: rec.Duration.Int(),
		CabinClass:      rec.CabinType,
		BookingClass:    rec.RBD,
	}, nil
}

// parseDateTime parses the scheduled-time strings the API emits.
// Supports RFC3339 and the zone-less "2006-01-02T15:04:05" variant.
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02T15:04:05", value)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}
