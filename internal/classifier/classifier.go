package classifier

import (
	"fmt"
	"time"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

// Layovers longer than 4 hours are flagged as long.
const longLayoverMinutes = 240

// UnknownAirline is returned when an offer carries no usable segments.
const UnknownAirline = "Unknown"

// Facts are the derived classification facts for one offer. They are
// recomputed on demand and never persisted.
type Facts struct {
	IsDirect             bool   `json:"is_direct"`
	StopCount            int    `json:"stop_count"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
	PrimaryAirline       string `json:"primary_airline"`
	HasLongLayover       bool   `json:"has_long_layover"`
	DedupKey             string `json:"dedup_key"`
}

func Classify(f models.FlightOffer) Facts {
	return Facts{
		IsDirect:             IsDirect(f.Legs),
		StopCount:            StopCount(f.Legs),
		TotalDurationMinutes: TotalDuration(f.Legs),
		PrimaryAirline:       PrimaryAirline(f.Legs),
		HasLongLayover:       HasLongLayover(f),
		DedupKey:             DedupKey(f),
	}
}

// IsDirect reports whether an itinerary is a direct flight: exactly one leg
// containing exactly one segment.
func IsDirect(legs []models.Leg) bool {
	if len(legs) != 1 {
		return false
	}
	return len(legs[0].Segments) == 1
}

// StopCount is the number of connections: total segments minus one, floored
// at zero.
func StopCount(legs []models.Leg) int {
	total := 0
	for _, leg := range legs {
		total += len(leg.Segments)
	}
	if total <= 1 {
		return 0
	}
	return total - 1
}

// TotalDuration sums the per-leg durations in minutes. Leg durations are
// pre-validated by the supplier.
func TotalDuration(legs []models.Leg) int {
	total := 0
	for _, leg := range legs {
		total += leg.DurationMinutes
	}
	return total
}

// PrimaryAirline is the operating carrier of the first segment, or
// UnknownAirline for an empty itinerary.
func PrimaryAirline(legs []models.Leg) string {
	if len(legs) == 0 || len(legs[0].Segments) == 0 {
		return UnknownAirline
	}
	if legs[0].Segments[0].Carrier == "" {
		return UnknownAirline
	}
	return legs[0].Segments[0].Carrier
}

// LayoverMinutes is the ground time between one segment's arrival and the
// next segment's departure.
func LayoverMinutes(arrival, departure time.Time) int {
	return int(departure.Sub(arrival).Minutes())
}

// HasLongLayover reports whether any consecutive segment pair within a leg
// has a layover longer than four hours.
func HasLongLayover(f models.FlightOffer) bool {
	for _, leg := range f.Legs {
		for i := 0; i < len(leg.Segments)-1; i++ {
			layover := LayoverMinutes(leg.Segments[i].Arrival, leg.Segments[i+1].Departure)
			if layover > longLayoverMinutes {
				return true
			}
		}
	}
	return false
}

// DedupKey builds a deterministic identity for the physical itinerary:
// primary airline, first departure, last arrival, and price. Offers with
// equal keys are the same itinerary for display-merging purposes.
func DedupKey(f models.FlightOffer) string {
	var departure, arrival string
	if len(f.Legs) > 0 {
		departure = f.Legs[0].Departure.UTC().Format(time.RFC3339)
		arrival = f.Legs[len(f.Legs)-1].Arrival.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%s-%s-%s-%d", PrimaryAirline(f.Legs), departure, arrival, f.PriceCents)
}
