package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

func segment(origin, destination, carrier string, departure, arrival time.Time) models.Segment {
	return models.Segment{
		Origin:          origin,
		Destination:     destination,
		Carrier:         carrier,
		Departure:       departure,
		Arrival:         arrival,
		DurationMinutes: int(arrival.Sub(departure).Minutes()),
	}
}

func directOffer(priceCents int) models.FlightOffer {
	dep := time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC)
	arr := dep.Add(6 * time.Hour)
	return models.FlightOffer{
		ID:         "UA-100",
		Airline:    "United Airlines",
		PriceCents: priceCents,
		Currency:   "USD",
		Legs: []models.Leg{{
			Origin:          "JFK",
			Destination:     "SFO",
			Departure:       dep,
			Arrival:         arr,
			DurationMinutes: 360,
			Segments:        []models.Segment{segment("JFK", "SFO", "United Airlines", dep, arr)},
		}},
	}
}

func connectingOffer() models.FlightOffer {
	dep := time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC)
	mid := dep.Add(5 * time.Hour)
	dep2 := mid.Add(5 * time.Hour) // 5h layover
	arr := dep2.Add(7 * time.Hour)
	return models.FlightOffer{
		ID:         "UA-200",
		Airline:    "United Airlines",
		PriceCents: 82000,
		Currency:   "USD",
		Legs: []models.Leg{{
			Origin:          "JFK",
			Destination:     "PVG",
			Departure:       dep,
			Arrival:         arr,
			DurationMinutes: int(arr.Sub(dep).Minutes()),
			Segments: []models.Segment{
				segment("JFK", "SFO", "United Airlines", dep, mid),
				segment("SFO", "PVG", "United Airlines", dep2, arr),
			},
		}},
	}
}

func TestIsDirect(t *testing.T) {
	assert.True(t, IsDirect(directOffer(50000).Legs))
	assert.False(t, IsDirect(connectingOffer().Legs))
	assert.False(t, IsDirect(nil))
}

func TestStopCount(t *testing.T) {
	assert.Equal(t, 0, StopCount(directOffer(50000).Legs))
	assert.Equal(t, 1, StopCount(connectingOffer().Legs))
	assert.Equal(t, 0, StopCount(nil), "empty itinerary floors at zero")
	assert.Equal(t, 0, StopCount([]models.Leg{{}}), "leg with no segments floors at zero")
}

func TestStopCountMatchesSegmentTotal(t *testing.T) {
	for _, f := range []models.FlightOffer{directOffer(50000), connectingOffer()} {
		total := 0
		for _, leg := range f.Legs {
			total += len(leg.Segments)
		}
		assert.Equal(t, total-1, StopCount(f.Legs))
	}
}

func TestPrimaryAirline(t *testing.T) {
	assert.Equal(t, "United Airlines", PrimaryAirline(directOffer(50000).Legs))
	assert.Equal(t, UnknownAirline, PrimaryAirline(nil))
	assert.Equal(t, UnknownAirline, PrimaryAirline([]models.Leg{{}}))
}

func TestTotalDuration(t *testing.T) {
	legs := []models.Leg{{DurationMinutes: 360}, {DurationMinutes: 420}}
	assert.Equal(t, 780, TotalDuration(legs))
	assert.Equal(t, 0, TotalDuration(nil))
}

func TestLayoverMinutes(t *testing.T) {
	arr := time.Date(2026, 7, 10, 13, 0, 0, 0, time.UTC)
	dep := arr.Add(90 * time.Minute)
	assert.Equal(t, 90, LayoverMinutes(arr, dep))
}

func TestHasLongLayover(t *testing.T) {
	assert.False(t, HasLongLayover(directOffer(50000)))
	assert.True(t, HasLongLayover(connectingOffer()), "5h layover exceeds the 4h cutoff")
}

func TestDedupKey(t *testing.T) {
	a := directOffer(50000)
	b := directOffer(50000)
	assert.Equal(t, DedupKey(a), DedupKey(b), "identical itineraries share a key")

	c := directOffer(51000)
	assert.NotEqual(t, DedupKey(a), DedupKey(c), "price is part of the identity")

	key := DedupKey(a)
	assert.Contains(t, key, "United Airlines")
	assert.Contains(t, key, "50000")
}

func TestClassify(t *testing.T) {
	facts := Classify(connectingOffer())

	assert.False(t, facts.IsDirect)
	assert.Equal(t, 1, facts.StopCount)
	assert.Equal(t, "United Airlines", facts.PrimaryAirline)
	assert.True(t, facts.HasLongLayover)
	require.NotEmpty(t, facts.DedupKey)
}
