package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

func offers() []models.FlightOffer {
	direct := directOffer(50000)
	connecting := connectingOffer()
	cheap := directOffer(42000)
	cheap.ID = "UA-101"
	cheap.Legs[0].DurationMinutes = 400
	cheap.DurationMinutes = 400
	direct.DurationMinutes = 360
	connecting.DurationMinutes = 1020
	return []models.FlightOffer{direct, connecting, cheap}
}

func TestFilterByType(t *testing.T) {
	all := offers()

	assert.Len(t, FilterByType(all, "all"), 3)
	assert.Len(t, FilterByType(all, "direct"), 2)
	assert.Len(t, FilterByType(all, "connecting"), 1)
	assert.Len(t, FilterByType(all, "bogus"), 3, "unknown filter keeps everything")
}

func TestSort(t *testing.T) {
	all := offers()

	byPrice := Sort(all, "price")
	assert.Equal(t, 42000, byPrice[0].PriceCents)

	byDuration := Sort(all, "duration")
	assert.Equal(t, 360, byDuration[0].DurationMinutes)

	// input untouched
	assert.Equal(t, 50000, all[0].PriceCents)
}

func TestGroupByAirline(t *testing.T) {
	grouped := GroupByAirline(offers())
	require.Contains(t, grouped, "United Airlines")
	assert.Len(t, grouped["United Airlines"], 3)
}

func TestBestPrice(t *testing.T) {
	best, ok := BestPrice(offers())
	require.True(t, ok)
	assert.Equal(t, 42000, best)

	_, ok = BestPrice(nil)
	assert.False(t, ok)
}

func TestFastest(t *testing.T) {
	fastest, ok := Fastest(offers())
	require.True(t, ok)
	assert.Equal(t, 360, fastest.DurationMinutes)

	_, ok = Fastest(nil)
	assert.False(t, ok)
}

func TestAveragePrice(t *testing.T) {
	assert.Equal(t, 0, AveragePrice(nil))

	avg := AveragePrice([]models.FlightOffer{{PriceCents: 100}, {PriceCents: 201}})
	assert.Equal(t, 151, avg, "rounds to nearest cent")
}

func TestStopoverCities(t *testing.T) {
	cities := StopoverCities(connectingOffer())
	assert.Equal(t, []string{"JFK", "SFO", "PVG"}, cities)
}

func TestStopoverCitiesDeduplicates(t *testing.T) {
	dep := time.Date(2026, 7, 10, 8, 0, 0, 0, time.UTC)
	f := models.FlightOffer{Legs: []models.Leg{
		{Segments: []models.Segment{segment("JFK", "SFO", "UA", dep, dep.Add(time.Hour))}},
		{Segments: []models.Segment{segment("SFO", "JFK", "UA", dep.Add(48*time.Hour), dep.Add(54*time.Hour))}},
	}}
	assert.Equal(t, []string{"JFK", "SFO"}, StopoverCities(f))
}
