package classifier

import (
	"math"
	"sort"
	"strings"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

// FilterByType keeps offers matching a directness filter: "all", "direct"
// or "connecting". Unknown filters behave like "all".
func FilterByType(flights []models.FlightOffer, flightType string) []models.FlightOffer {
	switch strings.ToLower(flightType) {
	case "direct", "connecting":
	default:
		return flights
	}

	result := make([]models.FlightOffer, 0, len(flights))
	for _, f := range flights {
		direct := IsDirect(f.Legs)
		if flightType == "direct" && direct {
			result = append(result, f)
		}
		if flightType == "connecting" && !direct {
			result = append(result, f)
		}
	}
	return result
}

// Sort orders offers by "price", "duration" or "departure", ascending.
// Unknown criteria default to price. The input slice is not modified.
func Sort(flights []models.FlightOffer, sortBy string) []models.FlightOffer {
	sorted := make([]models.FlightOffer, len(flights))
	copy(sorted, flights)

	switch strings.ToLower(sortBy) {
	case "duration":
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].DurationMinutes < sorted[j].DurationMinutes
		})
	case "departure":
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Departure.Before(sorted[j].Departure)
		})
	default:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].PriceCents < sorted[j].PriceCents
		})
	}

	return sorted
}

// GroupByAirline buckets offers by their primary airline.
func GroupByAirline(flights []models.FlightOffer) map[string][]models.FlightOffer {
	grouped := make(map[string][]models.FlightOffer)
	for _, f := range flights {
		airline := PrimaryAirline(f.Legs)
		grouped[airline] = append(grouped[airline], f)
	}
	return grouped
}

// BestPrice returns the lowest price in cents among the offers.
func BestPrice(flights []models.FlightOffer) (int, bool) {
	if len(flights) == 0 {
		return 0, false
	}
	best := flights[0].PriceCents
	for _, f := range flights[1:] {
		if f.PriceCents < best {
			best = f.PriceCents
		}
	}
	return best, true
}

// Fastest returns the offer with the shortest total duration.
func Fastest(flights []models.FlightOffer) (models.FlightOffer, bool) {
	if len(flights) == 0 {
		return models.FlightOffer{}, false
	}
	fastest := flights[0]
	for _, f := range flights[1:] {
		if f.DurationMinutes < fastest.DurationMinutes {
			fastest = f
		}
	}
	return fastest, true
}

// AveragePrice is the mean offer price in cents, rounded to the nearest
// cent. Zero for an empty slice.
func AveragePrice(flights []models.FlightOffer) int {
	if len(flights) == 0 {
		return 0
	}
	sum := 0
	for _, f := range flights {
		sum += f.PriceCents
	}
	return int(math.Round(float64(sum) / float64(len(flights))))
}

// StopoverCities lists the unique airports touched by an offer, in travel
// order.
func StopoverCities(f models.FlightOffer) []string {
	seen := make(map[string]bool)
	var cities []string

	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			cities = append(cities, code)
		}
	}

	for _, leg := range f.Legs {
		for i, seg := range leg.Segments {
			if i == 0 {
				add(seg.Origin)
			}
			add(seg.Destination)
		}
	}
	return cities
}
