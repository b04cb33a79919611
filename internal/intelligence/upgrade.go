// Package intelligence provides advisory heuristics for flights: upgrade
// likelihood, delay risk, and miles accrual. The scores are deterministic
// pure functions; missing reference data degrades to neutral defaults
// since none of these are financial commitments.
package intelligence

import (
	"math"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

// UpgradeOpportunity is the upgrade outlook for one flight.
type UpgradeOpportunity struct {
	FlightID            string            `json:"flight_id"`
	Airline             string            `json:"airline"`
	Route               string            `json:"route"`
	CurrentCabin        models.CabinClass `json:"current_cabin"`
	UpgradeProbability  float64           `json:"upgrade_probability"`
	EstimatedValueCents int               `json:"estimated_value_cents"`
	Recommendation      string            `json:"recommendation"`
}

type cabinPair struct {
	from, to models.CabinClass
}

// Premium multipliers applied to the base fare for a cabin jump. Operator
// tunables, not physical law.
var upgradePremiums = map[cabinPair]float64{
	{models.CabinEconomy, models.CabinPremiumEconomy}:  0.3,
	{models.CabinEconomy, models.CabinBusiness}:        1.5,
	{models.CabinEconomy, models.CabinFirst}:           2.5,
	{models.CabinPremiumEconomy, models.CabinBusiness}: 1.2,
	{models.CabinPremiumEconomy, models.CabinFirst}:    2.2,
	{models.CabinBusiness, models.CabinFirst}:          0.8,
}

// UpgradeProbability scores the chance of an operational upgrade from an
// additive rubric: longer flights, deep-discount booking classes, close-in
// departures, and full cabins all push the probability up. Clamped to [0,1].
func UpgradeProbability(airline string, distanceMiles int, bookingClass string, daysUntilFlight int, cabinLoadFactor float64) float64 {
	probability := 0.3

	if distanceMiles > 3000 {
		probability += 0.2
	}
	if distanceMiles > 5000 {
		probability += 0.15
	}

	if bookingClass == "Y" {
		probability += 0.2
	}
	if bookingClass == "M" {
		probability += 0.15
	}

	if daysUntilFlight < 7 {
		probability += 0.15
	}
	if daysUntilFlight < 3 {
		probability += 0.1
	}

	if cabinLoadFactor < 0.7 {
		probability -= 0.2
	}
	if cabinLoadFactor > 0.9 {
		probability += 0.15
	}

	if airline == "United Airlines" {
		probability += 0.1
	}

	return math.Min(1, math.Max(0, probability))
}

// UpgradeValue estimates what a cabin jump would cost as a fraction of the
// base fare. Unknown cabin pairs are worth zero.
func UpgradeValue(currentCabin, targetCabin models.CabinClass, basePriceCents int) int {
	premium := upgradePremiums[cabinPair{currentCabin, targetCabin}]
	return int(math.Round(float64(basePriceCents) * premium))
}

// DetectUpgradeOpportunities scores a batch of candidate flights for
// economy-to-business upgrades.
func DetectUpgradeOpportunities(flights []models.UpgradeCandidate) []UpgradeOpportunity {
	out := make([]UpgradeOpportunity, 0, len(flights))
	for _, f := range flights {
		probability := UpgradeProbability(f.Airline, f.DistanceMiles, f.BookingClass, f.DaysUntilFlight, f.CabinLoadFactor)
		value := UpgradeValue(models.CabinEconomy, models.CabinBusiness, f.BasePriceCents)

		recommendation := "No upgrade expected"
		if probability > 0.7 {
			recommendation = "High upgrade probability - check in early!"
		} else if probability > 0.5 {
			recommendation = "Moderate upgrade chance - monitor seat map"
		}

		out = append(out, UpgradeOpportunity{
			FlightID:            f.FlightID,
			Airline:             f.Airline,
			Route:               f.Route,
			CurrentCabin:        models.CabinEconomy,
			UpgradeProbability:  probability,
			EstimatedValueCents: value,
			Recommendation:      recommendation,
		})
	}
	return out
}
