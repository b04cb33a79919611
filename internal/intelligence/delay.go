package intelligence

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

// RiskFactor is one human-readable contributor to a delay-risk score.
type RiskFactor string

const (
	RiskAirlineDelayRate RiskFactor = "Airline has higher than average delay rate"
	RiskChinaRoute       RiskFactor = "International route to China has higher delay risk"
	RiskMorningRush      RiskFactor = "Early morning departure (higher congestion)"
	RiskEveningRush      RiskFactor = "Evening departure (peak travel time)"
	RiskPeakSeason       RiskFactor = "Peak travel season increases delay risk"
)

// DelayRiskAssessment scores how likely a flight is to run late.
type DelayRiskAssessment struct {
	FlightID            string       `json:"flight_id"`
	Airline             string       `json:"airline"`
	Route               string       `json:"route"`
	DelayRiskScore      int          `json:"delay_risk_score"`
	DelayProbability    float64      `json:"delay_probability"`
	AverageDelayMinutes int          `json:"average_delay_minutes"`
	RiskFactors         []RiskFactor `json:"risk_factors"`
	Recommendation      string       `json:"recommendation"`
}

// Historical delay-rate addends per carrier. Unlisted airlines score the
// neutral default.
var airlineDelayRates = map[string]int{
	"United Airlines":    15,
	"American Airlines":  18,
	"Delta Airlines":     14,
	"Southwest Airlines": 20,
	"China Eastern":      25,
	"Air China":          28,
	"China Southern":     26,
}

const defaultAirlineDelayRate = 20

// DelayRisk assesses delay risk from airline history, route, departure
// window, and season. The score is capped at 100; the probability is
// score/100 and the expected delay tops out at 45 minutes.
func DelayRisk(airline, route string, departure time.Time, season models.Season) DelayRiskAssessment {
	score := 20
	var factors []RiskFactor

	airlineRate, ok := airlineDelayRates[airline]
	if !ok {
		airlineRate = defaultAirlineDelayRate
	}
	score += airlineRate
	if airlineRate > defaultAirlineDelayRate {
		factors = append(factors, RiskAirlineDelayRate)
	}

	if strings.Contains(route, "PVG") || strings.Contains(route, "SHA") || strings.Contains(route, "PEI") {
		score += 15
		factors = append(factors, RiskChinaRoute)
	}

	hour := departure.Hour()
	if hour >= 6 && hour <= 9 {
		score += 10
		factors = append(factors, RiskMorningRush)
	} else if hour >= 17 && hour <= 20 {
		score += 12
		factors = append(factors, RiskEveningRush)
	}

	if season == models.SeasonPeak {
		score += 15
		factors = append(factors, RiskPeakSeason)
	}

	if score > 100 {
		score = 100
	}
	probability := math.Min(1, float64(score)/100)
	averageDelay := int(math.Round(probability * 45))

	recommendation := "Low delay risk - flight likely on time"
	if score > 70 {
		recommendation = "High delay risk - consider flexible plans"
	} else if score > 50 {
		recommendation = "Moderate delay risk - allow extra time"
	}

	return DelayRiskAssessment{
		FlightID:            fmt.Sprintf("%s-%s", airline, route),
		Airline:             airline,
		Route:               route,
		DelayRiskScore:      score,
		DelayProbability:    probability,
		AverageDelayMinutes: averageDelay,
		RiskFactors:         factors,
		Recommendation:      recommendation,
	}
}
