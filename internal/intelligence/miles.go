package intelligence

import (
	"math"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

// MilesAccumulation projects the points earned by flying a route.
type MilesAccumulation struct {
	BasePoints       int `json:"base_points"`
	EliteBonus       int `json:"elite_bonus"`
	PromotionalBonus int `json:"promotional_bonus"`
	TotalPoints      int `json:"total_points"`
	PointsValueCents int `json:"points_value_cents"`
}

// Elite earning bonuses as a fraction of base points. Unknown tiers earn
// no bonus.
var eliteBonuses = map[models.EliteStatus]float64{
	models.EliteNone:     0,
	models.EliteSilver:   0.1,
	models.EliteGold:     0.25,
	models.ElitePlatinum: 0.5,
	models.EliteTopTier:  0.75,
}

// Earned points convert to cash value at a flat 30,000 points per $400.
const (
	pointsValueBasis      = 30000
	pointsValueBasisCents = 40000
)

// MilesAccrual projects miles earned for a flight: one point per mile flown
// with a 5,000-point floor, plus the elite-tier bonus and any promotional
// multiplier. The base price does not affect earnings under a
// distance-based program but stays in the signature for callers that price
// revenue-based promotions.
func MilesAccrual(distanceMiles, basePriceCents int, status models.EliteStatus, promotionMultiplier float64) MilesAccumulation {
	basePoints := distanceMiles
	if basePoints < 5000 {
		basePoints = 5000
	}

	eliteBonus := int(math.Round(float64(basePoints) * eliteBonuses[status]))
	promotionalBonus := int(math.Round(float64(basePoints) * (promotionMultiplier - 1)))

	total := basePoints + eliteBonus + promotionalBonus
	value := int(math.Round(float64(total) / pointsValueBasis * pointsValueBasisCents))

	return MilesAccumulation{
		BasePoints:       basePoints,
		EliteBonus:       eliteBonus,
		PromotionalBonus: promotionalBonus,
		TotalPoints:      total,
		PointsValueCents: value,
	}
}
