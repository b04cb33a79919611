package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

func TestMilesAccrualFloor(t *testing.T) {
	a := MilesAccrual(800, 20000, models.EliteNone, 1)

	assert.Equal(t, 5000, a.BasePoints, "short hops floor at 5000")
	assert.Zero(t, a.EliteBonus)
	assert.Zero(t, a.PromotionalBonus)
	assert.Equal(t, 5000, a.TotalPoints)
}

func TestMilesAccrualEliteTiers(t *testing.T) {
	tests := []struct {
		status models.EliteStatus
		bonus  int
	}{
		{models.EliteNone, 0},
		{models.EliteSilver, 600},
		{models.EliteGold, 1500},
		{models.ElitePlatinum, 3000},
		{models.EliteTopTier, 4500},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := MilesAccrual(6000, 58000, tt.status, 1)
			assert.Equal(t, 6000, a.BasePoints)
			assert.Equal(t, tt.bonus, a.EliteBonus)
		})
	}
}

func TestMilesAccrualPromotion(t *testing.T) {
	a := MilesAccrual(6000, 58000, models.EliteNone, 2)
	assert.Equal(t, 6000, a.PromotionalBonus, "double-miles promotion doubles base")
	assert.Equal(t, 12000, a.TotalPoints)
}

func TestMilesAccrualPointsValue(t *testing.T) {
	a := MilesAccrual(6000, 58000, models.EliteGold, 1)

	// 6000 + 1500 = 7500 points at 30,000 pts : $400
	assert.Equal(t, 7500, a.TotalPoints)
	assert.Equal(t, 10000, a.PointsValueCents)
}

func TestMilesAccrualUnknownStatusEarnsNoBonus(t *testing.T) {
	a := MilesAccrual(6000, 58000, models.EliteStatus("diamond"), 1)
	assert.Zero(t, a.EliteBonus)
}
