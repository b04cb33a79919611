package redemption

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightadvisor/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestDetermineSeason(t *testing.T) {
	tests := []struct {
		name      string
		departure time.Time
		want      models.Season
	}{
		{"july is peak", date(2026, time.July, 15), models.SeasonPeak},
		{"december is peak", date(2026, time.December, 1), models.SeasonPeak},
		{"april tuesday is standard", date(2026, time.April, 7), models.SeasonStandard},
		{"october thursday is standard", date(2026, time.October, 1), models.SeasonStandard},
		{"january tuesday is low", date(2026, time.January, 6), models.SeasonLow},
		{"january saturday is peak", date(2026, time.January, 10), models.SeasonPeak},
		{"march sunday is peak", date(2026, time.March, 1), models.SeasonPeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineSeason(tt.departure))
		})
	}
}

func TestBasePoints(t *testing.T) {
	rate, ok := Lookup(United)
	require.True(t, ok)

	tests := []struct {
		name          string
		international bool
		cabin         models.CabinClass
		want          int
	}{
		{"domestic economy", false, models.CabinEconomy, 12500},
		{"international economy", true, models.CabinEconomy, 30000},
		{"international business", true, models.CabinBusiness, 100000},
		{"international first is 1.5x business", true, models.CabinFirst, 150000},
		{"domestic premium economy is 1.3x economy", false, models.CabinPremiumEconomy, 16250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BasePoints(rate, tt.international, tt.cabin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := BasePoints(rate, true, models.CabinClass("suite"))
	assert.Error(t, err)
}

func TestAdjustForSeason(t *testing.T) {
	low, err := AdjustForSeason(30000, models.SeasonLow)
	require.NoError(t, err)
	assert.Equal(t, 24000, low)

	standard, err := AdjustForSeason(30000, models.SeasonStandard)
	require.NoError(t, err)
	assert.Equal(t, 30000, standard)

	peak, err := AdjustForSeason(30000, models.SeasonPeak)
	require.NoError(t, err)
	assert.Equal(t, 37500, peak)

	rounded, err := AdjustForSeason(16250, models.SeasonLow)
	require.NoError(t, err)
	assert.Equal(t, 13000, rounded)

	_, err = AdjustForSeason(30000, models.Season("monsoon"))
	assert.Error(t, err)
}

func TestOptimizeRankingInvariant(t *testing.T) {
	result, err := Optimize(Input{
		FlightID:       "f1",
		Origin:         "JFK",
		Destination:    "PVG",
		CashPriceCents: 58000,
		International:  true,
		Cabin:          models.CabinEconomy,
		Departure:      date(2026, time.July, 15),
		UserPoints:     40000,
	})
	require.NoError(t, err)

	assert.True(t, sort.SliceIsSorted(result.AllOptions, func(i, j int) bool {
		return result.AllOptions[i].TotalCostCents < result.AllOptions[j].TotalCostCents
	}), "options sorted ascending by total cost")

	assert.Equal(t, result.AllOptions[0], result.BestOption)
	assert.Len(t, result.TopThree, 3)
	assert.Equal(t, result.BestOption.SavingsCents, result.TotalSavingsCents)

	for i, opt := range result.AllOptions {
		assert.Equal(t, i+1, opt.Rank)
	}

	// every airline has transfer partners and the user holds points, so
	// each contributes four methods
	assert.Len(t, result.AllOptions, 4*len(Rates()))
}

func TestOptimizePeakInternationalEconomyScenario(t *testing.T) {
	result, err := Optimize(Input{
		FlightID:       "f1",
		Origin:         "JFK",
		Destination:    "PVG",
		CashPriceCents: 58000,
		International:  true,
		Cabin:          models.CabinEconomy,
		Departure:      date(2026, time.July, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, models.SeasonPeak, result.Season)

	var united Option
	for _, opt := range result.AllOptions {
		if opt.Airline == United && opt.Method == MethodPoints {
			united = opt
		}
	}

	require.NotZero(t, united.PointsRequired)
	assert.Equal(t, 37500, united.PointsRequired, "round(30000 * 1.25)")
	assert.Equal(t, 48750, united.TotalCostCents, "round(37500 * 1.3)")
	assert.Equal(t, 9250, united.SavingsCents)
	assert.InDelta(t, 58000.0/37500.0, united.PointsValueCents, 1e-9)
}

func TestOptimizeHybridOnlyWithPoints(t *testing.T) {
	without, err := Optimize(Input{
		FlightID:       "f1",
		CashPriceCents: 58000,
		International:  true,
		Cabin:          models.CabinEconomy,
		Departure:      date(2026, time.July, 15),
	})
	require.NoError(t, err)
	for _, opt := range without.AllOptions {
		assert.NotEqual(t, MethodHybrid, opt.Method)
	}

	with, err := Optimize(Input{
		FlightID:       "f1",
		CashPriceCents: 58000,
		International:  true,
		Cabin:          models.CabinEconomy,
		Departure:      date(2026, time.July, 15),
		UserPoints:     10000,
	})
	require.NoError(t, err)

	found := false
	for _, opt := range with.AllOptions {
		if opt.Method == MethodHybrid {
			found = true
			assert.Equal(t, 10000, opt.PointsRequired, "capped at the traveler's balance")
		}
	}
	assert.True(t, found)
}

func TestOptimizeTransferPartnerDiscount(t *testing.T) {
	result, err := Optimize(Input{
		FlightID:       "f1",
		CashPriceCents: 58000,
		International:  true,
		Cabin:          models.CabinEconomy,
		Departure:      date(2026, time.July, 15),
	})
	require.NoError(t, err)

	for _, opt := range result.AllOptions {
		if opt.Airline == United && opt.Method == MethodTransferPartner {
			assert.Equal(t, 33750, opt.PointsRequired, "round(37500 * 0.9)")
			assert.Equal(t, 39488, opt.TotalCostCents, "round(33750 * 1.3 * 0.9)")
		}
	}
}

func TestOptimizeZeroCashPrice(t *testing.T) {
	result, err := Optimize(Input{
		FlightID:      "f1",
		International: false,
		Cabin:         models.CabinEconomy,
		Departure:     date(2026, time.January, 6),
		UserPoints:    5000,
	})
	require.NoError(t, err)

	for _, opt := range result.AllOptions {
		assert.Zero(t, opt.PointsValueCents, "zero price never divides")
		assert.Zero(t, opt.SavingsPercent)
	}
}

func TestOptimizeCanAfford(t *testing.T) {
	result, err := Optimize(Input{
		FlightID:       "f1",
		CashPriceCents: 58000,
		International:  true,
		Cabin:          models.CabinEconomy,
		Departure:      date(2026, time.July, 15),
		UserPoints:     200000,
	})
	require.NoError(t, err)
	assert.True(t, result.CanAfford)

	broke, err := Optimize(Input{
		FlightID:       "f1",
		CashPriceCents: 5000,
		International:  true,
		Cabin:          models.CabinBusiness,
		Departure:      date(2026, time.July, 15),
	})
	require.NoError(t, err)
	if broke.BestOption.PointsRequired > 0 {
		assert.False(t, broke.CanAfford)
	}
}

func TestOptimizeRejectsUnknownCabin(t *testing.T) {
	_, err := Optimize(Input{
		FlightID:       "f1",
		CashPriceCents: 58000,
		Cabin:          models.CabinClass("suite"),
		Departure:      date(2026, time.July, 15),
	})
	assert.Error(t, err)
}

func TestIsGoodValue(t *testing.T) {
	assert.True(t, IsGoodValue(1.2))
	assert.True(t, IsGoodValue(1.55))
	assert.False(t, IsGoodValue(1.19))
}
