package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStatsEmpty(t *testing.T) {
	stats := CalculateStats(nil)

	assert.Zero(t, stats.TotalAlerts)
	assert.Zero(t, stats.AverageSavingsCents)
	assert.Nil(t, stats.BestDeal)
	assert.Nil(t, stats.WorstDeal)
}

func TestCalculateStats(t *testing.T) {
	events := []PriceAlertEvent{
		{AlertID: 1, TargetPriceCents: 50000, CurrentPriceCents: 45000}, // saves 5000
		{AlertID: 2, TargetPriceCents: 50000, CurrentPriceCents: 49000}, // saves 1000
		{AlertID: 3, TargetPriceCents: 50000, CurrentPriceCents: 40000}, // saves 10000
	}

	stats := CalculateStats(events)

	assert.Equal(t, 3, stats.TotalAlerts)
	assert.Equal(t, 5333, stats.AverageSavingsCents)
	require.NotNil(t, stats.BestDeal)
	require.NotNil(t, stats.WorstDeal)
	assert.Equal(t, int64(3), stats.BestDeal.AlertID)
	assert.Equal(t, int64(2), stats.WorstDeal.AlertID)
}

func TestCalculateStatsFloorsSavingsAtZero(t *testing.T) {
	events := []PriceAlertEvent{
		{AlertID: 1, TargetPriceCents: 40000, CurrentPriceCents: 47500}, // drop-triggered, no savings vs target
		{AlertID: 2, TargetPriceCents: 50000, CurrentPriceCents: 45000},
	}

	stats := CalculateStats(events)

	assert.Equal(t, 2500, stats.AverageSavingsCents)
	assert.Equal(t, int64(2), stats.BestDeal.AlertID)
	assert.Equal(t, int64(1), stats.WorstDeal.AlertID)
}
