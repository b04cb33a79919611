package alerts

import "math"

// Stats summarizes a set of triggered alert events. Savings per event is
// how far the current price undercut the target, floored at zero.
type Stats struct {
	TotalAlerts         int              `json:"total_alerts"`
	AverageSavingsCents int              `json:"average_savings_cents"`
	BestDeal            *PriceAlertEvent `json:"best_deal,omitempty"`
	WorstDeal           *PriceAlertEvent `json:"worst_deal,omitempty"`
}

func eventSavings(e PriceAlertEvent) int {
	savings := e.TargetPriceCents - e.CurrentPriceCents
	if savings < 0 {
		return 0
	}
	return savings
}

// CalculateStats aggregates savings across events. BestDeal and WorstDeal
// are nil for an empty input.
func CalculateStats(events []PriceAlertEvent) Stats {
	if len(events) == 0 {
		return Stats{}
	}

	total := 0
	best, worst := 0, 0
	for i, e := range events {
		savings := eventSavings(e)
		total += savings
		if savings > eventSavings(events[best]) {
			best = i
		}
		if savings < eventSavings(events[worst]) {
			worst = i
		}
	}

	return Stats{
		TotalAlerts:         len(events),
		AverageSavingsCents: int(math.Round(float64(total) / float64(len(events)))),
		BestDeal:            &events[best],
		WorstDeal:           &events[worst],
	}
}
