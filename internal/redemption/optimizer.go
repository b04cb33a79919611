package redemption

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dharmasatrya/flightadvisor/internal/models"
	"github.com/dharmasatrya/flightadvisor/pkg/currency"
)

// Method is how an option pays for the flight.
type Method string

const (
	MethodCash            Method = "cash"
	MethodPoints          Method = "points"
	MethodHybrid          Method = "hybrid"
	MethodTransferPartner Method = "transfer_partner"
)

// A redemption clearing 1.2¢ per point is considered good value.
const goodValueCentsPerPoint = 1.2

var seasonMultipliers = map[models.Season]float64{
	models.SeasonLow:      0.8,
	models.SeasonStandard: 1.0,
	models.SeasonPeak:     1.25,
}

// Transfer partners typically price awards about 10% below the airline's
// own chart.
const transferPartnerDiscount = 0.9

// Option is one scored payment candidate. Options are created fresh per
// optimization and never mutated after ranking.
type Option struct {
	Airline          Airline `json:"airline"`
	Method           Method  `json:"method"`
	CashPriceCents   int     `json:"cash_price_cents"`
	PointsRequired   int     `json:"points_required"`
	PointsValueCents float64 `json:"points_value_cents"`
	TotalCostCents   int     `json:"total_cost_cents"`
	SavingsCents     int     `json:"savings_cents"`
	SavingsPercent   float64 `json:"savings_percent"`
	BookingURL       string  `json:"booking_url"`
	Recommendation   string  `json:"recommendation"`
	Rank             int     `json:"rank"`
}

// Result is the full ranked option set for one flight.
type Result struct {
	FlightID          string        `json:"flight_id"`
	Origin            string        `json:"origin"`
	Destination       string        `json:"destination"`
	CashPriceCents    int           `json:"cash_price_cents"`
	Season            models.Season `json:"season"`
	AllOptions        []Option      `json:"all_options"`
	BestOption        Option        `json:"best_option"`
	TopThree          []Option      `json:"top_three"`
	TotalSavingsCents int           `json:"total_savings_cents"`
	UserPoints        int           `json:"user_points"`
	CanAfford         bool          `json:"can_afford"`
}

// Input describes one flight to optimize.
type Input struct {
	FlightID       string
	Origin         string
	Destination    string
	CashPriceCents int
	International  bool
	Cabin          models.CabinClass
	Departure      time.Time
	UserPoints     int
}

// DetermineSeason maps a departure date onto a demand tier. Summer and
// holiday months, and any weekend departure, are peak; shoulder months are
// standard; the rest is low.
func DetermineSeason(departure time.Time) models.Season {
	switch departure.Month() {
	case time.June, time.July, time.August, time.November, time.December:
		return models.SeasonPeak
	}
	if wd := departure.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return models.SeasonPeak
	}
	switch departure.Month() {
	case time.April, time.May, time.September, time.October:
		return models.SeasonStandard
	}
	return models.SeasonLow
}

// BasePoints returns the award-chart points requirement for a cabin on a
// domestic or international routing. First class prices at 1.5x the
// business chart and premium economy at 1.3x the economy chart.
func BasePoints(rate Rate, international bool, cabin models.CabinClass) (int, error) {
	economy, business := rate.DomesticEconomy, rate.DomesticBusiness
	if international {
		economy, business = rate.InternationalEconomy, rate.InternationalBusiness
	}

	switch cabin {
	case models.CabinFirst:
		return int(math.Round(float64(business) * 1.5)), nil
	case models.CabinBusiness:
		return business, nil
	case models.CabinPremiumEconomy:
		return int(math.Round(float64(economy) * 1.3)), nil
	case models.CabinEconomy:
		return economy, nil
	}
	return 0, fmt.Errorf("unknown cabin class %q", cabin)
}

// AdjustForSeason scales a points requirement by the season multiplier and
// rounds to the nearest point.
func AdjustForSeason(basePoints int, season models.Season) (int, error) {
	m, ok := seasonMultipliers[season]
	if !ok {
		return 0, fmt.Errorf("unknown season %q", season)
	}
	return int(math.Round(float64(basePoints) * m)), nil
}

// IsGoodValue reports whether an effective cents-per-point rate clears the
// 1.2¢ bar.
func IsGoodValue(pointsValueCents float64) bool {
	return pointsValueCents >= goodValueCentsPerPoint
}

// Optimize enumerates every payment method across every cataloged airline,
// ranks the candidates by total effective cost ascending, and returns the
// ranked set. Malformed cabin input is rejected outright; no partial result
// is produced.
func Optimize(in Input) (Result, error) {
	season := DetermineSeason(in.Departure)
	var options []Option

	for _, rate := range Rates() {
		base, err := BasePoints(rate, in.International, in.Cabin)
		if err != nil {
			return Result{}, err
		}
		adjusted, err := AdjustForSeason(base, season)
		if err != nil {
			return Result{}, err
		}

		options = append(options, cashOption(in, rate))
		options = append(options, pointsOption(in, rate, adjusted))
		if in.UserPoints > 0 {
			options = append(options, hybridOption(in, rate, adjusted))
		}
		if len(rate.TransferPartners) > 0 {
			options = append(options, transferOption(in, rate, adjusted))
		}
	}

	// Cheapest effective cost first; catalog order breaks ties.
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalCostCents < options[j].TotalCostCents
	})
	for i := range options {
		options[i].Rank = i + 1
	}

	best := options[0]
	topN := 3
	if len(options) < topN {
		topN = len(options)
	}

	return Result{
		FlightID:          in.FlightID,
		Origin:            in.Origin,
		Destination:       in.Destination,
		CashPriceCents:    in.CashPriceCents,
		Season:            season,
		AllOptions:        options,
		BestOption:        best,
		TopThree:          options[:topN],
		TotalSavingsCents: best.SavingsCents,
		UserPoints:        in.UserPoints,
		CanAfford:         in.UserPoints >= best.PointsRequired,
	}, nil
}

func cashOption(in Input, rate Rate) Option {
	return Option{
		Airline:        rate.Airline,
		Method:         MethodCash,
		CashPriceCents: in.CashPriceCents,
		TotalCostCents: in.CashPriceCents,
		BookingURL:     fmt.Sprintf("%s?origin=%s&destination=%s", rate.BookingURL, in.Origin, in.Destination),
		Recommendation: "Direct payment with credit card",
	}
}

func pointsOption(in Input, rate Rate, adjustedPoints int) Option {
	pointsValue := effectiveValue(in.CashPriceCents, adjustedPoints)
	totalCost := int(math.Round(float64(adjustedPoints) * rate.PointValueCents))

	recommendation := "Below average - consider cash"
	if IsGoodValue(pointsValue) {
		recommendation = "Excellent value - use points!"
	}

	return Option{
		Airline:          rate.Airline,
		Method:           MethodPoints,
		CashPriceCents:   in.CashPriceCents,
		PointsRequired:   adjustedPoints,
		PointsValueCents: pointsValue,
		TotalCostCents:   totalCost,
		SavingsCents:     in.CashPriceCents - totalCost,
		SavingsPercent:   savingsPercent(in.CashPriceCents, in.CashPriceCents-totalCost),
		BookingURL:       fmt.Sprintf("%s?origin=%s&destination=%s&awards=true", rate.BookingURL, in.Origin, in.Destination),
		Recommendation:   recommendation,
	}
}

func hybridOption(in Input, rate Rate, adjustedPoints int) Option {
	points := in.UserPoints
	if adjustedPoints < points {
		points = adjustedPoints
	}

	pointsValue := effectiveValue(in.CashPriceCents, adjustedPoints)
	redeemed := int(math.Round(float64(points) * pointsValue))
	cash := in.CashPriceCents - redeemed
	if cash < 0 {
		cash = 0
	}
	totalCost := cash + int(math.Round(float64(points)*rate.PointValueCents))

	return Option{
		Airline:          rate.Airline,
		Method:           MethodHybrid,
		CashPriceCents:   cash,
		PointsRequired:   points,
		PointsValueCents: pointsValue,
		TotalCostCents:   totalCost,
		SavingsCents:     in.CashPriceCents - totalCost,
		SavingsPercent:   savingsPercent(in.CashPriceCents, in.CashPriceCents-totalCost),
		BookingURL:       fmt.Sprintf("%s?origin=%s&destination=%s&hybrid=true", rate.BookingURL, in.Origin, in.Destination),
		Recommendation:   fmt.Sprintf("Use %s points + %s cash", currency.FormatPoints(points), currency.FormatCents(cash, "USD")),
	}
}

func transferOption(in Input, rate Rate, adjustedPoints int) Option {
	points := int(math.Round(float64(adjustedPoints) * transferPartnerDiscount))
	pointsValue := effectiveValue(in.CashPriceCents, points)
	totalCost := int(math.Round(float64(points) * rate.PointValueCents * transferPartnerDiscount))

	return Option{
		Airline:          rate.Airline,
		Method:           MethodTransferPartner,
		CashPriceCents:   in.CashPriceCents,
		PointsRequired:   points,
		PointsValueCents: pointsValue,
		TotalCostCents:   totalCost,
		SavingsCents:     in.CashPriceCents - totalCost,
		SavingsPercent:   savingsPercent(in.CashPriceCents, in.CashPriceCents-totalCost),
		BookingURL:       fmt.Sprintf("%s?origin=%s&destination=%s&partner=true", rate.BookingURL, in.Origin, in.Destination),
		Recommendation:   fmt.Sprintf("Transfer to %s for better value", rate.TransferPartners[0]),
	}
}

// effectiveValue is the cents-per-point rate this redemption yields. Zero
// when either side of the ratio is zero.
func effectiveValue(cashPriceCents, points int) float64 {
	if points == 0 || cashPriceCents == 0 {
		return 0
	}
	return float64(cashPriceCents) / float64(points)
}

func savingsPercent(cashPriceCents, savingsCents int) float64 {
	if cashPriceCents == 0 {
		return 0
	}
	return (float64(savingsCents) / float64(cashPriceCents)) * 100
}
