package models

import "time"

type ClassifyRequest struct {
	Flight FlightOffer `json:"flight"`
}

func (r *ClassifyRequest) Validate() error {
	if r.Flight.ID == "" {
		return ErrMissingFlightID
	}
	return nil
}

type PriceChangeRequest struct {
	Route             string  `json:"route"`
	CurrentPriceCents int     `json:"current_price_cents"`
	ThresholdPercent  float64 `json:"threshold_percent,omitempty"`
}

func (r *PriceChangeRequest) Validate() error {
	if r.Route == "" {
		return ErrMissingRoute
	}
	if r.CurrentPriceCents < 0 {
		return ErrNegativePrice
	}
	if r.ThresholdPercent == 0 {
		r.ThresholdPercent = 5
	}
	return nil
}

type OptimizeRequest struct {
	FlightID       string `json:"flight_id"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	CashPriceCents int    `json:"cash_price_cents"`
	International  bool   `json:"international"`
	CabinClass     string `json:"cabin_class"`
	DepartureDate  string `json:"departure_date"`
	UserID         string `json:"user_id,omitempty"`
	UserPoints     *int   `json:"user_points,omitempty"`
}

func (r *OptimizeRequest) Validate() error {
	if r.FlightID == "" {
		return ErrMissingFlightID
	}
	if r.CashPriceCents < 0 {
		return ErrNegativePrice
	}
	if r.CabinClass == "" {
		r.CabinClass = string(CabinEconomy)
	}
	if r.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if _, err := time.Parse("2006-01-02", r.DepartureDate); err != nil {
		return ErrInvalidDepartureDate
	}
	return nil
}

// Departure parses the departure date. Validate must have succeeded first.
func (r *OptimizeRequest) Departure() time.Time {
	t, _ := time.Parse("2006-01-02", r.DepartureDate)
	return t
}

type UpgradeCandidate struct {
	FlightID        string  `json:"flight_id"`
	Airline         string  `json:"airline"`
	Route           string  `json:"route"`
	DistanceMiles   int     `json:"distance_miles"`
	BookingClass    string  `json:"booking_class"`
	DaysUntilFlight int     `json:"days_until_flight"`
	CabinLoadFactor float64 `json:"cabin_load_factor"`
	BasePriceCents  int     `json:"base_price_cents"`
}

type UpgradeRequest struct {
	Flights []UpgradeCandidate `json:"flights"`
}

func (r *UpgradeRequest) Validate() error {
	if len(r.Flights) == 0 {
		return ErrMissingFlights
	}
	return nil
}

type DelayRiskRequest struct {
	Airline   string    `json:"airline"`
	Route     string    `json:"route"`
	Departure time.Time `json:"departure"`
	Season    string    `json:"season"`
}

func (r *DelayRiskRequest) Validate() error {
	if r.Airline == "" {
		return ErrMissingAirline
	}
	if r.Route == "" {
		return ErrMissingRoute
	}
	if r.Season == "" {
		r.Season = string(SeasonStandard)
	}
	return nil
}

type MilesRequest struct {
	DistanceMiles       int     `json:"distance_miles"`
	BasePriceCents      int     `json:"base_price_cents"`
	EliteStatus         string  `json:"elite_status"`
	PromotionMultiplier float64 `json:"promotion_multiplier"`
}

func (r *MilesRequest) Validate() error {
	if r.DistanceMiles < 0 {
		return ErrNegativeDistance
	}
	if r.EliteStatus == "" {
		r.EliteStatus = string(EliteNone)
	}
	if r.PromotionMultiplier == 0 {
		r.PromotionMultiplier = 1
	}
	return nil
}

// AlertUpdate is one (current, target, previous) price observation for a
// user's alert, as supplied by the polling collaborator.
type AlertUpdate struct {
	AlertID            int64   `json:"alert_id"`
	UserID             int64   `json:"user_id"`
	Route              string  `json:"route"`
	TargetPriceCents   int     `json:"target_price_cents"`
	CurrentPriceCents  int     `json:"current_price_cents"`
	PreviousPriceCents *int    `json:"previous_price_cents,omitempty"`
	FlightLink         *string `json:"flight_link,omitempty"`
}

type ProcessAlertsRequest struct {
	Updates []AlertUpdate `json:"updates"`
}

func (r *ProcessAlertsRequest) Validate() error {
	for _, u := range r.Updates {
		if u.Route == "" {
			return ErrMissingRoute
		}
	}
	return nil
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingFlightID      ValidationError = "flight_id is required"
	ErrMissingRoute         ValidationError = "route is required"
	ErrMissingAirline       ValidationError = "airline is required"
	ErrMissingFlights       ValidationError = "at least one flight is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
	ErrInvalidDepartureDate ValidationError = "departure_date must be YYYY-MM-DD"
	ErrNegativePrice        ValidationError = "price must not be negative"
	ErrNegativeDistance     ValidationError = "distance must not be negative"
)
