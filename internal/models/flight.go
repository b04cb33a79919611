package models

import "time"

// Segment is a single flown hop between two airports.
type Segment struct {
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Departure       time.Time `json:"departure"`
	Arrival         time.Time `json:"arrival"`
	Carrier         string    `json:"carrier"`
	FlightNumber    string    `json:"flight_number"`
	Aircraft        *string   `json:"aircraft,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Leg is one directional portion of a trip (outbound or return). Segments
// are chronologically ordered and contiguous: segment i's destination is
// segment i+1's origin.
type Leg struct {
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Departure       time.Time `json:"departure"`
	Arrival         time.Time `json:"arrival"`
	Segments        []Segment `json:"segments"`
	DurationMinutes int       `json:"duration_minutes"`
}

// FlightOffer is a normalized offer as supplied by the upstream provider.
// Prices are integer minor currency units (cents). Offers are never mutated
// after creation.
type FlightOffer struct {
	ID              string    `json:"id"`
	Airline         string    `json:"airline"`
	Departure       time.Time `json:"departure"`
	Arrival         time.Time `json:"arrival"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int       `json:"price_cents"`
	Currency        string    `json:"currency"`
	Legs            []Leg     `json:"legs"`
	DeepLink        *string   `json:"deep_link,omitempty"`
}
