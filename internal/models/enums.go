package models

import "fmt"

// CabinClass is the booked cabin for a flight.
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// ParseCabinClass validates a cabin class string. Unknown cabins are
// rejected rather than coerced.
func ParseCabinClass(s string) (CabinClass, error) {
	switch CabinClass(s) {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return CabinClass(s), nil
	}
	return "", fmt.Errorf("unknown cabin class %q", s)
}

// Season is the travel-demand tier derived from the departure date.
type Season string

const (
	SeasonLow      Season = "low"
	SeasonStandard Season = "standard"
	SeasonPeak     Season = "peak"
)

func ParseSeason(s string) (Season, error) {
	switch Season(s) {
	case SeasonLow, SeasonStandard, SeasonPeak:
		return Season(s), nil
	}
	return "", fmt.Errorf("unknown season %q", s)
}

// EliteStatus is a traveler's frequent-flyer tier.
type EliteStatus string

const (
	EliteNone     EliteStatus = "none"
	EliteSilver   EliteStatus = "silver"
	EliteGold     EliteStatus = "gold"
	ElitePlatinum EliteStatus = "platinum"
	EliteTopTier  EliteStatus = "1k"
)

func ParseEliteStatus(s string) (EliteStatus, error) {
	switch EliteStatus(s) {
	case EliteNone, EliteSilver, EliteGold, ElitePlatinum, EliteTopTier:
		return EliteStatus(s), nil
	}
	return "", fmt.Errorf("unknown elite status %q", s)
}
