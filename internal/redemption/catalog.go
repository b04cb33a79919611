// Package redemption ranks loyalty-point payment strategies for a flight
// across a static catalog of airline award charts.
package redemption

// Airline identifies a cataloged carrier.
type Airline string

const (
	United        Airline = "United"
	American      Airline = "American"
	Delta         Airline = "Delta"
	AirChina      Airline = "Air China"
	ChinaEastern  Airline = "China Eastern"
	ChinaSouthern Airline = "China Southern"
)

// Rate is one airline's award-chart entry: points required per route type
// and cabin, transfer partners, and the typical cents-per-point valuation.
// Catalog entries are reference data and never mutated at runtime.
type Rate struct {
	Airline               Airline  `json:"airline"`
	DomesticEconomy       int      `json:"domestic_economy"`
	DomesticBusiness      int      `json:"domestic_business"`
	InternationalEconomy  int      `json:"international_economy"`
	InternationalBusiness int      `json:"international_business"`
	TransferPartners      []string `json:"transfer_partners"`
	BookingURL            string   `json:"booking_url"`
	PointValueCents       float64  `json:"point_value_cents"`
}

// Catalog order is fixed so option enumeration is deterministic.
var airlineOrder = []Airline{United, American, Delta, AirChina, ChinaEastern, ChinaSouthern}

var rates = map[Airline]Rate{
	United: {
		Airline:               United,
		DomesticEconomy:       12500,
		DomesticBusiness:      50000,
		InternationalEconomy:  30000,
		InternationalBusiness: 100000,
		TransferPartners:      []string{"Singapore Airlines", "ANA", "Lufthansa"},
		BookingURL:            "https://www.united.com/en/us/",
		PointValueCents:       1.3,
	},
	American: {
		Airline:               American,
		DomesticEconomy:       10000,
		DomesticBusiness:      45000,
		InternationalEconomy:  25000,
		InternationalBusiness: 90000,
		TransferPartners:      []string{"British Airways", "Cathay Pacific", "Qatar"},
		BookingURL:            "https://www.aa.com/",
		PointValueCents:       1.4,
	},
	Delta: {
		Airline:               Delta,
		DomesticEconomy:       11000,
		DomesticBusiness:      55000,
		InternationalEconomy:  28000,
		InternationalBusiness: 110000,
		TransferPartners:      []string{"Virgin Atlantic", "Air France", "KLM"},
		BookingURL:            "https://www.delta.com/",
		PointValueCents:       1.2,
	},
	AirChina: {
		Airline:               AirChina,
		DomesticEconomy:       8000,
		DomesticBusiness:      32000,
		InternationalEconomy:  20000,
		InternationalBusiness: 80000,
		TransferPartners:      []string{"Oneworld Alliance"},
		BookingURL:            "https://www.airchina.com/",
		PointValueCents:       1.1,
	},
	ChinaEastern: {
		Airline:               ChinaEastern,
		DomesticEconomy:       7500,
		DomesticBusiness:      30000,
		InternationalEconomy:  18000,
		InternationalBusiness: 75000,
		TransferPartners:      []string{"SkyTeam Alliance"},
		BookingURL:            "https://www.ceair.com/",
		PointValueCents:       1.15,
	},
	ChinaSouthern: {
		Airline:               ChinaSouthern,
		DomesticEconomy:       7000,
		DomesticBusiness:      28000,
		InternationalEconomy:  17000,
		InternationalBusiness: 70000,
		TransferPartners:      []string{"SkyTeam Alliance"},
		BookingURL:            "https://www.csair.com/",
		PointValueCents:       1.2,
	},
}

// Lookup returns the award-chart entry for an airline.
func Lookup(airline Airline) (Rate, bool) {
	r, ok := rates[airline]
	return r, ok
}

// Rates returns all catalog entries in the fixed enumeration order.
func Rates() []Rate {
	out := make([]Rate, 0, len(airlineOrder))
	for _, a := range airlineOrder {
		out = append(out, rates[a])
	}
	return out
}
