package booking

import (
	"fmt"
	"math"
	"regexp"
)

// TripType describes how many legs a fare covers.
type TripType string

const (
	TripTypeOneWay    TripType = "one-way"
	TripTypeRoundTrip TripType = "round-trip"
	TripTypeMultiCity TripType = "multi-city"
)

// ParseTripType normalizes a raw trip type, defaulting to one-way.
func ParseTripType(s string) TripType {
	switch TripType(s) {
	case TripTypeRoundTrip:
		return TripTypeRoundTrip
	case TripTypeMultiCity:
		return TripTypeMultiCity
	default:
		return TripTypeOneWay
	}
}

// Multiplier returns the fare multiplier for the trip type. Only round trips
// double the fare; multi-city itineraries are priced per selected leg.
func (t TripType) Multiplier() int64 {
	if t == TripTypeRoundTrip {
		return 2
	}
	return 1
}

const (
	// DefaultBasePrice is the fallback fare for routes missing from the table.
	DefaultBasePrice int64 = 1500
	// DefaultAirportCode substitutes for unparseable location strings.
	DefaultAirportCode = "ACC"

	taxRate                = 0.05
	serviceFeePerPassenger = 50
)

// routeBasePrices maps "FROM-TO" airport code pairs to one-way base fares
// per passenger.
var routeBasePrices = map[string]int64{
	"ACC-LOS": 450,  // Accra to Lagos
	"ACC-ABJ": 380,  // Accra to Abidjan
	"ACC-LHR": 2100, // Accra to London
	"ACC-JFK": 2500, // Accra to New York
	"ACC-DXB": 2200, // Accra to Dubai
	"ACC-JNB": 1800, // Accra to Johannesburg
	"ACC-NBO": 1200, // Accra to Nairobi
	"ACC-CDG": 2000, // Accra to Paris
	"ACC-IST": 1900, // Accra to Istanbul
	"ACC-DOH": 2300, // Accra to Doha
	"ACC-FRA": 2050, // Accra to Frankfurt
	"ACC-AMS": 1950, // Accra to Amsterdam
	"ACC-MAD": 1850, // Accra to Madrid
	"ACC-ADD": 1100, // Accra to Addis Ababa
}

var airportCodePattern = regexp.MustCompile(`\(([^)]+)\)`)

// ExtractAirportCode pulls the parenthesized code out of a
// "City, Country (CODE)" location string, falling back to the default code.
func ExtractAirportCode(location string) string {
	m := airportCodePattern.FindStringSubmatch(location)
	if m == nil {
		return DefaultAirportCode
	}
	return m[1]
}

// RouteBasePrice looks up the base fare for a route given its endpoint
// location strings, falling back to the default fare for unknown routes.
func RouteBasePrice(from, to string) int64 {
	key := fmt.Sprintf("%s-%s", ExtractAirportCode(from), ExtractAirportCode(to))
	if price, ok := routeBasePrices[key]; ok {
		return price
	}
	return DefaultBasePrice
}

// PricingParams holds the inputs for a fare quote.
type PricingParams struct {
	BasePrice  int64
	TripType   TripType
	Passengers int
}

// Quote is a full fare breakdown. Tax is kept unrounded so the total is
// rounded exactly once.
type Quote struct {
	BasePrice  int64
	Subtotal   int64
	Tax        float64
	ServiceFee int64
	Total      int64
}

// PricingStrategy defines the interface for computing fare quotes.
type PricingStrategy interface {
	Quote(params PricingParams) Quote
}

// StandardPricingStrategy implements the demo fare schedule: 5% tax on the
// subtotal plus a flat per-passenger service fee.
type StandardPricingStrategy struct{}

// NewStandardPricingStrategy creates a new StandardPricingStrategy.
func NewStandardPricingStrategy() *StandardPricingStrategy {
	return &StandardPricingStrategy{}
}

// Quote computes the fare breakdown. Passenger counts below one are treated
// as one, matching the search form's defaulting.
func (s *StandardPricingStrategy) Quote(params PricingParams) Quote {
	passengers := int64(params.Passengers)
	if passengers < 1 {
		passengers = 1
	}

	subtotal := params.BasePrice * params.TripType.Multiplier() * passengers
	tax := float64(subtotal) * taxRate
	serviceFee := int64(serviceFeePerPassenger) * passengers
	total := int64(math.Round(float64(subtotal) + tax + float64(serviceFee)))

	return Quote{
		BasePrice:  params.BasePrice,
		Subtotal:   subtotal,
		Tax:        tax,
		ServiceFee: serviceFee,
		Total:      total,
	}
}

// ComputeTotal is a convenience wrapper returning just the rounded total.
func (s *StandardPricingStrategy) ComputeTotal(basePrice int64, tripType TripType, passengers int) int64 {
	return s.Quote(PricingParams{BasePrice: basePrice, TripType: tripType, Passengers: passengers}).Total
}
