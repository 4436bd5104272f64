package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/verick-air/service-booking/internal/domain/booking"
	"github.com/verick-air/service-booking/internal/domain/flight"
)

// SearchFlightsRequest carries the raw search parameters as they arrive in
// the query string.
type SearchFlightsRequest struct {
	From       string
	To         string
	Departure  string
	Passengers int
	Class      string
	TripType   string
	Filter     string
	Sort       string
}

// FlightResultDTO is the response representation of one search result.
type FlightResultDTO struct {
	ID            string   `json:"id"`
	Airline       string   `json:"airline"`
	AirlineCode   string   `json:"airline_code"`
	FlightNumber  string   `json:"flight_number"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      string   `json:"duration"`
	Stops         string   `json:"stops"`
	BasePrice     int64    `json:"base_price"`
	AdjustedPrice int64    `json:"adjusted_price"`
	Aircraft      string   `json:"aircraft"`
	Features      []string `json:"features"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Baggage       string   `json:"baggage"`
	Logo          string   `json:"logo"`
	Cheapest      bool     `json:"cheapest"`
	Recommended   bool     `json:"recommended"`
	Popular       bool     `json:"popular"`
}

// SearchFlightsResponse is the full search result listing.
type SearchFlightsResponse struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	Departure  string            `json:"departure,omitempty"`
	Passengers int               `json:"passengers"`
	Class      string            `json:"class"`
	TripType   string            `json:"trip_type"`
	Count      int               `json:"count"`
	Flights    []FlightResultDTO `json:"flights"`
}

// popularRatingFloor marks flights shown with the popular badge.
const popularRatingFloor = 4.5

// FlightService serves catalog searches.
type FlightService struct {
	catalog []flight.Flight
	logger  *zap.Logger
}

// NewFlightService creates a service over the demo catalog.
func NewFlightService(logger *zap.Logger) *FlightService {
	return &FlightService{catalog: flight.Catalog(), logger: logger}
}

// SearchFlights prices, filters and sorts the catalog for the request,
// applying the search form defaults for missing parameters.
func (s *FlightService) SearchFlights(_ context.Context, req SearchFlightsRequest) (*SearchFlightsResponse, error) {
	passengers := req.Passengers
	if passengers < 1 {
		passengers = flight.DefaultPassengers
	}

	query := flight.SearchQuery{
		From:       orDefault(req.From, flight.DefaultFrom),
		To:         orDefault(req.To, flight.DefaultTo),
		Departure:  req.Departure,
		Passengers: passengers,
		TripType:   booking.ParseTripType(req.TripType),
		Class:      flight.ParseFareClass(req.Class),
		Filter:     flight.Filter(orDefault(req.Filter, string(flight.FilterAll))),
		Sort:       flight.Sort(orDefault(req.Sort, string(flight.SortRecommended))),
	}

	results := flight.Search(s.catalog, query)

	dtos := make([]FlightResultDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, FlightResultDTO{
			ID:            r.ID,
			Airline:       r.Airline,
			AirlineCode:   r.AirlineCode,
			FlightNumber:  r.FlightNumber,
			DepartureTime: r.DepartureTime,
			ArrivalTime:   r.ArrivalTime,
			Duration:      r.Duration,
			Stops:         r.Stops,
			BasePrice:     r.BasePrice,
			AdjustedPrice: r.AdjustedPrice,
			Aircraft:      r.Aircraft,
			Features:      r.Features,
			Rating:        r.Rating,
			Reviews:       r.Reviews,
			Baggage:       r.Baggage,
			Logo:          r.Logo,
			Cheapest:      r.Cheapest,
			Recommended:   r.Recommended,
			Popular:       r.Rating >= popularRatingFloor,
		})
	}

	s.logger.Debug("flight search served",
		zap.String("from", query.From),
		zap.String("to", query.To),
		zap.Int("results", len(dtos)),
	)

	return &SearchFlightsResponse{
		From:       query.From,
		To:         query.To,
		Departure:  query.Departure,
		Passengers: query.Passengers,
		Class:      string(query.Class),
		TripType:   string(query.TripType),
		Count:      len(dtos),
		Flights:    dtos,
	}, nil
}
