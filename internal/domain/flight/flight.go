package flight

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/verick-air/service-booking/internal/domain/booking"
)

// FareClass is the cabin class a fare is quoted for.
type FareClass string

const (
	ClassEconomy  FareClass = "economy"
	ClassPremium  FareClass = "premium"
	ClassBusiness FareClass = "business"
	ClassFirst    FareClass = "first"
)

// ParseFareClass normalizes display names and raw values to a fare class,
// defaulting to economy.
func ParseFareClass(s string) FareClass {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "premium", "premium economy":
		return ClassPremium
	case "business":
		return ClassBusiness
	case "first", "first class":
		return ClassFirst
	default:
		return ClassEconomy
	}
}

// Multiplier returns the fare multiplier for the class. Unknown classes
// price as economy.
func (c FareClass) Multiplier() float64 {
	switch c {
	case ClassPremium:
		return 1.5
	case ClassBusiness:
		return 2.5
	case ClassFirst:
		return 4
	default:
		return 1
	}
}

// Flight is one catalog entry. Prices are base one-way economy fares for a
// single passenger.
type Flight struct {
	ID            string
	Airline       string
	AirlineCode   string
	FlightNumber  string
	DepartureTime string
	ArrivalTime   string
	Duration      string
	Stops         string
	BasePrice     int64
	Aircraft      string
	Features      []string
	Rating        float64
	Reviews       int
	Baggage       string
	Logo          string
}

// Filter is a quick filter applied before sorting.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterNonStop  Filter = "nonstop"
	FilterCheapest Filter = "cheapest"
	FilterMorning  Filter = "morning"
)

// Sort is the ordering applied to results.
type Sort string

const (
	SortRecommended Sort = "recommended"
	SortPrice       Sort = "price"
	SortDuration    Sort = "duration"
	SortDeparture   Sort = "departure"
)

// SearchQuery carries the search form inputs plus the listing controls.
type SearchQuery struct {
	From       string
	To         string
	Departure  string
	Passengers int
	TripType   booking.TripType
	Class      FareClass
	Filter     Filter
	Sort       Sort
}

// Result is a catalog flight with the query-dependent fields attached.
type Result struct {
	Flight
	AdjustedPrice int64
	Score         float64
	Cheapest      bool
	Recommended   bool
}

const (
	cheapestThreshold  int64 = 1500
	scoreMaxBasePrice        = 2500.0
	morningWindowStart       = 6
	morningWindowEnd         = 11
)

// score weighs price (40%), rating (30%), duration (20%) and features (10%).
// The price term cancels the multiplier, so the score ranks the same for
// every cabin class.
func score(f Flight) float64 {
	priceScore := (1 - float64(f.BasePrice)/scoreMaxBasePrice) * 40
	ratingScore := f.Rating / 5 * 30
	durationScore := (1 - float64(durationHours(f.Duration))/10) * 20
	featureScore := float64(len(f.Features)) / 4 * 10
	return priceScore + ratingScore + durationScore + featureScore
}

// durationHours returns the whole-hour component of a "6h 30m" duration.
func durationHours(d string) int {
	var digits strings.Builder
	for _, r := range d {
		if r < '0' || r > '9' {
			break
		}
		digits.WriteRune(r)
	}
	n, _ := strconv.Atoi(digits.String())
	return n
}

// durationMinutes returns the total minutes of a "6h 30m" duration for
// sorting, so "6h 5m" orders before "6h 30m".
func durationMinutes(d string) int {
	total := durationHours(d) * 60
	if i := strings.Index(d, "h"); i >= 0 {
		rest := strings.TrimSpace(d[i+1:])
		rest = strings.TrimSuffix(rest, "m")
		if m, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			total += m
		}
	}
	return total
}

// departureHour returns the hour component of an "HH:MM" time.
func departureHour(t string) int {
	parts := strings.SplitN(t, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	return h
}

// Search prices the catalog for the query, flags the cheapest and
// recommended flights, then filters and sorts.
func Search(flights []Flight, q SearchQuery) []Result {
	passengers := q.Passengers
	if passengers < 1 {
		passengers = 1
	}
	multiplier := q.Class.Multiplier() * float64(q.TripType.Multiplier()) * float64(passengers)

	results := make([]Result, 0, len(flights))
	for _, f := range flights {
		results = append(results, Result{
			Flight:        f,
			AdjustedPrice: int64(math.Round(float64(f.BasePrice) * multiplier)),
			Score:         score(f),
		})
	}
	if len(results) == 0 {
		return results
	}

	cheapest, recommended := 0, 0
	for i, r := range results {
		if r.AdjustedPrice < results[cheapest].AdjustedPrice {
			cheapest = i
		}
		if r.Score > results[recommended].Score {
			recommended = i
		}
	}
	results[cheapest].Cheapest = true
	results[recommended].Recommended = true

	results = applyFilter(results, q.Filter)
	applySort(results, q.Sort)
	return results
}

func applyFilter(results []Result, filter Filter) []Result {
	var keep func(Result) bool
	switch filter {
	case FilterNonStop:
		keep = func(r Result) bool { return strings.Contains(strings.ToLower(r.Stops), "non-stop") }
	case FilterCheapest:
		keep = func(r Result) bool { return r.AdjustedPrice <= cheapestThreshold }
	case FilterMorning:
		keep = func(r Result) bool {
			h := departureHour(r.DepartureTime)
			return h >= morningWindowStart && h <= morningWindowEnd
		}
	default:
		return results
	}

	filtered := results[:0]
	for _, r := range results {
		if keep(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func applySort(results []Result, s Sort) {
	switch s {
	case SortPrice:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].AdjustedPrice < results[j].AdjustedPrice
		})
	case SortDuration:
		sort.SliceStable(results, func(i, j int) bool {
			return durationMinutes(results[i].Duration) < durationMinutes(results[j].Duration)
		})
	case SortDeparture:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DepartureTime < results[j].DepartureTime
		})
	default:
		// Recommended flight first, everything else by price.
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].Recommended != results[j].Recommended {
				return results[i].Recommended
			}
			return results[i].AdjustedPrice < results[j].AdjustedPrice
		})
	}
}
