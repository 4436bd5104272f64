package flight

// Catalog returns the demo flight inventory for the Accra to London route.
func Catalog() []Flight {
	return []Flight{
		{
			ID:            "1",
			Airline:       "Emirates",
			AirlineCode:   "EK",
			FlightNumber:  "EK 789",
			DepartureTime: "08:15",
			ArrivalTime:   "18:45",
			Duration:      "6h 30m",
			Stops:         "non-stop",
			BasePrice:     2125,
			Aircraft:      "Boeing 777",
			Features:      []string{"Meal", "Entertainment", "WiFi", "Lounge"},
			Rating:        4.7,
			Reviews:       1247,
			Baggage:       "30kg",
			Logo:          "https://images.kiwi.com/airlines/64/EK.png",
		},
		{
			ID:            "2",
			Airline:       "British Airways",
			AirlineCode:   "BA",
			FlightNumber:  "BA 123",
			DepartureTime: "11:30",
			ArrivalTime:   "22:15",
			Duration:      "6h 45m",
			Stops:         "non-stop",
			BasePrice:     1945,
			Aircraft:      "Airbus A380",
			Features:      []string{"Meal", "Entertainment", "WiFi"},
			Rating:        4.5,
			Reviews:       892,
			Baggage:       "23kg",
			Logo:          "https://images.kiwi.com/airlines/64/BA.png",
		},
		{
			ID:            "3",
			Airline:       "Ethiopian Airlines",
			AirlineCode:   "ET",
			FlightNumber:  "ET 901",
			DepartureTime: "14:20",
			ArrivalTime:   "01:30",
			Duration:      "7h 10m",
			Stops:         "1-stop",
			BasePrice:     1625,
			Aircraft:      "Boeing 787",
			Features:      []string{"Meal", "Entertainment"},
			Rating:        4.3,
			Reviews:       567,
			Baggage:       "30kg",
			Logo:          "https://images.kiwi.com/airlines/64/ET.png",
		},
		{
			ID:            "4",
			Airline:       "Turkish Airlines",
			AirlineCode:   "TK",
			FlightNumber:  "TK 567",
			DepartureTime: "16:45",
			ArrivalTime:   "04:20",
			Duration:      "7h 35m",
			Stops:         "1-stop",
			BasePrice:     1490,
			Aircraft:      "Airbus A330",
			Features:      []string{"Meal", "Entertainment", "WiFi"},
			Rating:        4.6,
			Reviews:       1034,
			Baggage:       "30kg",
			Logo:          "https://images.kiwi.com/airlines/64/TK.png",
		},
		{
			ID:            "5",
			Airline:       "KLM",
			AirlineCode:   "KL",
			FlightNumber:  "KL 589",
			DepartureTime: "20:10",
			ArrivalTime:   "07:55",
			Duration:      "7h 45m",
			Stops:         "1-stop",
			BasePrice:     2060,
			Aircraft:      "Boeing 777",
			Features:      []string{"Meal", "Entertainment"},
			Rating:        4.4,
			Reviews:       789,
			Baggage:       "23kg",
			Logo:          "https://images.kiwi.com/airlines/64/KL.png",
		},
		{
			ID:            "6",
			Airline:       "Qatar Airways",
			AirlineCode:   "QR",
			FlightNumber:  "QR 145",
			DepartureTime: "22:30",
			ArrivalTime:   "09:40",
			Duration:      "7h 10m",
			Stops:         "1-stop",
			BasePrice:     2335,
			Aircraft:      "Airbus A350",
			Features:      []string{"Meal", "Entertainment", "WiFi", "Lounge"},
			Rating:        4.8,
			Reviews:       1567,
			Baggage:       "35kg",
			Logo:          "https://images.kiwi.com/airlines/64/QR.png",
		},
		{
			ID:            "7",
			Airline:       "South African Airways",
			AirlineCode:   "SA",
			FlightNumber:  "SA 234",
			DepartureTime: "09:45",
			ArrivalTime:   "20:30",
			Duration:      "6h 45m",
			Stops:         "non-stop",
			BasePrice:     1725,
			Aircraft:      "Airbus A340",
			Features:      []string{"Meal", "Entertainment"},
			Rating:        4.2,
			Reviews:       445,
			Baggage:       "23kg",
			Logo:          "https://images.kiwi.com/airlines/64/SA.png",
		},
		{
			ID:            "8",
			Airline:       "Kenya Airways",
			AirlineCode:   "KQ",
			FlightNumber:  "KQ 509",
			DepartureTime: "13:15",
			ArrivalTime:   "23:45",
			Duration:      "6h 30m",
			Stops:         "non-stop",
			BasePrice:     1890,
			Aircraft:      "Boeing 787",
			Features:      []string{"Meal", "Entertainment"},
			Rating:        4.1,
			Reviews:       334,
			Baggage:       "30kg",
			Logo:          "https://images.kiwi.com/airlines/64/KQ.png",
		},
		{
			ID:            "9",
			Airline:       "Lufthansa",
			AirlineCode:   "LH",
			FlightNumber:  "LH 672",
			DepartureTime: "17:20",
			ArrivalTime:   "03:15",
			Duration:      "7h 55m",
			Stops:         "1-stop",
			BasePrice:     2160,
			Aircraft:      "Airbus A330",
			Features:      []string{"Meal", "Entertainment", "WiFi"},
			Rating:        4.5,
			Reviews:       1123,
			Baggage:       "23kg",
			Logo:          "https://images.kiwi.com/airlines/64/LH.png",
		},
		{
			ID:            "10",
			Airline:       "Air France",
			AirlineCode:   "AF",
			FlightNumber:  "AF 789",
			DepartureTime: "19:30",
			ArrivalTime:   "05:45",
			Duration:      "8h 15m",
			Stops:         "1-stop",
			BasePrice:     1990,
			Aircraft:      "Boeing 777",
			Features:      []string{"Meal", "Entertainment"},
			Rating:        4.3,
			Reviews:       876,
			Baggage:       "23kg",
			Logo:          "https://images.kiwi.com/airlines/64/AF.png",
		},
	}
}

// DefaultFrom and friends are the search form defaults applied when a query
// omits the corresponding parameter.
const (
	DefaultFrom       = "Accra, Ghana (ACC)"
	DefaultTo         = "London, UK (LHR)"
	DefaultPassengers = 1
)
