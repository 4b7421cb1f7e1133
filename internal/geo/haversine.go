package geo

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// Mean Earth radius in kilometers.
	earthRadiusKm = 6371.0

	MilesPerKilometer = 0.621371
)

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude points. Symmetric in its arguments and zero for
// coincident points; full floating-point precision is kept here and rounding
// happens only at the API boundary.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Distance is a rounded kilometers/miles pair as returned to callers.
type Distance struct {
	Kilometers float64 `json:"kilometers"`
	Miles      float64 `json:"miles"`
}

// FromKilometers builds a Distance rounded to two decimal places.
func FromKilometers(km float64) Distance {
	return Distance{
		Kilometers: Round2(km),
		Miles:      Round2(km * MilesPerKilometer),
	}
}

// Round2 rounds to two decimals using decimal arithmetic, avoiding the float
// artifacts of naive multiply-and-truncate.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ValidCoordinates reports whether lat/lon are real numbers inside the
// [-90,90]x[-180,180] envelope.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return math.Abs(lat) <= 90 && math.Abs(lon) <= 180
}
