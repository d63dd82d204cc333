// Package geo carries the optional report location supplied by the browser's
// geolocation API.
package geo

import (
	"strconv"

	"github.com/golang/geo/s2"
)

// Location is a latitude/longitude pair in degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the pair is a real point on the sphere.
func (l Location) Valid() bool {
	return s2.LatLngFromDegrees(l.Latitude, l.Longitude).IsValid()
}

// String renders the pair the way the analysis prompt expects it.
func (l Location) String() string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}
