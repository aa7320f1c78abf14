// Package geodesic computes destination points on the WGS84 ellipsoid and
// carries the small bearing and radius helpers used by waypoint calculations.
package geodesic

import (
	"math"

	"github.com/6639835/vor-fix-calculator/internal/models"
	wgs "github.com/tidwall/geodesic"
)

// MetersPerNauticalMile is the exact length of one nautical mile in meters.
const MetersPerNauticalMile = 1852.0

// Destination solves the direct geodesic problem on the WGS84 ellipsoid:
// given an origin, a true bearing in degrees and a distance in nautical
// miles, it returns the destination point.
//
// The azimuth is not range checked here; the solver is tolerant of values
// outside [0,360) and callers are expected to have validated user input
// already. A zero distance returns the origin.
func Destination(origin models.Coordinates, trueBearing, distanceNM float64) models.Coordinates {
	var lat, lon float64
	wgs.WGS84.Direct(origin.Latitude, origin.Longitude, trueBearing, distanceNM*MetersPerNauticalMile, &lat, &lon, nil)
	return models.Coordinates{Latitude: lat, Longitude: lon}
}

// Waypoint computes the destination point for a magnetic bearing by first
// converting it to a true bearing with the given declination.
func Waypoint(origin models.Coordinates, magneticBearing, distanceNM, declination float64) models.Coordinates {
	return Destination(origin, MagneticToTrue(magneticBearing, declination), distanceNM)
}

// MagneticToTrue converts a magnetic bearing to a true bearing using the
// magnetic declination at the origin. The result is always in [0,360).
func MagneticToTrue(magneticBearing, declination float64) float64 {
	bearing := math.Mod(magneticBearing+declination, 360)
	if bearing < 0 {
		bearing += 360
	}
	return bearing
}

// radiusRange maps a band of distances to one radius designator letter.
type radiusRange struct {
	low    float64
	high   float64
	letter string
}

// radiusRanges holds the 26 distance bands of the radius designator table.
// The first band starts at 0.1 NM; every later band is exactly 1.0 NM wide.
var radiusRanges = []radiusRange{
	{0.1, 1.4, "A"},
	{1.5, 2.4, "B"},
	{2.5, 3.4, "C"},
	{3.5, 4.4, "D"},
	{4.5, 5.4, "E"},
	{5.5, 6.4, "F"},
	{6.5, 7.4, "G"},
	{7.5, 8.4, "H"},
	{8.5, 9.4, "I"},
	{9.5, 10.4, "J"},
	{10.5, 11.4, "K"},
	{11.5, 12.4, "L"},
	{12.5, 13.4, "M"},
	{13.5, 14.4, "N"},
	{14.5, 15.4, "O"},
	{15.5, 16.4, "P"},
	{16.5, 17.4, "Q"},
	{17.5, 18.4, "R"},
	{18.5, 19.4, "S"},
	{19.5, 20.4, "T"},
	{20.5, 21.4, "U"},
	{21.5, 22.4, "V"},
	{22.5, 23.4, "W"},
	{23.5, 24.4, "X"},
	{24.5, 25.4, "Y"},
	{25.5, 26.4, "Z"},
}

// RadiusDesignator returns the single-letter radius designator for a distance
// in nautical miles. Distances outside the table fall back to "Z"; negative
// and zero distances are expected to be rejected by validation before this
// function is reached.
func RadiusDesignator(distanceNM float64) string {
	for _, r := range radiusRanges {
		if distanceNM >= r.low && distanceNM <= r.high {
			return r.letter
		}
	}
	return "Z"
}
