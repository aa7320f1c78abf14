// Package format renders calculation results into fixed-width aviation
// notation strings.
//
// Display values are intentionally rounded per aviation convention while the
// underlying results keep full precision: bearings are truncated to whole
// degrees, distances are rounded to the nearest whole nautical mile, and
// coordinates stay at nine decimal places. The truncate-versus-round split
// between bearing and distance is deliberate and must stay as is.
package format

import (
	"fmt"
	"math"
	"strconv"

	"github.com/6639835/vor-fix-calculator/internal/models"
)

// LargeDistanceThresholdNM separates the two waypoint output layouts. Above
// it the distance itself is written after the station identifier; at or
// below it the single-letter radius designator is used instead.
const LargeDistanceThresholdNM = 26.5

// Waypoint renders a waypoint calculation result as one aviation notation
// line.
func Waypoint(result models.WaypointResult) string {
	coords := result.Coordinates
	region := result.AirportCode[:2]
	bearing := int(result.MagneticBearing)
	distance := int(math.Round(result.DistanceNM))

	var output string
	if result.DistanceNM > LargeDistanceThresholdNM {
		output = fmt.Sprintf("%s %s%d %s %s",
			coords, result.VORIdentifier, distance, result.AirportCode, region)
	} else {
		output = fmt.Sprintf("%s D%03d%s %s %s",
			coords, bearing, result.RadiusLetter, result.AirportCode, region)
	}

	if result.VORIdentifier != "" {
		output += fmt.Sprintf(" %s %s%03d%03d",
			result.OperationCode, result.VORIdentifier, bearing, distance)
	} else {
		output += " " + result.OperationCode
	}

	return output
}

// Fix renders an approach fix calculation result as one aviation notation
// line. The runway code must hold a decimal integer; a non-numeric value is
// a defect in the caller, not an input this formatter handles.
func Fix(result models.FixResult) string {
	runway, _ := strconv.Atoi(result.RunwayCode)
	return fmt.Sprintf("%s %s%s%02d %s %s %s",
		result.Coordinates, result.UsageCode, result.FixCode, runway,
		result.AirportCode, result.AirportCode[:2], result.OperationCode)
}

// NavAid renders a navigation aid entry for disambiguation lists: the
// resolved type label, the identifier and the station name when one exists.
func NavAid(entry models.NavAidEntry) string {
	display := models.NavAidTypeLabel(entry.TypeCode) + " - " + entry.Identifier
	if entry.Name != "" {
		return display + " - " + entry.Name
	}
	return display + " - [No name]"
}
