package models

// WaypointResult is the outcome of a single waypoint calculation. It is
// produced once per request and never mutated afterwards; the stored bearing
// and distance retain full precision, rounding happens only at display time.
type WaypointResult struct {
	Coordinates     Coordinates // Coordinates of the computed destination point.
	RadiusLetter    string      // RadiusLetter is the single-letter radius designator.
	AirportCode     string      // AirportCode is the four-letter ICAO airport code.
	OperationCode   string      // OperationCode is the numeric operation type code.
	VORIdentifier   string      // VORIdentifier is the optional station identifier; may be empty.
	MagneticBearing float64     // MagneticBearing is the requested bearing in degrees.
	DistanceNM      float64     // DistanceNM is the requested distance in nautical miles.
}

// FixResult is the outcome of a single approach fix calculation.
type FixResult struct {
	Coordinates   Coordinates // Coordinates of the fix.
	FixCode       string      // FixCode is the single-letter fix type code.
	UsageCode     string      // UsageCode is the single-letter fix usage code.
	RunwayCode    string      // RunwayCode is the runway number as a decimal string.
	AirportCode   string      // AirportCode is the four-letter ICAO airport code.
	OperationCode string      // OperationCode is the numeric operation type code.
}
