package models

import "fmt"

// Coordinates represents a geographical point defined by its latitude and longitude.
type Coordinates struct {
	Latitude  float64 // Latitude of the geographical point in degrees.
	Longitude float64 // Longitude of the geographical point in degrees.
}

// String renders the coordinates in the canonical aviation text form:
// latitude and longitude at nine decimal places, space separated.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.9f %.9f", c.Latitude, c.Longitude)
}
