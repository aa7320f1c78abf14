// Package validate parses and range-checks the raw text fields of a
// calculation request. Every failure is reported as a *ValidationError with a
// message the presentation layer can show to the user as-is.
//
// Each field is checked in a fixed order: emptiness first, then numeric or
// format parsing, then range and content rules. The order is part of the
// contract because it decides which message the user sees.
package validate

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/6639835/vor-fix-calculator/internal/models"
)

// Coordinate and field validation bounds.
const (
	LatMin, LatMax         = -90.0, 90.0
	LonMin, LonMax         = -180.0, 180.0
	BearingMin, BearingMax = 0.0, 360.0
	DistanceMin            = 0.0
	DeclinationMin         = -180.0
	DeclinationMax         = 180.0
	RunwayMin, RunwayMax   = 0, 99
	AirportCodeLength      = 4
	VORIdentifierMinLength = 3
	VORIdentifierMaxLength = 4
)

// ValidationError describes a user-correctable input problem on one field.
type ValidationError struct {
	Field   string // Field names the input field the error belongs to.
	Message string // Message is the human-readable explanation.
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidateCoordinates checks that latitude and longitude are inside the
// valid geographic ranges.
func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < LatMin || latitude > LatMax {
		return newError("coordinates", "Latitude must be between -90 and 90 degrees")
	}
	if longitude < LonMin || longitude > LonMax {
		return newError("coordinates", "Longitude must be between -180 and 180 degrees")
	}
	return nil
}

// ParseCoordinates parses a "latitude longitude" pair from a single string.
func ParseCoordinates(raw string) (models.Coordinates, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.Coordinates{}, newError("coordinates", "Coordinates cannot be empty")
	}

	parts := strings.Fields(trimmed)
	if len(parts) != 2 {
		return models.Coordinates{}, newError("coordinates", "Coordinates must be in format 'latitude longitude'")
	}

	latitude, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return models.Coordinates{}, newError("coordinates", "Invalid coordinate format: "+parts[0])
	}
	longitude, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.Coordinates{}, newError("coordinates", "Invalid coordinate format: "+parts[1])
	}

	if err := ValidateCoordinates(latitude, longitude); err != nil {
		return models.Coordinates{}, err
	}
	return models.Coordinates{Latitude: latitude, Longitude: longitude}, nil
}

// ValidateBearing checks that a bearing is inside [0,360] degrees.
func ValidateBearing(bearing float64) error {
	if bearing < BearingMin || bearing > BearingMax {
		return newError("bearing", "Bearing must be between 0 and 360 degrees")
	}
	return nil
}

// ParseBearing parses a magnetic bearing. A bearing of exactly 360 is valid
// input and normalizes to 0.
func ParseBearing(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, newError("bearing", "Bearing cannot be empty")
	}

	bearing, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, newError("bearing", "Invalid bearing format: "+trimmed)
	}
	if err := ValidateBearing(bearing); err != nil {
		return 0, err
	}

	if bearing == BearingMax {
		bearing = 0
	}
	return bearing, nil
}

// ValidateDistance checks that a distance is strictly positive.
func ValidateDistance(distance float64) error {
	if distance <= DistanceMin {
		return newError("distance", "Distance must be greater than 0 nautical miles")
	}
	return nil
}

// ParseDistance parses a distance in nautical miles.
func ParseDistance(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, newError("distance", "Distance cannot be empty")
	}

	distance, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, newError("distance", "Invalid distance format: "+trimmed)
	}
	if err := ValidateDistance(distance); err != nil {
		return 0, err
	}
	return distance, nil
}

// ValidateDeclination checks that a magnetic declination is inside
// [-180,180] degrees.
func ValidateDeclination(declination float64) error {
	if declination < DeclinationMin || declination > DeclinationMax {
		return newError("declination", "Declination must be between -180 and 180 degrees")
	}
	return nil
}

// ParseDeclination parses a magnetic declination in degrees.
func ParseDeclination(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, newError("declination", "Declination cannot be empty")
	}

	declination, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, newError("declination", "Invalid declination format: "+trimmed)
	}
	if err := ValidateDeclination(declination); err != nil {
		return 0, err
	}
	return declination, nil
}

// ValidateAirportCode checks an already-normalized airport code: exactly
// four characters, letters only.
func ValidateAirportCode(code string) error {
	if code == "" {
		return newError("airport", "Airport code cannot be empty")
	}
	if len(code) != AirportCodeLength {
		return newError("airport", "Airport code must be exactly 4 characters")
	}
	if !isAlpha(code) {
		return newError("airport", "Airport code must contain only letters")
	}
	return nil
}

// ParseAirportCode trims, upper-cases and validates an airport code.
func ParseAirportCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if err := ValidateAirportCode(code); err != nil {
		return "", err
	}
	return code, nil
}

// ValidateVORIdentifier checks an already-normalized VOR identifier: three
// or four letters. An empty identifier short-circuits the length and charset
// checks and is valid only when allowEmpty is set.
func ValidateVORIdentifier(identifier string, allowEmpty bool) error {
	if identifier == "" {
		if !allowEmpty {
			return newError("vor", "VOR identifier cannot be empty")
		}
		return nil
	}
	if len(identifier) < VORIdentifierMinLength || len(identifier) > VORIdentifierMaxLength {
		return newError("vor", "VOR identifier must be 3-4 characters")
	}
	if !isAlpha(identifier) {
		return newError("vor", "VOR identifier must contain only letters")
	}
	return nil
}

// ParseVORIdentifier trims, upper-cases and validates a VOR identifier.
func ParseVORIdentifier(raw string, allowEmpty bool) (string, error) {
	identifier := strings.ToUpper(strings.TrimSpace(raw))
	if err := ValidateVORIdentifier(identifier, allowEmpty); err != nil {
		return "", err
	}
	return identifier, nil
}

// ValidateRunwayCode checks that a runway number is inside [0,99].
func ValidateRunwayCode(code int) error {
	if code < RunwayMin || code > RunwayMax {
		return newError("runway", "Runway code must be between 0 and 99")
	}
	return nil
}

// ParseRunwayCode parses a runway number. The input must be a plain integer:
// a fractional string such as "18.5" is a format error, not a range error.
func ParseRunwayCode(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, newError("runway", "Runway code cannot be empty")
	}

	code, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, newError("runway", "Invalid runway code format: "+trimmed)
	}
	if err := ValidateRunwayCode(code); err != nil {
		return 0, err
	}
	return code, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
