package format_test

import (
	"testing"

	"github.com/6639835/vor-fix-calculator/internal/format"
	"github.com/6639835/vor-fix-calculator/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWaypoint_SmallDistance(t *testing.T) {
	result := models.WaypointResult{
		Coordinates:     models.Coordinates{Latitude: 37.123456789, Longitude: -122.987654321},
		RadiusLetter:    "D",
		AirportCode:     "KSFO",
		OperationCode:   "4464713",
		VORIdentifier:   "SFO",
		MagneticBearing: 90.5,
		DistanceNM:      3.7,
	}

	output := format.Waypoint(result)

	assert.Equal(t,
		"37.123456789 -122.987654321 D090D KSFO KS 4464713 SFO090004",
		output)
	// Bearing is truncated to 090, distance 3.7 rounds up to 004.
	assert.Contains(t, output, "D090D")
	assert.Contains(t, output, "SFO090004")
}

func TestWaypoint_SmallDistanceWithoutVOR(t *testing.T) {
	result := models.WaypointResult{
		Coordinates:     models.Coordinates{Latitude: 37.123456789, Longitude: -122.987654321},
		RadiusLetter:    "B",
		AirportCode:     "KSEA",
		OperationCode:   "4530249",
		MagneticBearing: 12.9,
		DistanceNM:      2.0,
	}

	output := format.Waypoint(result)

	assert.Equal(t, "37.123456789 -122.987654321 D012B KSEA KS 4530249", output)
}

func TestWaypoint_LargeDistance(t *testing.T) {
	result := models.WaypointResult{
		Coordinates:     models.Coordinates{Latitude: 37.123456789, Longitude: -122.987654321},
		RadiusLetter:    "Z",
		AirportCode:     "KSFO",
		OperationCode:   "4595785",
		VORIdentifier:   "SFO",
		MagneticBearing: 45.7,
		DistanceNM:      30.2,
	}

	output := format.Waypoint(result)

	assert.Equal(t,
		"37.123456789 -122.987654321 SFO30 KSFO KS 4595785 SFO045030",
		output)
	assert.Contains(t, output, "SFO30")
	assert.Contains(t, output, "SFO045030")
}

func TestWaypoint_LargeDistanceWithoutVOR(t *testing.T) {
	result := models.WaypointResult{
		Coordinates:     models.Coordinates{Latitude: 37.123456789, Longitude: -122.987654321},
		RadiusLetter:    "Z",
		AirportCode:     "KSFO",
		OperationCode:   "4595785",
		MagneticBearing: 45.7,
		DistanceNM:      30.2,
	}

	output := format.Waypoint(result)

	// No VOR identifier: the distance stands alone and the tail is just the
	// operation code.
	assert.Equal(t, "37.123456789 -122.987654321 30 KSFO KS 4595785", output)
}

func TestWaypoint_ThresholdUsesRadiusFormat(t *testing.T) {
	result := models.WaypointResult{
		Coordinates:     models.Coordinates{Latitude: 1, Longitude: 2},
		RadiusLetter:    "Z",
		AirportCode:     "EGLL",
		OperationCode:   "4464713",
		MagneticBearing: 180,
		DistanceNM:      26.5,
	}

	// 26.5 is not "greater than the threshold", so the small-distance
	// layout applies.
	assert.Contains(t, format.Waypoint(result), " D180Z ")
}

func TestFix(t *testing.T) {
	t.Run("single-digit runway is zero padded", func(t *testing.T) {
		result := models.FixResult{
			Coordinates:   models.Coordinates{Latitude: 37.123456789, Longitude: -122.987654321},
			FixCode:       "D",
			UsageCode:     "F",
			RunwayCode:    "9",
			AirportCode:   "KSFO",
			OperationCode: "4595785",
		}

		output := format.Fix(result)

		assert.Equal(t, "37.123456789 -122.987654321 FD09 KSFO KS 4595785", output)
		assert.Contains(t, output, "FD09 ")
		assert.NotContains(t, output, "FD9 ")
	})

	t.Run("two-digit runway stays as is", func(t *testing.T) {
		result := models.FixResult{
			Coordinates:   models.Coordinates{Latitude: 51.5, Longitude: -0.45},
			FixCode:       "I",
			UsageCode:     "M",
			RunwayCode:    "28",
			AirportCode:   "EGLL",
			OperationCode: "4464713",
		}

		assert.Equal(t, "51.500000000 -0.450000000 MI28 EGLL EG 4464713", format.Fix(result))
	})
}

func TestNavAid(t *testing.T) {
	tests := []struct {
		name     string
		entry    models.NavAidEntry
		expected string
	}{
		{
			"known type with name",
			models.NavAidEntry{TypeCode: "3", Identifier: "SFO", Name: "San_Francisco"},
			"VOR - SFO - San_Francisco",
		},
		{
			"known type without name",
			models.NavAidEntry{TypeCode: "12", Identifier: "OAK"},
			"DME (VOR) - OAK - [No name]",
		},
		{
			"unknown type code",
			models.NavAidEntry{TypeCode: "99", Identifier: "XYZ"},
			"Unknown - XYZ - [No name]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format.NavAid(tt.entry))
		})
	}
}
