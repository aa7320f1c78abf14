package validate_test

import (
	"testing"

	"github.com/6639835/vor-fix-calculator/internal/models"
	"github.com/6639835/vor-fix-calculator/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		coords, err := validate.ParseCoordinates("  37.619 -122.374 ")
		require.NoError(t, err)
		assert.Equal(t, models.Coordinates{Latitude: 37.619, Longitude: -122.374}, coords)
	})

	t.Run("boundary values are valid", func(t *testing.T) {
		_, err := validate.ParseCoordinates("90 -180")
		assert.NoError(t, err)
		_, err = validate.ParseCoordinates("-90 180")
		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", "Coordinates cannot be empty"},
		{"whitespace only", "   ", "Coordinates cannot be empty"},
		{"one token", "37.619", "Coordinates must be in format 'latitude longitude'"},
		{"three tokens", "37 -122 5", "Coordinates must be in format 'latitude longitude'"},
		{"non-numeric latitude", "abc -122.374", "Invalid coordinate format: abc"},
		{"non-numeric longitude", "37.619 xyz", "Invalid coordinate format: xyz"},
		{"latitude out of range", "90.1 0", "Latitude must be between -90 and 90 degrees"},
		{"longitude out of range", "0 -180.5", "Longitude must be between -180 and 180 degrees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validate.ParseCoordinates(tt.input)
			require.Error(t, err)

			var verr *validate.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestParseBearing(t *testing.T) {
	t.Run("zero is valid", func(t *testing.T) {
		bearing, err := validate.ParseBearing("0")
		require.NoError(t, err)
		assert.Zero(t, bearing)
	})

	t.Run("360 normalizes to zero", func(t *testing.T) {
		bearing, err := validate.ParseBearing("360")
		require.NoError(t, err)
		assert.Zero(t, bearing)
	})

	t.Run("fractional bearing keeps precision", func(t *testing.T) {
		bearing, err := validate.ParseBearing("90.5")
		require.NoError(t, err)
		assert.InDelta(t, 90.5, bearing, 1e-12)
	})

	t.Run("out of range and malformed", func(t *testing.T) {
		_, err := validate.ParseBearing("-1")
		assert.EqualError(t, err, "Bearing must be between 0 and 360 degrees")
		_, err = validate.ParseBearing("361")
		assert.EqualError(t, err, "Bearing must be between 0 and 360 degrees")
		_, err = validate.ParseBearing("north")
		assert.EqualError(t, err, "Invalid bearing format: north")
		_, err = validate.ParseBearing(" ")
		assert.EqualError(t, err, "Bearing cannot be empty")
	})
}

func TestParseDistance(t *testing.T) {
	distance, err := validate.ParseDistance("12.5")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, distance, 1e-12)

	_, err = validate.ParseDistance("0")
	assert.EqualError(t, err, "Distance must be greater than 0 nautical miles")
	_, err = validate.ParseDistance("-3")
	assert.EqualError(t, err, "Distance must be greater than 0 nautical miles")
	_, err = validate.ParseDistance("")
	assert.EqualError(t, err, "Distance cannot be empty")
	_, err = validate.ParseDistance("far")
	assert.EqualError(t, err, "Invalid distance format: far")
}

func TestParseDeclination(t *testing.T) {
	declination, err := validate.ParseDeclination("-13.2")
	require.NoError(t, err)
	assert.InDelta(t, -13.2, declination, 1e-12)

	for _, boundary := range []string{"-180", "180"} {
		_, err = validate.ParseDeclination(boundary)
		assert.NoError(t, err)
	}

	_, err = validate.ParseDeclination("180.1")
	assert.EqualError(t, err, "Declination must be between -180 and 180 degrees")
	_, err = validate.ParseDeclination("")
	assert.EqualError(t, err, "Declination cannot be empty")
}

func TestParseAirportCode(t *testing.T) {
	t.Run("normalizes to upper case", func(t *testing.T) {
		code, err := validate.ParseAirportCode(" ksfo ")
		require.NoError(t, err)
		assert.Equal(t, "KSFO", code)
	})

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", "Airport code cannot be empty"},
		{"too short", "SFO", "Airport code must be exactly 4 characters"},
		{"too long", "KSFOX", "Airport code must be exactly 4 characters"},
		{"contains digit", "KSF1", "Airport code must contain only letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validate.ParseAirportCode(tt.input)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestParseVORIdentifier(t *testing.T) {
	t.Run("three and four letters are valid", func(t *testing.T) {
		id, err := validate.ParseVORIdentifier("sfo", true)
		require.NoError(t, err)
		assert.Equal(t, "SFO", id)

		id, err = validate.ParseVORIdentifier("OAKK", true)
		require.NoError(t, err)
		assert.Equal(t, "OAKK", id)
	})

	t.Run("empty allowed only when permitted", func(t *testing.T) {
		id, err := validate.ParseVORIdentifier("", true)
		require.NoError(t, err)
		assert.Empty(t, id)

		_, err = validate.ParseVORIdentifier("", false)
		assert.EqualError(t, err, "VOR identifier cannot be empty")
	})

	t.Run("length and charset", func(t *testing.T) {
		_, err := validate.ParseVORIdentifier("AB", true)
		assert.EqualError(t, err, "VOR identifier must be 3-4 characters")
		_, err = validate.ParseVORIdentifier("ABCDE", true)
		assert.EqualError(t, err, "VOR identifier must be 3-4 characters")
		_, err = validate.ParseVORIdentifier("SF1", true)
		assert.EqualError(t, err, "VOR identifier must contain only letters")
	})
}

func TestParseRunwayCode(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		for input, expected := range map[string]int{"0": 0, "9": 9, "28": 28, "99": 99} {
			code, err := validate.ParseRunwayCode(input)
			require.NoError(t, err)
			assert.Equal(t, expected, code)
		}
	})

	t.Run("fractional input is a format error, not a range error", func(t *testing.T) {
		_, err := validate.ParseRunwayCode("18.5")
		assert.EqualError(t, err, "Invalid runway code format: 18.5")
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := validate.ParseRunwayCode("100")
		assert.EqualError(t, err, "Runway code must be between 0 and 99")
		_, err = validate.ParseRunwayCode("-1")
		assert.EqualError(t, err, "Runway code must be between 0 and 99")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := validate.ParseRunwayCode("  ")
		assert.EqualError(t, err, "Runway code cannot be empty")
	})
}
