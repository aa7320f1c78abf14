package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/6639835/vor-fix-calculator/internal/format"
	"github.com/6639835/vor-fix-calculator/internal/geodesic"
	"github.com/6639835/vor-fix-calculator/internal/metrics"
	"github.com/6639835/vor-fix-calculator/internal/models"
	"github.com/6639835/vor-fix-calculator/internal/navdata"
	"github.com/6639835/vor-fix-calculator/internal/validate"
)

// NavReader is the interface the calculator uses to look up station rows in
// navigation data files.
type NavReader interface {
	Read(path string, format navdata.FileFormat, identifier string) ([]models.NavAidEntry, error)
}

// Calculator provides the waypoint and fix calculation operations, including
// input validation, coordinate resolution through data files, geodesic
// computation and output formatting. Every request runs strictly
// sequentially: validate, resolve, compute, format.
type Calculator struct {
	log     *slog.Logger     // Logger for logging service activities
	reader  NavReader        // Reader for navigation data file lookups
	metrics *metrics.Metrics // Metrics for tracking service performance
	navPath string           // Path of the NAV data file; may be empty
	fixPath string           // Path of the FIX data file; may be empty
}

// NewCalculator creates a new instance of Calculator. It takes a logger, a
// navigation data reader, metrics for monitoring, and the configured NAV and
// FIX data file paths (either may be empty when no file is available).
func NewCalculator(
	log *slog.Logger,
	reader NavReader,
	metrics *metrics.Metrics,
	navPath string,
	fixPath string,
) *Calculator {
	return &Calculator{
		log:     log,
		reader:  reader,
		metrics: metrics,
		navPath: navPath,
		fixPath: fixPath,
	}
}

// WaypointRequest carries the raw text fields of a waypoint calculation.
// Coordinates may be left empty when Identifier names a station to resolve
// through the configured data file instead.
type WaypointRequest struct {
	Coordinates   string             // "latitude longitude" of the station
	Identifier    string             // station identifier for file resolution
	FileFormat    navdata.FileFormat // data file layout used for resolution
	Bearing       string             // magnetic bearing in degrees
	Distance      string             // distance in nautical miles
	Declination   string             // magnetic declination in degrees
	AirportCode   string             // four-letter airport code
	VORIdentifier string             // optional VOR identifier
	Operation     string             // operation type label
}

// FixRequest carries the raw text fields of an approach fix calculation.
type FixRequest struct {
	Coordinates string // "latitude longitude" of the fix
	Runway      string // runway number, 0-99
	AirportCode string // four-letter airport code
	FixType     string // fix type label
	Usage       string // fix usage label
	Operation   string // operation type label
}

// SearchRequest asks for all data file rows matching an identifier.
type SearchRequest struct {
	Identifier string             // identifier to search for
	FileFormat navdata.FileFormat // data file layout to scan
}

// IdentifierNotFoundError reports that a station identifier matched no row
// in the data file. It is an informational outcome for searches, but blocks
// a calculation that depends on the station coordinates.
type IdentifierNotFoundError struct {
	Identifier string
}

func (e *IdentifierNotFoundError) Error() string {
	return fmt.Sprintf("Identifier '%s' not found.", e.Identifier)
}

// AmbiguousIdentifierError reports that an identifier matched more than one
// row; the caller has to pick one and retry with explicit coordinates.
type AmbiguousIdentifierError struct {
	Identifier string
	Entries    []models.NavAidEntry
}

func (e *AmbiguousIdentifierError) Error() string {
	return fmt.Sprintf("Identifier '%s' matched %d entries, select one", e.Identifier, len(e.Entries))
}

// CalculateWaypoint validates a waypoint request, resolves the origin
// coordinates, computes the destination point on the WGS84 ellipsoid and
// returns the formatted aviation notation line.
func (c *Calculator) CalculateWaypoint(ctx context.Context, req WaypointRequest) (string, error) {
	origin, err := c.resolveOrigin(ctx, req)
	if err != nil {
		c.countResult("waypoint", err)
		return "", err
	}

	bearing, err := validate.ParseBearing(req.Bearing)
	if err != nil {
		return "", c.reject("waypoint", err)
	}
	distance, err := validate.ParseDistance(req.Distance)
	if err != nil {
		return "", c.reject("waypoint", err)
	}
	declination, err := validate.ParseDeclination(req.Declination)
	if err != nil {
		return "", c.reject("waypoint", err)
	}
	airportCode, err := validate.ParseAirportCode(req.AirportCode)
	if err != nil {
		return "", c.reject("waypoint", err)
	}
	vorID, err := validate.ParseVORIdentifier(req.VORIdentifier, true)
	if err != nil {
		return "", c.reject("waypoint", err)
	}
	operationCode, ok := models.OperationCode(req.Operation)
	if !ok {
		return "", c.reject("waypoint", &validate.ValidationError{
			Field:   "operation",
			Message: "Unknown operation type: " + req.Operation,
		})
	}

	target := geodesic.Waypoint(origin, bearing, distance, declination)

	result := models.WaypointResult{
		Coordinates:     target,
		RadiusLetter:    geodesic.RadiusDesignator(distance),
		AirportCode:     airportCode,
		OperationCode:   operationCode,
		VORIdentifier:   vorID,
		MagneticBearing: bearing,
		DistanceNM:      distance,
	}

	c.metrics.Calculations.WithLabelValues("waypoint", "success").Inc()
	c.log.DebugContext(ctx, "Waypoint calculated",
		"origin", origin.String(), "bearing", bearing, "distance", distance)
	return format.Waypoint(result), nil
}

// CalculateFix validates a fix request and returns the formatted aviation
// notation line for the fix.
func (c *Calculator) CalculateFix(ctx context.Context, req FixRequest) (string, error) {
	coords, err := validate.ParseCoordinates(req.Coordinates)
	if err != nil {
		return "", c.reject("fix", err)
	}
	runway, err := validate.ParseRunwayCode(req.Runway)
	if err != nil {
		return "", c.reject("fix", err)
	}
	airportCode, err := validate.ParseAirportCode(req.AirportCode)
	if err != nil {
		return "", c.reject("fix", err)
	}

	fixCode, ok := models.FixTypeCode(req.FixType)
	if !ok {
		return "", c.reject("fix", &validate.ValidationError{
			Field:   "fixType",
			Message: "Invalid FIX type selection: " + req.FixType,
		})
	}
	usageCode, ok := models.FixUsageCode(req.Usage)
	if !ok {
		return "", c.reject("fix", &validate.ValidationError{
			Field:   "usage",
			Message: "Invalid FIX usage selection: " + req.Usage,
		})
	}
	operationCode, ok := models.OperationCode(req.Operation)
	if !ok {
		return "", c.reject("fix", &validate.ValidationError{
			Field:   "operation",
			Message: "Unknown operation type: " + req.Operation,
		})
	}

	result := models.FixResult{
		Coordinates:   coords,
		FixCode:       fixCode,
		UsageCode:     usageCode,
		RunwayCode:    fmt.Sprintf("%d", runway),
		AirportCode:   airportCode,
		OperationCode: operationCode,
	}

	c.metrics.Calculations.WithLabelValues("fix", "success").Inc()
	return format.Fix(result), nil
}

// Search scans the configured data file for every row matching the
// identifier. Zero matches returns an empty slice and no error.
func (c *Calculator) Search(ctx context.Context, req SearchRequest) ([]models.NavAidEntry, error) {
	identifier := strings.ToUpper(strings.TrimSpace(req.Identifier))
	if identifier == "" {
		c.metrics.ValidationErrors.Inc()
		return nil, &validate.ValidationError{Field: "identifier", Message: "Please enter an identifier."}
	}

	path, err := c.pathFor(req.FileFormat)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	entries, err := c.reader.Read(path, req.FileFormat, identifier)
	c.metrics.LookupSeconds.WithLabelValues(string(req.FileFormat)).Observe(time.Since(startTime).Seconds())
	if err != nil {
		c.log.ErrorContext(ctx, "Data file lookup failed",
			"path", path, "format", req.FileFormat, "error", err)
		return nil, err
	}

	c.metrics.LookupMatches.Observe(float64(len(entries)))
	c.log.InfoContext(ctx, "Data file lookup finished",
		"identifier", identifier, "format", req.FileFormat, "matches", len(entries))
	return entries, nil
}

// resolveOrigin returns the origin coordinates of a waypoint request, either
// parsed from the request itself or resolved through the data file when only
// an identifier was supplied.
func (c *Calculator) resolveOrigin(ctx context.Context, req WaypointRequest) (models.Coordinates, error) {
	if req.Coordinates != "" {
		return validate.ParseCoordinates(req.Coordinates)
	}

	if req.Identifier == "" {
		return models.Coordinates{}, &validate.ValidationError{
			Field:   "coordinates",
			Message: "Please enter coordinates or an identifier.",
		}
	}

	entries, err := c.Search(ctx, SearchRequest{Identifier: req.Identifier, FileFormat: req.FileFormat})
	if err != nil {
		return models.Coordinates{}, err
	}
	switch len(entries) {
	case 0:
		return models.Coordinates{}, &IdentifierNotFoundError{Identifier: req.Identifier}
	case 1:
		return entries[0].Position(), nil
	default:
		return models.Coordinates{}, &AmbiguousIdentifierError{Identifier: req.Identifier, Entries: entries}
	}
}

// pathFor returns the configured data file path for a layout.
func (c *Calculator) pathFor(format navdata.FileFormat) (string, error) {
	switch format {
	case navdata.FormatNAV:
		if c.navPath == "" {
			return "", &validate.ValidationError{Field: "file", Message: "Please select a NAV file."}
		}
		return c.navPath, nil
	case navdata.FormatFIX:
		if c.fixPath == "" {
			return "", &validate.ValidationError{Field: "file", Message: "Please select a FIX file."}
		}
		return c.fixPath, nil
	default:
		return "", fmt.Errorf("unknown file format: %q", format)
	}
}

// reject records a validation failure for a calculation mode.
func (c *Calculator) reject(mode string, err error) error {
	c.metrics.ValidationErrors.Inc()
	c.metrics.Calculations.WithLabelValues(mode, "error").Inc()
	return err
}

// countResult classifies an origin resolution failure for the mode counter.
func (c *Calculator) countResult(mode string, err error) {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		c.metrics.ValidationErrors.Inc()
	}
	c.metrics.Calculations.WithLabelValues(mode, "error").Inc()
}
