// Package navdata reads flat navigation data files in the two known
// whitespace-delimited layouts (NAV and FIX) and looks up station rows by
// identifier.
package navdata

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/6639835/vor-fix-calculator/internal/models"
)

// FileFormat selects one of the two known data file column layouts.
type FileFormat string

const (
	// FormatNAV is the navigation aid layout: latitude at column 1,
	// longitude at column 2, identifier at column 7, optional name at
	// column 9.
	FormatNAV FileFormat = "NAV"
	// FormatFIX is the fix layout: latitude at column 0, longitude at
	// column 1, identifier at column 2.
	FormatFIX FileFormat = "FIX"
)

// Column indices of the NAV file layout.
const (
	navLatIndex  = 1
	navLonIndex  = 2
	navIdIndex   = 7
	navNameIndex = 9
)

// Column indices of the FIX file layout.
const (
	fixLatIndex = 0
	fixLonIndex = 1
	fixIdIndex  = 2
)

// ErrFileNotFound reports that the requested data file path does not exist.
var ErrFileNotFound = errors.New("data file not found")

// FormatError reports a line whose identifier matched the search but whose
// coordinate columns could not be parsed. It aborts the whole scan.
type FormatError struct {
	Line int   // Line is the 1-based line number of the offending row.
	Err  error // Err is the underlying parse failure.
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid data format at line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Reader scans navigation data files for matching station rows.
type Reader struct {
	log *slog.Logger
}

// NewReader creates a new Reader that logs scan activity to the given logger.
func NewReader(log *slog.Logger) *Reader {
	return &Reader{log: log}
}

// Read scans the data file at path line by line and returns every row whose
// identifier column equals the given identifier, compared case-insensitively.
// Matches are returned in file order; no matches is a normal empty result,
// not an error.
//
// Blank lines and lines with fewer columns than the layout requires are
// skipped silently. A matching line with non-numeric coordinate columns
// aborts the read with a *FormatError. A missing file reports
// ErrFileNotFound.
func (r *Reader) Read(path string, format FileFormat, identifier string) ([]models.NavAidEntry, error) {
	latIdx, lonIdx, idIdx, nameIdx, err := columnIndices(format)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	maxIdx := max(latIdx, lonIdx, idIdx)
	var entries []models.NavAidEntry

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		parts := strings.Fields(scanner.Text())

		// Blank or short lines are ignorable, not malformed.
		if len(parts) == 0 || len(parts) <= maxIdx {
			continue
		}

		if !strings.EqualFold(parts[idIdx], identifier) {
			continue
		}

		latitude, err := strconv.ParseFloat(parts[latIdx], 64)
		if err != nil {
			return nil, &FormatError{Line: lineNum, Err: err}
		}
		longitude, err := strconv.ParseFloat(parts[lonIdx], 64)
		if err != nil {
			return nil, &FormatError{Line: lineNum, Err: err}
		}

		name := ""
		if nameIdx >= 0 && len(parts) > nameIdx {
			name = parts[nameIdx]
		}

		entry := models.NavAidEntry{
			TypeCode:   parts[0],
			Latitude:   latitude,
			Longitude:  longitude,
			Identifier: parts[idIdx],
			Name:       name,
			RawParts:   parts,
		}
		entries = append(entries, entry)
		r.log.Debug("Matched data file entry",
			"path", path, "line", lineNum, "identifier", entry.Identifier)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	return entries, nil
}

// columnIndices returns the interpreted column positions for a layout. The
// name index is -1 when the layout carries no name column.
func columnIndices(format FileFormat) (latIdx, lonIdx, idIdx, nameIdx int, err error) {
	switch format {
	case FormatNAV:
		return navLatIndex, navLonIndex, navIdIndex, navNameIndex, nil
	case FormatFIX:
		return fixLatIndex, fixLonIndex, fixIdIndex, -1, nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("unknown file format: %q", format)
	}
}

// ValidatePath checks that a data file path is usable before a scan and
// returns a human-readable problem description, or an empty string when the
// path is fine. Intended for pre-checks by the presentation layer.
func ValidatePath(path string) string {
	if path == "" {
		return "No file path provided"
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "File does not exist: " + path
		}
		return fmt.Sprintf("Error accessing file: %v", err)
	}
	if !info.Mode().IsRegular() {
		return "Path is not a file: " + path
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return "No permission to read file: " + path
		}
		return fmt.Sprintf("Error accessing file: %v", err)
	}
	file.Close()

	return ""
}
