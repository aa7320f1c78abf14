package models

// NavAidEntry represents a single navigation aid row read from a data file.
// RawParts keeps the complete original column list so callers can display or
// round-trip fields this package does not interpret.
type NavAidEntry struct {
	TypeCode   string   // TypeCode is the nav-aid type column (first column of a NAV row).
	Latitude   float64  // Latitude of the station in degrees.
	Longitude  float64  // Longitude of the station in degrees.
	Identifier string   // Identifier is the station identifier, as written in the file.
	Name       string   // Name is the optional station name; empty when the file has none.
	RawParts   []string // RawParts holds every whitespace-delimited column of the line.
}

// DisplayName returns a short human-readable label for the entry.
func (e NavAidEntry) DisplayName() string {
	if e.Name != "" {
		return e.Identifier + " - " + e.Name
	}
	return e.Identifier
}

// Position returns the station coordinates of the entry.
func (e NavAidEntry) Position() Coordinates {
	return Coordinates{Latitude: e.Latitude, Longitude: e.Longitude}
}
