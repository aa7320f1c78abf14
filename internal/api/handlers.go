package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/6639835/vor-fix-calculator/internal/format"
	"github.com/6639835/vor-fix-calculator/internal/models"
	"github.com/6639835/vor-fix-calculator/internal/navdata"
	"github.com/6639835/vor-fix-calculator/internal/service"
	"github.com/6639835/vor-fix-calculator/internal/validate"
)

// waypointRequest is the JSON body of POST /api/v1/waypoint.
type waypointRequest struct {
	Coordinates string `json:"coordinates"`
	Identifier  string `json:"identifier,omitempty"`
	File        string `json:"file,omitempty"`
	Bearing     string `json:"bearing"`
	Distance    string `json:"distance"`
	Declination string `json:"declination"`
	Airport     string `json:"airport"`
	VOR         string `json:"vor,omitempty"`
	Operation   string `json:"operation"`
}

// fixRequest is the JSON body of POST /api/v1/fix.
type fixRequest struct {
	Coordinates string `json:"coordinates"`
	Runway      string `json:"runway"`
	Airport     string `json:"airport"`
	FixType     string `json:"fixType"`
	Usage       string `json:"usage"`
	Operation   string `json:"operation"`
}

type outputResponse struct {
	Output string `json:"output"`
}

type errorResponse struct {
	Error   string        `json:"error"`
	Matches []navaidEntry `json:"matches,omitempty"`
}

// navaidEntry is the JSON shape of one matched data file row.
type navaidEntry struct {
	Identifier string  `json:"identifier"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Type       string  `json:"type,omitempty"`
	Name       string  `json:"name,omitempty"`
	Display    string  `json:"display"`
}

type searchResponse struct {
	Matches []navaidEntry `json:"matches"`
}

func (s *server) waypoint(w http.ResponseWriter, r *http.Request) {
	var req waypointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	output, err := s.calc.CalculateWaypoint(r.Context(), service.WaypointRequest{
		Coordinates:   req.Coordinates,
		Identifier:    req.Identifier,
		FileFormat:    fileFormat(req.File),
		Bearing:       req.Bearing,
		Distance:      req.Distance,
		Declination:   req.Declination,
		AirportCode:   req.Airport,
		VORIdentifier: req.VOR,
		Operation:     req.Operation,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outputResponse{Output: output})
}

func (s *server) fix(w http.ResponseWriter, r *http.Request) {
	var req fixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	output, err := s.calc.CalculateFix(r.Context(), service.FixRequest{
		Coordinates: req.Coordinates,
		Runway:      req.Runway,
		AirportCode: req.Airport,
		FixType:     req.FixType,
		Usage:       req.Usage,
		Operation:   req.Operation,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outputResponse{Output: output})
}

// search handles GET /api/v1/search?file=NAV&ident=SFO. Zero matches is a
// normal outcome and answers 200 with an empty list.
func (s *server) search(w http.ResponseWriter, r *http.Request) {
	ident := r.URL.Query().Get("ident")
	file := r.URL.Query().Get("file")

	entries, err := s.calc.Search(r.Context(), service.SearchRequest{
		Identifier: ident,
		FileFormat: fileFormat(file),
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	resp := searchResponse{Matches: make([]navaidEntry, 0, len(entries))}
	for _, entry := range entries {
		resp.Matches = append(resp.Matches, toNavaidEntry(entry))
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeServiceError converts the error taxonomy of the core packages to an
// HTTP status and a displayed message. Nothing here terminates the process.
func (s *server) writeServiceError(w http.ResponseWriter, err error) {
	var verr *validate.ValidationError
	var nferr *service.IdentifierNotFoundError
	var amberr *service.AmbiguousIdentifierError
	var fmterr *navdata.FormatError

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message, nil)
	case errors.As(err, &nferr):
		writeError(w, http.StatusNotFound, nferr.Error(), nil)
	case errors.As(err, &amberr):
		matches := make([]navaidEntry, 0, len(amberr.Entries))
		for _, entry := range amberr.Entries {
			matches = append(matches, toNavaidEntry(entry))
		}
		writeError(w, http.StatusConflict, amberr.Error(), matches)
	case errors.Is(err, navdata.ErrFileNotFound):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &fmterr):
		writeError(w, http.StatusBadRequest, fmterr.Error(), nil)
	default:
		s.log.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func toNavaidEntry(entry models.NavAidEntry) navaidEntry {
	return navaidEntry{
		Identifier: entry.Identifier,
		Latitude:   entry.Latitude,
		Longitude:  entry.Longitude,
		Type:       entry.TypeCode,
		Name:       entry.Name,
		Display:    format.NavAid(entry),
	}
}

// fileFormat normalizes the file query value; an empty value defaults to the
// NAV layout.
func fileFormat(value string) navdata.FileFormat {
	if value == string(navdata.FormatFIX) {
		return navdata.FormatFIX
	}
	return navdata.FormatNAV
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string, matches []navaidEntry) {
	writeJSON(w, status, errorResponse{Error: message, Matches: matches})
}
