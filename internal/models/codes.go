package models

// CodeEntry is one row of a static label-to-code table.
type CodeEntry struct {
	Label string // Label is the human-readable name shown to users.
	Code  string // Code is the short code emitted in aviation notation.
}

// OperationTypes maps flight operation labels to their numeric codes.
var OperationTypes = []CodeEntry{
	{Label: "Departure", Code: "4464713"},
	{Label: "Arrival", Code: "4530249"},
	{Label: "Approach", Code: "4595785"},
}

// FixTypes maps navigation fix type labels to their single-letter codes.
var FixTypes = []CodeEntry{
	{Label: "VORDME", Code: "D"},
	{Label: "VOR", Code: "V"},
	{Label: "NDBDME", Code: "Q"},
	{Label: "NDB", Code: "N"},
	{Label: "ILS", Code: "I"},
	{Label: "RNP", Code: "R"},
}

// FixUsages maps fix usage labels to their single-letter codes.
var FixUsages = []CodeEntry{
	{Label: "Final approach fix", Code: "F"},
	{Label: "Initial approach fix", Code: "A"},
	{Label: "Intermediate approach fix", Code: "I"},
	{Label: "Final approach course fix", Code: "C"},
	{Label: "Missed approach point fix", Code: "M"},
}

// NavAidTypes maps the type-code column of NAV data files to display labels.
var NavAidTypes = []CodeEntry{
	{Label: "VOR", Code: "3"},
	{Label: "DME (VOR)", Code: "12"},
	{Label: "NDB", Code: "2"},
	{Label: "DME", Code: "13"},
	{Label: "OUTER MARKER", Code: "7"},
	{Label: "MIDDLE MARKER", Code: "8"},
	{Label: "INNER MARKER", Code: "9"},
}

// OperationCode resolves a flight operation label to its numeric code.
func OperationCode(label string) (string, bool) {
	return codeForLabel(OperationTypes, label)
}

// FixTypeCode resolves a fix type label to its single-letter code.
func FixTypeCode(label string) (string, bool) {
	return codeForLabel(FixTypes, label)
}

// FixUsageCode resolves a fix usage label to its single-letter code.
func FixUsageCode(label string) (string, bool) {
	return codeForLabel(FixUsages, label)
}

// NavAidTypeLabel resolves a data-file type code to a display label.
// Unknown codes resolve to "Unknown".
func NavAidTypeLabel(code string) string {
	for _, entry := range NavAidTypes {
		if entry.Code == code {
			return entry.Label
		}
	}
	return "Unknown"
}

func codeForLabel(table []CodeEntry, label string) (string, bool) {
	for _, entry := range table {
		if entry.Label == label {
			return entry.Code, true
		}
	}
	return "", false
}
