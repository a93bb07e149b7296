package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Status is the upstream numeric status flag. The upstream only guarantees
// that 1 means the ticket is still waiting; every other value counts as
// finished.
type Status int

const StatusActive Status = 1

func (s Status) Active() bool { return s == StatusActive }

func (s Status) String() string {
	if s.Active() {
		return "active"
	}
	return "finished"
}

// Display fallbacks used when the upstream record leaves a field empty.
const (
	UnknownField    = "Unknown"
	NoSymptoms      = "No symptoms recorded"
	NoOtherSymptoms = "No other symptoms"
)

// ErrMissingID marks a ticket that arrived without its identity key. Such a
// record can still be listed read-only, but it must never be navigated to or
// deleted.
var ErrMissingID = errors.New("ticket missing patientrecord_id")

// Ticket is one patient service request as the upstream API ships it.
// The pill_* fields are parallel comma-joined lists, index-aligned.
type Ticket struct {
	ID             string    `json:"patientrecord_id"`
	PatientName    string    `json:"patient_name"`
	PatientID      string    `json:"patient_id"`
	Role           string    `json:"role"`
	Datetime       time.Time `json:"datetime"`
	Status         Status    `json:"status"`
	SymptomNames   string    `json:"symptom_names"`
	OtherSymptoms  string    `json:"other_symptoms"`
	PillstockIDs   string    `json:"pillstock_ids"`
	PillNames      string    `json:"pill_names"`
	PillQuantities string    `json:"pill_quantities"`
	UnitType       string    `json:"unit_type"`
}

// upstream datetime formats, tried in order.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func (t *Ticket) UnmarshalJSON(b []byte) error {
	type alias Ticket
	aux := struct {
		*alias
		Datetime string `json:"datetime"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t.Datetime = parseDatetime(aux.Datetime)
	return nil
}

func parseDatetime(s string) time.Time {
	for _, layout := range datetimeLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts
		}
	}
	// absent or unparsable timestamps fall back to now
	return time.Now()
}

// Validate reports whether the ticket is usable for interactive actions.
func (t Ticket) Validate() error {
	if t.ID == "" {
		return ErrMissingID
	}
	return nil
}

func (t Ticket) DisplayName() string {
	return orUnknown(t.PatientName)
}

func (t Ticket) DisplayPatientID() string {
	return orUnknown(t.PatientID)
}

// Symptoms returns the comma-joined symptom list, or the fallback text.
func (t Ticket) Symptoms() string {
	if strings.TrimSpace(t.SymptomNames) == "" {
		return NoSymptoms
	}
	return t.SymptomNames
}

func (t Ticket) OtherSymptomText() string {
	if strings.TrimSpace(t.OtherSymptoms) == "" {
		return NoOtherSymptoms
	}
	return t.OtherSymptoms
}

// PillRecord is one row of the dispensed-medicine table.
type PillRecord struct {
	LotID    string
	Name     string
	Quantity string
	Unit     string
}

// PillRecords zips the parallel pill lists. The quantity list drives the row
// count; a sibling list that is shorter contributes UnknownField instead of
// failing, matching how the upstream data is rendered.
func (t Ticket) PillRecords() []PillRecord {
	if strings.TrimSpace(t.PillQuantities) == "" {
		return nil
	}
	quantities := splitList(t.PillQuantities)
	lots := splitList(t.PillstockIDs)
	names := splitList(t.PillNames)

	records := make([]PillRecord, len(quantities))
	for i, q := range quantities {
		records[i] = PillRecord{
			LotID:    listAt(lots, i),
			Name:     listAt(names, i),
			Quantity: q,
			Unit:     t.UnitType,
		}
	}
	return records
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func listAt(parts []string, i int) string {
	if i >= len(parts) || parts[i] == "" {
		return UnknownField
	}
	return parts[i]
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return UnknownField
	}
	return s
}
