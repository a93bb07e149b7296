package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUnmarshalTicket(t *testing.T) {
	raw := `{
		"patientrecord_id": "rec-41",
		"patient_name": "Somchai J.",
		"patient_id": "6401234",
		"role": "student",
		"datetime": "2024-11-02T09:30:00+07:00",
		"status": 1,
		"symptom_names": "fever, headache",
		"other_symptoms": "dizziness"
	}`
	var tk Ticket
	if err := json.Unmarshal([]byte(raw), &tk); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tk.ID != "rec-41" {
		t.Errorf("ID = %q", tk.ID)
	}
	if !tk.Status.Active() {
		t.Errorf("status %d should be active", tk.Status)
	}
	want := time.Date(2024, 11, 2, 9, 30, 0, 0, time.FixedZone("", 7*3600))
	if !tk.Datetime.Equal(want) {
		t.Errorf("Datetime = %v, want %v", tk.Datetime, want)
	}
}

func TestUnmarshalTicketMySQLDatetime(t *testing.T) {
	var tk Ticket
	if err := json.Unmarshal([]byte(`{"patientrecord_id":"x","datetime":"2024-11-02 09:30:00"}`), &tk); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tk.Datetime.Year() != 2024 || tk.Datetime.Hour() != 9 {
		t.Errorf("Datetime = %v", tk.Datetime)
	}
}

func TestUnmarshalTicketMissingDatetimeDefaultsToNow(t *testing.T) {
	var tk Ticket
	if err := json.Unmarshal([]byte(`{"patientrecord_id":"x"}`), &tk); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if time.Since(tk.Datetime) > time.Minute {
		t.Errorf("Datetime = %v, want roughly now", tk.Datetime)
	}
}

func TestValidate(t *testing.T) {
	if err := (Ticket{ID: "a"}).Validate(); err != nil {
		t.Errorf("valid ticket: %v", err)
	}
	if err := (Ticket{}).Validate(); err != ErrMissingID {
		t.Errorf("err = %v, want ErrMissingID", err)
	}
}

func TestStatusString(t *testing.T) {
	if got := StatusActive.String(); got != "active" {
		t.Errorf("StatusActive = %q", got)
	}
	if got := Status(2).String(); got != "finished" {
		t.Errorf("Status(2) = %q", got)
	}
	if got := Status(0).String(); got != "finished" {
		t.Errorf("Status(0) = %q", got)
	}
}

func TestDisplayFallbacks(t *testing.T) {
	var tk Ticket
	if got := tk.DisplayName(); got != UnknownField {
		t.Errorf("DisplayName = %q", got)
	}
	if got := tk.Symptoms(); got != NoSymptoms {
		t.Errorf("Symptoms = %q", got)
	}
	if got := tk.OtherSymptomText(); got != NoOtherSymptoms {
		t.Errorf("OtherSymptomText = %q", got)
	}

	tk = Ticket{PatientName: "A", SymptomNames: "cough", OtherSymptoms: "rash"}
	if got := tk.Symptoms(); got != "cough" {
		t.Errorf("Symptoms = %q", got)
	}
}

func TestPillRecordsAlignment(t *testing.T) {
	tk := Ticket{
		PillstockIDs:   "L1, L2",
		PillNames:      "Paracetamol",
		PillQuantities: "10, 20, 5",
		UnitType:       "tablets",
	}
	records := tk.PillRecords()
	if len(records) != 3 {
		t.Fatalf("len = %d, want 3 (quantity list drives the rows)", len(records))
	}
	if records[0].LotID != "L1" || records[0].Name != "Paracetamol" || records[0].Quantity != "10" {
		t.Errorf("records[0] = %+v", records[0])
	}
	if records[1].Name != UnknownField {
		t.Errorf("records[1].Name = %q, want placeholder", records[1].Name)
	}
	if records[2].LotID != UnknownField {
		t.Errorf("records[2].LotID = %q, want placeholder", records[2].LotID)
	}
	for _, r := range records {
		if r.Unit != "tablets" {
			t.Errorf("Unit = %q", r.Unit)
		}
	}
}

func TestPillRecordsEmpty(t *testing.T) {
	if got := (Ticket{}).PillRecords(); got != nil {
		t.Errorf("PillRecords = %v, want nil", got)
	}
}
