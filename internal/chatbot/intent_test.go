package chatbot

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"What are the details for patient ID 1?", IntentPatientDetails},
		{"show patient details", IntentPatientDetails},
		{"list patients", IntentListPatients},
		{"show me all patients", IntentListPatients},
		{"What are the details for doctor ID 3?", IntentDoctorDetails},
		{"all doctors please", IntentListDoctors},
		{"appointments for patient 5", IntentPatientAppointments},
		{"visit history for patient 2", IntentPatientVisitHistory},
		{"medical records for patient 2", IntentPatientVisitHistory},
		{"show the ehr for patient 2", IntentPatientVisitHistory},
		{"hello", IntentGreeting},
		{"hi there", IntentGreeting},
		{"what's the weather", IntentUnknown},
		{"", IntentUnknown},
		// Rule order: "id" wins over "appointments" when both appear.
		{"Show appointments for patient ID 1", IntentPatientDetails},
		// Matching is case-insensitive.
		{"LIST PATIENTS", IntentListPatients},
	}

	for _, tt := range tests {
		if got := Classify(tt.query); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		query  string
		wantID int
		wantOK bool
	}{
		{"patient id 1", 1, true},
		{"patient 42 details", 42, true},
		// Every digit run is concatenated, matching the matcher's contract.
		{"patient 1 and 2", 12, true},
		{"no digits here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		id, ok := ExtractID(tt.query)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ExtractID(%q) = (%d, %v), want (%d, %v)", tt.query, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestIntentString(t *testing.T) {
	if IntentListPatients.String() != "list_patients" {
		t.Errorf("unexpected string: %s", IntentListPatients)
	}
	if IntentUnknown.String() != "unknown" {
		t.Errorf("unexpected string: %s", IntentUnknown)
	}
}
