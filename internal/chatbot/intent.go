// Package chatbot holds the pure intent-matching half of the chatbot:
// classifying free text into a closed intent set and pulling entity ids out
// of it. Keeping this free of repository and authorization concerns lets the
// matcher be swapped for a real classifier later without touching the façade.
package chatbot

import (
	"strconv"
	"strings"
)

// Intent is one of the closed set of recognized query intents.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentPatientDetails
	IntentListPatients
	IntentDoctorDetails
	IntentListDoctors
	IntentPatientAppointments
	IntentPatientVisitHistory
	IntentGreeting
)

func (i Intent) String() string {
	switch i {
	case IntentPatientDetails:
		return "patient_details"
	case IntentListPatients:
		return "list_patients"
	case IntentDoctorDetails:
		return "doctor_details"
	case IntentListDoctors:
		return "list_doctors"
	case IntentPatientAppointments:
		return "patient_appointments"
	case IntentPatientVisitHistory:
		return "patient_visit_history"
	case IntentGreeting:
		return "greeting"
	default:
		return "unknown"
	}
}

// Classify maps a free-text query onto an intent by substring matching over
// the lowercased text. Rules are checked in a fixed order; the first match
// wins, so "appointments for patient id 1" resolves to patient details, not
// appointments. That ordering is deliberate and load-bearing for callers.
func Classify(query string) Intent {
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "patient") && (strings.Contains(q, "id") || strings.Contains(q, "details")):
		return IntentPatientDetails
	case strings.Contains(q, "all patients") || strings.Contains(q, "list patients"):
		return IntentListPatients
	case strings.Contains(q, "doctor") && (strings.Contains(q, "id") || strings.Contains(q, "details")):
		return IntentDoctorDetails
	case strings.Contains(q, "all doctors") || strings.Contains(q, "list doctors"):
		return IntentListDoctors
	case strings.Contains(q, "patient") && strings.Contains(q, "appointments"):
		return IntentPatientAppointments
	case strings.Contains(q, "patient") && (strings.Contains(q, "visit history") || strings.Contains(q, "medical records") || strings.Contains(q, "ehr")):
		return IntentPatientVisitHistory
	case strings.Contains(q, "hello") || strings.Contains(q, "hi"):
		return IntentGreeting
	default:
		return IntentUnknown
	}
}

// ExtractID concatenates every decimal digit in the query and parses the
// result as an integer. ok is false when the text carries no digits at all.
func ExtractID(query string) (id int, ok bool) {
	var digits strings.Builder
	for _, r := range query {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return id, true
}
