package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-hospital-management/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type fakePatientRepo struct {
	patients map[int]*entity.Patient
}

func (f *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error { return nil }
func (f *fakePatientRepo) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	return f.patients[id], nil
}
func (f *fakePatientRepo) FindAll(db *gorm.DB, offset, limit int) ([]entity.Patient, int64, error) {
	var out []entity.Patient
	for _, p := range f.patients {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}
func (f *fakePatientRepo) Update(db *gorm.DB, patient *entity.Patient) error { return nil }
func (f *fakePatientRepo) Delete(db *gorm.DB, id int) (int64, error)         { return 0, nil }

type fakeDoctorRepo struct {
	doctors map[int]*entity.Doctor
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error { return nil }
func (f *fakeDoctorRepo) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	return f.doctors[id], nil
}
func (f *fakeDoctorRepo) FindAll(db *gorm.DB, offset, limit int) ([]entity.Doctor, int64, error) {
	var out []entity.Doctor
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}
func (f *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error { return nil }
func (f *fakeDoctorRepo) Delete(db *gorm.DB, id int) (int64, error)       { return 0, nil }

type fakeAppointmentRepo struct {
	byPatient map[int][]entity.Appointment
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error { return nil }
func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) FindAll(db *gorm.DB, offset, limit int) ([]entity.Appointment, int64, error) {
	return nil, 0, nil
}
func (f *fakeAppointmentRepo) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	return f.byPatient[patientID], nil
}
func (f *fakeAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error { return nil }
func (f *fakeAppointmentRepo) Delete(db *gorm.DB, id int) (int64, error)                 { return 0, nil }

type fakeVisitRepo struct {
	byPatient map[int][]entity.Visit
}

func (f *fakeVisitRepo) Create(db *gorm.DB, visit *entity.Visit) error     { return nil }
func (f *fakeVisitRepo) FindByID(db *gorm.DB, id int) (*entity.Visit, error) { return nil, nil }
func (f *fakeVisitRepo) FindAll(db *gorm.DB, offset, limit int) ([]entity.Visit, int64, error) {
	return nil, 0, nil
}
func (f *fakeVisitRepo) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Visit, error) {
	return f.byPatient[patientID], nil
}
func (f *fakeVisitRepo) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Visit, error) {
	return nil, nil
}
func (f *fakeVisitRepo) Update(db *gorm.DB, visit *entity.Visit) error { return nil }
func (f *fakeVisitRepo) Delete(db *gorm.DB, id int) (int64, error)     { return 0, nil }

func newChatbotFixture() ChatbotUsecase {
	patients := &fakePatientRepo{patients: map[int]*entity.Patient{
		1: {
			ID:          1,
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane.doe@example.com",
			PhoneNumber: "555-0101",
			DateOfBirth: time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
			Address:     "12 Main St",
			Gender:      entity.GenderFemale,
		},
	}}
	doctors := &fakeDoctorRepo{doctors: map[int]*entity.Doctor{
		2: {
			ID:             2,
			FirstName:      "Greg",
			LastName:       "House",
			Email:          "g.house@example.com",
			PhoneNumber:    "555-0102",
			Specialization: "Diagnostics",
			LicenseNumber:  "LIC-42",
		},
	}}
	appointments := &fakeAppointmentRepo{byPatient: map[int][]entity.Appointment{
		1: {{
			ID:              7,
			PatientID:       1,
			DoctorID:        2,
			AppointmentTime: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
			Reason:          "Checkup",
			Status:          entity.AppointmentStatusScheduled,
		}},
	}}
	visits := &fakeVisitRepo{byPatient: map[int][]entity.Visit{
		1: {{
			ID:             11,
			PatientID:      1,
			VisitDate:      time.Date(2025, 2, 10, 14, 0, 0, 0, time.UTC),
			ChiefComplaint: "Headache",
			Diagnosis:      "Migraine",
		}},
	}}

	log := logrus.New()
	return NewChatbotUsecase(nil, log, patients, doctors, appointments, visits)
}

func TestChatbotQuery(t *testing.T) {
	u := newChatbotFixture()
	ctx := context.Background()

	tests := []struct {
		name  string
		role  string
		query string
		want  []string
	}{
		{
			name:  "unauthorized role gets denial text",
			role:  entity.RoleNurse,
			query: "details for patient id 1",
			want:  []string{"Access denied"},
		},
		{
			name:  "patient details by id",
			role:  entity.RoleDoctor,
			query: "What are the details for patient ID 1?",
			want:  []string{"Patient ID: 1", "Name: Jane Doe", "Gender: Female"},
		},
		{
			name:  "patient details without digits",
			role:  entity.RoleAdmin,
			query: "show me patient details",
			want:  []string{"Please specify a patient ID"},
		},
		{
			name:  "patient not found",
			role:  entity.RoleAdmin,
			query: "details for patient id 99",
			want:  []string{"Patient with ID 99 not found."},
		},
		{
			name:  "list patients as admin",
			role:  entity.RoleAdmin,
			query: "list patients",
			want:  []string{"Here are some patients:", "Jane Doe (ID: 1"},
		},
		{
			name:  "list patients as doctor is refused",
			role:  entity.RoleDoctor,
			query: "list patients",
			want:  []string{"not authorized to list all patients"},
		},
		{
			name:  "doctor details by id",
			role:  entity.RoleAdmin,
			query: "doctor id 2 details",
			want:  []string{"Doctor ID: 2", "Name: Greg House", "Specialization: Diagnostics"},
		},
		{
			name:  "list doctors as admin",
			role:  entity.RoleAdmin,
			query: "list doctors",
			want:  []string{"Here are some doctors:", "Greg House (ID: 2"},
		},
		{
			name:  "appointments query hijacked by id rule",
			role:  entity.RoleAdmin,
			query: "Show appointments for patient ID 1",
			want:  []string{"Patient ID: 1", "Name: Jane Doe"},
		},
		{
			name:  "appointments for patient",
			role:  entity.RoleAdmin,
			query: "appointments for patient 1",
			want:  []string{"Appointments for Patient Jane Doe (ID: 1)", "Appt ID: 7", "Doctor: Greg House", "Status: Scheduled"},
		},
		{
			name:  "visit history for patient",
			role:  entity.RoleDoctor,
			query: "medical records for patient 1",
			want:  []string{"Visit history for Patient Jane Doe (ID: 1)", "Visit ID: 11", "Chief Complaint: Headache", "Diagnosis: Migraine", "Treatment: N/A"},
		},
		{
			name:  "greeting",
			role:  entity.RoleAdmin,
			query: "hello there",
			want:  []string{"Hello! How can I assist you with patient information today?"},
		},
		{
			name:  "fallback",
			role:  entity.RoleAdmin,
			query: "what is the meaning of life",
			want:  []string{"I'm sorry, I couldn't understand that query."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := u.Query(ctx, tt.role, tt.query)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Query(%q, %q) = %q, want it to contain %q", tt.role, tt.query, got, want)
				}
			}
		})
	}
}
