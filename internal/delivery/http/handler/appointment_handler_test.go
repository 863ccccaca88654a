package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type fakeAppointmentUsecase struct {
	knownPatients map[int]bool
	knownDoctors  map[int]bool
	appointments  map[int]*dto.AppointmentResponse
}

func (f *fakeAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if _, err := time.Parse(time.RFC3339, req.AppointmentTime); err != nil {
		return nil, usecase.ErrInvalidTimeFormat
	}
	if !f.knownPatients[req.PatientID] {
		return nil, usecase.ErrAppointmentPatientNotFound
	}
	if !f.knownDoctors[req.DoctorID] {
		return nil, usecase.ErrAppointmentDoctorNotFound
	}
	return &dto.AppointmentResponse{ID: 1, PatientID: req.PatientID, DoctorID: req.DoctorID, Status: "Scheduled"}, nil
}

func (f *fakeAppointmentUsecase) GetAppointment(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, usecase.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeAppointmentUsecase) ListAppointments(ctx context.Context, offset, limit int) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{}, nil
}

func (f *fakeAppointmentUsecase) ListAppointmentsByPatient(ctx context.Context, patientID int) ([]dto.AppointmentResponse, error) {
	if !f.knownPatients[patientID] {
		return nil, usecase.ErrAppointmentPatientNotFound
	}
	return nil, nil
}

func (f *fakeAppointmentUsecase) ListAppointmentsByDoctor(ctx context.Context, doctorID int) ([]dto.AppointmentResponse, error) {
	if !f.knownDoctors[doctorID] {
		return nil, usecase.ErrAppointmentDoctorNotFound
	}
	return nil, nil
}

func (f *fakeAppointmentUsecase) UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, usecase.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeAppointmentUsecase) DeleteAppointment(ctx context.Context, id int) error {
	if _, ok := f.appointments[id]; !ok {
		return usecase.ErrAppointmentNotFound
	}
	return nil
}

func newAppointmentRouter(u usecase.AppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(u, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/appointments/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/patients/{id}/appointments", h.ListByPatient).Methods(http.MethodGet)
	return r
}

func TestAppointmentHandlerCreate(t *testing.T) {
	u := &fakeAppointmentUsecase{
		knownPatients: map[int]bool{1: true},
		knownDoctors:  map[int]bool{2: true},
	}
	router := newAppointmentRouter(u)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid appointment",
			body:       `{"patient_id":1,"doctor_id":2,"appointment_time":"2025-03-01T09:30:00Z","reason":"Checkup"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown patient is 404 not 500",
			body:       `{"patient_id":42,"doctor_id":2,"appointment_time":"2025-03-01T09:30:00Z"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown doctor is 404 not 500",
			body:       `{"patient_id":1,"doctor_id":42,"appointment_time":"2025-03-01T09:30:00Z"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "bad timestamp",
			body:       `{"patient_id":1,"doctor_id":2,"appointment_time":"tomorrow"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid status value",
			body:       `{"patient_id":1,"doctor_id":2,"appointment_time":"2025-03-01T09:30:00Z","status":"Done"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing doctor id",
			body:       `{"patient_id":1,"appointment_time":"2025-03-01T09:30:00Z"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestAppointmentHandlerListByPatient(t *testing.T) {
	u := &fakeAppointmentUsecase{
		knownPatients: map[int]bool{1: true},
		knownDoctors:  map[int]bool{},
	}
	router := newAppointmentRouter(u)

	t.Run("known patient", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/1/appointments", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("unknown patient", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/9/appointments", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}
