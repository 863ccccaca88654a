package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type fakePatientUsecase struct {
	patients map[int]*dto.PatientResponse
	created  *dto.CreatePatientRequest
	deleted  []int
}

func (f *fakePatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if req.Email == "taken@example.com" {
		return nil, usecase.ErrPatientEmailExists
	}
	f.created = req
	return &dto.PatientResponse{
		ID:          1,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
	}, nil
}

func (f *fakePatientUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, usecase.ErrPatientNotFound
	}
	return p, nil
}

func (f *fakePatientUsecase) ListPatients(ctx context.Context, offset, limit int) (*dto.PatientListResponse, error) {
	var out []dto.PatientResponse
	for _, p := range f.patients {
		out = append(out, *p)
	}
	return &dto.PatientListResponse{Patients: out, Total: int64(len(out))}, nil
}

func (f *fakePatientUsecase) UpdatePatient(ctx context.Context, id int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, usecase.ErrPatientNotFound
	}
	updated := *p
	if req.FirstName != nil {
		updated.FirstName = *req.FirstName
	}
	return &updated, nil
}

func (f *fakePatientUsecase) DeletePatient(ctx context.Context, id int) error {
	if _, ok := f.patients[id]; !ok {
		return usecase.ErrPatientNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newPatientRouter(u usecase.PatientUsecase) *mux.Router {
	h := NewPatientHandler(u, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/patients", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/patients", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/patients/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/patients/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/patients/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestPatientHandlerCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid patient",
			body:       `{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","date_of_birth":"1990-05-12","gender":"Female"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed json",
			body:       `{"first_name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing required fields",
			body:       `{"first_name":"Jane"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid gender",
			body:       `{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","date_of_birth":"1990-05-12","gender":"Unknown"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"first_name":"Jane","last_name":"Doe","email":"taken@example.com","date_of_birth":"1990-05-12","gender":"Female"}`,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPatientRouter(&fakePatientUsecase{patients: map[int]*dto.PatientResponse{}})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestPatientHandlerGet(t *testing.T) {
	u := &fakePatientUsecase{patients: map[int]*dto.PatientResponse{
		1: {ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Gender: "Female"},
	}}
	router := newPatientRouter(u)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}

		var envelope struct {
			Success bool                `json:"success"`
			Data    dto.PatientResponse `json:"data"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !envelope.Success {
			t.Error("success = false, want true")
		}
		if envelope.Data.FirstName != "Jane" {
			t.Errorf("first name = %q, want %q", envelope.Data.FirstName, "Jane")
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestPatientHandlerDelete(t *testing.T) {
	u := &fakePatientUsecase{patients: map[int]*dto.PatientResponse{
		1: {ID: 1, FirstName: "Jane"},
	}}
	router := newPatientRouter(u)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
	if len(u.deleted) != 1 || u.deleted[0] != 1 {
		t.Errorf("deleted = %v, want [1]", u.deleted)
	}
}
