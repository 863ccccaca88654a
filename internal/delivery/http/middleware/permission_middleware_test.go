package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/policy"
)

func TestRequirePermission(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		role       string
		hasRole    bool
		resource   policy.Resource
		action     policy.Action
		wantStatus int
	}{
		{
			name:       "no role in context",
			hasRole:    false,
			resource:   policy.ResourcePatient,
			action:     policy.ActionRead,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "admin can delete patients",
			role:       entity.RoleAdmin,
			hasRole:    true,
			resource:   policy.ResourcePatient,
			action:     policy.ActionDelete,
			wantStatus: http.StatusOK,
		},
		{
			name:       "nurse cannot delete patients",
			role:       entity.RoleNurse,
			hasRole:    true,
			resource:   policy.ResourcePatient,
			action:     policy.ActionDelete,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "receptionist can create appointments",
			role:       entity.RoleReceptionist,
			hasRole:    true,
			resource:   policy.ResourceAppointment,
			action:     policy.ActionCreate,
			wantStatus: http.StatusOK,
		},
		{
			name:       "patient cannot read visits",
			role:       entity.RolePatient,
			hasRole:    true,
			resource:   policy.ResourceVisit,
			action:     policy.ActionRead,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown role is denied",
			role:       "superuser",
			hasRole:    true,
			resource:   policy.ResourcePatient,
			action:     policy.ActionRead,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/1", nil)
			if tt.hasRole {
				req = req.WithContext(context.WithValue(req.Context(), RoleKey, tt.role))
			}
			rec := httptest.NewRecorder()

			RequirePermission(tt.resource, tt.action)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// Authorization is decided before any lookup, so a role without access gets
// 403 even for ids that do not exist.
func TestRequirePermissionDeniesBeforeLookup(t *testing.T) {
	lookupRan := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lookupRan = true
		http.NotFound(w, r)
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/999999", nil)
	req = req.WithContext(context.WithValue(req.Context(), RoleKey, entity.RolePatient))
	rec := httptest.NewRecorder()

	RequirePermission(policy.ResourcePatient, policy.ActionDelete)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if lookupRan {
		t.Error("handler ran despite forbidden role")
	}
}
