package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hospital-management/config"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/pkg/jwt"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: 5 * time.Minute,
	})
}

func TestAuthenticate(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService)

	token, err := jwtService.Generate("alice", entity.RoleDoctor)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var gotUsername, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUsername, _ = GetUsernameFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"bearer without token", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	if gotUsername != "alice" {
		t.Errorf("username in context = %q, want %q", gotUsername, "alice")
	}
	if gotRole != entity.RoleDoctor {
		t.Errorf("role in context = %q, want %q", gotRole, entity.RoleDoctor)
	}
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	expiredService := jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Nanosecond,
	})
	token, err := expiredService.Generate("bob", entity.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	m := NewAuthMiddleware(newTestJWTService())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for an expired token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
