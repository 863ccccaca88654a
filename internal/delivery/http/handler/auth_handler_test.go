package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/validator"

	"github.com/gorilla/mux"
)

type fakeAuthUsecase struct {
	users map[string]string // username -> password
}

func (f *fakeAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, exists := f.users[req.Username]; exists {
		return nil, usecase.ErrUsernameTaken
	}
	f.users[req.Username] = req.Password
	return &dto.UserResponse{ID: 1, Username: req.Username, Role: req.Role}, nil
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	password, exists := f.users[req.Username]
	if !exists || password != req.Password {
		return nil, usecase.ErrInvalidCredentials
	}
	return &dto.TokenResponse{AccessToken: "token", TokenType: "bearer", ExpiresIn: 1800}, nil
}

func (f *fakeAuthUsecase) GetCurrentUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	if _, exists := f.users[username]; !exists {
		return nil, usecase.ErrUserNotFound
	}
	return &dto.UserResponse{ID: 1, Username: username}, nil
}

func newAuthRouter(u usecase.AuthUsecase) *mux.Router {
	h := NewAuthHandler(u, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/auth/login", h.Login).Methods(http.MethodPost)
	return r
}

func TestAuthHandlerRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid registration",
			body:       `{"username":"alice","password":"secret123","role":"doctor"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown role rejected by validation",
			body:       `{"username":"bob","password":"secret123","role":"superuser"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"username":"bob","password":"abc","role":"nurse"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate username",
			body:       `{"username":"taken","password":"secret123","role":"nurse"}`,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(&fakeAuthUsecase{users: map[string]string{"taken": "x"}})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	router := newAuthRouter(&fakeAuthUsecase{users: map[string]string{"alice": "secret123"}})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       `{"username":"alice","password":"secret123"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       `{"username":"alice","password":"wrong"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			body:       `{"username":"mallory","password":"secret123"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       `{"username":"alice"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
