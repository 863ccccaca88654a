package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/delivery/http/middleware"
	"go-hospital-management/internal/usecase"
	"go-hospital-management/pkg/response"
	"go-hospital-management/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUsernameTaken:
			response.Error(w, http.StatusConflict, "Username already registered", nil)
		case usecase.ErrInvalidRole:
			response.Error(w, http.StatusBadRequest, "Invalid role", nil)
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	response.Success(w, http.StatusCreated, "User registered successfully", user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Incorrect username or password")
		case usecase.ErrUserInactive:
			response.Error(w, http.StatusBadRequest, "Inactive user", nil)
		case usecase.ErrTooManyLoginAttempts:
			response.Error(w, http.StatusTooManyRequests, "Too many failed login attempts, try again later", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", token)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), username)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to fetch user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User fetched successfully", user)
}
