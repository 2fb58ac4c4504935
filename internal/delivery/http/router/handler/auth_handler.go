// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"fixly/internal/delivery/http/middleware"
	"fixly/internal/delivery/http/response"
	"fixly/internal/domain/entity"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	ProfileUC      usecase.ProfileUsecase
	Logger         *slog.Logger
}

// AuthHandler holds dependencies for registration and profile handlers.
type AuthHandler struct {
	registrationUC usecase.RegistrationUsecase
	profileUC      usecase.ProfileUsecase
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		registrationUC: params.RegistrationUC,
		profileUC:      params.ProfileUC,
		logger:         params.Logger,
	}
}

// RegisterRequest represents the request body for account registration.
// Position carries the chosen service category id for worker signups,
// matching the field name the web client sends.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Role      string `json:"role"`
	Position  string `json:"position"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      normalizeRole(req.Role),
	}

	if input.Role == entity.ProfileKindWorker.String() {
		if req.Position == "" {
			return response.BadRequest(c, "INVALID_SERVICE", "Position/Service ID is required for workers")
		}
		serviceID, err := uuid.Parse(req.Position)
		if err != nil {
			return response.BadRequest(c, "INVALID_SERVICE", "Invalid Service ID selected")
		}
		input.ServiceID = serviceID
	}

	output, err := h.registrationUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Profile, "Account registered successfully")
}

// Me handles the request for the caller's own profile. Resolution retries
// briefly on the not-found case to cover a registration still writing its
// profile row.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, ok := middleware.GetIdentityUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	profile, err := h.profileUC.ResolveWithRetry(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateMe handles a partial update of the caller's own profile.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	uid, ok := middleware.GetIdentityUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), uid, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// normalizeRole maps the wire-level role markers ("USER"/"WORKER") onto the
// internal profile kinds. Unknown values pass through for the use case to
// reject.
func normalizeRole(role string) string {
	switch strings.ToUpper(role) {
	case "WORKER":
		return entity.ProfileKindWorker.String()
	case "USER", "":
		return entity.ProfileKindClient.String()
	default:
		return role
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
