package handler

import (
	"log/slog"
	"net/http"

	"fixly/internal/delivery/http/response"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// AdminHandler holds dependencies for the admin moderation handlers. All
// routes behind it require the admin role; the middleware enforces that.
type AdminHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// GetStats handles the admin dashboard aggregates.
func (h *AdminHandler) GetStats(c echo.Context) error {
	stats, err := h.catalogUC.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved successfully")
}

// ListClients handles the admin client listing.
func (h *AdminHandler) ListClients(c echo.Context) error {
	clients, err := h.catalogUC.ListClients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clients, "Clients retrieved successfully")
}

// RemoveClient handles deleting a client profile and, best-effort, its
// provider identity.
func (h *AdminHandler) RemoveClient(c echo.Context) error {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client ID")
	}

	if err := h.catalogUC.RemoveClient(c.Request().Context(), clientID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Client removed successfully")
}

// ListWorkers handles the admin worker listing with derived ratings.
func (h *AdminHandler) ListWorkers(c echo.Context) error {
	workers, err := h.catalogUC.ListWorkers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workers, "Workers retrieved successfully")
}

// ToggleWorkerActive handles flipping a worker's availability flag.
func (h *AdminHandler) ToggleWorkerActive(c echo.Context) error {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	worker, err := h.catalogUC.ToggleWorkerActive(c.Request().Context(), workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worker, "Worker availability updated")
}

// RemoveWorker handles deleting a worker, its associations and, best-effort,
// its provider identity.
func (h *AdminHandler) RemoveWorker(c echo.Context) error {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	if err := h.catalogUC.RemoveWorker(c.Request().Context(), workerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Worker removed successfully")
}

// ListServices handles the admin service listing with usage counts.
func (h *AdminHandler) ListServices(c echo.Context) error {
	usages, err := h.catalogUC.ListServicesWithUsage(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	type serviceView struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		WorkerCount int       `json:"workerCount"`
	}

	views := make([]serviceView, 0, len(usages))
	for _, usage := range usages {
		views = append(views, serviceView{
			ID:          usage.Service.ID,
			Name:        usage.Service.Name,
			WorkerCount: usage.WorkerCount,
		})
	}

	return response.Success(c, http.StatusOK, views, "Services retrieved successfully")
}

// ServiceRequest represents the request body for creating or renaming a
// service category.
type ServiceRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateService handles adding a service category.
func (h *AdminHandler) CreateService(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	service, err := h.catalogUC.CreateService(c.Request().Context(), usecase.CreateServiceInput{
		Name: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, service, "Service created successfully")
}

// RenameService handles renaming a service category. Worker position fields
// denormalized from the old name stay as they are.
func (h *AdminHandler) RenameService(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service ID")
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	service, err := h.catalogUC.RenameService(c.Request().Context(), usecase.RenameServiceInput{
		ID:   serviceID,
		Name: req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, service, "Service renamed successfully")
}

// DeleteService handles the guarded category delete. Categories still
// referenced by workers are rejected with the worker count in the message.
func (h *AdminHandler) DeleteService(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid service ID")
	}

	if err := h.catalogUC.DeleteService(c.Request().Context(), serviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service deleted successfully")
}

// ListFeedbacks handles the admin feedback moderation listing.
func (h *AdminHandler) ListFeedbacks(c echo.Context) error {
	feedbacks, err := h.catalogUC.ListAllFeedback(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedbacks, "Feedback retrieved successfully")
}

// RemoveFeedback handles deleting a feedback row.
func (h *AdminHandler) RemoveFeedback(c echo.Context) error {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feedback ID")
	}

	if err := h.catalogUC.RemoveFeedback(c.Request().Context(), feedbackID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Feedback removed successfully")
}
