package handler

import (
	"log/slog"
	"net/http"

	"fixly/internal/delivery/http/middleware"
	"fixly/internal/delivery/http/response"
	"fixly/internal/domain/entity"
	"fixly/internal/domain/service"
	"fixly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WorkerHandlerParams holds dependencies for WorkerHandler, injected by Fx.
type WorkerHandlerParams struct {
	fx.In

	CatalogUC  usecase.CatalogUsecase
	FeedbackUC usecase.FeedbackUsecase
	ProfileUC  usecase.ProfileUsecase
	QRCodeSvc  service.QRCodeService
	Logger     *slog.Logger
}

// WorkerHandler holds dependencies for the public worker catalog handlers.
type WorkerHandler struct {
	catalogUC  usecase.CatalogUsecase
	feedbackUC usecase.FeedbackUsecase
	profileUC  usecase.ProfileUsecase
	qrcodeSvc  service.QRCodeService
	logger     *slog.Logger
}

// NewWorkerHandler is the constructor for WorkerHandler.
func NewWorkerHandler(params WorkerHandlerParams) *WorkerHandler {
	return &WorkerHandler{
		catalogUC:  params.CatalogUC,
		feedbackUC: params.FeedbackUC,
		profileUC:  params.ProfileUC,
		qrcodeSvc:  params.QRCodeSvc,
		logger:     params.Logger,
	}
}

// ListWorkers handles the public worker catalog listing with derived ratings.
func (h *WorkerHandler) ListWorkers(c echo.Context) error {
	workers, err := h.catalogUC.ListWorkers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, workers, "Workers retrieved successfully")
}

// GetWorker handles fetching a single worker with its derived rating.
func (h *WorkerHandler) GetWorker(c echo.Context) error {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	worker, err := h.catalogUC.GetWorker(c.Request().Context(), workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, worker, "Worker retrieved successfully")
}

// GetWorkerQRCode generates a PNG QR code linking to the worker's public
// profile. The worker is looked up first so a dead id returns 404 instead
// of a scannable dead link.
func (h *WorkerHandler) GetWorkerQRCode(c echo.Context) error {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	if _, err := h.catalogUC.GetWorker(c.Request().Context(), workerID); err != nil {
		return errors.WithStack(err)
	}

	qrCode, err := h.qrcodeSvc.GenerateProfileQR(workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Content-Type", "image/png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// FeedbackRequest represents the request body for leaving feedback.
type FeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// AddFeedback handles a client leaving feedback for a worker. The author is
// the caller's client profile; workers cannot rate other workers.
func (h *WorkerHandler) AddFeedback(c echo.Context) error {
	uid, ok := middleware.GetIdentityUID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}

	profile, err := h.profileUC.Resolve(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}
	if profile.Kind != entity.ProfileKindClient {
		return response.Forbidden(c, "FORBIDDEN", "Only clients can leave feedback")
	}

	feedback, err := h.feedbackUC.AddFeedback(c.Request().Context(), usecase.AddFeedbackInput{
		WorkerID: workerID,
		ClientID: profile.Client.ID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Feedback submitted successfully")
}

// ListFeedback handles listing a worker's feedback newest first.
func (h *WorkerHandler) ListFeedback(c echo.Context) error {
	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid worker ID")
	}

	feedbacks, err := h.feedbackUC.ListWorkerFeedback(c.Request().Context(), workerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedbacks, "Feedback retrieved successfully")
}
