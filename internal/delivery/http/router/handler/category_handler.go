package handler

import (
	"log/slog"
	"net/http"

	"fixly/internal/delivery/http/response"
	"fixly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CategoryHandler serves the public service category list consumed by the
// registration form.
type CategoryHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListCategories handles the public category listing, ordered by id.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	services, err := h.catalogUC.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Categories retrieved successfully")
}
