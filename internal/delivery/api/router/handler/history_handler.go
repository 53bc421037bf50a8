package handler

import (
	"log/slog"
	"net/http"

	"kurvalgom/internal/delivery/api/response"
	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// HistoryHandler serves the caller's visit history.
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// AddHistoryRequest represents the request body for recording a visit
type AddHistoryRequest struct {
	Restaurant *entity.Restaurant `json:"restaurant" validate:"required"`
}

func (h *HistoryHandler) ListHistory(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.historyUC.ListHistoryForUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}
	if entries == nil {
		entries = []*entity.HistoryEntry{}
	}

	return response.Success(c, http.StatusOK, entries)
}

func (h *HistoryHandler) AddHistory(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req AddHistoryRequest
	if err := bindAndValidate(c, &req, "history"); err != nil {
		return err
	}

	entry, err := h.historyUC.AddHistoryEntry(c.Request().Context(), identity.UserID, *req.Restaurant)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry)
}
