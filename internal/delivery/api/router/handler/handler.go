// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"kurvalgom/internal/delivery/api/response"
	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs the struct validation.
// Failures are rendered by the error middleware.
func bindAndValidate(c echo.Context, req any, what string) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("invalid " + what + " input")
	}

	return c.Validate(req)
}

func requireIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage(name + " must be a UUID")
	}

	return id, nil
}
