package http

import (
	"errors"
	"net/http"

	"orderledger/internal/core/application/usecases/commands"
	"orderledger/internal/core/domain/services"
	"orderledger/internal/generated/servers"
	"orderledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusOf maps an application error to the HTTP status reported for it.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, commands.ErrNoSuchAccount),
		errors.Is(err, commands.ErrNoSuchOrder):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInsufficientAmount),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError responds with the status of err. Internal failures are reported
// with fallback instead of the error text.
func writeError(ctx echo.Context, err error, fallback string) error {
	code := StatusOf(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = fallback
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
