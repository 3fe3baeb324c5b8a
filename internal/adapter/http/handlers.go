package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pawnledger/internal/domain/pledge"
	"pawnledger/internal/domain/rateconfig"
	"pawnledger/internal/interest"
	closureUC "pawnledger/internal/usecase/closure"
	pledgeUC "pawnledger/internal/usecase/pledge"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// writeError maps domain and calculation errors onto HTTP codes. Calc
// errors are caller bugs (bad input), state conflicts are 409, and the
// payment-source rules are unprocessable business rejections.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, pledge.ErrNotFound), errors.Is(err, rateconfig.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, pledge.ErrAlreadyClosed),
		errors.Is(err, pledge.ErrNotActive),
		errors.Is(err, pledge.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, rateconfig.ErrMissingPaymentSource),
		errors.Is(err, rateconfig.ErrSourceDisallowed):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, interest.ErrInvalidDateRange),
		errors.Is(err, interest.ErrUnknownMethod),
		errors.Is(err, interest.ErrInvalidRate),
		errors.Is(err, pledgeUC.ErrInvalidInput),
		errors.Is(err, closureUC.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse("2006-01-02", s)
	return t
}
