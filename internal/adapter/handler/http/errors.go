package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/flowpaylabs/paymethod-service/internal/domain/errors"
)

// writeDomainError maps a domain error to its HTTP response. Anything
// outside the taxonomy is treated as a persistence fault and surfaced as
// an opaque 500.
func writeDomainError(c echo.Context, logger *zap.Logger, err error) error {
	var missingErr *domainErrors.MissingFieldsError
	var unknownErr *domainErrors.UnknownPaymentTypeError

	switch {
	case errors.Is(err, domainErrors.ErrPaymentMethodNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Payment method not found",
			"code":  "PAYMENT_METHOD_NOT_FOUND",
		})
	case errors.Is(err, domainErrors.ErrNotOwner):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "Not authorized to access this payment method",
			"code":  "NOT_OWNER",
		})
	case errors.Is(err, domainErrors.ErrMissingPaymentType):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Payment type is required",
			"code":  "MISSING_PAYMENT_TYPE",
		})
	case errors.As(err, &missingErr):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  missingErr.Error(),
			"code":   "MISSING_REQUIRED_FIELDS",
			"fields": missingErr.Fields,
		})
	case errors.As(err, &unknownErr):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": unknownErr.Error(),
			"code":  "UNKNOWN_PAYMENT_TYPE",
		})
	default:
		logger.Error("payment method operation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Internal server error",
		})
	}
}
