package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
	"github.com/flowpaylabs/paymethod-service/internal/domain/repository"
)

// RequireAdmin gates a route group to users whose stored role is admin.
// The role is re-read from the users table rather than trusted from the
// token, so a revoked admin loses access as soon as the row changes.
func RequireAdmin(users repository.UserRepository, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := GetUserFromContext(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authentication required",
					"code":  "AUTH_REQUIRED",
				})
			}

			id, err := uuid.Parse(user.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid user ID",
					"code":  "INVALID_USER_ID_FORMAT",
				})
			}

			record, err := users.GetByID(c.Request().Context(), id)
			if err != nil {
				logger.Error("Failed to verify admin role",
					zap.String("user_id", user.UserID),
					zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"error": "Failed to verify admin privileges",
				})
			}

			if record == nil || record.Role != model.RoleAdmin {
				logger.Warn("Admin access denied",
					zap.String("user_id", user.UserID),
					zap.String("path", c.Request().URL.Path))
				return c.JSON(http.StatusForbidden, echo.Map{
					"error": "Access denied. Admin privileges required.",
					"code":  "ADMIN_REQUIRED",
				})
			}

			return next(c)
		}
	}
}
