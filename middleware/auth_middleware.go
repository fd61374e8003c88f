// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tastehaven/menu_backend/models"
)

// RequireAdmin gates the management surface: the validated session must
// carry the admin flag. Runs after JWTMiddleware, which sets the context
// key; an unset key means no accepted session.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, ok := c.Get("isAdmin").(bool)
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Status:  http.StatusUnauthorized,
					Message: "Authentication required",
				})
			}

			if !isAdmin {
				return c.JSON(http.StatusForbidden, models.Response{
					Status:  http.StatusForbidden,
					Message: "Access denied",
				})
			}

			return next(c)
		}
	}
}
