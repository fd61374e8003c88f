package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tastehaven/menu_backend/controllers"
	"github.com/tastehaven/menu_backend/middleware"
)

// RegisterAuthRoutes sets up the session gate endpoints. Login is public;
// logout and token validation require a bearer token.
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	e.POST("/api/auth/login", authController.Login)

	auth := e.Group("/api/auth")
	auth.Use(middleware.JWTMiddleware())
	auth.POST("/logout", authController.Logout)
	auth.GET("/validate-token", authController.ValidateToken)
}
