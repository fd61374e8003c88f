package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tastehaven/menu_backend/controllers"
	"github.com/tastehaven/menu_backend/middleware"
)

// RegisterMenuRoutes sets up the public menu surface and the admin CRUD
// surface for menu items.
func RegisterMenuRoutes(e *echo.Echo, menuController *controllers.MenuController) {
	// Public routes (no auth required)
	e.GET("/api/menu", menuController.GetMenu)
	e.GET("/api/menu/items", menuController.ListItems)
	e.GET("/api/translations/:lang", menuController.GetTranslations)

	// Admin protected routes
	adminMenu := e.Group("/api/admin/menu")
	adminMenu.Use(middleware.JWTMiddleware())
	adminMenu.Use(middleware.RequireAdmin())

	adminMenu.POST("", menuController.CreateItem)
	adminMenu.PUT("/:id", menuController.UpdateItem)
	adminMenu.DELETE("/:id", menuController.DeleteItem)
}
