package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/tastehaven/menu_backend/i18n"
	"github.com/tastehaven/menu_backend/models"
	"github.com/tastehaven/menu_backend/services"
)

// MenuController exposes the aggregation pipeline over HTTP: the public
// grouped menu with search/category narrowing, and the admin CRUD
// surface. Every mutation response carries the re-fetched grouping so
// clients only ever render store-confirmed state.
type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GetMenu returns the category grouping, optionally narrowed by
// ?search= and ?category=. A failed fetch returns 500 and leaves any
// previously delivered grouping untouched on the client.
func (mc *MenuController) GetMenu(c echo.Context) error {
	grouping, err := mc.Service.FetchGrouped(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: i18n.T(requestLanguage(c), "loadFailed"),
		})
	}

	grouping = services.FilterBySearchTerm(grouping, c.QueryParam("search"))
	grouping = services.FilterByCategory(grouping, c.QueryParam("category"))

	lang := requestLanguage(c)
	categoryNames := make(map[string]string, len(grouping))
	for category := range grouping {
		categoryNames[category] = i18n.CategoryName(lang, category)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Menu retrieved successfully",
		Data: map[string]interface{}{
			"menu":           grouping,
			"category_names": categoryNames,
		},
	})
}

// ListItems returns the flat item list, newest first.
func (mc *MenuController) ListItems(c echo.Context) error {
	items, err := mc.Service.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: i18n.T(requestLanguage(c), "loadFailed"),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Menu items retrieved successfully",
		Data:    items,
	})
}

// CreateItem validates the draft and inserts it. Validation failures are
// surfaced before any store call is attempted.
func (mc *MenuController) CreateItem(c echo.Context) error {
	var req models.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: validationMessage(err, requestLanguage(c)),
		})
	}

	item, grouping, err := mc.Service.AddItem(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: i18n.T(requestLanguage(c), "addFailed"),
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: i18n.T(requestLanguage(c), "addSuccess"),
		Data: map[string]interface{}{
			"item": item,
			"menu": grouping,
		},
	})
}

// UpdateItem applies a full update to an existing item.
func (mc *MenuController) UpdateItem(c echo.Context) error {
	id := c.Param("id")

	var req models.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: validationMessage(err, requestLanguage(c)),
		})
	}

	item, grouping, err := mc.Service.UpdateItem(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Menu item not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: i18n.T(requestLanguage(c), "updateFailed"),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: i18n.T(requestLanguage(c), "updateSuccess"),
		Data: map[string]interface{}{
			"item": item,
			"menu": grouping,
		},
	})
}

// DeleteItem removes an item by id.
func (mc *MenuController) DeleteItem(c echo.Context) error {
	id := c.Param("id")

	grouping, err := mc.Service.DeleteItem(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Menu item not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: i18n.T(requestLanguage(c), "deleteFailed"),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: i18n.T(requestLanguage(c), "deleteSuccess"),
		Data: map[string]interface{}{
			"menu": grouping,
		},
	})
}

// GetTranslations serves the full translation table for a language, for
// clients that load all strings up front.
func (mc *MenuController) GetTranslations(c echo.Context) error {
	code := c.Param("lang")
	if !i18n.IsSupported(code) {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Unsupported language",
		})
	}

	lang := i18n.Language(code)
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Translations retrieved successfully",
		Data: map[string]interface{}{
			"language": lang,
			"rtl":      i18n.IsRTL(lang),
			"strings":  i18n.Table(lang),
		},
	})
}

// requestLanguage resolves the ?lang= parameter, defaulting to English.
func requestLanguage(c echo.Context) i18n.Language {
	if code := c.QueryParam("lang"); i18n.IsSupported(code) {
		return i18n.Language(code)
	}
	return i18n.English
}

// validationMessage maps the first validator failure to the matching
// user-facing message, mirroring the admin form's error texts.
func validationMessage(err error, lang i18n.Language) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}

	switch verrs[0].Field() {
	case "Name":
		return i18n.T(lang, "dishNameRequired")
	case "Price":
		return i18n.T(lang, "pricePositive")
	case "Category":
		return i18n.T(lang, "categoryRequired")
	case "ImageURL":
		return i18n.T(lang, "imageUrlRequired")
	default:
		return "Invalid request"
	}
}
