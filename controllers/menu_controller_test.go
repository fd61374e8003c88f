package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/tastehaven/menu_backend/middleware"
	"github.com/tastehaven/menu_backend/models"
	"github.com/tastehaven/menu_backend/services"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

// memStore is a minimal in-memory MenuStore for handler tests.
type memStore struct {
	items    []models.MenuItem
	failList bool
}

func (m *memStore) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	if m.failList {
		return nil, context.DeadlineExceeded
	}
	return m.items, nil
}

func (m *memStore) ListOrdered(ctx context.Context) ([]models.MenuItem, error) {
	return m.ListAll(ctx)
}

func (m *memStore) Insert(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	item := models.MenuItem{
		ID:       "id-1",
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}
	m.items = append(m.items, item)
	return &item, nil
}

func (m *memStore) Update(ctx context.Context, id string, req models.MenuItemRequest) (*models.MenuItem, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Name = req.Name
			return &m.items[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func newMenuTestEnv(store *memStore) (*echo.Echo, *MenuController) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e, NewMenuController(services.NewMenuService(store))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp
}

func TestGetMenuFilters(t *testing.T) {
	store := &memStore{items: []models.MenuItem{
		{ID: "1", Name: "Hummus", Category: "Appetizers"},
		{ID: "2", Name: "Kunafa", Category: "Desserts"},
		{ID: "3", Name: "Baklava", Category: "Desserts"},
	}}
	e, mc := newMenuTestEnv(store)

	req := httptest.NewRequest(http.MethodGet, "/api/menu?search=ba", nil)
	rec := httptest.NewRecorder()
	if err := mc.GetMenu(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	resp := decode(t, rec)
	data := resp.Data.(map[string]interface{})
	menu := data["menu"].(map[string]interface{})
	if len(menu) != 1 {
		t.Fatalf("menu has %d categories, want only Desserts: %v", len(menu), menu)
	}
	desserts := menu["Desserts"].([]interface{})
	if len(desserts) != 1 {
		t.Fatalf("Desserts has %d items, want 1", len(desserts))
	}
}

func TestGetMenuLocalizedCategoryNames(t *testing.T) {
	store := &memStore{items: []models.MenuItem{
		{ID: "1", Name: "Kunafa", Category: "Desserts"},
		{ID: "2", Name: "Secret Dish", Category: "Chef Picks"},
	}}
	e, mc := newMenuTestEnv(store)

	req := httptest.NewRequest(http.MethodGet, "/api/menu?lang=ar", nil)
	rec := httptest.NewRecorder()
	if err := mc.GetMenu(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}

	resp := decode(t, rec)
	data := resp.Data.(map[string]interface{})
	names := data["category_names"].(map[string]interface{})
	if names["Desserts"] != "الحلويات" {
		t.Errorf("Desserts display name = %v", names["Desserts"])
	}
	// Unrecognized categories fall back to the raw string.
	if names["Chef Picks"] != "Chef Picks" {
		t.Errorf("Chef Picks display name = %v", names["Chef Picks"])
	}
}

func TestGetMenuStoreFailure(t *testing.T) {
	e, mc := newMenuTestEnv(&memStore{failList: true})

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()
	if err := mc.GetMenu(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if resp := decode(t, rec); resp.Message != "Failed to load menu items" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestCreateItemValidation(t *testing.T) {
	store := &memStore{}
	e, mc := newMenuTestEnv(store)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing name", `{"price":10,"category":"Sides","image_url":"a.com/x.jpg"}`, "Dish name is required"},
		{"zero price", `{"name":"Rice","price":0,"category":"Sides","image_url":"a.com/x.jpg"}`, "Price must be a positive number"},
		{"negative price", `{"name":"Rice","price":-5,"category":"Sides","image_url":"a.com/x.jpg"}`, "Price must be a positive number"},
		{"missing category", `{"name":"Rice","price":10,"image_url":"a.com/x.jpg"}`, "Category is required"},
		{"missing image", `{"name":"Rice","price":10,"category":"Sides"}`, "Image URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/menu", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			if err := mc.CreateItem(e.NewContext(req, rec)); err != nil {
				t.Fatal(err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			if resp := decode(t, rec); resp.Message != tt.message {
				t.Errorf("message = %q, want %q", resp.Message, tt.message)
			}
			// Fail fast: nothing reaches the store.
			if len(store.items) != 0 {
				t.Errorf("store received %d items on validation failure", len(store.items))
			}
		})
	}
}

func TestCreateItemSuccess(t *testing.T) {
	store := &memStore{}
	e, mc := newMenuTestEnv(store)

	body := `{"name":"Egyptian Rice","price":35,"category":"Sides","image_url":"images.example.com/rice.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/menu", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := mc.CreateItem(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	if len(store.items) != 1 {
		t.Fatalf("store has %d items, want 1", len(store.items))
	}
	if got := store.items[0].ImageURL; got != "https://images.example.com/rice.jpg" {
		t.Errorf("stored image URL = %q, want normalized https URL", got)
	}

	resp := decode(t, rec)
	data := resp.Data.(map[string]interface{})
	if _, ok := data["menu"]; !ok {
		t.Error("create response carries no refreshed menu")
	}
}

func TestLoggedOutTokenCannotMutate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	store := &memStore{}
	e, mc := newMenuTestEnv(store)

	token, err := middleware.GenerateJWT("admin", true)
	if err != nil {
		t.Fatal(err)
	}
	middleware.BlacklistToken(token)

	body := `{"name":"Rice","price":10,"category":"Sides","image_url":"a.com/x.jpg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/menu", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Full admin chain, as registered for /api/admin/menu.
	handler := middleware.JWTMiddleware()(middleware.RequireAdmin()(mc.CreateItem))
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	// Destroying the session means the mutation never runs.
	if len(store.items) != 0 {
		t.Fatalf("store received %d items from a logged-out session", len(store.items))
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	e, mc := newMenuTestEnv(&memStore{})

	body := `{"name":"Rice","price":10,"category":"Sides","image_url":"a.com/x.jpg"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/menu/missing", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := mc.UpdateItem(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteItem(t *testing.T) {
	store := &memStore{items: []models.MenuItem{{ID: "1", Name: "Hummus", Category: "Appetizers"}}}
	e, mc := newMenuTestEnv(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/menu/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := mc.DeleteItem(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.items) != 0 {
		t.Errorf("store still has %d items", len(store.items))
	}

	// Deleting again is a 404, not a crash.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/admin/menu/1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := mc.DeleteItem(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestGetTranslations(t *testing.T) {
	e, mc := newMenuTestEnv(&memStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/translations/ar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("lang")
	c.SetParamValues("ar")

	if err := mc.GetTranslations(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	resp := decode(t, rec)
	data := resp.Data.(map[string]interface{})
	if data["rtl"] != true {
		t.Error("arabic should report rtl=true")
	}
	table := data["strings"].(map[string]interface{})
	if table["ourMenu"] != "قائمتنا" {
		t.Errorf("ourMenu = %v", table["ourMenu"])
	}

	// Unsupported language is a 404.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/translations/fr", nil), rec)
	c.SetParamNames("lang")
	c.SetParamValues("fr")
	if err := mc.GetTranslations(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unsupported language status = %d, want 404", rec.Code)
	}
}
