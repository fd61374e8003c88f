package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastehaven/menu_backend/config"
	"github.com/tastehaven/menu_backend/middleware"
	"github.com/tastehaven/menu_backend/models"
)

// AuthController implements the session gate for the single admin
// identity. Credentials come from configuration; the issued JWT is the
// session marker the client persists.
type AuthController struct {
	Admin config.AdminConfig
}

func NewAuthController(admin config.AdminConfig) *AuthController {
	return &AuthController{Admin: admin}
}

// Login checks the submitted credentials against the configured admin
// identity. On match it issues a never-expiring session token; on
// mismatch it returns a user-facing 401 with no further detail. There is
// no lockout and no attempt counting here.
func (ac *AuthController) Login(c echo.Context) error {
	var loginReq models.LoginRequest
	if err := c.Bind(&loginReq); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Username and password are required",
		})
	}

	if !ac.credentialsMatch(loginReq.Username, loginReq.Password) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: models.ErrInvalidCredentials.Error(),
		})
	}

	session := models.Session{Username: loginReq.Username, IsAdmin: true}

	token, err := middleware.GenerateJWT(session.Username, session.IsAdmin)
	if err != nil {
		log.Printf("Failed to generate admin token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token": token,
			"user":  session,
		},
	})
}

// credentialsMatch compares against the configured values. When a bcrypt
// hash is configured it wins over the plaintext password; the plaintext
// path (with its insecure defaults) is kept for compatibility with
// existing deployments.
func (ac *AuthController) credentialsMatch(username, password string) bool {
	if username != ac.Admin.Username {
		return false
	}
	if ac.Admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(ac.Admin.PasswordHash), []byte(password)) == nil
	}
	return password == ac.Admin.Password
}

// Logout blacklists the presented token, destroying the session on the
// server side as well. Safe to call regardless of prior state.
func (ac *AuthController) Logout(c echo.Context) error {
	token, err := middleware.ExtractRawToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	middleware.BlacklistToken(token)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out successfully",
	})
}

// ValidateToken restores a session from a persisted token. Reaching this
// handler means the JWT middleware already accepted the token; a
// malformed or blacklisted one never gets here and reads as "no session".
func (ac *AuthController) ValidateToken(c echo.Context) error {
	claims := middleware.GetSessionFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Token is valid",
		Data: map[string]interface{}{
			"user": models.Session{Username: claims.Username, IsAdmin: claims.IsAdmin},
		},
	})
}
