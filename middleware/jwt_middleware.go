// middleware/jwt_middleware.go
package middleware

import (
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// JwtCustomClaims mirrors the session record into the token: the admin
// username and flag are the whole proof of login.
type JwtCustomClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.StandardClaims
}

// Valid implements the Claims interface. Tokens with ExpiresAt 0 never
// expire, matching the session lifecycle (no TTL, explicit logout only).
func (c JwtCustomClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}
	return nil
}

// Logged-out tokens are blacklisted in memory. There is deliberately no
// server-side session registry beyond this; the token itself is the
// session marker.
var (
	blacklistMu    sync.RWMutex
	tokenBlacklist = make(map[string]time.Time)
)

// BlacklistToken invalidates a token from the moment of logout.
func BlacklistToken(token string) {
	blacklistMu.Lock()
	defer blacklistMu.Unlock()
	tokenBlacklist[token] = time.Now()
}

// IsTokenBlacklisted checks if a token has been logged out.
func IsTokenBlacklisted(token string) bool {
	blacklistMu.RLock()
	defer blacklistMu.RUnlock()
	_, exists := tokenBlacklist[token]
	return exists
}

// CleanupBlacklist periodically drops blacklist entries older than the
// retention window. Run it in a goroutine from main.
func CleanupBlacklist(retention time.Duration) {
	for {
		time.Sleep(1 * time.Hour)
		cutoff := time.Now().Add(-retention)
		blacklistMu.Lock()
		for token, loggedOutAt := range tokenBlacklist {
			if loggedOutAt.Before(cutoff) {
				delete(tokenBlacklist, token)
			}
		}
		blacklistMu.Unlock()
	}
}

// GetJWTSecret returns the JWT signing secret from the environment.
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	return secret
}

// JWTMiddleware validates the bearer token, rejects blacklisted tokens,
// and stores the session fields in the request context. Any malformed or
// unverifiable token resolves to 401, never to a crash: a broken session
// marker is the same as no session.
func JWTMiddleware() echo.MiddlewareFunc {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("Warning: JWT_SECRET environment variable is not set")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "JWT configuration error")
			}
		}
	}

	verify := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(secret),
		Claims:     &JwtCustomClaims{},
		ErrorHandler: func(err error) error {
			return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Invalid or expired token")
		},
	})

	// The blacklist check runs as its own layer, not a SuccessHandler: it
	// must be able to return an error and halt the chain, so a logged-out
	// token never reaches the handler.
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			user := c.Get("user").(*jwt.Token)

			if IsTokenBlacklisted(user.Raw) {
				return echo.NewHTTPError(echo.ErrUnauthorized.Code, "Token has been invalidated")
			}

			claims := user.Claims.(*JwtCustomClaims)
			c.Set("username", claims.Username)
			c.Set("isAdmin", claims.IsAdmin)
			return next(c)
		})
	}
}

// GenerateJWT signs a session token for the admin identity. ExpiresAt is
// left at 0: the session lives until explicit logout.
func GenerateJWT(username string, isAdmin bool) (string, error) {
	claims := &JwtCustomClaims{
		Username: username,
		IsAdmin:  isAdmin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: 0,
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET environment variable is required")
	}

	return token.SignedString([]byte(secret))
}

// GetSessionFromToken extracts the session claims set by JWTMiddleware.
func GetSessionFromToken(c echo.Context) *JwtCustomClaims {
	user := c.Get("user")
	if user == nil {
		return nil
	}

	token, ok := user.(*jwt.Token)
	if !ok {
		return nil
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil
	}

	return claims
}

// ExtractRawToken returns the raw bearer token validated by the
// middleware, for blacklisting on logout.
func ExtractRawToken(c echo.Context) (string, error) {
	user := c.Get("user")
	if user == nil {
		return "", errors.New("invalid token")
	}

	token, ok := user.(*jwt.Token)
	if !ok {
		return "", errors.New("invalid token type")
	}

	return token.Raw, nil
}
