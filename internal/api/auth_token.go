package api

import (
	"errors"
	"strings"
	"time"

	"github.com/avelarde/avance/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type authClaims struct {
	EmployeeID uint   `json:"uid"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildAuthToken(identity services.Identity, now time.Time) (string, error) {
	claims := authClaims{
		EmployeeID: identity.ID,
		Role:       identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(handler.sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, identity services.Identity) error {
	now := time.Now()
	token, err := handler.buildAuthToken(identity, now)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(handler.sessionTTL),
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

// authenticateRequest turns the session cookie back into a live identity.
// The employee row is re-read so deactivation takes effect immediately, not
// at token expiry.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (services.Identity, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		return services.Identity{}, errors.New("missing auth cookie")
	}

	claims := authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return services.Identity{}, errors.New("invalid token")
	}

	identity, err := handler.auth.ResolveIdentity(claims.EmployeeID)
	if err != nil {
		return services.Identity{}, errors.New("session no longer valid")
	}
	return identity, nil
}
