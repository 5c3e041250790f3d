package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	authModel "learnhub_backend/internals/features/users/auth/model"
	helper "learnhub_backend/internals/helpers"
)

// Paths served without a token even inside guarded groups (payment
// webhooks authenticate by signature instead).
var skipPaths = map[string]struct{}{
	"/api/purchases/notification": {},
}

// AuthMiddleware validates the bearer token, rejects blacklisted tokens
// and stores the actor's id/role/level in Locals for everything downstream.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		tokenString, err := ExtractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		// blacklist check once per request
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				return helper.JsonError(c, fiber.StatusUnauthorized, "token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[ERROR] blacklist lookup: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
			}
			c.Locals("token_checked", true)
		}

		if configs.JWTSecret == "" {
			return helper.JsonError(c, fiber.StatusInternalServerError, "missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid token")
		}

		sub, _ := claims["sub"].(string)
		if _, err := uuid.Parse(sub); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid subject claim")
		}
		role, _ := claims["role"].(string)
		if role != helper.RoleStudent && role != helper.RoleAdmin {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid role claim")
		}

		c.Locals(helper.LocalsUserID, sub)
		c.Locals(helper.LocalsUserRole, role)
		if role == helper.RoleAdmin {
			if lvl, ok := claims["admin_level"].(float64); ok {
				c.Locals(helper.LocalsAdminLevel, int(lvl))
			}
		}

		return c.Next()
	}
}

// ExtractBearerToken reads the Authorization header with a cookie fallback
// for browser clients.
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, nil
		}
	}
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("missing or malformed token")
}

// TokenExpiry reads the exp claim of an already-verified token string,
// used when blacklisting on logout.
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Now().Add(24 * time.Hour)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(24 * time.Hour)
}
