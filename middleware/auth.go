package middleware

import (
	"fmt"
	"os"
	"strings"

	"agency-backend/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin guards the admin dashboard routes. It expects a Bearer token
// issued by the auth controller and signed with JWT_SECRET.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header missing")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return unauthorized(c, "Invalid token format")
		}

		claims, err := verifyAdminToken(tokenParts[1])
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals("admin_email", claims["email"])
		return c.Next()
	}
}

func verifyAdminToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return nil, fmt.Errorf("missing admin role")
	}
	return claims, nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: message,
		Data:    nil,
	})
}
