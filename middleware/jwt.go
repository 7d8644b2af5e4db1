package middleware

import (
	"context"
	"errors"
	"fmt"
	"lms/config"
	"lms/models"
	"lms/services"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT issues the portal session token. The upstream access token rides
// along so handlers can call the LMS API as the user.
func GenerateJWT(user models.User, upstreamToken string) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"name":     user.Name,
		"role":     string(user.Role),
		"email":    user.Email,
		"upstream": upstreamToken,
		"iat":      time.Now().Unix(),                                  // issued at
		"exp":      time.Now().Add(config.AppConfig.SessionTTL).Unix(), // expiry
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	// Get the token from the Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	// Extract the token part
	tokenString := authHeader[len("Bearer "):]

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Check if the token method is valid
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	// If there's an error parsing the token
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	// Extract user ID, role and upstream token from the claims
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	userID, ok := claims["userId"].(float64) // JSON numbers decode as float64
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}
	roleClaim, _ := claims["role"].(string)
	role, err := models.ParseRole(roleClaim)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}
	upstream, _ := claims["upstream"].(string)

	// Set the caller in the request context
	c.Locals("userId", uint(userID))
	c.Locals("role", role)
	c.Locals("upstreamToken", upstream)

	// If valid, continue to the next handler
	return c.Next()
}

// UpstreamContext carries the caller's LMS API token for service calls
func UpstreamContext(c *fiber.Ctx) context.Context {
	token, _ := c.Locals("upstreamToken").(string)
	return services.WithToken(c.UserContext(), token)
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// UpstreamErrorResponse answers with the LMS API's 4xx, or 502 for anything else
func UpstreamErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return JsonResponse(c, apiErr.Status, false, apiErr.Message, nil)
	}
	return JsonResponse(c, fiber.StatusBadGateway, false, fallback, nil)
}
