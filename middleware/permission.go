package middleware

import (
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// RequireRole lets the request through only for the listed roles. It must run
// after JWTMiddleware.
func RequireRole(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Role is set by JWTMiddleware
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: Role not found", nil)
		}

		for _, r := range allowed {
			if r == role {
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}
