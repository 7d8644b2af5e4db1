package validators

import (
	"lms/middleware"
	"lms/models"
	"lms/schemas"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Form parses the body into T and runs its schema. The normalised form is
// stored in Locals under key.
func Form[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		res := schemas.Validate(*reqData)
		if !res.OK() {
			return middleware.ValidationErrorResponse(c, res.Errors)
		}

		c.Locals(key, &res.Value)
		return c.Next()
	}
}

// ID reads a positive integer route param
func ID(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// IDs checks each named param and stores it in Locals under the same name.
// label is used in the error message.
func IDs(params map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for name, label := range params {
			id, ok := ID(c, name)
			if !ok {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
			}
			c.Locals(name, id)
		}
		return c.Next()
	}
}

// Page reads page and limit query params
func Page(c *fiber.Ctx) models.PageQuery {
	return models.PageQuery{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 10),
	}.Normalize()
}
