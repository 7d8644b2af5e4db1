package authValidator

import (
	"lms/middleware"
	"lms/schemas"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return validators.Form[schemas.LoginForm]("validatedLogin")
}

func Register() fiber.Handler {
	return validators.Form[schemas.RegisterForm]("validatedRegister")
}

func VerifyEmail() fiber.Handler {
	return validators.Form[schemas.VerifyEmailForm]("validatedVerifyEmail")
}

// ResendVerification accepts an explicit email, or none when the pending
// registration cookie is present
func ResendVerification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}
		c.Locals("resendEmail", reqData.Email)
		return c.Next()
	}
}
