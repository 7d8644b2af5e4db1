package authRoutes

import (
	authControllers "lms/controllers/auth"
	"lms/middleware"
	authValidators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router) {
	authGroup := router.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Get("/pending-registration", authControllers.PendingRegistration)
	authGroup.Post("/verify-email", authValidators.VerifyEmail(), authControllers.VerifyEmail)
	authGroup.Post("/resend-verification", authValidators.ResendVerification(), authControllers.ResendVerification)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
}
