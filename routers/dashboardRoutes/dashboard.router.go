package dashboardRoutes

import (
	dashboardControllers "lms/controllers/dashboard"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(router fiber.Router) {
	router.Get("/dashboard", middleware.JWTMiddleware, dashboardControllers.GetDashboard)
}
