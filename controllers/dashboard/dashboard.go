package dashboardController

import (
	"lms/dashboard"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

var builder *dashboard.Builder

func Setup(source dashboard.Source) {
	builder = dashboard.NewBuilder(source)
}

// GetDashboard returns the dashboard of the caller's role
func GetDashboard(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)

	view, err := builder.Build(middleware.UpstreamContext(c), role)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to load dashboard!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", view)
}
