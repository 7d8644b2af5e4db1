package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the catalogue and enrollment routes any signed-in role can use
func SetupCourseRoutes(router fiber.Router) {
	courseGroup := router.Group("/courses", middleware.JWTMiddleware)

	courseGroup.Get("/", validators.ListCourses(), controllers.ListCourses)
	courseGroup.Get("/:course_id", validators.CourseDetail(), controllers.CourseDetail)
	courseGroup.Post("/:course_id/enroll", middleware.RequireRole(models.RoleStudent), validators.CourseID(), controllers.Enroll)

	router.Get("/enrollments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), validators.ListCourses(), controllers.ListMyEnrollments)
}
