package catalogRoutes

import (
	catalogControllers "lms/controllers/catalog"
	"lms/middleware"
	"lms/models"
	catalogValidators "lms/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(router fiber.Router) {
	// Read access for the course wizard's subject and topic pickers
	router.Get("/subjects", middleware.JWTMiddleware, catalogControllers.ListSubjects)
	router.Get("/topics", middleware.JWTMiddleware, catalogValidators.ListTopics(), catalogControllers.ListTopics)

	managerGroup := router.Group("/manager", middleware.JWTMiddleware, middleware.RequireRole(models.RoleManager))
	managerGroup.Get("/subjects", catalogControllers.ListSubjects)
	managerGroup.Post("/subjects", catalogValidators.Subject(), catalogControllers.CreateSubject)
	managerGroup.Get("/topics", catalogValidators.ListTopics(), catalogControllers.ListTopics)
	managerGroup.Post("/topics", catalogValidators.Topic(), catalogControllers.CreateTopic)
}
