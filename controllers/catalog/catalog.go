package catalogController

import (
	"lms/middleware"
	"lms/models/course"
	"lms/schemas"
	"lms/services"

	"github.com/gofiber/fiber/v2"
)

var api *services.Client

func Setup(client *services.Client) {
	api = client
}

func ListSubjects(c *fiber.Ctx) error {
	subjects, err := api.ListSubjects(middleware.UpstreamContext(c))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch subjects!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", subjects)
}

func CreateSubject(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSubject").(*schemas.SubjectForm)

	subject, err := api.CreateSubject(middleware.UpstreamContext(c), course.Subject{
		Name:        reqData.Name,
		Description: reqData.Description,
	})
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to create subject!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}

func ListTopics(c *fiber.Ctx) error {
	topics, err := api.ListTopics(middleware.UpstreamContext(c), c.Locals("subjectID").(uint))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch topics!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully!", topics)
}

func CreateTopic(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTopic").(*schemas.TopicForm)

	topic, err := api.CreateTopic(middleware.UpstreamContext(c), course.Topic{
		Name:      reqData.Name,
		SubjectID: reqData.SubjectID,
	})
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to create topic!")
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", topic)
}
