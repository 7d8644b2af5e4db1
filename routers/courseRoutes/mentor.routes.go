package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupMentorCourseRoutes registers the authoring routes: course wizard,
// sections, lessons and resources
func SetupMentorCourseRoutes(router fiber.Router) {
	mentorGroup := router.Group("/mentor", middleware.JWTMiddleware, middleware.RequireRole(models.RoleMentor))

	mentorGroup.Get("/courses", validators.ListCourses(), controllers.ListMyCourses)

	// Course wizard
	mentorGroup.Post("/drafts", controllers.StartDraft)
	mentorGroup.Post("/courses/:course_id/drafts", validators.CourseID(), controllers.StartEditDraft)

	draftGroup := mentorGroup.Group("/drafts/:draft_id", validators.DraftID())
	draftGroup.Get("/", controllers.GetDraft)
	draftGroup.Delete("/", controllers.CancelDraft)
	draftGroup.Put("/step", validators.GoToStep(), controllers.GoToStep)
	draftGroup.Patch("/info", validators.CourseInfo(), controllers.UpdateInfo)
	draftGroup.Post("/photo", validators.MainPhoto(), controllers.UploadMainPhoto)
	draftGroup.Patch("/details", validators.CourseDetails(), controllers.UpdateDetails)
	draftGroup.Patch("/price", validators.CoursePrice(), controllers.UpdatePrice)
	draftGroup.Post("/complete", controllers.CompleteDraft)

	// Sections
	mentorGroup.Get("/courses/:course_id/sections", validators.CourseID(), controllers.ListSections)
	mentorGroup.Post("/courses/:course_id/sections", validators.CourseID(), validators.SectionBody(), controllers.CreateSection)
	mentorGroup.Get("/courses/:course_id/sections/:section_id", validators.Section(), controllers.GetSectionForm)
	mentorGroup.Put("/courses/:course_id/sections/:section_id", validators.Section(), validators.SectionBody(), controllers.UpdateSection)
	mentorGroup.Delete("/courses/:course_id/sections/:section_id", validators.Section(), validators.Confirm(), controllers.DeleteSection)

	// Lessons
	mentorGroup.Get("/courses/:course_id/sections/:section_id/lessons", validators.Section(), controllers.ListLessons)
	mentorGroup.Post("/courses/:course_id/sections/:section_id/lessons", validators.Section(), validators.LessonBody(), controllers.CreateLesson)
	mentorGroup.Get("/courses/:course_id/sections/:section_id/lessons/:lesson_id", validators.Lesson(), controllers.GetLessonForm)
	mentorGroup.Put("/courses/:course_id/sections/:section_id/lessons/:lesson_id", validators.Lesson(), validators.LessonBody(), controllers.UpdateLesson)
	mentorGroup.Delete("/courses/:course_id/sections/:section_id/lessons/:lesson_id", validators.Lesson(), validators.Confirm(), controllers.DeleteLesson)

	// Resources
	mentorGroup.Post("/courses/:course_id/resources", validators.Resource(), controllers.UploadResource)
}
