package services

import (
	"context"
	"lms/models"
	"lms/models/course"

	"github.com/go-resty/resty/v2"
)

func (c *Client) ListCourses(ctx context.Context, q models.PageQuery) (models.Page[course.Course], error) {
	r := c.request(ctx).SetQueryParams(pageParams(q))
	return call[models.Page[course.Course]](r, resty.MethodGet, "/courses")
}

// ListMyCourses lists the courses owned by the calling mentor
func (c *Client) ListMyCourses(ctx context.Context, q models.PageQuery) (models.Page[course.Course], error) {
	r := c.request(ctx).SetQueryParams(pageParams(q))
	return call[models.Page[course.Course]](r, resty.MethodGet, "/mentor/courses")
}

func (c *Client) GetCourse(ctx context.Context, courseID uint) (course.Course, error) {
	return call[course.Course](c.request(ctx), resty.MethodGet, "/courses/"+id(courseID))
}

func (c *Client) CreateCourse(ctx context.Context, payload course.CoursePayload) (course.Course, error) {
	return call[course.Course](c.request(ctx).SetBody(payload), resty.MethodPost, "/courses")
}

func (c *Client) UpdateCourse(ctx context.Context, courseID uint, payload course.CoursePayload) (course.Course, error) {
	return call[course.Course](c.request(ctx).SetBody(payload), resty.MethodPut, "/courses/"+id(courseID))
}

func (c *Client) ListReviews(ctx context.Context, courseID uint, q models.PageQuery) (models.Page[course.Review], error) {
	r := c.request(ctx).SetQueryParams(pageParams(q))
	return call[models.Page[course.Review]](r, resty.MethodGet, "/courses/"+id(courseID)+"/reviews")
}
