package services

import (
	"context"
	"lms/models/course"

	"github.com/go-resty/resty/v2"
)

func (c *Client) ListLessons(ctx context.Context, sectionID uint) ([]course.Lesson, error) {
	return call[[]course.Lesson](c.request(ctx), resty.MethodGet, "/sections/"+id(sectionID)+"/lessons")
}

func (c *Client) CreateLesson(ctx context.Context, sectionID uint, payload course.LessonPayload) (course.Lesson, error) {
	r := c.request(ctx).SetBody(payload)
	return call[course.Lesson](r, resty.MethodPost, "/sections/"+id(sectionID)+"/lessons")
}

func (c *Client) UpdateLesson(ctx context.Context, lessonID uint, payload course.LessonPayload) (course.Lesson, error) {
	return call[course.Lesson](c.request(ctx).SetBody(payload), resty.MethodPut, "/lessons/"+id(lessonID))
}

func (c *Client) DeleteLesson(ctx context.Context, lessonID uint) error {
	_, err := call[any](c.request(ctx), resty.MethodDelete, "/lessons/"+id(lessonID))
	return err
}
