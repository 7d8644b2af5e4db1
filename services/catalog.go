package services

import (
	"context"
	"lms/models/course"

	"github.com/go-resty/resty/v2"
)

func (c *Client) ListSubjects(ctx context.Context) ([]course.Subject, error) {
	return call[[]course.Subject](c.request(ctx), resty.MethodGet, "/subjects")
}

func (c *Client) CreateSubject(ctx context.Context, subject course.Subject) (course.Subject, error) {
	return call[course.Subject](c.request(ctx).SetBody(subject), resty.MethodPost, "/subjects")
}

// ListTopics lists every topic, or the topics of one subject when subjectID > 0
func (c *Client) ListTopics(ctx context.Context, subjectID uint) ([]course.Topic, error) {
	r := c.request(ctx)
	if subjectID > 0 {
		r.SetQueryParam("subject_id", id(subjectID))
	}
	return call[[]course.Topic](r, resty.MethodGet, "/topics")
}

func (c *Client) CreateTopic(ctx context.Context, topic course.Topic) (course.Topic, error) {
	return call[course.Topic](c.request(ctx).SetBody(topic), resty.MethodPost, "/topics")
}
