package authoring

import (
	"context"
	"errors"
	"fmt"
	"lms/models/course"
	"lms/schemas"
	"lms/utils"
)

var ErrLessonNotFound = errors.New("authoring: lesson not found")

// LessonAPI is the part of the LMS API lesson authoring needs
type LessonAPI interface {
	ListLessons(ctx context.Context, sectionID uint) ([]course.Lesson, error)
	CreateLesson(ctx context.Context, sectionID uint, payload course.LessonPayload) (course.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID uint, payload course.LessonPayload) (course.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID uint) error
}

type LessonCoordinator struct {
	API   LessonAPI
	Cache SectionCache
}

func NewLessonCoordinator(api LessonAPI, cache SectionCache) *LessonCoordinator {
	if cache == nil {
		cache = NoCache{}
	}
	return &LessonCoordinator{API: api, Cache: cache}
}

// List returns the section's lessons ordered by order_index
func (c *LessonCoordinator) List(ctx context.Context, sectionID uint) ([]course.Lesson, error) {
	lessons, err := c.API.ListLessons(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return utils.SortLessons(lessons), nil
}

// Create places the lesson after the section's current last lesson
func (c *LessonCoordinator) Create(ctx context.Context, courseID, sectionID uint, draft LessonDraft) (course.Lesson, error) {
	res := schemas.Validate(draft.Submission(sectionID))
	if err := res.Err(); err != nil {
		return course.Lesson{}, err
	}

	existing, err := c.API.ListLessons(ctx, sectionID)
	if err != nil {
		return course.Lesson{}, fmt.Errorf("list lessons of section %d: %w", sectionID, err)
	}

	payload := lessonPayload(res.Value, utils.NextOrderIndex(existing))
	lesson, err := c.API.CreateLesson(ctx, sectionID, payload)
	if err != nil {
		return course.Lesson{}, err
	}
	c.Cache.Invalidate(ctx, courseID)
	return lesson, nil
}

// Update keeps the stored order_index unless the draft sets one
func (c *LessonCoordinator) Update(ctx context.Context, courseID, sectionID, lessonID uint, draft LessonDraft) (course.Lesson, error) {
	res := schemas.Validate(draft.Submission(sectionID))
	if err := res.Err(); err != nil {
		return course.Lesson{}, err
	}

	orderIndex := res.Value.OrderIndex
	if orderIndex == 0 {
		current, err := c.find(ctx, sectionID, lessonID)
		if err != nil {
			return course.Lesson{}, err
		}
		orderIndex = current.OrderIndex
	}

	lesson, err := c.API.UpdateLesson(ctx, lessonID, lessonPayload(res.Value, orderIndex))
	if err != nil {
		return course.Lesson{}, err
	}
	c.Cache.Invalidate(ctx, courseID)
	return lesson, nil
}

// Delete calls the API once, and only after confirmation
func (c *LessonCoordinator) Delete(ctx context.Context, courseID, lessonID uint, confirm Confirmer) error {
	if !confirm.Confirm(ctx, "Delete this lesson?") {
		return ErrNotConfirmed
	}
	if err := c.API.DeleteLesson(ctx, lessonID); err != nil {
		return err
	}
	c.Cache.Invalidate(ctx, courseID)
	return nil
}

// Get returns one lesson of the section, or ErrLessonNotFound
func (c *LessonCoordinator) Get(ctx context.Context, sectionID, lessonID uint) (course.Lesson, error) {
	return c.find(ctx, sectionID, lessonID)
}

func (c *LessonCoordinator) find(ctx context.Context, sectionID, lessonID uint) (course.Lesson, error) {
	lessons, err := c.API.ListLessons(ctx, sectionID)
	if err != nil {
		return course.Lesson{}, fmt.Errorf("list lessons of section %d: %w", sectionID, err)
	}
	for _, l := range lessons {
		if l.ID == lessonID {
			return l, nil
		}
	}
	return course.Lesson{}, ErrLessonNotFound
}

// lessonPayload turns a validated form into the tagged content union. Video
// links are stored as embed URLs.
func lessonPayload(form schemas.LessonForm, orderIndex int) course.LessonPayload {
	payload := course.LessonPayload{
		Title:           form.Title,
		SectionID:       form.SectionID,
		OrderIndex:      orderIndex,
		DurationMinutes: form.DurationMinutes,
	}
	if form.ContentType == course.ContentVideo {
		videoID, _ := utils.ExtractYouTubeID(form.ContentURL)
		payload.Content = course.VideoContent{URL: utils.YouTubeEmbedURL(videoID)}
	} else {
		payload.Content = course.ArticleContent{Text: form.ContentText}
	}
	return payload
}
