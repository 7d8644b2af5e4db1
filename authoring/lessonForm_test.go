package authoring

import (
	"lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitchingTypeKeepsBothFields(t *testing.T) {
	d := NewLessonDraft()
	d.VideoURL = "https://youtu.be/dQw4w9WgXcQ"

	d.SwitchTo(course.ContentArticle)
	d.ArticleText = "notes"
	d.SwitchTo(course.ContentVideo)

	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", d.VideoURL)
	assert.Equal(t, "notes", d.ArticleText)
}

func TestSubmissionCarriesOnlySelectedField(t *testing.T) {
	d := LessonDraft{
		Title:           "Intro",
		DurationMinutes: 5,
		ContentType:     course.ContentVideo,
		VideoURL:        "dQw4w9WgXcQ",
		ArticleText:     "stale",
	}

	video := d.Submission(4)
	assert.Equal(t, "dQw4w9WgXcQ", video.ContentURL)
	assert.Empty(t, video.ContentText)
	assert.Equal(t, uint(4), video.SectionID)

	d.SwitchTo(course.ContentArticle)
	article := d.Submission(4)
	assert.Empty(t, article.ContentURL)
	assert.Equal(t, "stale", article.ContentText)
}

func TestDraftFromLesson(t *testing.T) {
	d := DraftFromLesson(course.Lesson{
		ID:              1,
		Title:           "Maps",
		OrderIndex:      3,
		DurationMinutes: 9,
		ContentType:     course.ContentArticle,
		ContentText:     "body",
	})
	assert.Equal(t, course.ContentArticle, d.ContentType)
	assert.Equal(t, "body", d.ArticleText)
	assert.Equal(t, 3, d.OrderIndex)
}
