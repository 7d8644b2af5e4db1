package authoring

import (
	"lms/models/course"
	"lms/schemas"
	"strings"
)

// LessonDraft is the lesson form state. It keeps the video URL and the
// article text side by side so switching type loses nothing; only the field
// of the selected type is ever submitted.
type LessonDraft struct {
	Title           string             `json:"title"`
	DurationMinutes int                `json:"duration_minutes"`
	OrderIndex      int                `json:"order_index"`
	ContentType     course.ContentType `json:"content_type"`
	VideoURL        string             `json:"content_url"`
	ArticleText     string             `json:"content_text"`
}

// NewLessonDraft starts on the video tab
func NewLessonDraft() LessonDraft {
	return LessonDraft{ContentType: course.ContentVideo}
}

// DraftFromLesson pre-fills the form from a stored lesson
func DraftFromLesson(l course.Lesson) LessonDraft {
	return LessonDraft{
		Title:           l.Title,
		DurationMinutes: l.DurationMinutes,
		OrderIndex:      l.OrderIndex,
		ContentType:     l.ContentType,
		VideoURL:        l.ContentURL,
		ArticleText:     l.ContentText,
	}
}

// SwitchTo changes the selected type without clearing either field
func (d *LessonDraft) SwitchTo(t course.ContentType) {
	d.ContentType = t
}

// Submission is the form as validated: the unselected field is left empty.
func (d LessonDraft) Submission(sectionID uint) schemas.LessonForm {
	contentType := course.ContentType(strings.ToUpper(strings.TrimSpace(string(d.ContentType))))
	form := schemas.LessonForm{
		Title:           d.Title,
		SectionID:       sectionID,
		OrderIndex:      d.OrderIndex,
		DurationMinutes: d.DurationMinutes,
		ContentType:     contentType,
	}
	switch contentType {
	case course.ContentVideo:
		form.ContentURL = d.VideoURL
	case course.ContentArticle:
		form.ContentText = d.ArticleText
	}
	return form
}
