package course

import (
	"encoding/json"
	"fmt"
)

// ContentType selects which payload a lesson carries
type ContentType string

const (
	ContentVideo   ContentType = "VIDEO"
	ContentArticle ContentType = "ARTICLE"
)

// LessonContent is either VideoContent or ArticleContent.
type LessonContent interface {
	Type() ContentType
	isLessonContent()
}

// VideoContent holds a YouTube video id or URL
type VideoContent struct {
	URL string
}

// ArticleContent holds rich text
type ArticleContent struct {
	Text string
}

func (VideoContent) Type() ContentType   { return ContentVideo }
func (ArticleContent) Type() ContentType { return ContentArticle }
func (VideoContent) isLessonContent()    {}
func (ArticleContent) isLessonContent()  {}

// Lesson as returned by the LMS API
type Lesson struct {
	ID              uint        `json:"id"`
	SectionID       uint        `json:"section_id"`
	Title           string      `json:"title"`
	OrderIndex      int         `json:"order_index"`
	DurationMinutes int         `json:"duration_minutes"`
	ContentType     ContentType `json:"content_type"`
	ContentURL      string      `json:"content_url,omitempty"`
	ContentText     string      `json:"content_text,omitempty"`
}

func (l Lesson) Position() int { return l.OrderIndex }

// Content returns the payload matching the lesson's content type. Unknown
// types yield nil.
func (l Lesson) Content() LessonContent {
	switch l.ContentType {
	case ContentVideo:
		return VideoContent{URL: l.ContentURL}
	case ContentArticle:
		return ArticleContent{Text: l.ContentText}
	}
	return nil
}

// LessonPayload is the body of lesson create and update calls. Exactly one
// content field is written to the wire.
type LessonPayload struct {
	Title           string
	SectionID       uint
	OrderIndex      int
	DurationMinutes int
	Content         LessonContent
}

type lessonWire struct {
	Title           string      `json:"title"`
	SectionID       uint        `json:"section_id"`
	OrderIndex      int         `json:"order_index"`
	DurationMinutes int         `json:"duration_minutes"`
	ContentType     ContentType `json:"content_type"`
	ContentURL      string      `json:"content_url,omitempty"`
	ContentText     string      `json:"content_text,omitempty"`
}

func (p LessonPayload) MarshalJSON() ([]byte, error) {
	w := lessonWire{
		Title:           p.Title,
		SectionID:       p.SectionID,
		OrderIndex:      p.OrderIndex,
		DurationMinutes: p.DurationMinutes,
	}
	switch content := p.Content.(type) {
	case VideoContent:
		w.ContentType = ContentVideo
		w.ContentURL = content.URL
	case ArticleContent:
		w.ContentType = ContentArticle
		w.ContentText = content.Text
	default:
		return nil, fmt.Errorf("lesson payload: unsupported content %T", p.Content)
	}
	return json.Marshal(w)
}
