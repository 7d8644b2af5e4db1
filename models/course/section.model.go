package course

// Section is an ordered group of lessons inside a course
type Section struct {
	ID           uint     `json:"id"`
	CourseID     uint     `json:"course_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	OrderIndex   int      `json:"order_index"`
	TotalLessons int      `json:"total_lessons"`
	Lessons      []Lesson `json:"lessons,omitempty"`
}

func (s Section) Position() int { return s.OrderIndex }

// SectionPayload is the only shape sent on section create and update
type SectionPayload struct {
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
}
