package dashboard

import (
	"context"
	"lms/models"
	"lms/models/course"
	"lms/utils"
)

// Tab is the active tab of the course detail page
type Tab string

const (
	TabOverview   Tab = "overview"
	TabCurriculum Tab = "curriculum"
	TabStudents   Tab = "students"
	TabReviews    Tab = "reviews"
)

// ParseTab falls back to the overview for unknown values
func ParseTab(s string) Tab {
	switch t := Tab(s); t {
	case TabOverview, TabCurriculum, TabStudents, TabReviews:
		return t
	}
	return TabOverview
}

type CourseDetail struct {
	Tab      Tab                             `json:"tab"`
	Tabs     []Tab                           `json:"tabs"`
	Course   course.Course                   `json:"course"`
	Sections []course.Section                `json:"sections,omitempty"`
	Students *models.Page[course.Enrollment] `json:"students,omitempty"`
	Reviews  *models.Page[course.Review]     `json:"reviews,omitempty"`
}

// Tabs lists the tabs role may open
func Tabs(role models.Role) ([]Tab, error) {
	return models.VisitRole[[]Tab](role, tabsVisitor{})
}

type tabsVisitor struct{}

func (tabsVisitor) Manager() ([]Tab, error) {
	return []Tab{TabOverview, TabCurriculum, TabStudents, TabReviews}, nil
}

func (tabsVisitor) Mentor() ([]Tab, error) {
	return []Tab{TabOverview, TabCurriculum, TabStudents, TabReviews}, nil
}

func (tabsVisitor) Student() ([]Tab, error) {
	return []Tab{TabOverview, TabCurriculum, TabReviews}, nil
}

// CourseDetail loads the course plus the data of the requested tab. A tab the
// role cannot open falls back to the overview.
func (b *Builder) CourseDetail(ctx context.Context, role models.Role, courseID uint, tab Tab, q models.PageQuery) (CourseDetail, error) {
	tabs, err := Tabs(role)
	if err != nil {
		return CourseDetail{}, err
	}
	if !containsTab(tabs, tab) {
		tab = TabOverview
	}

	c, err := b.Source.GetCourse(ctx, courseID)
	if err != nil {
		return CourseDetail{}, err
	}
	detail := CourseDetail{Tab: tab, Tabs: tabs, Course: c}

	switch tab {
	case TabCurriculum:
		// Use the sections embedded in the course when the API sends them
		sections := c.Sections
		if len(sections) == 0 {
			sections, err = b.Source.ListSections(ctx, courseID)
			if err != nil {
				return CourseDetail{}, err
			}
		}
		detail.Sections = utils.SortSections(sections)
		for i := range detail.Sections {
			detail.Sections[i].Lessons = utils.SortLessons(detail.Sections[i].Lessons)
		}
	case TabStudents:
		students, err := b.Source.ListCourseEnrollments(ctx, courseID, q)
		if err != nil {
			return CourseDetail{}, err
		}
		detail.Students = &students
	case TabReviews:
		reviews, err := b.Source.ListReviews(ctx, courseID, q)
		if err != nil {
			return CourseDetail{}, err
		}
		detail.Reviews = &reviews
	}
	return detail, nil
}

func containsTab(tabs []Tab, tab Tab) bool {
	for _, t := range tabs {
		if t == tab {
			return true
		}
	}
	return false
}
