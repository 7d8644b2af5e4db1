package authoring

import (
	"context"
	"lms/models/course"
)

type fakeAPI struct {
	sections map[uint][]course.Section
	lessons  map[uint][]course.Lesson
	err      error

	listSectionCalls int
	createdSections  []course.SectionPayload
	updatedSections  map[uint]course.SectionPayload
	deletedSections  []uint
	createdLessons   []course.LessonPayload
	updatedLessons   map[uint]course.LessonPayload
	deletedLessons   []uint
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		sections:        map[uint][]course.Section{},
		lessons:         map[uint][]course.Lesson{},
		updatedSections: map[uint]course.SectionPayload{},
		updatedLessons:  map[uint]course.LessonPayload{},
	}
}

func (f *fakeAPI) ListSections(_ context.Context, courseID uint) ([]course.Section, error) {
	f.listSectionCalls++
	return f.sections[courseID], f.err
}

func (f *fakeAPI) CreateSection(_ context.Context, courseID uint, p course.SectionPayload) (course.Section, error) {
	f.createdSections = append(f.createdSections, p)
	return course.Section{ID: 100, CourseID: courseID, Title: p.Title, OrderIndex: p.OrderIndex}, f.err
}

func (f *fakeAPI) UpdateSection(_ context.Context, sectionID uint, p course.SectionPayload) (course.Section, error) {
	f.updatedSections[sectionID] = p
	return course.Section{ID: sectionID, Title: p.Title, OrderIndex: p.OrderIndex}, f.err
}

func (f *fakeAPI) DeleteSection(_ context.Context, sectionID uint) error {
	f.deletedSections = append(f.deletedSections, sectionID)
	return f.err
}

func (f *fakeAPI) ListLessons(_ context.Context, sectionID uint) ([]course.Lesson, error) {
	return f.lessons[sectionID], f.err
}

func (f *fakeAPI) CreateLesson(_ context.Context, sectionID uint, p course.LessonPayload) (course.Lesson, error) {
	f.createdLessons = append(f.createdLessons, p)
	return course.Lesson{ID: 200, SectionID: sectionID, Title: p.Title, OrderIndex: p.OrderIndex}, f.err
}

func (f *fakeAPI) UpdateLesson(_ context.Context, lessonID uint, p course.LessonPayload) (course.Lesson, error) {
	f.updatedLessons[lessonID] = p
	return course.Lesson{ID: lessonID, Title: p.Title, OrderIndex: p.OrderIndex}, f.err
}

func (f *fakeAPI) DeleteLesson(_ context.Context, lessonID uint) error {
	f.deletedLessons = append(f.deletedLessons, lessonID)
	return f.err
}

type countingCache struct {
	NoCache
	invalidated []uint
}

func (c *countingCache) Invalidate(_ context.Context, courseID uint) {
	c.invalidated = append(c.invalidated, courseID)
}
