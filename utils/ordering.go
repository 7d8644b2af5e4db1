package utils

import (
	"lms/models/course"
	"sort"
)

// Positioned is anything placed by an order_index
type Positioned interface {
	Position() int
}

// NextOrderIndex returns one past the largest order index, or 1 for an empty
// list. Gaps left by deletes are never filled.
func NextOrderIndex[T Positioned](items []T) int {
	next := 1
	for _, item := range items {
		if p := item.Position() + 1; p > next {
			next = p
		}
	}
	return next
}

// SortByPosition returns a copy of items in ascending order index. Items that
// share an index keep their input order.
func SortByPosition[T Positioned](items []T) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position() < sorted[j].Position()
	})
	return sorted
}

func SortSections(sections []course.Section) []course.Section {
	return SortByPosition(sections)
}

func SortLessons(lessons []course.Lesson) []course.Lesson {
	return SortByPosition(lessons)
}
