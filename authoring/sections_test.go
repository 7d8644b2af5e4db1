package authoring

import (
	"context"
	"errors"
	"lms/models/course"
	"lms/schemas"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionCreateValidatesBeforeCalling(t *testing.T) {
	api := newFakeAPI()
	c := NewSectionCoordinator(api, nil)

	_, err := c.Create(context.Background(), 1, schemas.SectionForm{Title: "ab", OrderIndex: 0})

	var fieldErrs schemas.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "title")
	assert.Contains(t, fieldErrs, "order_index")
	assert.Empty(t, api.createdSections)
}

func TestSectionCreateInvalidatesCache(t *testing.T) {
	api := newFakeAPI()
	cache := &countingCache{}
	c := NewSectionCoordinator(api, cache)

	section, err := c.Create(context.Background(), 5, schemas.SectionForm{Title: " Basics ", OrderIndex: 2})
	require.NoError(t, err)

	assert.Equal(t, []course.SectionPayload{{Title: "Basics", OrderIndex: 2}}, api.createdSections)
	assert.Equal(t, uint(5), section.CourseID)
	assert.Equal(t, []uint{5}, cache.invalidated)
}

func TestSectionEditFormPrefills(t *testing.T) {
	c := NewSectionCoordinator(newFakeAPI(), nil)
	form := c.EditForm(course.Section{ID: 3, Title: "Loops", OrderIndex: 4, Lessons: []course.Lesson{{ID: 1}}})
	assert.Equal(t, schemas.SectionForm{Title: "Loops", OrderIndex: 4}, form)
}

func TestSectionUpdateSendsOnlyTitleAndOrder(t *testing.T) {
	api := newFakeAPI()
	c := NewSectionCoordinator(api, nil)

	_, err := c.Update(context.Background(), 1, 3, schemas.SectionForm{Title: "Loops again", OrderIndex: 7})
	require.NoError(t, err)
	assert.Equal(t, course.SectionPayload{Title: "Loops again", OrderIndex: 7}, api.updatedSections[3])
}

func TestSectionDeleteRequiresConfirmation(t *testing.T) {
	api := newFakeAPI()
	c := NewSectionCoordinator(api, nil)

	err := c.Delete(context.Background(), 1, 9, Answer(false))
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, api.deletedSections)

	var prompts []string
	confirm := ConfirmFunc(func(_ context.Context, prompt string) bool {
		prompts = append(prompts, prompt)
		return true
	})
	require.NoError(t, c.Delete(context.Background(), 1, 9, confirm))
	assert.Equal(t, []uint{9}, api.deletedSections)
	assert.Len(t, prompts, 1)
}

func TestSectionDeletePropagatesAPIError(t *testing.T) {
	api := newFakeAPI()
	api.err = errors.New("boom")
	cache := &countingCache{}
	c := NewSectionCoordinator(api, cache)

	err := c.Delete(context.Background(), 1, 9, Answer(true))
	assert.EqualError(t, err, "boom")
	assert.Len(t, api.deletedSections, 1)
	assert.Empty(t, cache.invalidated)
}

func TestSectionListSortsAndKeepsGaps(t *testing.T) {
	api := newFakeAPI()
	api.sections[1] = []course.Section{
		{ID: 1, OrderIndex: 5},
		{ID: 2, OrderIndex: 1},
		{ID: 3, OrderIndex: 3},
	}
	c := NewSectionCoordinator(api, nil)

	sections, err := c.List(context.Background(), 1)
	require.NoError(t, err)

	var order []int
	for _, s := range sections {
		order = append(order, s.OrderIndex)
	}
	assert.Equal(t, []int{1, 3, 5}, order)
}
