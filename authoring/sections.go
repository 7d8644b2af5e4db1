package authoring

import (
	"context"
	"lms/models/course"
	"lms/schemas"
	"lms/utils"
)

// SectionAPI is the part of the LMS API section authoring needs
type SectionAPI interface {
	ListSections(ctx context.Context, courseID uint) ([]course.Section, error)
	CreateSection(ctx context.Context, courseID uint, payload course.SectionPayload) (course.Section, error)
	UpdateSection(ctx context.Context, sectionID uint, payload course.SectionPayload) (course.Section, error)
	DeleteSection(ctx context.Context, sectionID uint) error
}

// SectionCoordinator runs section create, edit and delete for one course view
type SectionCoordinator struct {
	API   SectionAPI
	Cache SectionCache
}

func NewSectionCoordinator(api SectionAPI, cache SectionCache) *SectionCoordinator {
	if cache == nil {
		cache = NoCache{}
	}
	return &SectionCoordinator{API: api, Cache: cache}
}

// List returns the course sections ordered by order_index
func (c *SectionCoordinator) List(ctx context.Context, courseID uint) ([]course.Section, error) {
	if sections, ok := c.Cache.Get(ctx, courseID); ok {
		return utils.SortSections(sections), nil
	}

	sections, err := c.API.ListSections(ctx, courseID)
	if err != nil {
		return nil, err
	}
	c.Cache.Set(ctx, courseID, sections)
	return utils.SortSections(sections), nil
}

// Create validates the form before any API call. Validation failures come
// back as schemas.FieldErrors.
func (c *SectionCoordinator) Create(ctx context.Context, courseID uint, form schemas.SectionForm) (course.Section, error) {
	res := schemas.Validate(form)
	if err := res.Err(); err != nil {
		return course.Section{}, err
	}

	section, err := c.API.CreateSection(ctx, courseID, course.SectionPayload{
		Title:      res.Value.Title,
		OrderIndex: res.Value.OrderIndex,
	})
	if err != nil {
		return course.Section{}, err
	}
	c.Cache.Invalidate(ctx, courseID)
	return section, nil
}

// EditForm pre-fills the edit form from the section's current values
func (c *SectionCoordinator) EditForm(section course.Section) schemas.SectionForm {
	return schemas.SectionForm{Title: section.Title, OrderIndex: section.OrderIndex}
}

// Update submits only title and order_index
func (c *SectionCoordinator) Update(ctx context.Context, courseID, sectionID uint, form schemas.SectionForm) (course.Section, error) {
	res := schemas.Validate(form)
	if err := res.Err(); err != nil {
		return course.Section{}, err
	}

	section, err := c.API.UpdateSection(ctx, sectionID, course.SectionPayload{
		Title:      res.Value.Title,
		OrderIndex: res.Value.OrderIndex,
	})
	if err != nil {
		return course.Section{}, err
	}
	c.Cache.Invalidate(ctx, courseID)
	return section, nil
}

// Delete calls the API once, and only after confirmation. Remaining sections
// keep their order_index.
func (c *SectionCoordinator) Delete(ctx context.Context, courseID, sectionID uint, confirm Confirmer) error {
	if !confirm.Confirm(ctx, "Delete this section and all of its lessons?") {
		return ErrNotConfirmed
	}
	if err := c.API.DeleteSection(ctx, sectionID); err != nil {
		return err
	}
	c.Cache.Invalidate(ctx, courseID)
	return nil
}
