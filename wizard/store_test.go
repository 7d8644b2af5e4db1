package wizard

import (
	"bytes"
	"lms/database"
	"lms/models/course"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(newTestDB(t), time.Hour)

	w := FromCourse(3, course.Course{
		ID:        12,
		Name:      "Databases",
		KeyPoints: []string{"joins", "indexes"},
		Images:    []course.Image{{ID: 4, URL: "https://cdn/db.png"}},
	})
	w.SetPhoto(Photo{Name: "new.png", ContentType: "image/png", Data: []byte{1, 2, 3}})
	require.NoError(t, w.GoToStep(StepPrice))
	require.NoError(t, store.Save(w))

	loaded, err := store.Load(w.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, w.CourseID, loaded.CourseID)
	assert.Equal(t, StepPrice, loaded.Step)
	assert.Equal(t, []string{"joins", "indexes"}, loaded.Draft.KeyPoints)
	assert.Equal(t, w.Draft.ExistingImages, loaded.Draft.ExistingImages)
	require.NotNil(t, loaded.Draft.MainPhoto)
	assert.Equal(t, []byte{1, 2, 3}, loaded.Draft.MainPhoto.Data)
}

func TestStoreSaveOverwritesSameDraft(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, time.Hour)

	w := New(3)
	require.NoError(t, store.Save(w))

	w.Draft.Name = "Renamed"
	w.Draft.Price = 0
	require.NoError(t, store.Save(w))

	var count int64
	require.NoError(t, db.Table("course_drafts").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	loaded, err := store.Load(w.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", loaded.Draft.Name)
	assert.False(t, loaded.Editing())
}

func TestStoreFirstSaveLogsNothing(t *testing.T) {
	var buf bytes.Buffer
	db := newTestDB(t).Session(&gorm.Session{
		Logger: logger.New(log.New(&buf, "", 0), logger.Config{LogLevel: logger.Warn}),
	})
	store := NewStore(db, time.Hour)

	w := New(3)
	require.NoError(t, store.Save(w))
	require.NoError(t, store.Save(w))

	assert.NotContains(t, buf.String(), "record not found")
}

func TestStoreScopesDraftsToMentor(t *testing.T) {
	store := NewStore(newTestDB(t), time.Hour)
	w := New(3)
	require.NoError(t, store.Save(w))

	_, err := store.Load(w.ID, 4)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, store.Delete(w.ID, 4), ErrDraftNotFound)

	require.NoError(t, store.Delete(w.ID, 3))
	_, err = store.Load(w.ID, 3)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(newTestDB(t), time.Hour)
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	w := New(3)
	require.NoError(t, store.Save(w))

	store.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, err := store.Load(w.ID, 3)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	removed, err := store.PurgeExpired(base.Add(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
