package controllers

import (
	"encoding/json"
	"io"
	"lms/authoring"
	"lms/database"
	"lms/schemas"
	"lms/services"
	courseValidator "lms/validators/course"
	"lms/wizard"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstream struct {
	calls   atomic.Int32
	handler http.HandlerFunc
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// setupApp points the handlers at a fake LMS API and an in-memory draft store
func setupApp(t *testing.T, handler http.HandlerFunc) (*fiber.App, *upstream, *wizard.Store) {
	t.Helper()

	up := &upstream{handler: handler}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up.calls.Add(1)
		up.handler(w, r)
	}))
	t.Cleanup(srv.Close)

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	store := wizard.NewStore(db, time.Hour)
	Setup(services.New(srv.URL, 5*time.Second), store, authoring.NoCache{}, wizard.BestEffort)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", uint(7))
		c.Locals("upstreamToken", "upstream-token")
		return c.Next()
	})
	app.Post("/courses/:course_id/sections", courseValidator.CourseID(), courseValidator.SectionBody(), CreateSection)
	app.Delete("/courses/:course_id/sections/:section_id", courseValidator.Section(), courseValidator.Confirm(), DeleteSection)
	app.Post("/drafts/:draft_id/complete", courseValidator.DraftID(), CompleteDraft)
	app.Put("/drafts/:draft_id/step", courseValidator.DraftID(), courseValidator.GoToStep(), GoToStep)
	app.Patch("/drafts/:draft_id/info", courseValidator.DraftID(), courseValidator.CourseInfo(), UpdateInfo)
	app.Patch("/drafts/:draft_id/price", courseValidator.DraftID(), courseValidator.CoursePrice(), UpdatePrice)
	app.Post("/drafts/:draft_id/photo", courseValidator.DraftID(), courseValidator.MainPhoto(), UploadMainPhoto)
	app.Post("/courses/:course_id/drafts", courseValidator.CourseID(), StartEditDraft)
	app.Get("/courses/:course_id/sections/:section_id/lessons/:lesson_id", courseValidator.Lesson(), GetLessonForm)
	app.Post("/courses/:course_id/resources", courseValidator.Resource(), UploadResource)

	return app, up, store
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestDeleteSectionNeedsConfirmation(t *testing.T) {
	app, up, _ := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/sections/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/courses/3/sections/9", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, "Confirmation required!", decode(t, resp)["message"])
	assert.Zero(t, up.calls.Load())

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/courses/3/sections/9?confirm=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), up.calls.Load())
}

func TestCreateSectionValidationSkipsUpstream(t *testing.T) {
	app, up, _ := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"message": "ok", "data": map[string]any{"id": 1}})
	})

	req := httptest.NewRequest(http.MethodPost, "/courses/3/sections", strings.NewReader(`{"title":"ab","order_index":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, map[string]any{"title": "Title must be at least 3 characters long!"}, body["data"])
	assert.Zero(t, up.calls.Load())
}

func reviewDraft(t *testing.T, store *wizard.Store) *wizard.Wizard {
	t.Helper()
	w := wizard.New(7)
	w.SetInfo(schemas.CourseInfoForm{Name: "Intro to Go", Description: "Learn Go from scratch", SubjectID: 3})
	w.SetPhoto(wizard.Photo{Name: "cover.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}})
	w.SetPrice(schemas.CoursePriceForm{Price: 10, Availability: "draft"})
	require.NoError(t, w.GoToStep(wizard.StepReview))
	require.NoError(t, store.Save(w))
	return w
}

func TestCompleteDraftSurvivesImageFailure(t *testing.T) {
	app, up, store := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/uploads/images":
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "storage down"})
		case "/courses":
			writeJSON(w, http.StatusCreated, map[string]any{"message": "created", "data": map[string]any{"id": 42, "name": "Intro to Go"}})
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
	})
	w := reviewDraft(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/drafts/"+w.ID+"/complete", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, int32(2), up.calls.Load())

	_, err = store.Load(w.ID, 7)
	assert.ErrorIs(t, err, wizard.ErrDraftNotFound)
}

func TestCompleteDraftKeepsDraftWhenCourseFails(t *testing.T) {
	app, _, store := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/uploads/images":
			writeJSON(w, http.StatusCreated, map[string]any{"message": "uploaded", "data": map[string]any{"url": "https://cdn/cover.png"}})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
		}
	})
	w := reviewDraft(t, store)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/drafts/"+w.ID+"/complete", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	kept, err := store.Load(w.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepReview, kept.Step)
}
