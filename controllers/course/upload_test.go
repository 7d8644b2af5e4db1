package controllers

import (
	"bytes"
	"fmt"
	"lms/wizard"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartRequest builds a POST carrying one file part with the given type
func multipartRequest(t *testing.T, path, field, filename, contentType string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngOfSize(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return data
}

func TestMainPhotoRules(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		status      int
		message     string
	}{
		{"too large", "big.png", "image/png", pngOfSize(3 << 20), fiber.StatusUnprocessableEntity, "Image must be 2MB or smaller!"},
		{"not an image", "notes.txt", "text/plain", []byte("just text"), fiber.StatusUnprocessableEntity, "Only image files are allowed!"},
		{"one megabyte png", "cover.png", "image/png", pngOfSize(1 << 20), fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, up, store := setupApp(t, noUpstream(t))
			w := savedDraft(t, store, wizard.StepPhotos)

			resp, err := app.Test(multipartRequest(t, "/drafts/"+w.ID+"/photo", "main_photo", tt.filename, tt.contentType, tt.data), -1)
			require.NoError(t, err)
			require.Equal(t, tt.status, resp.StatusCode)
			assert.Zero(t, up.calls.Load())

			body := decode(t, resp)
			if tt.message != "" {
				assert.Equal(t, map[string]any{"main_photo": tt.message}, body["data"])
				return
			}

			assert.Equal(t, float64(wizard.StepDetails), body["data"].(map[string]any)["current_step"])
			loaded, err := store.Load(w.ID, 7)
			require.NoError(t, err)
			require.NotNil(t, loaded.Draft.MainPhoto)
			assert.Equal(t, "image/png", loaded.Draft.MainPhoto.ContentType)
			assert.Len(t, loaded.Draft.MainPhoto.Data, 1<<20)
		})
	}
}

func TestResourceRejectsExecutableBeforeUpload(t *testing.T) {
	app, up, _ := setupApp(t, noUpstream(t))

	resp, err := app.Test(multipartRequest(t, "/courses/3/resources", "file", "setup.exe", "application/octet-stream", []byte("MZ\x90\x00")), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, map[string]any{"file": "Only pdf, doc, docx, xls, xlsx, ppt, pptx or txt files are allowed!"}, decode(t, resp)["data"])
	assert.Zero(t, up.calls.Load())
}

func TestResourceUploadsAllowedDocument(t *testing.T) {
	app, up, _ := setupApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/3/resources", r.URL.Path)
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "syllabus.pdf", header.Filename)
		writeJSON(w, http.StatusCreated, map[string]any{"message": "ok", "data": map[string]any{"id": 2, "name": "syllabus.pdf"}})
	})

	resp, err := app.Test(multipartRequest(t, "/courses/3/resources", "file", "syllabus.pdf", "application/pdf", []byte("%PDF-1.4\n")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, int32(1), up.calls.Load())
}
