package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/activity"
	bookingvalidator "github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/validator"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/events"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/service"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/store"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/auth"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/config"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

type memStore struct {
	doc   model.Document
	saves int
}

func (s *memStore) Load(ctx context.Context) (model.Document, error) {
	return s.doc, nil
}

func (s *memStore) Save(ctx context.Context, doc model.Document) (store.SaveOutcome, error) {
	s.saves++
	s.doc = doc
	return store.OutcomeFile, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := auth.HashPassword("open-sesame")
	require.NoError(t, err)
	return &config.Config{
		AdminPasswordHash: hash,
		JWTSecret:         "test-secret",
		SessionTTL:        time.Hour,
		MaxImageBytes:     1024,
		Log:               logger.Discard(),
	}
}

func newTestHandler(t *testing.T, doc model.Document) (*ContentHandler, *memStore) {
	t.Helper()
	st := &memStore{doc: doc}
	svc := service.NewService(
		st,
		bookingvalidator.NewBookingValidator(logger.Discard()),
		events.NewPublisher(nil, logger.Discard()),
		activity.NewLog(),
		logger.Discard(),
	)
	require.NoError(t, svc.Load(context.Background()))
	return NewContentHandler(svc, activity.NewLog(), testConfig(t), logger.Discard()), st
}

func TestGetContent(t *testing.T) {
	h, _ := newTestHandler(t, model.Document{"hero": map[string]any{"title": "Welcome"}})

	w := httptest.NewRecorder()
	h.GetContent(w, httptest.NewRequest(http.MethodGet, "/api/v1/content", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, section := range model.Sections() {
		assert.Contains(t, resp.Data, section)
	}
	hero := resp.Data["hero"].(map[string]any)
	assert.Equal(t, "Welcome", hero["title"])
}

func TestGetSections(t *testing.T) {
	h, _ := newTestHandler(t, model.Document{"hero": map[string]any{"title": "Welcome"}})

	w := httptest.NewRecorder()
	h.GetSections(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/sections", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Status   string         `json:"status"`
			Sections map[string]any `json:"sections"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Data.Status)
	for _, section := range model.Sections() {
		assert.Contains(t, resp.Data.Sections, section)
	}
}

// degradedEditor reports one section as failed while the rest render.
type degradedEditor struct {
	service.Editor
}

func (e degradedEditor) Sections() (map[string]any, []string, error) {
	return map[string]any{"hero": map[string]any{"title": "Welcome"}}, []string{"venue"}, nil
}

func TestGetSections_PartialFailure(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	h.service = degradedEditor{Editor: h.service}

	w := httptest.NewRecorder()
	h.GetSections(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/sections", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Status         string         `json:"status"`
			FailedSections []string       `json:"failed_sections"`
			Sections       map[string]any `json:"sections"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "partial", resp.Data.Status)
	assert.Equal(t, []string{"venue"}, resp.Data.FailedSections)
	assert.Contains(t, resp.Data.Sections, "hero")
	assert.NotContains(t, resp.Data.Sections, "venue")
}

func TestGetProjection(t *testing.T) {
	h, _ := newTestHandler(t, model.Document{"hero": map[string]any{"title": "Welcome"}})

	w := httptest.NewRecorder()
	h.GetProjection(w, httptest.NewRequest(http.MethodGet, "/api/v1/projection", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hero-title":"Welcome"`)
}

func TestLogin(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	t.Run("wrong password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login",
			strings.NewReader(`{"password":"guess"}`))
		h.Login(w, req, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("correct password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login",
			strings.NewReader(`{"password":"open-sesame"}`))
		h.Login(w, req, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				Token     string `json:"token"`
				ExpiresIn int64  `json:"expires_in"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.Token)
		assert.Equal(t, int64(3600), resp.Data.ExpiresIn)
	})

	t.Run("login disabled", func(t *testing.T) {
		disabled, _ := newTestHandler(t, nil)
		disabled.cfg.AdminPasswordHash = ""

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login",
			strings.NewReader(`{"password":"x"}`))
		disabled.Login(w, req, nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestSave_ConfirmationFlow(t *testing.T) {
	items := make([]any, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, map[string]any{"id": model.NewItemID(), "src": "x.jpg", "caption": "c"})
	}
	h, st := newTestHandler(t, model.Document{"experiences": map[string]any{"gallery": items}})

	doc, err := h.service.Document()
	require.NoError(t, err)
	arr, _ := doc.Array(model.PathGallery)
	for _, raw := range arr[2:] {
		id := raw.(map[string]any)["id"].(string)
		require.NoError(t, h.service.RemoveItem(model.PathGallery, id))
	}

	w := httptest.NewRecorder()
	h.Save(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/save", strings.NewReader(`{}`)), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIRMATION_REQUIRED")
	assert.Contains(t, w.Body.String(), "warnings")
	assert.Equal(t, 0, st.saves)

	w = httptest.NewRecorder()
	h.Save(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/save", strings.NewReader(`{"confirm":true}`)), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, st.saves)
}

func TestExport(t *testing.T) {
	h, _ := newTestHandler(t, model.Document{"hero": map[string]any{"title": "Welcome"}})

	w := httptest.NewRecorder()
	h.Export(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/export", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "website-content-backup-")
	assert.Contains(t, w.Body.String(), "Welcome")
}

func TestImport(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/import",
		strings.NewReader(`{"hero":{"title":"Restored"}}`))
	h.Import(w, req, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/import",
		strings.NewReader(`{"hero":{"title":"Restored"},"venue":{"title":"Hall"}}`))
	h.Import(w, req, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	doc, err := h.service.Document()
	require.NoError(t, err)
	assert.Equal(t, "Restored", doc.GetString("hero.title"))
}

func TestUploadImage(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	t.Run("embeds into field", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/images?field=venue.image",
			bytes.NewReader([]byte{0x89, 0x50, 0x4e, 0x47}))
		req.Header.Set("Content-Type", "image/png")
		h.UploadImage(w, req, nil)

		require.Equal(t, http.StatusOK, w.Code)
		doc, err := h.service.Document()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(doc.GetString("venue.image"), "data:image/png;base64,"))
	})

	t.Run("rejects oversize body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/images?field=venue.image",
			bytes.NewReader(make([]byte, 2048)))
		req.Header.Set("Content-Type", "image/png")
		h.UploadImage(w, req, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/images?field=venue.image",
			strings.NewReader("plain text"))
		req.Header.Set("Content-Type", "text/plain")
		h.UploadImage(w, req, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires a target", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/images",
			bytes.NewReader([]byte{0x01}))
		req.Header.Set("Content-Type", "image/png")
		h.UploadImage(w, req, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemoveBooking_BadID(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/abc", nil)
	h.RemoveBooking(w, req, httprouter.Params{{Key: "id", Value: "abc"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
