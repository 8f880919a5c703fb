// Package handler exposes the content document over HTTP: a public
// read-only projection and the authenticated admin editing surface.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/activity"
	contenterrors "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/service"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/projector"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/auth"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/config"
	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/httputil"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
)

type ContentHandler struct {
	service service.Editor
	trail   *activity.Log
	cfg     *config.Config
	log     *logger.Logger
}

func NewContentHandler(svc service.Editor, trail *activity.Log, cfg *config.Config, log *logger.Logger) *ContentHandler {
	return &ContentHandler{service: svc, trail: trail, cfg: cfg, log: log}
}

func (h *ContentHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/content", h.GetContent)
	router.GET("/api/v1/projection", h.GetProjection)

	router.POST("/api/v1/admin/login", h.Login)
	router.GET("/api/v1/admin/sections", h.GetSections)
	router.PUT("/api/v1/admin/fields", h.SetField)
	router.POST("/api/v1/admin/items", h.AddItem)
	router.PATCH("/api/v1/admin/items/:id", h.UpdateItem)
	router.DELETE("/api/v1/admin/items/:id", h.RemoveItem)
	router.POST("/api/v1/admin/items/:id/reorder", h.ReorderItem)
	router.POST("/api/v1/admin/bookings", h.AddBooking)
	router.DELETE("/api/v1/admin/bookings/:id", h.RemoveBooking)
	router.POST("/api/v1/admin/save", h.Save)
	router.POST("/api/v1/admin/discard", h.Discard)
	router.GET("/api/v1/admin/export", h.Export)
	router.POST("/api/v1/admin/import", h.Import)
	router.POST("/api/v1/admin/images", h.UploadImage)
	router.GET("/api/v1/admin/activity", h.GetActivity)
}

// GetContent serves the full normalized document to the public site.
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	doc, err := h.service.Document()
	if err != nil {
		h.writeError(w, "GetContent", err)
		return
	}
	h.writeSuccess(w, "GetContent", doc)
}

// GetSections serves the per-section editor view. Sections that failed to
// build are named so the editor can degrade instead of blanking the page.
func (h *ContentHandler) GetSections(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sections, failed, err := h.service.Sections()
	if err != nil {
		h.writeError(w, "GetSections", err)
		return
	}

	body := map[string]any{"sections": sections}
	if len(failed) > 0 {
		body["status"] = "partial"
		body["failed_sections"] = failed
	} else {
		body["status"] = "ok"
	}
	h.writeSuccess(w, "GetSections", body)
}

// GetProjection returns the ready-to-apply render plan output: scalar
// mutations keyed by target plus pre-rendered list markup.
func (h *ContentHandler) GetProjection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	doc, err := h.service.Document()
	if err != nil {
		h.writeError(w, "GetProjection", err)
		return
	}

	sink := projector.NewMapSink()
	if _, err := projector.Project(doc, projector.DefaultBindings(), sink); err != nil {
		h.writeError(w, "GetProjection", apperrors.Internal("projection failed", err))
		return
	}
	if err := projector.ProjectLists(doc, sink); err != nil {
		h.writeError(w, "GetProjection", apperrors.Internal("projection failed", err))
		return
	}

	h.writeSuccess(w, "GetProjection", sink)
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

func (h *ContentHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.cfg.AdminPasswordHash == "" {
		h.writeError(w, "Login", apperrors.Unavailable("admin login"))
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Login", apperrors.InvalidInput("invalid request body"))
		return
	}

	if err := auth.VerifyPassword(h.cfg.AdminPasswordHash, req.Password); err != nil {
		h.log.Warn("Failed admin login attempt")
		h.writeError(w, "Login", apperrors.Unauthorized("invalid password"))
		return
	}

	token, err := auth.IssueSessionToken(h.cfg.JWTSecret, h.cfg.SessionTTL)
	if err != nil {
		h.writeError(w, "Login", apperrors.Internal("failed to issue session token", err))
		return
	}

	h.trail.Record("Admin logged in")
	h.writeSuccess(w, "Login", loginResponse{
		Token:     token,
		ExpiresIn: int64(h.cfg.SessionTTL.Seconds()),
	})
}

func (h *ContentHandler) GetActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeSuccess(w, "GetActivity", h.trail.Entries())
}

func (h *ContentHandler) writeSuccess(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "error", err)
	}
}

func (h *ContentHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if errors.Is(err, contenterrors.ErrNoSession) {
		err = apperrors.Unavailable("content editor")
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}
