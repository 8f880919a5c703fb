package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/service"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/httputil"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage,omitempty"`
}

// HealthHandler reports liveness and readiness. The remote database is
// optional; readiness only requires an open content session, with the
// storage field telling operators which backend is actually live.
type HealthHandler struct {
	mongoClient *mongo.Client
	service     service.Editor
	log         *logger.Logger
}

func NewHealthHandler(mongoClient *mongo.Client, svc service.Editor, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
		service:     svc,
		log:         log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := h.service.Document(); err != nil {
		h.log.Error("Content session not ready", "error", err, "path", r.URL.Path)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	storage := "file"
	if h.mongoClient != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		storage = "mongodb"
		if err := h.mongoClient.Ping(ctx, nil); err != nil {
			h.log.Warn("Database health check failed, file fallback active", "error", err)
			storage = "file-fallback"
		}
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ready",
		Storage: storage,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
