package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/config"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/contracts"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/middleware"
)

const (
	adminPrefix    = "/api/v1/admin"
	adminLoginPath = "/api/v1/admin/login"
	imageUpload    = "/api/v1/admin/images"
)

// Application owns the HTTP server: a health router with minimal middleware
// and the content API router with the full stack.
type Application struct {
	cfg           *config.Config
	server        *http.Server
	healthHandler http.Handler
	apiHandler    http.Handler
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

func (a *Application) SetHandlers(health contracts.Handler, api ...contracts.Handler) {
	a.setHealthHandler(health)
	a.setAPIHandler(api)
	a.setServer()
}

func (a *Application) setHealthHandler(health contracts.Handler) {
	router := httprouter.New()
	health.RegisterRoutes(router)

	var handler http.Handler = router
	handler = middleware.RequestLogging(a.cfg.Log)(handler)
	handler = middleware.Recovery(a.cfg.Log)(handler)
	a.healthHandler = handler
}

func (a *Application) setAPIHandler(api []contracts.Handler) {
	router := httprouter.New()
	for _, h := range api {
		h.RegisterRoutes(router)
	}

	var handler http.Handler = router
	if a.cfg.AdminPasswordHash != "" {
		handler = middleware.AdminAuth(a.cfg.JWTSecret, adminPrefix, adminLoginPath, a.cfg.Log)(handler)
		a.cfg.Log.Info("Admin session authentication enabled")
	}
	handler = middleware.RequestTimeout(a.cfg.RequestTimeout)(handler)
	handler = middleware.ContentTypeValidation(a.cfg.Log, imageUpload)(handler)
	handler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(handler)
	handler = middleware.RequestLogging(a.cfg.Log)(handler)
	handler = middleware.Recovery(a.cfg.Log)(handler)
	a.apiHandler = handler
}

func (a *Application) setServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.apiHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Server stopped gracefully")
}
