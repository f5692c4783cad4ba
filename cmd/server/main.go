package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/corerestore/internal/http/health"
	"github.com/janisto/corerestore/internal/http/v1/routes"
	"github.com/janisto/corerestore/internal/platform/auth"
	"github.com/janisto/corerestore/internal/platform/config"
	"github.com/janisto/corerestore/internal/platform/firebase"
	applog "github.com/janisto/corerestore/internal/platform/logging"
	appmiddleware "github.com/janisto/corerestore/internal/platform/middleware"
	"github.com/janisto/corerestore/internal/platform/respond"
	coachsvc "github.com/janisto/corerestore/internal/service/coach"
	rx "github.com/janisto/corerestore/internal/service/prescription"
	profilesvc "github.com/janisto/corerestore/internal/service/profile"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const docsPath = "/api-docs"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "config load failed", err)
	}

	ctx := context.Background()
	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    cfg.FirebaseProjectID,
		GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
	})
	if err != nil {
		applog.LogFatal(ctx, "firebase init failed", err)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(context.Background(), "firestore close error", err)
		}
	}()

	deps := routes.Dependencies{
		Verifier: auth.NewFirebaseVerifier(clients.Auth),
		Profiles: profilesvc.NewFirestoreStore(clients.Firestore),
		Engine:   rx.New(nil),
		Location: cfg.DefaultLocation,
	}
	if cfg.CoachAPIURL != "" {
		deps.Coach = coachsvc.NewClient(
			&http.Client{Timeout: 20 * time.Second},
			coachsvc.WithBaseURL(cfg.CoachAPIURL),
			coachsvc.WithAPIKey(cfg.CoachAPIKey),
		)
	} else {
		applog.LogWarn(ctx, "COACH_API_URL not set, coach chat disabled")
	}

	router, _ := newRouter(deps)
	srv := newServer(cfg.Port, router)

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func newRouter(deps routes.Dependencies) (chi.Router, huma.API) {
	if deps.Location == nil {
		deps.Location = time.UTC
	}

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// SECURITY: RealIP trusts X-Forwarded-For; only deploy behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.NewHandler(deps.Location))

	hcfg := huma.DefaultConfig("Core Restore API", Version)
	hcfg.DocsPath = docsPath
	hcfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(router, hcfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContentTypes)

	routes.Register(api, deps)
	return router, api
}

// addCBORContentTypes advertises application/cbor wherever JSON is accepted
// or returned.
func addCBORContentTypes(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func newServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}
