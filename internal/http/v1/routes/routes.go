package routes

import (
	"net/url"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/corerestore/internal/http/v1/coach"
	"github.com/janisto/corerestore/internal/http/v1/prescription"
	"github.com/janisto/corerestore/internal/http/v1/profile"
	"github.com/janisto/corerestore/internal/platform/auth"
	coachsvc "github.com/janisto/corerestore/internal/service/coach"
	rx "github.com/janisto/corerestore/internal/service/prescription"
	profilesvc "github.com/janisto/corerestore/internal/service/profile"
)

// Dependencies are the services the v1 routes are built on. Coach may be nil
// when no coaching endpoint is configured.
type Dependencies struct {
	Verifier auth.Verifier
	Profiles profilesvc.Service
	Coach    coachsvc.Service
	Engine   *rx.Engine
	Location *time.Location
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, deps Dependencies) {
	if deps.Engine == nil {
		deps.Engine = rx.New(nil)
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}

	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, deps.Verifier))

	profile.Register(api, deps.Profiles, deps.Location)
	profile.RegisterHistory(api, deps.Profiles, APIPrefix(api))
	prescription.Register(api, deps.Profiles, deps.Engine, deps.Location)
	coach.Register(api, deps.Profiles, deps.Coach, deps.Engine, deps.Location)
}

// APIPrefix returns the path of the first server URL, e.g. "/v1".
func APIPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
