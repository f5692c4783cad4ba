package prescription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/corerestore/internal/platform/auth"
	applog "github.com/janisto/corerestore/internal/platform/logging"
	appmiddleware "github.com/janisto/corerestore/internal/platform/middleware"
	"github.com/janisto/corerestore/internal/platform/respond"
	rx "github.com/janisto/corerestore/internal/service/prescription"
	profilesvc "github.com/janisto/corerestore/internal/service/profile"
)

func newTestRouter(t *testing.T, p *profilesvc.UserProfile) chi.Router {
	t.Helper()
	svc := profilesvc.NewMockProfileService()
	if p != nil {
		if err := svc.Seed(auth.TestUser().UID, *p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("PrescriptionTest", "test"))
	api.UseMiddleware(auth.NewAuthMiddleware(api, &auth.MockVerifier{User: auth.TestUser()}))
	Register(api, svc, rx.New(nil), time.UTC)
	return router
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set(chimiddleware.RequestIDHeader, "prescription-test")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGetPrescriptionNewCycle(t *testing.T) {
	router := newTestRouter(t, &profilesvc.UserProfile{JoinDate: "2024-01-01", Commitment: profilesvc.Commitment15})

	resp := get(t, router, "/prescription?date=2024-01-17")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got Prescription
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Track != "healer" || got.DayNumber != 1 || got.CycleKey != "2024-01-17" {
		t.Errorf("unexpected prescription %+v", got)
	}
	if got.Phase != "Neuromuscular Awakening" || got.Minutes != 15 || !got.HasContent {
		t.Errorf("unexpected phase details %+v", got)
	}
}

func TestGetPrescriptionGateAndGap(t *testing.T) {
	router := newTestRouter(t, &profilesvc.UserProfile{JoinDate: "2024-01-01"})

	resp := get(t, router, "/prescription?date=2024-01-13")
	var got Prescription
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.RequiresCheckinToProceed || got.CheckinMilestoneDay != 7 || got.CheckinDone {
		t.Errorf("unexpected gate %+v", got)
	}
	if got.HasContent || got.Media == nil || len(got.Media) != 0 {
		t.Errorf("expected empty media for authored gap, got %+v", got.Media)
	}
}

func TestGetPrescriptionNotFound(t *testing.T) {
	router := newTestRouter(t, nil)
	if resp := get(t, router, "/prescription"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetPrescriptionValidation(t *testing.T) {
	router := newTestRouter(t, &profilesvc.UserProfile{})
	tests := []string{
		"/prescription?date=2024-02-30",
		"/prescription?tz=Mars/Olympus",
	}
	for _, path := range tests {
		if resp := get(t, router, path); resp.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", path, resp.Code)
		}
	}
}

func TestResolveNow(t *testing.T) {
	now, err := ResolveNow("2024-03-10", "America/New_York", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if now.Location().String() != "America/New_York" || now.Day() != 10 || now.Hour() != 12 {
		t.Fatalf("unexpected instant %v", now)
	}

	helsinki, _ := time.LoadLocation("Europe/Helsinki")
	now, err = ResolveNow("", "", helsinki)
	if err != nil || now.Location() != helsinki {
		t.Fatalf("expected default location, got %v (%v)", now.Location(), err)
	}
}
