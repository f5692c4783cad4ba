package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/corerestore/internal/platform/auth"
	applog "github.com/janisto/corerestore/internal/platform/logging"
	appmiddleware "github.com/janisto/corerestore/internal/platform/middleware"
	"github.com/janisto/corerestore/internal/platform/respond"
	profilesvc "github.com/janisto/corerestore/internal/service/profile"
)

func newTestRouter(verifier auth.Verifier) (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	config := huma.DefaultConfig("RoutesTest", "test")
	config.Servers = []*huma.Server{{URL: "http://localhost/v1"}}
	api := humachi.New(router, config)
	Register(api, Dependencies{
		Verifier: verifier,
		Profiles: profilesvc.NewMockProfileService(),
	})
	return router, api
}

func TestRegisterRoutesFlow(t *testing.T) {
	router, _ := newTestRouter(&auth.MockVerifier{User: auth.TestUser()})

	steps := []struct {
		method, path, body string
		status             int
	}{
		{http.MethodPost, "/profile", "", http.StatusCreated},
		{http.MethodPatch, "/profile", `{"symptoms":["pelvicPain"]}`, http.StatusOK},
		{http.MethodGet, "/prescription?date=2024-01-01", "", http.StatusOK},
		{http.MethodPost, "/profile/workouts", `{"track":"healer","dayNumber":1}`, http.StatusCreated},
		{http.MethodGet, "/profile/workouts?limit=1", "", http.StatusOK},
		{http.MethodPost, "/coach/chat", `{"message":"hi"}`, http.StatusServiceUnavailable},
	}
	for _, s := range steps {
		var req *http.Request
		if s.body == "" {
			req = httptest.NewRequest(s.method, s.path, nil)
		} else {
			req = httptest.NewRequest(s.method, s.path, strings.NewReader(s.body))
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Authorization", "Bearer valid-token")
		req.Header.Set(chimiddleware.RequestIDHeader, "routes-flow")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != s.status {
			t.Fatalf("%s %s: expected %d, got %d: %s", s.method, s.path, s.status, resp.Code, resp.Body.String())
		}
	}
}

func TestRegisterRoutesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(&auth.MockVerifier{User: auth.TestUser()})

	for _, path := range []string{"/profile", "/prescription"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", path, resp.Code)
		}
	}
}

func TestAPIPrefix(t *testing.T) {
	_, api := newTestRouter(&auth.MockVerifier{User: auth.TestUser()})
	if got := APIPrefix(api); got != "/v1" {
		t.Fatalf("expected /v1, got %q", got)
	}
}

type gate struct {
	DayNumber                int    `json:"dayNumber"`
	CycleKey                 string `json:"cycleKey"`
	RequiresCheckinToProceed bool   `json:"requiresCheckinToProceed"`
	CheckinMilestoneDay      int    `json:"checkinMilestoneDay"`
	CheckinDone              bool   `json:"checkinDone"`
}

func TestCheckinClearsPrescriptionGate(t *testing.T) {
	user := auth.TestUser()
	user.Premium = true
	router, _ := newTestRouter(&auth.MockVerifier{User: user})

	send := func(method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Authorization", "Bearer valid-token")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}
	readGate := func() gate {
		t.Helper()
		resp := send(http.MethodGet, "/prescription?date=2024-01-08", "")
		if resp.Code != http.StatusOK {
			t.Fatalf("prescription: expected 200, got %d: %s", resp.Code, resp.Body.String())
		}
		var g gate
		if err := json.Unmarshal(resp.Body.Bytes(), &g); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return g
	}

	if resp := send(http.MethodPost, "/profile", ""); resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.Code)
	}
	if resp := send(http.MethodPost, "/profile/subscription", `{"joinDate":"2024-01-01"}`); resp.Code != http.StatusOK {
		t.Fatalf("subscribe: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	before := readGate()
	if before.DayNumber != 8 || before.CycleKey != "2024-01-01" {
		t.Fatalf("expected day 8 of cycle 2024-01-01, got %+v", before)
	}
	if !before.RequiresCheckinToProceed || before.CheckinMilestoneDay != 7 || before.CheckinDone {
		t.Fatalf("expected pending day-7 gate, got %+v", before)
	}

	resp := send(http.MethodPut, "/profile/checkins/"+before.CycleKey+"/7", `{"done":true}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("check-in: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	if after := readGate(); !after.CheckinDone {
		t.Fatalf("expected gate cleared after check-in, got %+v", after)
	}
}
