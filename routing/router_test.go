package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-container/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Get(t *testing.T) {
	r := routing.New()
	r.Get("/hello", okHandler)

	rr := do(t, r, http.MethodGet, "/hello")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /hello: got %d want 200", rr.Code)
	}
}

func TestRouter_Post(t *testing.T) {
	r := routing.New()
	r.Post("/vehicles", okHandler)

	rr := do(t, r, http.MethodPost, "/vehicles")
	if rr.Code != http.StatusOK {
		t.Errorf("POST /vehicles: got %d want 200", rr.Code)
	}
}

func TestRouter_MethodMismatch(t *testing.T) {
	r := routing.New()
	r.Get("/hello", okHandler)

	rr := do(t, r, http.MethodPost, "/hello")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST on GET route: got %d want 405", rr.Code)
	}
}

// ── Prefix & Group ────────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/fleet", func(fleet *routing.Router) {
		fleet.Get("/car", okHandler)
	})

	rr := do(t, r, http.MethodGet, "/fleet/car")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /fleet/car: got %d want 200", rr.Code)
	}
}

func TestRouter_GroupMiddlewareIsScoped(t *testing.T) {
	r := routing.New()
	header := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Scoped", "yes")
			next.ServeHTTP(w, req)
		})
	}

	r.Group(func(g *routing.Router) {
		g.Middleware(header)
		g.Get("/inside", okHandler)
	})
	r.Get("/outside", okHandler)

	if rr := do(t, r, http.MethodGet, "/inside"); rr.Header().Get("X-Scoped") != "yes" {
		t.Error("group middleware should run for routes inside the group")
	}
	if rr := do(t, r, http.MethodGet, "/outside"); rr.Header().Get("X-Scoped") != "" {
		t.Error("group middleware must not leak to routes outside the group")
	}
}

// ── Params ────────────────────────────────────────────────────────────────────

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/vehicles/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(routing.Param(req, "id")))
	})

	rr := do(t, r, http.MethodGet, "/vehicles/42")
	if rr.Body.String() != "42" {
		t.Errorf("Param: got %q want %q", rr.Body.String(), "42")
	}
}
