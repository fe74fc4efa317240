package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"career-backend/internal/shared/config"
)

func newMemoryRouter() http.Handler {
	return NewRouter(config.Config{
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newMemoryRouter()

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `"ok":true`) {
		t.Fatalf("body = %s", body)
	}
	if !strings.Contains(body, `"storage":"memory"`) {
		t.Fatalf("body = %s, want memory storage mode", body)
	}
}

func TestRecommendWiredWithoutSummarizer(t *testing.T) {
	router := newMemoryRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", strings.NewReader(`{"skills":["python"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	// No summarizer configured in this setup, so the canned fallback applies.
	if !strings.Contains(resp.Body.String(), "We couldn't generate a polished summary automatically.") {
		t.Fatalf("body = %s, want fallback summary", resp.Body.String())
	}
}

func TestSignupRouteRegisteredAtRoot(t *testing.T) {
	router := newMemoryRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"name":"Asha","email":"a@b.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ":8080"},
		{"9090", ":9090"},
		{":7070", ":7070"},
	}
	for _, tc := range cases {
		if got := Addr(tc.in); got != tc.want {
			t.Fatalf("Addr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
