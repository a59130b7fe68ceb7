package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lostfound/internal/platform/config"
	phttp "lostfound/internal/platform/net/http"
	"lostfound/internal/platform/net/http/bind"
)

type echoReq struct {
	Name string `json:"name" validate:"required"`
}

func echo(status int) phttp.Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		in, err := bind.ParseJSON[echoReq](r)
		if err != nil {
			return phttp.Error(err)
		}
		return phttp.Response{Status: status, Body: in}
	})
}

func TestRouterRoutesAndParams(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()

	r.Route("/api/v1", func(v1 phttp.Router) {
		v1.Get("/things/{id}", phttp.Handle(func(req *http.Request) phttp.Response {
			return phttp.OK(map[string]string{"id": phttp.URLParam(req, "id")})
		}))
		v1.Post("/things", echo(http.StatusCreated))
		v1.Post("/things/check", echo(http.StatusOK))
	})

	cases := []struct {
		method, path, body string
		want               int
		contains           string
	}{
		{http.MethodGet, "/api/v1/things/42", "", http.StatusOK, `"id":"42"`},
		{http.MethodPost, "/api/v1/things", `{"name":"a"}`, http.StatusCreated, `"name":"a"`},
		{http.MethodPost, "/api/v1/things/check", `{"name":"a"}`, http.StatusOK, `"name":"a"`},
		{http.MethodPost, "/api/v1/things", `{}`, http.StatusBadRequest, `name is a required field`},
		{http.MethodGet, "/api/v1/nope", "", http.StatusNotFound, ""},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		if rec.Code != tc.want {
			t.Fatalf("%s %s = %d want %d (%s)", tc.method, tc.path, rec.Code, tc.want, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), tc.contains) {
			t.Fatalf("%s %s body %q missing %q", tc.method, tc.path, rec.Body.String(), tc.contains)
		}
	}
}

func TestMountProfilerToggle(t *testing.T) {
	srv := phttp.NewServer(config.New())
	r := srv.Router()
	phttp.MountProfiler(r, "/debug", false)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rec.Code)
	}

	srv = phttp.NewServer(config.New())
	r = srv.Router()
	phttp.MountProfiler(r, "/debug", true)
	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("enabled profiler = %d", rec.Code)
	}
}

func TestServerRunStopsOnCancel(t *testing.T) {
	t.Setenv("API_PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
