package httpkit

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "lostfound/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

func run(t *testing.T, h Handler, method, body string) (int, Envelope) {
	t.Helper()
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, "/x", rd))

	var env Envelope
	if rec.Code != http.StatusNoContent {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
		}
	}
	return rec.Code, env
}

type createIn struct {
	Name string `json:"name" validate:"required"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	echo := JSON(func(_ *http.Request, in createIn) (any, error) {
		if in.Name == "fail" {
			return nil, perr.NotFoundf("no item %s", in.Name)
		}
		if in.Name == "created" {
			return Created(in.Name), nil
		}
		return map[string]string{"name": in.Name}, nil
	})

	cases := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"plain value wraps as 200", `{"name":"wallet"}`, http.StatusOK},
		{"response passes through", `{"name":"created"}`, http.StatusCreated},
		{"handler error maps status", `{"name":"fail"}`, http.StatusNotFound},
		{"malformed json", `{`, http.StatusBadRequest},
		{"unknown field", `{"name":"x","extra":1}`, http.StatusBadRequest},
		{"validation", `{"name":""}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := run(t, echo, http.MethodPost, tc.body)
			if code != tc.wantCode || env.StatusCode != tc.wantCode {
				t.Fatalf("code = %d env = %+v want %d", code, env, tc.wantCode)
			}
		})
	}
}

func TestCall(t *testing.T) {
	t.Parallel()

	code, env := run(t, Call(func(*http.Request) (any, error) { return "ok", nil }), http.MethodGet, "")
	if code != http.StatusOK || env.Data != "ok" {
		t.Fatalf("code = %d env = %+v", code, env)
	}

	code, _ = run(t, Call(func(*http.Request) (any, error) { return NoContent(), nil }), http.MethodGet, "")
	if code != http.StatusNoContent {
		t.Fatalf("code = %d", code)
	}

	code, env = run(t, Call(func(*http.Request) (any, error) { return nil, errors.New("nah") }), http.MethodGet, "")
	if code != http.StatusInternalServerError || env.Error == "" {
		t.Fatalf("code = %d env = %+v", code, env)
	}
}

func TestUUIDParam(t *testing.T) {
	t.Parallel()

	var got error
	mux := chi.NewRouter()
	mux.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, got = UUIDParam(r, "id")
		w.WriteHeader(http.StatusNoContent)
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/3f1c7a52-9d0e-4c8b-a1f4-0e5b6d7c8a91", http.NoBody))
	if got != nil {
		t.Fatalf("valid uuid: %v", got)
	}

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/42", http.NoBody))
	e, ok := perr.As(got)
	if !ok || e.Code() != perr.ErrorCodeInvalidArgument || e.Field() != "id" {
		t.Fatalf("bad uuid err = %v", got)
	}
}
