package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lostfound/internal/core/features"
	"lostfound/internal/core/similarity"
	perr "lostfound/internal/platform/errors"
	phttp "lostfound/internal/platform/net/http"
	invdom "lostfound/internal/services/inventory/domain"
	matchdom "lostfound/internal/services/matching/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type fakeInventory struct {
	invdom.ServicePort // only the methods below are called
	reqs    map[uuid.UUID]invdom.LostRequest
	created []invdom.NewLostRequest
}

func (f *fakeInventory) CreateLostRequest(_ context.Context, in invdom.NewLostRequest) (invdom.LostRequest, error) {
	f.created = append(f.created, in)
	return invdom.LostRequest{ID: uuid.New(), OwnerAddress: in.OwnerAddress, Name: in.Name, Status: invdom.RequestActive, CreatedAt: time.Now()}, nil
}

func (f *fakeInventory) GetLostRequest(_ context.Context, id uuid.UUID) (invdom.LostRequest, error) {
	lr, ok := f.reqs[id]
	if !ok {
		return invdom.LostRequest{}, perr.NotFoundf("lost request %s", id)
	}
	return lr, nil
}

type fakeMatcher struct {
	checked  []matchdom.CheckInput
	searched []uuid.UUID
	items    []invdom.FoundItem
	err      error
}

func (f *fakeMatcher) CheckMatches(_ context.Context, in matchdom.CheckInput) ([]invdom.FoundItem, error) {
	f.checked = append(f.checked, in)
	return f.items, f.err
}

func (f *fakeMatcher) OnFoundItemCreated(context.Context, invdom.FoundItem) matchdom.Batch {
	return matchdom.Batch{}
}

func (f *fakeMatcher) SearchForRequest(_ context.Context, id uuid.UUID) ([]invdom.FoundItem, error) {
	f.searched = append(f.searched, id)
	return f.items, f.err
}

func (f *fakeMatcher) Extract(string) features.Summary { return features.Summary{} }

func (f *fakeMatcher) TextSimilarity(string, string) float64 { return 0 }

func (f *fakeMatcher) Score(similarity.Record, similarity.Record) similarity.Result {
	return similarity.Result{}
}

type envelope struct {
	Code  perr.ErrorCode  `json:"code"`
	Field string          `json:"field"`
	Data  json.RawMessage `json:"data"`
}

func do(t *testing.T, d Deps, method, path, body string) (int, envelope) {
	t.Helper()
	mux := chi.NewRouter()
	mux.Route("/lost-requests", func(r chi.Router) {
		Register(phttp.AdaptChi(r.(*chi.Mux)), d)
	})

	req := httptest.NewRequest(method, path, nil)
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, env
}

func TestCheck(t *testing.T) {
	t.Parallel()
	pro := invdom.FoundItem{ID: uuid.New(), Name: "White AirPods Pro", Status: invdom.ItemAvailable}
	m := &fakeMatcher{items: []invdom.FoundItem{pro}}
	d := Deps{Inventory: &fakeInventory{}, Matcher: m}

	code, env := do(t, d, stdhttp.MethodPost, "/lost-requests/check", `{"name":"airpods","description":"lost my white airpods"}`)
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var got []invdom.FoundItem
	if err := json.Unmarshal(env.Data, &got); err != nil || len(got) != 1 || got[0].ID != pro.ID {
		t.Fatalf("data = %s", env.Data)
	}
	if len(m.checked) != 1 || m.checked[0].Name != "airpods" || m.checked[0].CategoryID != nil {
		t.Fatalf("checked = %+v", m.checked)
	}

	m.err = perr.DBf("pool closed")
	if code, env := do(t, d, stdhttp.MethodPost, "/lost-requests/check", `{"name":"airpods"}`); code != stdhttp.StatusInternalServerError || env.Code != perr.ErrorCodeDB {
		t.Fatalf("inventory failure = %d %+v", code, env)
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()
	inv := &fakeInventory{}
	d := Deps{Inventory: inv, Matcher: &fakeMatcher{}}

	code, env := do(t, d, stdhttp.MethodPost, "/lost-requests", `{"owner_id":"u1","owner_address":"sam@example.edu","name":"Navy blue backpack"}`)
	if code != stdhttp.StatusCreated {
		t.Fatalf("status = %d %s", code, env.Data)
	}
	if len(inv.created) != 1 || inv.created[0].OwnerAddress != "sam@example.edu" {
		t.Fatalf("created = %+v", inv.created)
	}

	cases := []struct {
		name, body, field string
	}{
		{"blank name", `{"owner_id":"u1","owner_address":"sam@example.edu","name":"  "}`, "name"},
		{"bad address", `{"owner_id":"u1","owner_address":"sam","name":"Keys"}`, "owner_address"},
	}
	for _, tc := range cases {
		code, env := do(t, d, stdhttp.MethodPost, "/lost-requests", tc.body)
		if code != stdhttp.StatusBadRequest || env.Field != tc.field {
			t.Fatalf("%s: %d %+v", tc.name, code, env)
		}
	}
	if len(inv.created) != 1 {
		t.Fatalf("invalid input reached the inventory")
	}
}

func TestGetAndCandidates(t *testing.T) {
	t.Parallel()
	lr := invdom.LostRequest{ID: uuid.New(), Name: "Navy blue backpack", Status: invdom.RequestActive}
	m := &fakeMatcher{items: []invdom.FoundItem{}}
	d := Deps{Inventory: &fakeInventory{reqs: map[uuid.UUID]invdom.LostRequest{lr.ID: lr}}, Matcher: m}

	if code, _ := do(t, d, stdhttp.MethodGet, "/lost-requests/"+lr.ID.String(), ""); code != stdhttp.StatusOK {
		t.Fatalf("get status = %d", code)
	}
	if code, env := do(t, d, stdhttp.MethodGet, "/lost-requests/"+uuid.NewString(), ""); code != stdhttp.StatusNotFound || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("missing = %d %+v", code, env)
	}
	if code, env := do(t, d, stdhttp.MethodGet, "/lost-requests/nope", ""); code != stdhttp.StatusUnprocessableEntity || env.Field != "id" {
		t.Fatalf("bad id = %d %+v", code, env)
	}

	code, env := do(t, d, stdhttp.MethodGet, "/lost-requests/"+lr.ID.String()+"/candidates", "")
	if code != stdhttp.StatusOK || string(env.Data) != "[]" {
		t.Fatalf("candidates = %d %s", code, env.Data)
	}
	if len(m.searched) != 1 || m.searched[0] != lr.ID {
		t.Fatalf("searched = %v", m.searched)
	}
}
