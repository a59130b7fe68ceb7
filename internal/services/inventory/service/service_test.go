package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"lostfound/internal/modkit/repokit"
	perr "lostfound/internal/platform/errors"
	"lostfound/internal/platform/store"
	"lostfound/internal/services/inventory/domain"
	"lostfound/internal/services/inventory/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRepo struct {
	items    map[uuid.UUID]domain.FoundItem
	requests []domain.LostRequest

	candCalls   int
	gotPatterns []string
	gotCategory *int64
	gotLimit    int
	err         error
	dupes       int
	inserts     int
}

// collide reports a primary key violation while dupes remain
func (f *fakeRepo) collide() error {
	f.inserts++
	if f.dupes == 0 {
		return nil
	}
	f.dupes--
	return &pgconn.PgError{Code: "23505", ConstraintName: "found_items_pkey"}
}

func (f *fakeRepo) InsertFoundItem(_ context.Context, it domain.FoundItem) (domain.FoundItem, error) {
	if f.err != nil {
		return domain.FoundItem{}, f.err
	}
	if err := f.collide(); err != nil {
		return domain.FoundItem{}, err
	}
	f.items[it.ID] = it
	return it, nil
}

func (f *fakeRepo) FoundItem(_ context.Context, id uuid.UUID) (domain.FoundItem, error) {
	it, ok := f.items[id]
	if !ok {
		return domain.FoundItem{}, perr.ErrNotFound
	}
	return it, nil
}

func (f *fakeRepo) InsertLostRequest(_ context.Context, lr domain.LostRequest) (domain.LostRequest, error) {
	if err := f.collide(); err != nil {
		return domain.LostRequest{}, err
	}
	f.requests = append(f.requests, lr)
	return lr, nil
}

func (f *fakeRepo) LostRequest(_ context.Context, id uuid.UUID) (domain.LostRequest, error) {
	for _, lr := range f.requests {
		if lr.ID == id {
			return lr, nil
		}
	}
	return domain.LostRequest{}, perr.ErrNotFound
}

func (f *fakeRepo) ActiveRequests(context.Context) ([]domain.LostRequest, error) {
	return f.requests, f.err
}

func (f *fakeRepo) Candidates(_ context.Context, patterns []string, cat *int64, limit int) ([]domain.FoundItem, error) {
	f.candCalls++
	f.gotPatterns, f.gotCategory, f.gotLimit = patterns, cat, limit
	return []domain.FoundItem{}, f.err
}

func (f *fakeRepo) SearchAvailable(_ context.Context, pattern string, cat *int64, limit int) ([]domain.FoundItem, error) {
	f.gotPatterns, f.gotCategory, f.gotLimit = []string{pattern}, cat, limit
	return []domain.FoundItem{}, f.err
}

// fakeTx runs fn directly on itself; the fake binder ignores the queryer
type fakeTx struct{ store.RowQuerier }

func (f fakeTx) Tx(_ context.Context, fn func(store.RowQuerier) error) error { return fn(f) }

func newSvc() (*Svc, *fakeRepo) {
	fr := &fakeRepo{items: map[uuid.UUID]domain.FoundItem{}}
	return New(fakeTx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr })), fr
}

func ref(v int64) *int64 { return &v }

func TestCreateFoundItem(t *testing.T) {
	t.Parallel()
	s, fr := newSvc()

	it, err := s.CreateFoundItem(context.Background(), domain.NewFoundItem{Name: "  Blue Nike Backpack ", Description: "gym"})
	if err != nil {
		t.Fatalf("CreateFoundItem: %v", err)
	}
	if it.Name != "Blue Nike Backpack" || it.Status != domain.ItemAvailable || it.ID == uuid.Nil {
		t.Fatalf("item = %+v", it)
	}
	if _, ok := fr.items[it.ID]; !ok {
		t.Fatalf("item not stored")
	}

	_, err = s.CreateFoundItem(context.Background(), domain.NewFoundItem{Name: "   "})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("blank name err = %v", err)
	}

	fr.err = errors.New("disk full")
	if _, err := s.CreateFoundItem(context.Background(), domain.NewFoundItem{Name: "x"}); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("db failure err = %v", err)
	}
}

func TestCreateRetriesIDCollision(t *testing.T) {
	t.Parallel()

	t.Run("one collision gets a fresh id", func(t *testing.T) {
		s, fr := newSvc()
		var issued []uuid.UUID
		s.newID = func() uuid.UUID {
			id := uuid.New()
			issued = append(issued, id)
			return id
		}
		fr.dupes = 1

		it, err := s.CreateFoundItem(context.Background(), domain.NewFoundItem{Name: "umbrella"})
		if err != nil {
			t.Fatalf("CreateFoundItem: %v", err)
		}
		if fr.inserts != 2 || len(issued) != 2 || it.ID != issued[1] || issued[0] == issued[1] {
			t.Fatalf("inserts = %d issued = %v id = %s", fr.inserts, issued, it.ID)
		}
	})

	t.Run("repeated collisions surface as duplicate key", func(t *testing.T) {
		s, fr := newSvc()
		fr.dupes = 5

		_, err := s.CreateLostRequest(context.Background(), domain.NewLostRequest{OwnerAddress: "a@b.c", Name: "keys"})
		if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
			t.Fatalf("err = %v", err)
		}
		if fr.inserts != idAttempts || len(fr.requests) != 0 {
			t.Fatalf("inserts = %d stored = %d", fr.inserts, len(fr.requests))
		}
	})
}

func TestGetFoundItemNotFound(t *testing.T) {
	t.Parallel()
	s, _ := newSvc()

	_, err := s.GetFoundItem(context.Background(), uuid.New())
	if perr.HTTPStatus(err) != 404 {
		t.Fatalf("status = %d err = %v", perr.HTTPStatus(err), err)
	}
}

func TestCreateLostRequestIsActive(t *testing.T) {
	t.Parallel()
	s, _ := newSvc()

	lr, err := s.CreateLostRequest(context.Background(), domain.NewLostRequest{
		OwnerID: "u1", OwnerAddress: "sam@example.edu", Name: "Navy blue backpack",
	})
	if err != nil {
		t.Fatalf("CreateLostRequest: %v", err)
	}
	if lr.Status != domain.RequestActive || lr.MatchedItemID != nil {
		t.Fatalf("request = %+v", lr)
	}
	got, err := s.GetLostRequest(context.Background(), lr.ID)
	if err != nil || got.ID != lr.ID {
		t.Fatalf("GetLostRequest = %+v %v", got, err)
	}

	_, err = s.CreateLostRequest(context.Background(), domain.NewLostRequest{Name: "x"})
	if e, ok := perr.As(err); !ok || e.Field() != "owner_address" {
		t.Fatalf("missing address err = %v", err)
	}
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	t.Run("nothing to filter on skips storage", func(t *testing.T) {
		s, fr := newSvc()
		xs, err := s.Candidates(context.Background(), domain.CandidateQuery{})
		if err != nil || xs == nil || len(xs) != 0 {
			t.Fatalf("Candidates = %v %v", xs, err)
		}
		if fr.candCalls != 0 {
			t.Fatalf("repo called %d times", fr.candCalls)
		}
	})

	t.Run("tokens are escaped and limit defaults to five", func(t *testing.T) {
		s, fr := newSvc()
		_, err := s.Candidates(context.Background(), domain.CandidateQuery{Tokens: []string{"airpods", "100%", "a_b"}})
		if err != nil {
			t.Fatalf("Candidates: %v", err)
		}
		want := []string{"%airpods%", `%100\%%`, `%a\_b%`}
		if !slices.Equal(fr.gotPatterns, want) || fr.gotLimit != 5 {
			t.Fatalf("patterns = %v limit = %d", fr.gotPatterns, fr.gotLimit)
		}
	})

	t.Run("category alone is enough", func(t *testing.T) {
		s, fr := newSvc()
		if _, err := s.Candidates(context.Background(), domain.CandidateQuery{CategoryID: ref(3)}); err != nil {
			t.Fatalf("Candidates: %v", err)
		}
		if fr.candCalls != 1 || fr.gotCategory == nil || *fr.gotCategory != 3 {
			t.Fatalf("category not passed: %v", fr.gotCategory)
		}
	})
}

func TestSearchAvailable(t *testing.T) {
	t.Parallel()
	s, fr := newSvc()

	if _, err := s.SearchAvailable(context.Background(), domain.ItemSearch{Token: "navy"}); err != nil {
		t.Fatalf("SearchAvailable: %v", err)
	}
	if fr.gotPatterns[0] != "%navy%" || fr.gotLimit != 10 {
		t.Fatalf("pattern = %q limit = %d", fr.gotPatterns[0], fr.gotLimit)
	}

	if _, err := s.SearchAvailable(context.Background(), domain.ItemSearch{Limit: 1000}); err != nil {
		t.Fatalf("SearchAvailable: %v", err)
	}
	if fr.gotPatterns[0] != "" || fr.gotLimit != maxLimit {
		t.Fatalf("pattern = %q limit = %d", fr.gotPatterns[0], fr.gotLimit)
	}
}
