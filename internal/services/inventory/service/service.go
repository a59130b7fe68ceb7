// Package service contains the inventory workflows
package service

import (
	"context"
	"strings"
	"time"

	"lostfound/internal/modkit/repokit"
	perr "lostfound/internal/platform/errors"
	"lostfound/internal/services/inventory/domain"
	"lostfound/internal/services/inventory/repo"

	"github.com/google/uuid"
)

// Default and maximum page sizes for inventory searches
const (
	DefaultCandidateLimit = 5
	DefaultSearchLimit    = 10
	maxLimit              = 100
)

// Service defines the service contract for the inventory
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	now    func() time.Time
	newID  func() uuid.UUID
}

// idAttempts bounds how often an insert is retried after a primary key collision
const idAttempts = 2

// withFreshID runs insert again with a new id when the previous one collided
func withFreshID[T any](insert func() (T, error)) (T, error) {
	var (
		out T
		err error
	)
	for range idAttempts {
		out, err = insert()
		if !perr.IsDuplicateKey(err) {
			return out, err
		}
	}
	return out, err
}

// New creates a new inventory service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("inventory.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("inventory.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now, newID: uuid.New}
}

// CreateFoundItem stores a new available item. The row is committed before this returns
func (s *Svc) CreateFoundItem(ctx context.Context, in domain.NewFoundItem) (domain.FoundItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.FoundItem{}, perr.WithField(perr.InvalidArgf("name is required"), "name")
	}
	it := domain.FoundItem{
		Name:          name,
		Description:   strings.TrimSpace(in.Description),
		CategoryID:    in.CategoryID,
		LocationID:    in.LocationID,
		LocationLabel: strings.TrimSpace(in.LocationLabel),
		ImageRef:      strings.TrimSpace(in.ImageRef),
		Status:        domain.ItemAvailable,
	}
	if in.FoundAt != nil {
		it.FoundAt = in.FoundAt.UTC()
	}

	out, err := withFreshID(func() (domain.FoundItem, error) {
		it.ID = s.newID()
		var out domain.FoundItem
		err := repokit.WithTx(ctx, s.db, func(ctx context.Context, q repokit.Queryer) error {
			var err error
			out, err = repokit.MustBind(s.binder, q).InsertFoundItem(ctx, it)
			return err
		})
		return out, err
	})
	if err != nil {
		return domain.FoundItem{}, perr.FromPG(err, "insert found item")
	}
	return out, nil
}

// GetFoundItem loads one item by id
func (s *Svc) GetFoundItem(ctx context.Context, id uuid.UUID) (domain.FoundItem, error) {
	it, err := s.Repo.FoundItem(ctx, id)
	if err != nil {
		return domain.FoundItem{}, perr.FromPGf(err, "found item %s", id)
	}
	return it, nil
}

// CreateLostRequest stores a new active request
func (s *Svc) CreateLostRequest(ctx context.Context, in domain.NewLostRequest) (domain.LostRequest, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.LostRequest{}, perr.WithField(perr.InvalidArgf("name is required"), "name")
	}
	addr := strings.TrimSpace(in.OwnerAddress)
	if addr == "" {
		return domain.LostRequest{}, perr.WithField(perr.InvalidArgf("owner address is required"), "owner_address")
	}
	lr := domain.LostRequest{
		OwnerID:      strings.TrimSpace(in.OwnerID),
		OwnerAddress: addr,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		CategoryID:   in.CategoryID,
		LocationID:   in.LocationID,
		Status:       domain.RequestActive,
	}

	out, err := withFreshID(func() (domain.LostRequest, error) {
		lr.ID = s.newID()
		var out domain.LostRequest
		err := repokit.WithTx(ctx, s.db, func(ctx context.Context, q repokit.Queryer) error {
			var err error
			out, err = repokit.MustBind(s.binder, q).InsertLostRequest(ctx, lr)
			return err
		})
		return out, err
	})
	if err != nil {
		return domain.LostRequest{}, perr.FromPG(err, "insert lost request")
	}
	return out, nil
}

// GetLostRequest loads one request by id
func (s *Svc) GetLostRequest(ctx context.Context, id uuid.UUID) (domain.LostRequest, error) {
	lr, err := s.Repo.LostRequest(ctx, id)
	if err != nil {
		return domain.LostRequest{}, perr.FromPGf(err, "lost request %s", id)
	}
	return lr, nil
}

// ActiveRequests lists every request in the active state
func (s *Svc) ActiveRequests(ctx context.Context) ([]domain.LostRequest, error) {
	xs, err := s.Repo.ActiveRequests(ctx)
	if err != nil {
		return nil, perr.FromPG(err, "list active requests")
	}
	return xs, nil
}

// Candidates runs the token or category pre-filter over available items
func (s *Svc) Candidates(ctx context.Context, q domain.CandidateQuery) ([]domain.FoundItem, error) {
	patterns := make([]string, 0, len(q.Tokens))
	for _, t := range q.Tokens {
		if p := repo.ContainsPattern(t); p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 && q.CategoryID == nil {
		return []domain.FoundItem{}, nil
	}
	xs, err := s.Repo.Candidates(ctx, patterns, q.CategoryID, clampLimit(q.Limit, DefaultCandidateLimit))
	if err != nil {
		return nil, perr.FromPG(err, "candidate search")
	}
	return xs, nil
}

// SearchAvailable lists available items narrowed by category and a contained token
func (s *Svc) SearchAvailable(ctx context.Context, q domain.ItemSearch) ([]domain.FoundItem, error) {
	xs, err := s.Repo.SearchAvailable(ctx, repo.ContainsPattern(q.Token), q.CategoryID, clampLimit(q.Limit, DefaultSearchLimit))
	if err != nil {
		return nil, perr.FromPG(err, "item search")
	}
	return xs, nil
}

func clampLimit(n, def int) int {
	if n <= 0 {
		return def
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
