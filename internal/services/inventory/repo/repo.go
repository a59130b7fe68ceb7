// Package repo provides postgres access for found items and lost requests
package repo

import (
	"context"
	"strings"
	"time"

	"lostfound/internal/modkit/repokit"
	"lostfound/internal/platform/store"
	str "lostfound/internal/platform/strings"
	"lostfound/internal/services/inventory/domain"

	"github.com/google/uuid"
)

// Repo defines the repository contract for the inventory
type Repo interface {
	InsertFoundItem(ctx context.Context, it domain.FoundItem) (domain.FoundItem, error)
	FoundItem(ctx context.Context, id uuid.UUID) (domain.FoundItem, error)
	InsertLostRequest(ctx context.Context, lr domain.LostRequest) (domain.LostRequest, error)
	LostRequest(ctx context.Context, id uuid.UUID) (domain.LostRequest, error)
	ActiveRequests(ctx context.Context) ([]domain.LostRequest, error)
	Candidates(ctx context.Context, patterns []string, categoryID *int64, limit int) ([]domain.FoundItem, error)
	SearchAvailable(ctx context.Context, pattern string, categoryID *int64, limit int) ([]domain.FoundItem, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const itemCols = `id, name, description, category_id, location_id, location_label, image_ref, status, found_at`

const requestCols = `id, owner_id, owner_address, name, description, category_id, location_id, status, matched_item_id, created_at`

func scanItem(row store.Row) (domain.FoundItem, error) {
	var it domain.FoundItem
	var status string
	var label, image *string
	err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.CategoryID,
		&it.LocationID,
		&label,
		&image,
		&status,
		&it.FoundAt,
	)
	it.LocationLabel = str.Deref(label)
	it.ImageRef = str.Deref(image)
	it.Status = domain.ItemStatus(status)
	return it, err
}

func scanRequest(row store.Row) (domain.LostRequest, error) {
	var lr domain.LostRequest
	var status string
	err := row.Scan(
		&lr.ID,
		&lr.OwnerID,
		&lr.OwnerAddress,
		&lr.Name,
		&lr.Description,
		&lr.CategoryID,
		&lr.LocationID,
		&status,
		&lr.MatchedItemID,
		&lr.CreatedAt,
	)
	lr.Status = domain.RequestStatus(status)
	return lr, err
}

func (r *queries) InsertFoundItem(ctx context.Context, it domain.FoundItem) (domain.FoundItem, error) {
	const sql = `
insert into found_items (id, name, description, category_id, location_id, location_label, image_ref, status, found_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, coalesce($9, now()))
returning ` + itemCols
	var foundAt *time.Time
	if !it.FoundAt.IsZero() {
		foundAt = &it.FoundAt
	}
	return store.One(ctx, r.q, scanItem, sql,
		it.ID, it.Name, it.Description, it.CategoryID, it.LocationID,
		str.SQLNull(it.LocationLabel), str.SQLNull(it.ImageRef), string(it.Status), foundAt,
	)
}

func (r *queries) FoundItem(ctx context.Context, id uuid.UUID) (domain.FoundItem, error) {
	const sql = `select ` + itemCols + ` from found_items where id = $1`
	return store.One(ctx, r.q, scanItem, sql, id)
}

func (r *queries) InsertLostRequest(ctx context.Context, lr domain.LostRequest) (domain.LostRequest, error) {
	const sql = `
insert into lost_requests (id, owner_id, owner_address, name, description, category_id, location_id, status)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning ` + requestCols
	return store.One(ctx, r.q, scanRequest, sql,
		lr.ID, lr.OwnerID, lr.OwnerAddress, lr.Name, lr.Description,
		lr.CategoryID, lr.LocationID, string(lr.Status),
	)
}

func (r *queries) LostRequest(ctx context.Context, id uuid.UUID) (domain.LostRequest, error) {
	const sql = `select ` + requestCols + ` from lost_requests where id = $1`
	return store.One(ctx, r.q, scanRequest, sql, id)
}

// ActiveRequests lists every active request oldest first
func (r *queries) ActiveRequests(ctx context.Context) ([]domain.LostRequest, error) {
	const sql = `select ` + requestCols + `
from lost_requests
where status = 'active'
order by created_at asc, id asc`
	return store.Many(ctx, r.q, scanRequest, sql)
}

// Candidates is the disjunctive pre-filter: any pattern against name or description,
// or an equal category when categoryID is set
func (r *queries) Candidates(ctx context.Context, patterns []string, categoryID *int64, limit int) ([]domain.FoundItem, error) {
	const sql = `select ` + itemCols + `
from found_items
where status = 'available'
and (
  (cardinality($1::text[]) > 0 and (name ilike any($1::text[]) or description ilike any($1::text[])))
  or ($2::bigint is not null and category_id = $2::bigint)
)
order by found_at desc, id
limit $3`
	if patterns == nil {
		patterns = []string{}
	}
	return store.Many(ctx, r.q, scanItem, sql, patterns, categoryID, limit)
}

// SearchAvailable narrows by category when set and by pattern when non empty
func (r *queries) SearchAvailable(ctx context.Context, pattern string, categoryID *int64, limit int) ([]domain.FoundItem, error) {
	const sql = `select ` + itemCols + `
from found_items
where status = 'available'
and ($1::bigint is null or category_id = $1::bigint)
and ($2::text = '' or name ilike $2::text or description ilike $2::text)
order by found_at desc, id
limit $3`
	return store.Many(ctx, r.q, scanItem, sql, categoryID, pattern, limit)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns tok into an ILIKE pattern matching tok literally anywhere in the text.
// An empty token gives an empty pattern
func ContainsPattern(tok string) string {
	if tok == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(tok) + "%"
}
