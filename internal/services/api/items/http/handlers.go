// Package http provides the found item endpoints
package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"lostfound/internal/modkit/httpkit"
	"lostfound/internal/platform/logger"
	invdom "lostfound/internal/services/inventory/domain"
	matchdom "lostfound/internal/services/matching/domain"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a matching run when Deps.Timeout is unset
const DefaultTimeout = 10 * time.Second

// Deps are the handler dependencies
type Deps struct {
	Inventory invdom.WriterPort
	Matcher   matchdom.ServicePort
	Timeout   time.Duration
}

// Created is the response to reporting a found item
type Created struct {
	Item     invdom.FoundItem `json:"item"`
	Matching Summary          `json:"matching"`
}

// Summary reports a matching run without exposing owner contact details
type Summary struct {
	Scanned   int           `json:"scanned"`
	Matched   int           `json:"matched"`
	Notified  int           `json:"notified"`
	Failed    int           `json:"failed"`
	Threshold int           `json:"threshold"`
	Results   []MatchResult `json:"results"`
	Error     string        `json:"error,omitempty"`
}

// MatchResult is one request that met the threshold
type MatchResult struct {
	RequestID uuid.UUID `json:"request_id"`
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
	Notified  bool      `json:"notified"`
}

// Register mounts the found item endpoints
func Register(r httpkit.Router, d Deps) {
	if d.Timeout <= 0 {
		d.Timeout = DefaultTimeout
	}
	h := &handlers{d: d}

	httpkit.CreateJSON[invdom.NewFoundItem](r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ d Deps }

// swagger:route POST /found-items FoundItems foundItemsCreate
// @Summary Report a found item
// @Description Stores the item then scores it against every active lost request and notifies owners at or above the threshold.
// @Description The item is kept even when matching fails or times out.
// @Tags FoundItems
// @Accept json
// @Produce json
// @Param payload body invdom.NewFoundItem true "Item"
// @Success 201 {object} Created "created"
// @Router /found-items [post]
func (h *handlers) create(r *stdhttp.Request, in invdom.NewFoundItem) (any, error) {
	item, err := h.d.Inventory.CreateFoundItem(r.Context(), in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.d.Timeout)
	defer cancel()

	b := h.d.Matcher.OnFoundItemCreated(ctx, item)
	if b.Err != nil {
		logger.C(r.Context()).Warn().Err(b.Err).Str("item_id", item.ID.String()).Msg("matching did not complete")
	}
	return Created{Item: item, Matching: Summarize(b)}, nil
}

// swagger:route GET /found-items/{id} FoundItems foundItemsGet
// @Summary Get a found item
// @Tags FoundItems
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} invdom.FoundItem "ok"
// @Router /found-items/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.d.Inventory.GetFoundItem(r.Context(), id)
}

// Summarize flattens a batch for the response
func Summarize(b matchdom.Batch) Summary {
	delivered := make(map[uuid.UUID]bool, len(b.Outcomes))
	failed := 0
	for _, o := range b.Outcomes {
		delivered[o.RequestID] = o.Delivered()
		if !o.Delivered() {
			failed++
		}
	}

	s := Summary{
		Scanned:   b.Scanned,
		Matched:   len(b.Results),
		Notified:  b.Notified(),
		Failed:    failed,
		Threshold: b.Threshold,
		Results:   make([]MatchResult, 0, len(b.Results)),
	}
	for _, m := range b.Results {
		s.Results = append(s.Results, MatchResult{
			RequestID: m.RequestID,
			Score:     m.Score,
			Reasons:   m.Reasons,
			Notified:  delivered[m.RequestID],
		})
	}
	if b.Err != nil {
		s.Error = b.Err.Error()
	}
	return s
}
