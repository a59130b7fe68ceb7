// Package http provides the lost request endpoints
package http

import (
	stdhttp "net/http"

	"lostfound/internal/modkit/httpkit"
	invdom "lostfound/internal/services/inventory/domain"
	matchdom "lostfound/internal/services/matching/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Inventory invdom.ServicePort
	Matcher   matchdom.ServicePort
}

// Register mounts the lost request endpoints
func Register(r httpkit.Router, d Deps) {
	h := &handlers{d: d}

	// draft check before the request is filed
	httpkit.PostJSON[matchdom.CheckInput](r, "/check", h.check)

	httpkit.CreateJSON[invdom.NewLostRequest](r, "/", h.create)
	httpkit.Get(r, "/{id}", h.get)

	// request initiated search
	httpkit.Get(r, "/{id}/candidates", h.candidates)
}

type handlers struct{ d Deps }

// swagger:route POST /lost-requests/check LostRequests lostRequestsCheck
// @Summary Possible matches for a draft lost request
// @Description Up to five available found items sharing a word of three or more letters with the draft, or its category. Newest first.
// @Tags LostRequests
// @Accept json
// @Produce json
// @Param payload body matchdom.CheckInput true "Draft"
// @Success 200 {array} invdom.FoundItem "ok"
// @Router /lost-requests/check [post]
func (h *handlers) check(r *stdhttp.Request, in matchdom.CheckInput) (any, error) {
	return h.d.Matcher.CheckMatches(r.Context(), in)
}

// swagger:route POST /lost-requests LostRequests lostRequestsCreate
// @Summary File a lost request
// @Tags LostRequests
// @Accept json
// @Produce json
// @Param payload body invdom.NewLostRequest true "Request"
// @Success 201 {object} invdom.LostRequest "created"
// @Router /lost-requests [post]
func (h *handlers) create(r *stdhttp.Request, in invdom.NewLostRequest) (any, error) {
	return h.d.Inventory.CreateLostRequest(r.Context(), in)
}

// swagger:route GET /lost-requests/{id} LostRequests lostRequestsGet
// @Summary Get a lost request
// @Tags LostRequests
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} invdom.LostRequest "ok"
// @Router /lost-requests/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.d.Inventory.GetLostRequest(r.Context(), id)
}

// swagger:route GET /lost-requests/{id}/candidates LostRequests lostRequestsCandidates
// @Summary Available found items for a stored request
// @Description Same category when set, and the first word of the request name in the item name or description. Up to ten, newest first.
// @Tags LostRequests
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {array} invdom.FoundItem "ok"
// @Router /lost-requests/{id}/candidates [get]
func (h *handlers) candidates(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.d.Matcher.SearchForRequest(r.Context(), id)
}
