// Package http exposes the feature extractor and scorer for inspection
package http

import (
	stdhttp "net/http"

	"lostfound/internal/core/similarity"
	"lostfound/internal/modkit/httpkit"
	matchdom "lostfound/internal/services/matching/domain"
)

// Register mounts the matching utility endpoints
func Register(r httpkit.Router, m matchdom.ServicePort) {
	h := &handlers{m: m}

	httpkit.PostJSON[FeaturesInput](r, "/features", h.extract)
	httpkit.PostJSON[SimilarityInput](r, "/similarity", h.compare)
	httpkit.PostJSON[ScoreInput](r, "/score", h.score)
}

type handlers struct{ m matchdom.ServicePort }

// FeaturesInput is free text to run through the extractor
type FeaturesInput struct {
	Text string `json:"text" validate:"max=4000" example:"Black The North Face jacket"`
}

// SimilarityInput is a pair of free texts
type SimilarityInput struct {
	A string `json:"a" validate:"max=4000" example:"Blue Nike Backpack"`
	B string `json:"b" validate:"max=4000" example:"navy blue nike bag"`
}

// SimilarityResponse is the weighted feature similarity in [0,100]
type SimilarityResponse struct {
	Similarity float64 `json:"similarity" example:"62.5"`
}

// Record is the scorer's view of an item or request
type Record struct {
	Name        string `json:"name" validate:"max=200" example:"Blue Nike Backpack"`
	Description string `json:"description" validate:"max=2000" example:"backpack found near gym"`
	CategoryID  *int64 `json:"category_id,omitempty" example:"1"`
	LocationID  *int64 `json:"location_id,omitempty" example:"2"`
}

// ScoreInput pairs a found record with a request record
type ScoreInput struct {
	Found   Record `json:"found"`
	Request Record `json:"request"`
}

func (r Record) toScorer() similarity.Record {
	return similarity.Record{Name: r.Name, Description: r.Description, CategoryID: r.CategoryID, LocationID: r.LocationID}
}

// swagger:route POST /matching/features Matching matchingFeatures
// @Summary Extract colors, brands, item types and keywords from text
// @Tags Matching
// @Accept json
// @Produce json
// @Param payload body FeaturesInput true "Text"
// @Success 200 {object} features.Summary "ok"
// @Router /matching/features [post]
func (h *handlers) extract(_ *stdhttp.Request, in FeaturesInput) (any, error) {
	return h.m.Extract(in.Text), nil
}

// swagger:route POST /matching/similarity Matching matchingSimilarity
// @Summary Weighted feature similarity of two texts
// @Tags Matching
// @Accept json
// @Produce json
// @Param payload body SimilarityInput true "Texts"
// @Success 200 {object} SimilarityResponse "ok"
// @Router /matching/similarity [post]
func (h *handlers) compare(_ *stdhttp.Request, in SimilarityInput) (any, error) {
	return SimilarityResponse{Similarity: h.m.TextSimilarity(in.A, in.B)}, nil
}

// swagger:route POST /matching/score Matching matchingScore
// @Summary Score a found record against a request record with reasons
// @Tags Matching
// @Accept json
// @Produce json
// @Param payload body ScoreInput true "Records"
// @Success 200 {object} similarity.Result "ok"
// @Router /matching/score [post]
func (h *handlers) score(_ *stdhttp.Request, in ScoreInput) (any, error) {
	return h.m.Score(in.Found.toScorer(), in.Request.toScorer()), nil
}
