// Package similarity scores how alike two lost-and-found descriptions are.
// Scores are explainable: every point comes from a lexicon group overlap or a metadata match
package similarity

import (
	"lostfound/internal/core/features"
)

// Group weights; they sum to 100 so the weighted sum is already on a 0..100 scale
const (
	WeightColors    = 15
	WeightBrands    = 20
	WeightItemTypes = 25
	WeightKeywords  = 40
)

// Scorer compares texts and records through a feature extractor.
// It holds no mutable state and is safe for concurrent use
type Scorer struct {
	ex *features.Extractor
}

// New creates a Scorer
func New(ex *features.Extractor) *Scorer {
	if ex == nil {
		panic("similarity.Scorer requires a non nil extractor")
	}
	return &Scorer{ex: ex}
}

// Extractor returns the extractor the scorer uses
func (s *Scorer) Extractor() *features.Extractor { return s.ex }

// TextSimilarity scores two free texts in [0,100]
func (s *Scorer) TextSimilarity(a, b string) float64 {
	return Compare(s.ex.Extract(a), s.ex.Extract(b))
}

// Compare scores two feature sets in [0,100].
// A group only counts when both sides have at least one member in it
func Compare(a, b features.FeatureSet) float64 {
	score := 0.0
	if a.Colors.Len() > 0 && b.Colors.Len() > 0 {
		score += WeightColors * Jaccard(a.Colors, b.Colors)
	}
	if a.Brands.Len() > 0 && b.Brands.Len() > 0 {
		score += WeightBrands * Jaccard(a.Brands, b.Brands)
	}
	if a.ItemTypes.Len() > 0 && b.ItemTypes.Len() > 0 {
		score += WeightItemTypes * Jaccard(a.ItemTypes, b.ItemTypes)
	}
	if a.Keywords.Len() > 0 && b.Keywords.Len() > 0 {
		score += WeightKeywords * Jaccard(a.Keywords, b.Keywords)
	}
	return score
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when either set is empty
func Jaccard[T comparable](a, b features.Set[T]) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for v := range a {
		if b.Has(v) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
