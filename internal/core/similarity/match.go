package similarity

import (
	"math"
	"slices"
)

// Metadata bonuses and the share of text similarity carried into the record score
const (
	CategoryBonus = 15
	LocationBonus = 10
	TextFactor    = 0.75
)

// Reason strings attached to a record score
const (
	ReasonSameCategory = "Same category"
	ReasonSameLocation = "Same location"
	ReasonStrongText   = "Strong description match"
	ReasonModerateText = "Moderate description match"
	ReasonSomeKeywords = "Some keywords match"
	ReasonColorMatch   = "Color match"
	ReasonBrandMatch   = "Brand match"
)

// description tiers, applied to the already weighted text score
const (
	strongTextThreshold   = 50
	moderateTextThreshold = 30
	someKeywordsThreshold = 15
	maxScore              = 100
)

// Record is the slice of a found item or lost request the scorer reads
type Record struct {
	Name        string
	Description string
	CategoryID  *int64
	LocationID  *int64
}

// Text joins name and description the way both sides are compared
func (r Record) Text() string { return r.Name + " " + r.Description }

// Result is an integer score in [0,100] with the reasons that produced it, in a fixed order:
// category, location, description tier, color, brand
type Result struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// MatchScore scores a found item against a lost request
func (s *Scorer) MatchScore(found, req Record) Result {
	total := 0.0
	reasons := make([]string, 0, 5)

	if sameRef(found.CategoryID, req.CategoryID) {
		total += CategoryBonus
		reasons = append(reasons, ReasonSameCategory)
	}
	if sameRef(found.LocationID, req.LocationID) {
		total += LocationBonus
		reasons = append(reasons, ReasonSameLocation)
	}

	fa := s.ex.Extract(found.Text())
	fb := s.ex.Extract(req.Text())

	text := Compare(fa, fb) * TextFactor
	total += text
	switch {
	case text >= strongTextThreshold:
		reasons = append(reasons, ReasonStrongText)
	case text >= moderateTextThreshold:
		reasons = append(reasons, ReasonModerateText)
	case text >= someKeywordsThreshold:
		reasons = append(reasons, ReasonSomeKeywords)
	}

	if fa.Colors.Intersects(fb.Colors) {
		reasons = append(reasons, ReasonColorMatch)
	}
	if fa.Brands.Intersects(fb.Brands) {
		reasons = append(reasons, ReasonBrandMatch)
	}

	return Result{Score: clampScore(total), Reasons: reasons}
}

// sameRef reports whether both references are set and equal
func sameRef(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

// clampScore rounds half away from zero and caps at 100
func clampScore(v float64) int {
	n := int(math.Round(v))
	if n > maxScore {
		return maxScore
	}
	if n < 0 {
		return 0
	}
	return n
}

// HasReason reports whether r carries reason
func (r Result) HasReason(reason string) bool { return slices.Contains(r.Reasons, reason) }
