package similarity

import (
	"math"
	"slices"
	"testing"

	"lostfound/internal/core/features"
	"lostfound/internal/core/lexicon"
)

func mustScorer(t *testing.T) *Scorer {
	t.Helper()
	lx, err := lexicon.Load()
	if err != nil {
		t.Fatalf("load lexicon: %v", err)
	}
	return New(features.New(lx))
}

func ref(v int64) *int64 { return &v }

func TestJaccard(t *testing.T) {
	t.Parallel()

	set := func(xs ...string) features.Set[string] {
		s := features.Set[string]{}
		for _, x := range xs {
			s[x] = struct{}{}
		}
		return s
	}

	cases := []struct {
		name string
		a, b features.Set[string]
		want float64
	}{
		{"both empty is zero", set(), set(), 0},
		{"one empty", set("a"), set(), 0},
		{"identical", set("a", "b"), set("a", "b"), 1},
		{"disjoint", set("a"), set("b"), 0},
		{"half", set("a"), set("a", "b"), 0.5},
		{"two of four", set("a", "b", "c"), set("b", "c", "d"), 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Jaccard(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Jaccard = %v want %v", got, tc.want)
			}
		})
	}
}

func TestTextSimilarity_EmptyIsZero(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	for _, pair := range [][2]string{{"", "anything"}, {"anything", ""}, {"", ""}, {"  ", "blue nike backpack"}} {
		if got := s.TextSimilarity(pair[0], pair[1]); got != 0 {
			t.Fatalf("TextSimilarity(%q, %q) = %v want 0", pair[0], pair[1], got)
		}
	}
}

func TestTextSimilarity_WeightClosure(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	// populates colors, brands, item types and keywords
	text := "Black Nike backpack jacket"
	if got := s.TextSimilarity(text, text); got != 100 {
		t.Fatalf("TextSimilarity(t, t) = %v want 100", got)
	}

	// keywords alone carry only their own weight; empty groups are not renormalised away
	plain := "mystery object"
	if got := s.TextSimilarity(plain, plain); got != WeightKeywords {
		t.Fatalf("TextSimilarity(keywords, keywords) = %v want %v", got, WeightKeywords)
	}
}

func TestTextSimilarity_SkipsOneSidedGroups(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	// only keywords are populated on both sides; the colors on one side add nothing
	got := s.TextSimilarity("red mystery object", "mystery object")
	want := WeightKeywords * (2.0 / 3.0)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMatchScore_ScenarioA(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	found := Record{Name: "Blue Nike Backpack", Description: "backpack found near gym", CategoryID: ref(1), LocationID: ref(2)}
	req := Record{Name: "Navy blue backpack", Description: "lost my nike bag at gym", CategoryID: ref(1), LocationID: ref(2)}

	r := s.MatchScore(found, req)
	if r.Score < 60 {
		t.Fatalf("score = %d want >= 60 (reasons %v)", r.Score, r.Reasons)
	}
	if r.Score != 75 {
		t.Fatalf("score = %d want 75", r.Score)
	}
	for _, want := range []string{ReasonSameCategory, ReasonSameLocation, ReasonColorMatch, ReasonBrandMatch} {
		if !r.HasReason(want) {
			t.Fatalf("missing reason %q in %v", want, r.Reasons)
		}
	}
	if !r.HasReason(ReasonStrongText) && !r.HasReason(ReasonModerateText) {
		t.Fatalf("missing description tier in %v", r.Reasons)
	}
	if r.Reasons[0] != ReasonSameCategory || r.Reasons[1] != ReasonSameLocation {
		t.Fatalf("reason order = %v", r.Reasons)
	}
}

func TestMatchScore_ScenarioB(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	found := Record{Name: "Calculator", Description: "TI-84 found in room 204"}
	req := Record{Name: "Red umbrella", Description: "left outside library"}

	r := s.MatchScore(found, req)
	if r.Score != 0 {
		t.Fatalf("score = %d want 0", r.Score)
	}
	if len(r.Reasons) != 0 {
		t.Fatalf("reasons = %v want none", r.Reasons)
	}
}

func TestMatchScore_MetadataNeedsBothSides(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	cases := []struct {
		name      string
		fc, rc    *int64
		fl, rl    *int64
		wantScore int
	}{
		{"both nil", nil, nil, nil, nil, 0},
		{"one side nil", ref(1), nil, nil, ref(2), 0},
		{"mismatch", ref(1), ref(2), ref(3), ref(4), 0},
		{"category only", ref(7), ref(7), nil, nil, CategoryBonus},
		{"location only", nil, nil, ref(9), ref(9), LocationBonus},
		{"both", ref(7), ref(7), ref(9), ref(9), CategoryBonus + LocationBonus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := s.MatchScore(
				Record{Name: "Calculator", CategoryID: tc.fc, LocationID: tc.fl},
				Record{Name: "Umbrella", CategoryID: tc.rc, LocationID: tc.rl},
			)
			if r.Score != tc.wantScore {
				t.Fatalf("score = %d want %d (%v)", r.Score, tc.wantScore, r.Reasons)
			}
		})
	}
}

func TestMatchScore_Tiers(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	// identical text: 100 * 0.75 = 75, strong
	r := s.MatchScore(Record{Name: "Black Nike backpack jacket"}, Record{Name: "Black Nike backpack jacket"})
	if r.Score != 75 || !r.HasReason(ReasonStrongText) {
		t.Fatalf("identical text: %+v", r)
	}

	// keywords only, 1 of 2 shared: 40 * 0.5 * 0.75 = 15, some keywords
	r = s.MatchScore(Record{Name: "mystery"}, Record{Name: "mystery object"})
	if r.Score != 15 {
		t.Fatalf("score = %d want 15", r.Score)
	}
	if !slices.Equal(r.Reasons, []string{ReasonSomeKeywords}) {
		t.Fatalf("reasons = %v", r.Reasons)
	}
}

func TestMatchScore_CappedAtHundred(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	rec := Record{Name: "Black Nike backpack", Description: "jacket", CategoryID: ref(1), LocationID: ref(1)}
	r := s.MatchScore(rec, rec)
	if r.Score != 100 {
		t.Fatalf("score = %d want 100", r.Score)
	}
}

func TestMatchScore_Bounded(t *testing.T) {
	t.Parallel()
	s := mustScorer(t)

	texts := []string{
		"", "blue", "Blue Nike Backpack", "instant noodles", "TI-84 calculator",
		"silver apple iphone with red case", "north face jacket black", "keys keys keys",
		"!!!", "white airpods pro in charging case",
	}
	ids := []*int64{nil, ref(1), ref(2)}
	for _, a := range texts {
		for _, b := range texts {
			for _, c := range ids {
				r := s.MatchScore(Record{Name: a, CategoryID: c, LocationID: c}, Record{Name: b, CategoryID: ref(1), LocationID: ref(2)})
				if r.Score < 0 || r.Score > 100 {
					t.Fatalf("score %d out of range for %q vs %q", r.Score, a, b)
				}
			}
		}
	}
}

func TestClampScore(t *testing.T) {
	t.Parallel()
	cases := map[float64]int{0: 0, 0.49: 0, 0.5: 1, 59.5: 60, 99.6: 100, 140: 100, -3: 0}
	for in, want := range cases {
		if got := clampScore(in); got != want {
			t.Fatalf("clampScore(%v) = %d want %d", in, got, want)
		}
	}
}
