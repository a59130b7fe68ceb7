// Package lexicon loads the word lists the feature extractor matches against.
// The default lists ship embedded in lexicon.json; an operator may replace any of
// them with a yaml file at process start. A loaded Lexicon is never mutated.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"
)

//go:embed lexicon.json
var embedded []byte

// Spec is the serialized form shared by lexicon.json and override files
type Spec struct {
	Version   int                 `json:"version" koanf:"version"`
	Colors    []string            `json:"colors" koanf:"colors"`
	Brands    []string            `json:"brands" koanf:"brands"`
	ItemTypes map[string][]string `json:"item_types" koanf:"item_types"`
	Stopwords []string            `json:"stopwords" koanf:"stopwords"`
}

// ItemTypes groups the keywords that indicate one item category
type ItemTypes struct {
	Category string
	Keywords []string
}

// Lexicon is an immutable set of dictionaries
type Lexicon struct {
	version   int
	colors    []string
	brands    []string
	itemTypes []ItemTypes
	stopwords map[string]struct{}
}

// Load returns the lexicon compiled from the embedded lexicon.json
func Load() (*Lexicon, error) {
	var sp Spec
	if err := json.Unmarshal(embedded, &sp); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicon.json: %w", err)
	}
	return New(sp)
}

// MustLoad is Load for wiring code that cannot continue without a lexicon
func MustLoad() *Lexicon {
	lx, err := Load()
	if err != nil {
		panic(err)
	}
	return lx
}

// New validates sp and compiles it into a Lexicon.
// Entries are lowercased, trimmed and deduplicated; empty entries are dropped
func New(sp Spec) (*Lexicon, error) {
	lx := &Lexicon{
		version:   sp.Version,
		colors:    clean(sp.Colors),
		brands:    clean(sp.Brands),
		stopwords: make(map[string]struct{}, len(sp.Stopwords)),
	}
	if len(lx.colors) == 0 {
		return nil, fmt.Errorf("lexicon: no colors")
	}
	if len(lx.brands) == 0 {
		return nil, fmt.Errorf("lexicon: no brands")
	}

	for cat, kws := range sp.ItemTypes {
		cat = strings.ToLower(strings.TrimSpace(cat))
		kws = clean(kws)
		if cat == "" || len(kws) == 0 {
			continue
		}
		lx.itemTypes = append(lx.itemTypes, ItemTypes{Category: cat, Keywords: kws})
	}
	if len(lx.itemTypes) == 0 {
		return nil, fmt.Errorf("lexicon: no item types")
	}
	// map order is random; keep extraction deterministic for tests and debug output
	sort.Slice(lx.itemTypes, func(i, j int) bool {
		return lx.itemTypes[i].Category < lx.itemTypes[j].Category
	})

	for _, w := range clean(sp.Stopwords) {
		lx.stopwords[w] = struct{}{}
	}
	return lx, nil
}

// Version reports the lexicon data version
func (lx *Lexicon) Version() int { return lx.version }

// Colors returns a copy of the color names
func (lx *Lexicon) Colors() []string { return slices.Clone(lx.colors) }

// Brands returns a copy of the brand names
func (lx *Lexicon) Brands() []string { return slices.Clone(lx.brands) }

// ItemTypes returns a copy of the category keyword groups ordered by category
func (lx *Lexicon) ItemTypes() []ItemTypes {
	out := make([]ItemTypes, len(lx.itemTypes))
	for i, g := range lx.itemTypes {
		out[i] = ItemTypes{Category: g.Category, Keywords: slices.Clone(g.Keywords)}
	}
	return out
}

// IsStopword reports whether w (already lowercased) is a stopword
func (lx *Lexicon) IsStopword(w string) bool {
	_, ok := lx.stopwords[w]
	return ok
}

// Stopwords returns the stopwords in sorted order
func (lx *Lexicon) Stopwords() []string {
	out := make([]string, 0, len(lx.stopwords))
	for w := range lx.stopwords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Spec returns the serialized form of lx
func (lx *Lexicon) Spec() Spec {
	sp := Spec{
		Version:   lx.version,
		Colors:    lx.Colors(),
		Brands:    lx.Brands(),
		ItemTypes: make(map[string][]string, len(lx.itemTypes)),
		Stopwords: lx.Stopwords(),
	}
	for _, g := range lx.itemTypes {
		sp.ItemTypes[g.Category] = slices.Clone(g.Keywords)
	}
	return sp
}

// clean lowercases, trims and dedupes xs keeping first-seen order
func clean(xs []string) []string {
	seen := make(map[string]struct{}, len(xs))
	out := make([]string, 0, len(xs))
	for _, s := range xs {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
