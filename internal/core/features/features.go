// Package features turns free text into the structured attributes the matcher compares:
// colors, brands, item-type hits and generic keywords
package features

import (
	"cmp"
	"slices"
)

// ItemType is one category keyword found in a text
type ItemType struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
}

// Set is an unordered collection of comparable values
type Set[T comparable] map[T]struct{}

// Has reports whether v is in s
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len is the number of members
func (s Set[T]) Len() int { return len(s) }

// Intersects reports whether s and o share at least one member
func (s Set[T]) Intersects(o Set[T]) bool {
	small, big := s, o
	if len(big) < len(small) {
		small, big = big, small
	}
	for v := range small {
		if big.Has(v) {
			return true
		}
	}
	return false
}

func (s Set[T]) add(v T) { s[v] = struct{}{} }

// FeatureSet is the output of one extraction. It is never mutated after Extract returns
type FeatureSet struct {
	Colors    Set[string]
	Brands    Set[string]
	ItemTypes Set[ItemType]
	Keywords  Set[string]
}

// Empty reports whether no group has members
func (fs FeatureSet) Empty() bool {
	return fs.Colors.Len() == 0 && fs.Brands.Len() == 0 && fs.ItemTypes.Len() == 0 && fs.Keywords.Len() == 0
}

// Summary is a FeatureSet flattened to sorted slices for transport and display
type Summary struct {
	Colors    []string   `json:"colors"`
	Brands    []string   `json:"brands"`
	ItemTypes []ItemType `json:"item_types"`
	Keywords  []string   `json:"keywords"`
}

// Summary returns fs with every group sorted
func (fs FeatureSet) Summary() Summary {
	its := make([]ItemType, 0, len(fs.ItemTypes))
	for it := range fs.ItemTypes {
		its = append(its, it)
	}
	slices.SortFunc(its, func(a, b ItemType) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.Keyword, b.Keyword)
	})
	return Summary{
		Colors:    sorted(fs.Colors),
		Brands:    sorted(fs.Brands),
		ItemTypes: its,
		Keywords:  sorted(fs.Keywords),
	}
}

func sorted(s Set[string]) []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func newFeatureSet() FeatureSet {
	return FeatureSet{
		Colors:    Set[string]{},
		Brands:    Set[string]{},
		ItemTypes: Set[ItemType]{},
		Keywords:  Set[string]{},
	}
}
