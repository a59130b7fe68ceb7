package features

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"lostfound/internal/core/lexicon"
	"lostfound/internal/core/normalize"
)

// minKeywordLen is the shortest token kept as a generic keyword
const minKeywordLen = 3

// Options controls extractor behavior
type Options struct {
	// WholeWords requires color, brand and item-type phrases to sit on word boundaries.
	// Off by default: phrases match as plain substrings, so "tan" is found in "instant"
	WholeWords bool
}

type group uint8

const (
	groupColor group = iota
	groupBrand
	groupItemType
)

// phrase is one lexicon entry indexed by the automaton
type phrase struct {
	group    group
	text     string
	category string // item types only
}

// Extractor builds FeatureSets from text using an injected lexicon.
// It is safe for concurrent use
type Extractor struct {
	lex     *lexicon.Lexicon
	opts    Options
	ac      *automaton
	phrases []phrase
	lens    []int
}

// New creates an Extractor with default options
func New(lx *lexicon.Lexicon) *Extractor {
	return NewWithOptions(lx, Options{})
}

// NewWithOptions creates an Extractor with custom options
func NewWithOptions(lx *lexicon.Lexicon, opts Options) *Extractor {
	if lx == nil {
		panic("features.Extractor requires a non nil lexicon")
	}
	e := &Extractor{lex: lx, opts: opts, ac: newAutomaton()}

	for _, c := range lx.Colors() {
		e.index(phrase{group: groupColor, text: c})
	}
	for _, b := range lx.Brands() {
		e.index(phrase{group: groupBrand, text: b})
	}
	for _, g := range lx.ItemTypes() {
		for _, kw := range g.Keywords {
			e.index(phrase{group: groupItemType, text: kw, category: g.Category})
		}
	}
	e.ac.build()
	return e
}

func (e *Extractor) index(p phrase) {
	id := len(e.phrases)
	e.phrases = append(e.phrases, p)
	e.lens = append(e.lens, len(p.text))
	e.ac.add(p.text, id)
}

// Lexicon returns the lexicon the extractor was built with
func (e *Extractor) Lexicon() *lexicon.Lexicon { return e.lex }

// Extract returns the features of text. It never fails; empty or junk input yields empty sets
func (e *Extractor) Extract(text string) FeatureSet {
	fs := newFeatureSet()
	s := normalize.Lower(text)
	if s == "" {
		return fs
	}

	e.ac.scan(s, e.lens, func(start, end, id int) {
		if e.opts.WholeWords && !onBoundary(s, start, end) {
			return
		}
		p := e.phrases[id]
		switch p.group {
		case groupColor:
			fs.Colors.add(p.text)
		case groupBrand:
			fs.Brands.add(p.text)
		case groupItemType:
			fs.ItemTypes.add(ItemType{Category: p.category, Keyword: p.text})
		}
	})

	for _, tok := range strings.Fields(s) {
		if e.keepKeyword(tok) {
			fs.Keywords.add(tok)
		}
	}
	return fs
}

// keepKeyword applies the generic keyword rules to one lowercased token
func (e *Extractor) keepKeyword(tok string) bool {
	if utf8.RuneCountInString(tok) < minKeywordLen {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return !e.lex.IsStopword(tok)
}

// isWord reports whether r counts as part of a word for boundary checks
func isWord(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// onBoundary reports whether s[start:end] is not glued to word runes on either side
func onBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWord(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWord(r) {
			return false
		}
	}
	return true
}
