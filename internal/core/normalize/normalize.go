// Package normalize lowercases free text before feature extraction
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKC normalization
// 3 Width fold fullwidth to ASCII
// 4 Unicode lowercasing
// Whitespace and punctuation are left alone so token rules downstream see the original shape.
// Fold runs steps 1 and 4 only, for text compared against stored rows as written
package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains; a chain holds state and is not safe for concurrent use
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			width.Fold,
			cases.Lower(language.Und),
		)
	},
}

var foldPool = sync.Pool{
	New: func() any { return cases.Lower(language.Und) },
}

// Lower returns s lowercased after the pipeline described above
func Lower(s string) string { return run(&chainPool, s) }

// Fold repairs UTF-8 and lowercases s without compatibility or width folding,
// so "ＮＩＫＥ" stays fullwidth and a ligature stays one rune
func Fold(s string) string { return run(&foldPool, s) }

func run(pool *sync.Pool, s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := pool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	pool.Put(tr)
	if err != nil {
		// transform only fails on malformed input we already repaired; fall back to plain lowering
		return strings.ToLower(s)
	}
	return out
}
