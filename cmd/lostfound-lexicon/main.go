// Command lostfound-lexicon validates a lexicon override and tries it on sample text
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"lostfound/internal/core/features"
	"lostfound/internal/core/lexicon"
	"lostfound/internal/core/similarity"
)

type report struct {
	Version    int               `json:"version"`
	Colors     int               `json:"colors"`
	Brands     int               `json:"brands"`
	Categories int               `json:"categories"`
	Stopwords  int               `json:"stopwords"`
	Features   *features.Summary `json:"features,omitempty"`
	Similarity *float64          `json:"similarity,omitempty"`
}

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	var (
		file      = flag.String("file", os.Getenv("LEXICON_FILE"), "yaml override layered over the embedded lexicon")
		extract   = flag.String("extract", "", "text to run through the feature extractor")
		compare   = flag.String("compare", "", "second text; with -extract prints their weighted similarity")
		whole     = flag.Bool("whole-words", false, "match phrases on word boundaries only")
		dumpLists = flag.Bool("dump", false, "print the merged lexicon instead of counts")
	)
	flag.Parse()

	lx, err := lexicon.LoadFile(*file)
	must(err)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if *dumpLists {
		must(enc.Encode(lx.Spec()))
		return
	}

	out := report{
		Version:    lx.Version(),
		Colors:     len(lx.Colors()),
		Brands:     len(lx.Brands()),
		Categories: len(lx.ItemTypes()),
		Stopwords:  len(lx.Stopwords()),
	}

	ex := features.NewWithOptions(lx, features.Options{WholeWords: *whole})
	if *extract != "" {
		sum := ex.Extract(*extract).Summary()
		out.Features = &sum
	}
	if *extract != "" && *compare != "" {
		sim := similarity.New(ex).TextSimilarity(*extract, *compare)
		out.Similarity = &sim
	}
	must(enc.Encode(out))
}
