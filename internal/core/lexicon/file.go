package lexicon

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadFile layers the yaml file at path over the embedded lexicon.
// Lists present in the file replace the embedded ones wholesale; absent lists are kept.
// An empty path returns the embedded lexicon
func LoadFile(path string) (*Lexicon, error) {
	base, err := Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}

	sp := base.Spec()
	var over Spec
	if err := k.UnmarshalWithConf("", &over, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("lexicon: decode %s: %w", path, err)
	}

	if k.Exists("version") {
		sp.Version = over.Version
	}
	if k.Exists("colors") {
		sp.Colors = over.Colors
	}
	if k.Exists("brands") {
		sp.Brands = over.Brands
	}
	if k.Exists("item_types") {
		sp.ItemTypes = over.ItemTypes
	}
	if k.Exists("stopwords") {
		sp.Stopwords = over.Stopwords
	}
	return New(sp)
}
