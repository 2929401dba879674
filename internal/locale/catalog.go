// Package locale supplies the phrasing of strategy explanations. A catalog
// maps every template key of the strategy engine to localized text and is
// stored as YAML.
package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/abhisek/timestable/internal/phrase"
	"github.com/abhisek/timestable/internal/strategy"
)

// maxCatalogSize bounds catalog files read from disk.
const maxCatalogSize = 1024 * 1024

// Catalog is one locale's template set.
type Catalog struct {
	Locale    string            `koanf:"locale" yaml:"locale" json:"locale"`
	Name      string            `koanf:"name" yaml:"name" json:"name"`
	Version   string            `koanf:"version" yaml:"version" json:"version"`
	Templates map[string]string `koanf:"templates" yaml:"templates" json:"templates"`
}

// Format renders key with params. It satisfies strategy.Formatter.
func (c *Catalog) Format(key string, params phrase.Params) (string, bool) {
	tmpl, ok := c.Templates[key]
	if !ok || tmpl == "" {
		return "", false
	}
	return phrase.Render(tmpl, params), true
}

var _ strategy.Formatter = (*Catalog)(nil)

// Parse decodes and validates a YAML catalog: structure against the
// catalog schema, then version compatibility with the engine.
func Parse(data []byte) (*Catalog, error) {
	if len(data) > maxCatalogSize {
		return nil, fmt.Errorf("catalog exceeds %d bytes", maxCatalogSize)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validateStructure(k.Raw()); err != nil {
		return nil, err
	}

	var c Catalog
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Compatible(c.Version); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", c.Locale, err)
	}
	return &c, nil
}

// validateStructure checks v against catalogSchema. v is normalized
// through JSON so YAML scalars and Go structs match JSON types.
func validateStructure(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("normalize catalog: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("normalize catalog: %w", err)
	}
	sch, err := compiledCatalogSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// WriteYAML encodes c with two-space indentation. Template keys come out
// sorted.
func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yamlv3.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}

// Default returns the built-in English templates as a catalog.
func Default() *Catalog {
	return &Catalog{
		Locale:    "en",
		Name:      "English",
		Version:   strategy.TemplateVersion,
		Templates: strategy.DefaultTemplates(),
	}
}
