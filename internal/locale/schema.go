package locale

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/timestable/internal/llm"
	"github.com/abhisek/timestable/internal/strategy"
)

const catalogSchemaName = "locale-catalog"

var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"locale": map[string]any{
			"type":    "string",
			"pattern": "^[a-z]{2,3}(-[A-Za-z0-9]{2,8})*$",
		},
		"name":    map[string]any{"type": "string", "minLength": 1},
		"version": map[string]any{"type": "string", "pattern": `^v\d+\.\d+\.\d+$`},
		"templates": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"propertyNames": map[string]any{"pattern": "^[a-z0-9_]+$"},
			"additionalProperties": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
	},
	"required":             []string{"locale", "name", "version", "templates"},
	"additionalProperties": false,
}

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	return llm.CompileSchema(catalogSchemaName, catalogSchema)
}

// Compatible reports whether a catalog written against version can be
// used with the engine's template set: same major version, and a minor
// version no newer than the engine's.
func Compatible(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid catalog version %q", version)
	}
	engine := strategy.TemplateVersion
	if semver.Major(version) != semver.Major(engine) {
		return fmt.Errorf("catalog version %s is incompatible with template version %s", version, engine)
	}
	if semver.Compare(semver.MajorMinor(version), semver.MajorMinor(engine)) > 0 {
		return fmt.Errorf("catalog version %s is newer than template version %s", version, engine)
	}
	return nil
}
