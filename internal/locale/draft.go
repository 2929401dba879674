package locale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/abhisek/timestable/internal/llm"
	"github.com/abhisek/timestable/internal/strategy"
)

// ErrDraftRejected is returned when a drafted catalog fails Check with
// errors. The draft and its issues are still returned for inspection.
var ErrDraftRejected = errors.New("drafted catalog rejected")

const draftMaxTokens = 16384

const draftSystemPrompt = `You translate the hint texts of a multiplication tutor for children aged 7 to 11.
Rules:
- Translate every template you are given. Return each key exactly once.
- Keep every {placeholder} exactly as written, including braces. Do not add new ones.
- Keep the math symbols ×, −, ÷ and digits unchanged.
- Use short, friendly sentences a child can read aloud.
- Keys starting with memory_trick_ are rhymes: write a rhyme that works in the target language.`

type draftResponse struct {
	Templates []struct {
		Key  string `json:"key"`
		Text string `json:"text"`
	} `json:"templates"`
}

// draftSchema restricts keys to the engine's template keys.
func draftSchema(keys []string) *llm.Schema {
	return &llm.Schema{
		Name:        "locale-draft-" + strategy.TemplateVersion,
		Description: "Translated multiplication hint templates",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"templates": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"key":  map[string]any{"type": "string", "enum": keys},
							"text": map[string]any{"type": "string"},
						},
						"required":             []string{"key", "text"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []string{"templates"},
			"additionalProperties": false,
		},
	}
}

// Draft asks p to translate the default templates into lang. The result
// is a complete catalog at the engine's template version. A draft with
// Check errors is returned together with ErrDraftRejected.
func Draft(ctx context.Context, p llm.Provider, lang, name string) (*Catalog, []Issue, error) {
	defaults := strategy.DefaultTemplates()
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	source, err := json.MarshalIndent(defaults, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encode templates: %w", err)
	}
	user := fmt.Sprintf("Target language: %s (%s)\n\nTemplates to translate (JSON object of key to English text):\n%s",
		name, lang, source)

	ctx = llm.WithPurpose(ctx, llm.PurposeLocaleDraft)
	resp, err := p.Generate(ctx, llm.Prompt(draftSystemPrompt, user, draftSchema(keys), draftMaxTokens))
	if err != nil {
		return nil, nil, fmt.Errorf("draft %s catalog: %w", lang, err)
	}

	var out draftResponse
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, nil, fmt.Errorf("decode draft: %w", err)
	}

	c := &Catalog{
		Locale:    lang,
		Name:      name,
		Version:   strategy.TemplateVersion,
		Templates: make(map[string]string, len(out.Templates)),
	}
	for _, t := range out.Templates {
		if _, dup := c.Templates[t.Key]; dup || t.Text == "" {
			continue
		}
		c.Templates[t.Key] = t.Text
	}
	if err := validateStructure(c); err != nil {
		return nil, nil, err
	}

	issues := Check(c)
	if HasErrors(issues) {
		return c, issues, fmt.Errorf("%w: %d issues", ErrDraftRejected, len(issues))
	}
	return c, issues, nil
}
