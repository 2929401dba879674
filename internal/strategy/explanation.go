package strategy

import "github.com/abhisek/timestable/internal/phrase"

// Explanation is one rendered teaching strategy for a fact.
type Explanation struct {
	// Strategy is the canonical name of the selected strategy.
	Strategy Name `json:"strategy"`

	// Concept is a one-sentence description of the idea.
	Concept string `json:"concept"`

	// Steps is the worked derivation, shown as a numbered list. Never empty.
	Steps []string `json:"steps"`

	Pattern   string `json:"pattern,omitempty"`
	Mnemonic  string `json:"mnemonics,omitempty"`
	RealWorld string `json:"realWorld,omitempty"`

	// Visual is a pre-rendered dot grid. Only set by the visual array strategy.
	Visual string `json:"visual,omitempty"`
}

// Formatter supplies localized templates. Format returns false when the
// active locale has no template for key; the engine then renders its
// built-in default for that key.
type Formatter interface {
	Format(key string, params phrase.Params) (string, bool)
}

// writer renders template keys for a single explanation.
type writer struct {
	formatter Formatter
	params    phrase.Params
}

func newWriter(f Formatter, ft fact) *writer {
	return &writer{
		formatter: f,
		params: phrase.Params{
			"x":       ft.x,
			"y":       ft.y,
			"a":       ft.a,
			"b":       ft.b,
			"product": ft.product,
		},
	}
}

func (w *writer) set(name string, v any) *writer {
	w.params[name] = v
	return w
}

// text renders key through the formatter, falling back to the default
// template when the locale lacks the key or leaves a placeholder unfilled.
func (w *writer) text(key string) string {
	if w.formatter != nil {
		if out, ok := w.formatter.Format(key, w.params); ok && !phrase.Unresolved(out) {
			return out
		}
	}
	return phrase.Render(defaultTemplates[key], w.params)
}

// steps renders each key in order and closes with the result line.
func (w *writer) steps(keys ...string) []string {
	out := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, w.text(k))
	}
	return append(out, w.text(keyFactResult))
}

// displayName renders the localized name of a strategy.
func (w *writer) displayName(name Name) string {
	key := displayNameKey(name)
	if w.formatter != nil {
		if out, ok := w.formatter.Format(key, nil); ok && out != "" {
			return out
		}
	}
	if s, ok := defaultTemplates[key]; ok {
		return s
	}
	return string(name)
}
