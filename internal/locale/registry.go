package locale

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

//go:embed catalogs/*.yaml
var builtin embed.FS

// ErrUnknownLocale is returned by Registry.Get for a locale with no catalog.
var ErrUnknownLocale = errors.New("unknown locale")

// Entry describes one available catalog.
type Entry struct {
	Locale  string
	Name    string
	Version string
	// Source is "builtin" or the file path the catalog was read from.
	Source string
}

// Registry holds the built-in catalogs plus any found in a user
// directory. A user catalog replaces a built-in one with the same locale.
type Registry struct {
	catalogs map[string]*Catalog
	sources  map[string]string
	logger   *zap.Logger
}

// NewRegistry loads the built-in catalogs and then every *.yaml in dir.
// An empty dir skips the user directory; a dir that does not exist is
// not an error. Invalid user catalogs are logged and skipped.
func NewRegistry(dir string, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{
		catalogs: map[string]*Catalog{},
		sources:  map[string]string{},
		logger:   logger,
	}

	if err := r.loadFS(builtin, "catalogs", "builtin", true); err != nil {
		return nil, err
	}
	if dir == "" {
		return r, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logger.Debug("locale directory not found", zap.String("dir", dir))
		return r, nil
	}
	if err := r.loadFS(os.DirFS(dir), ".", dir, false); err != nil {
		return nil, err
	}
	return r, nil
}

// loadFS parses every *.yaml under root. strict turns a bad catalog into
// an error instead of a warning.
func (r *Registry) loadFS(fsys fs.FS, root, origin string, strict bool) error {
	matches, err := fs.Glob(fsys, filepath.ToSlash(filepath.Join(root, "*.yaml")))
	if err != nil {
		return fmt.Errorf("list catalogs in %s: %w", origin, err)
	}
	sort.Strings(matches)

	for _, name := range matches {
		source := origin
		if !strict {
			source = filepath.Join(origin, filepath.Base(name))
		}
		c, err := readCatalog(fsys, name)
		if err != nil {
			if strict {
				return fmt.Errorf("catalog %s: %w", name, err)
			}
			r.logger.Warn("skipping invalid catalog", zap.String("path", source), zap.Error(err))
			continue
		}
		if prev, ok := r.sources[c.Locale]; ok {
			r.logger.Debug("catalog overrides earlier one",
				zap.String("locale", c.Locale), zap.String("path", source), zap.String("previous", prev))
		}
		r.catalogs[c.Locale] = c
		r.sources[c.Locale] = source
	}
	return nil
}

func readCatalog(fsys fs.FS, name string) (*Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxCatalogSize+1))
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Get returns the catalog for lang. A region-qualified tag such as "es-MX"
// falls back to its base language.
func (r *Registry) Get(lang string) (*Catalog, error) {
	lang = strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
	if c, ok := r.catalogs[lang]; ok {
		return c, nil
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		if c, ok := r.catalogs[base]; ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, lang)
}

// List returns every available catalog sorted by locale.
func (r *Registry) List() []Entry {
	out := make([]Entry, 0, len(r.catalogs))
	for loc, c := range r.catalogs {
		out = append(out, Entry{
			Locale:  loc,
			Name:    c.Name,
			Version: c.Version,
			Source:  r.sources[loc],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Locale < out[j].Locale })
	return out
}

// LoadFile parses a single catalog file.
func LoadFile(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxCatalogSize {
		return nil, fmt.Errorf("catalog %s exceeds %d bytes", path, maxCatalogSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
