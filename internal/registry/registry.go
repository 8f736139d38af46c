package registry

import (
	"strconv"

	"nmtd/pkg/types"
)

// Registry is the ordered, append-only catalog of model variants plus the
// supported-language table for the active model family. It is process-wide
// static configuration: built once at startup and read-only afterwards.
type Registry struct {
	specs        []types.ModelSpec
	defaultIndex int
	languages    []types.Language
	defaultLang  string
	altLang      string
}

// indexOutOfRangeError signals a model switch with an index outside [0, count).
type indexOutOfRangeError struct {
	index int
	count int
}

func (e indexOutOfRangeError) Error() string {
	return "model index out of range: " + strconv.Itoa(e.index) + " (valid 0.." + strconv.Itoa(e.count-1) + ")"
}

// IsIndexOutOfRange reports whether err indicates a bad model switch index.
func IsIndexOutOfRange(err error) bool {
	_, ok := err.(indexOutOfRangeError)
	return ok
}

// New builds a registry from an explicit catalog. An out-of-range
// defaultIndex is rejected rather than silently remapped, so a bad
// configured default surfaces at startup. defaultLang and altLang form the
// bidirectional derivation pair and must be present in languages.
func New(specs []types.ModelSpec, defaultIndex int, languages []types.Language, defaultLang, altLang string) (*Registry, error) {
	if defaultIndex < 0 || defaultIndex >= len(specs) {
		return nil, indexOutOfRangeError{index: defaultIndex, count: len(specs)}
	}
	return &Registry{
		specs:        specs,
		defaultIndex: defaultIndex,
		languages:    languages,
		defaultLang:  defaultLang,
		altLang:      altLang,
	}, nil
}

// Get returns the spec at index, or an out-of-range error.
func (r *Registry) Get(index int) (types.ModelSpec, error) {
	if index < 0 || index >= len(r.specs) {
		return types.ModelSpec{}, indexOutOfRangeError{index: index, count: len(r.specs)}
	}
	return r.specs[index], nil
}

// Count returns the number of catalog entries.
func (r *Registry) Count() int { return len(r.specs) }

// DefaultIndex returns the catalog index loaded on first use.
func (r *Registry) DefaultIndex() int { return r.defaultIndex }

// Specs returns a copy of the catalog in order.
func (r *Registry) Specs() []types.ModelSpec {
	out := make([]types.ModelSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Names returns the model names in catalog order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.specs))
	for i, s := range r.specs {
		out[i] = s.Name
	}
	return out
}

// Languages returns the supported-language table as code -> display name.
func (r *Registry) Languages() map[string]string {
	out := make(map[string]string, len(r.languages))
	for _, l := range r.languages {
		out[l.Code] = l.Name
	}
	return out
}

// IsSupported reports whether code is in the supported-language table.
func (r *Registry) IsSupported(code string) bool {
	for _, l := range r.languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// DisplayName returns the display name for code, falling back to the raw code
// when absent from the table.
func (r *Registry) DisplayName(code string) string {
	for _, l := range r.languages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// Pair returns the configured bidirectional derivation pair
// (default language, alternate language).
func (r *Registry) Pair() (string, string) { return r.defaultLang, r.altLang }
