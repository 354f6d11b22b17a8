// Package catalog holds the artwork filter/sort engine.
//
// Filter semantics are defined once as data (a Spec) and run by two interpreters:
// CompileGROQ turns a Spec into a content-repository query, Apply evaluates it
// against artworks already in memory.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

var ErrInvalidSpec = errors.New("invalid filter spec")

// ClauseKind selects which predicate a Clause expresses
type ClauseKind string

const (
	ClauseText     ClauseKind = "text"
	ClauseCategory ClauseKind = "category"
	ClauseStatus   ClauseKind = "status"
)

// TextMode is how a text clause compares the query with a field
type TextMode string

const (
	TextPrefix    TextMode = "prefix"
	TextSubstring TextMode = "substring"
)

// Field is a searchable artwork field
type Field string

const (
	FieldTitle    Field = "title"
	FieldArtist   Field = "artist"
	FieldMaterial Field = "material"
)

// Clause is one predicate. Clauses in a Spec are ANDed; Values inside a
// category or status clause are ORed, as are Fields inside a text clause.
type Clause struct {
	Kind   ClauseKind `json:"kind" yaml:"kind"`
	Text   string     `json:"text,omitempty" yaml:"text,omitempty"`
	Fields []Field    `json:"fields,omitempty" yaml:"fields,omitempty"`
	Mode   TextMode   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Values []string   `json:"values,omitempty" yaml:"values,omitempty"`
}

// Spec is a complete set of criteria plus the result order
type Spec struct {
	Clauses []Clause          `json:"clauses" yaml:"clauses"`
	Sort    models.SortOption `json:"sort" yaml:"sort"`
}

// FromServerOptions builds the Spec for the content-repository variant:
// prefix search over title, artist and material, any-of category selection.
func FromServerOptions(opts models.FilterOptions) Spec {
	spec := Spec{Sort: models.ParseSortOption(string(opts.SortOption))}
	if q := strings.TrimSpace(opts.SearchQuery); q != "" {
		spec.Clauses = append(spec.Clauses, Clause{
			Kind:   ClauseText,
			Text:   q,
			Fields: []Field{FieldTitle, FieldArtist, FieldMaterial},
			Mode:   TextPrefix,
		})
	}
	if categories := nonEmpty(opts.SelectedCategories); len(categories) > 0 {
		spec.Clauses = append(spec.Clauses, Clause{Kind: ClauseCategory, Values: categories})
	}
	if c, ok := statusClause(opts.StatusFilter); ok {
		spec.Clauses = append(spec.Clauses, c)
	}
	return spec
}

// FromClientOptions builds the Spec for the in-memory variant:
// substring search over title and artist only, a single category.
func FromClientOptions(opts models.ClientFilterOptions) Spec {
	spec := Spec{Sort: models.ParseSortOption(string(opts.SortOption))}
	// whitespace-only means no search; otherwise the text is matched as typed
	if q := opts.SearchQuery; strings.TrimSpace(q) != "" {
		spec.Clauses = append(spec.Clauses, Clause{
			Kind:   ClauseText,
			Text:   q,
			Fields: []Field{FieldTitle, FieldArtist},
			Mode:   TextSubstring,
		})
	}
	if c := strings.TrimSpace(opts.SelectedCategory); c != "" {
		spec.Clauses = append(spec.Clauses, Clause{Kind: ClauseCategory, Values: []string{c}})
	}
	if c, ok := statusClause(opts.StatusFilter); ok {
		spec.Clauses = append(spec.Clauses, c)
	}
	return spec
}

func statusClause(f models.StatusFilter) (Clause, bool) {
	statuses := f.Statuses()
	if len(statuses) == 0 {
		return Clause{}, false
	}
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return Clause{Kind: ClauseStatus, Values: values}, true
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Validate checks that every clause can be interpreted.
// Specs built by FromServerOptions and FromClientOptions are always valid.
func (s Spec) Validate() error {
	for i, c := range s.Clauses {
		if err := c.validate(); err != nil {
			return fmt.Errorf("%w: clause %d: %v", ErrInvalidSpec, i, err)
		}
	}
	return nil
}

func (c Clause) validate() error {
	switch c.Kind {
	case ClauseText:
		if c.Mode != TextPrefix && c.Mode != TextSubstring {
			return fmt.Errorf("unsupported text mode %q", c.Mode)
		}
		if len(c.Fields) == 0 {
			return errors.New("text clause without fields")
		}
		for _, f := range c.Fields {
			if !f.IsValid() {
				return fmt.Errorf("unsupported field %q", f)
			}
		}
	case ClauseCategory, ClauseStatus:
		if len(c.Values) == 0 {
			return fmt.Errorf("%s clause without values", c.Kind)
		}
	default:
		return fmt.Errorf("unsupported clause kind %q", c.Kind)
	}
	return nil
}

// IsValid reports whether the field is searchable
func (f Field) IsValid() bool {
	switch f {
	case FieldTitle, FieldArtist, FieldMaterial:
		return true
	}
	return false
}

// newLowerer returns the case mapping both interpreters apply to search text
// and field values. It is a plain lowercase mapping, the same one GROQ's
// lower() performs, with no folding of ß to ss or similar expansions.
// A Caser is not safe for concurrent use.
func newLowerer() cases.Caser {
	return cases.Lower(language.Und)
}

func fieldValue(a models.Artwork, f Field) string {
	switch f {
	case FieldTitle:
		return a.Title
	case FieldArtist:
		return a.Artist
	case FieldMaterial:
		return a.Material
	}
	return ""
}
