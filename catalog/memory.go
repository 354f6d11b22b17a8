package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// Filter re-filters an artwork list already in hand with the storefront's
// single-category criteria.
func Filter(candidates []models.Artwork, opts models.ClientFilterOptions) []models.Artwork {
	return Apply(candidates, FromClientOptions(opts))
}

// Apply evaluates spec against candidates and returns the matching artworks in
// spec order. The input slice is never modified. Equal sort keys keep their
// input order, and "newest" leaves the input order untouched.
// A clause that fails Validate matches no artwork.
func Apply(candidates []models.Artwork, spec Spec) []models.Artwork {
	m := newMatcher(spec)

	out := make([]models.Artwork, 0, len(candidates))
	for _, a := range candidates {
		if m.matches(a) {
			out = append(out, a)
		}
	}

	switch models.ParseSortOption(string(spec.Sort)) {
	case models.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceOrZero() < out[j].PriceOrZero()
		})
	case models.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceOrZero() > out[j].PriceOrZero()
		})
	}
	return out
}

// Matches reports whether a single artwork satisfies every clause of spec
func Matches(a models.Artwork, spec Spec) bool {
	return newMatcher(spec).matches(a)
}

type matcher struct {
	clauses []Clause
	lowered []string // lowercased query text per clause, text clauses only
	lower   cases.Caser
}

func newMatcher(spec Spec) *matcher {
	m := &matcher{
		clauses: spec.Clauses,
		lowered: make([]string, len(spec.Clauses)),
		lower:   newLowerer(),
	}
	for i, c := range spec.Clauses {
		if c.Kind == ClauseText {
			m.lowered[i] = m.lower.String(c.Text)
		}
	}
	return m
}

func (m *matcher) matches(a models.Artwork) bool {
	for i, c := range m.clauses {
		if !m.matchClause(i, c, a) {
			return false
		}
	}
	return true
}

func (m *matcher) matchClause(i int, c Clause, a models.Artwork) bool {
	switch c.Kind {
	case ClauseText:
		q := m.lowered[i]
		for _, f := range c.Fields {
			v := m.lower.String(fieldValue(a, f))
			switch c.Mode {
			case TextPrefix:
				if strings.HasPrefix(v, q) {
					return true
				}
			case TextSubstring:
				if strings.Contains(v, q) {
					return true
				}
			}
		}
		return false
	case ClauseCategory:
		for _, v := range c.Values {
			if a.HasCategory(v) {
				return true
			}
		}
		return false
	case ClauseStatus:
		for _, v := range c.Values {
			if string(a.Status) == v {
				return true
			}
		}
		return false
	}
	return false
}
