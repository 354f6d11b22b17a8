package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// baseFilter is applied to every artwork query; drafts are never listed.
const baseFilter = `_type == "artwork" && !(_id in path("drafts.**"))`

// ArtworkProjection shapes each document into models.Artwork
const ArtworkProjection = `{
  "id": _id,
  title,
  dimensions,
  year,
  artist,
  material,
  status,
  price,
  showPrice,
  startingPrice,
  "categories": coalesce(categories[]->title, []),
  "slug": slug.current,
  "imageUrl": mainImage.asset->url,
  "lqip": mainImage.asset->metadata.lqip,
  "aspectRatio": mainImage.asset->metadata.dimensions.aspectRatio,
  description,
  provenance,
  "createdAt": _createdAt
}`

// Query is a GROQ query with its bound parameters
type Query struct {
	Query  string
	Params map[string]any
}

// CompileGROQ translates spec into a single GROQ query. User input only ever
// travels as a bound parameter.
func CompileGROQ(spec Spec) (Query, error) {
	if err := spec.Validate(); err != nil {
		return Query{}, err
	}

	params := map[string]any{}
	conditions := []string{baseFilter}

	for i, c := range spec.Clauses {
		cond, err := clauseToGROQ(c, i, params)
		if err != nil {
			return Query{}, err
		}
		conditions = append(conditions, cond)
	}

	q := fmt.Sprintf("*[%s] | %s %s",
		strings.Join(conditions, " && "),
		orderToGROQ(spec.Sort),
		ArtworkProjection,
	)
	return Query{Query: q, Params: params}, nil
}

// clauseToGROQ renders one clause and records its parameter under a name
// unique within the query.
func clauseToGROQ(c Clause, i int, params map[string]any) (string, error) {
	switch c.Kind {
	case ClauseText:
		name := bindParam(params, "search", i, newLowerer().String(c.Text))
		parts := make([]string, 0, len(c.Fields))
		for _, f := range c.Fields {
			field := fmt.Sprintf(`lower(coalesce(%s, ""))`, f)
			switch c.Mode {
			case TextPrefix:
				parts = append(parts, fmt.Sprintf("string::startsWith(%s, $%s)", field, name))
			case TextSubstring:
				parts = append(parts, fmt.Sprintf(`%s match "*" + $%s + "*"`, field, name))
			}
		}
		return "(" + strings.Join(parts, " || ") + ")", nil
	case ClauseCategory:
		name := bindParam(params, "categories", i, c.Values)
		return fmt.Sprintf("count((categories[]->title)[@ in $%s]) > 0", name), nil
	case ClauseStatus:
		if len(c.Values) == 1 {
			name := bindParam(params, "status", i, c.Values[0])
			return fmt.Sprintf("status == $%s", name), nil
		}
		name := bindParam(params, "statuses", i, c.Values)
		return fmt.Sprintf("status in $%s", name), nil
	}
	return "", fmt.Errorf("%w: unsupported clause kind %q", ErrInvalidSpec, c.Kind)
}

func bindParam(params map[string]any, base string, i int, value any) string {
	name := base
	if _, taken := params[name]; taken {
		name = base + strconv.Itoa(i)
	}
	params[name] = value
	return name
}

// orderToGROQ ties price sorts on recency so results line up with a
// newest-first list sorted stably in memory.
func orderToGROQ(sort models.SortOption) string {
	switch models.ParseSortOption(string(sort)) {
	case models.SortPriceAsc:
		return "order(coalesce(price, 0) asc, _createdAt desc)"
	case models.SortPriceDesc:
		return "order(coalesce(price, 0) desc, _createdAt desc)"
	default:
		return "order(_createdAt desc)"
	}
}
