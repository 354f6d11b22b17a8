package catalog

import (
	"context"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// ContentQuerier runs a GROQ query against the content repository and decodes
// the result into out.
type ContentQuerier interface {
	Query(ctx context.Context, query string, params map[string]any, out any) error
}

// FetchFiltered compiles opts and issues exactly one query. Repository errors
// are returned as they are.
func FetchFiltered(ctx context.Context, q ContentQuerier, opts models.FilterOptions) ([]models.Artwork, error) {
	return Fetch(ctx, q, FromServerOptions(opts))
}

// Fetch runs an arbitrary spec against the content repository
func Fetch(ctx context.Context, q ContentQuerier, spec Spec) ([]models.Artwork, error) {
	compiled, err := CompileGROQ(spec)
	if err != nil {
		return nil, err
	}

	artworks := make([]models.Artwork, 0)
	if err := q.Query(ctx, compiled.Query, compiled.Params, &artworks); err != nil {
		return nil, err
	}
	if artworks == nil {
		artworks = []models.Artwork{}
	}
	return artworks, nil
}
