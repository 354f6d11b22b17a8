package services

import (
	"context"

	"github.com/shrawan-shakya/shakya-gallery-sub000/cache"
	"github.com/shrawan-shakya/shakya-gallery-sub000/catalog"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// ArtworkService serves the storefront catalog from the content repository
type ArtworkService struct {
	content  catalog.ContentQuerier
	cache    *cache.CatalogCache
	currency string
}

// NewArtworkService wires the content repository and the in-process cache
func NewArtworkService(content catalog.ContentQuerier, c *cache.CatalogCache) *ArtworkService {
	if c == nil {
		c = cache.NewCatalogCache(cache.TTL)
	}
	return &ArtworkService{content: content, cache: c, currency: "USD"}
}

// WithCurrency sets the currency used for price labels
func (s *ArtworkService) WithCurrency(code string) *ArtworkService {
	if code != "" {
		s.currency = code
	}
	return s
}

// FetchFiltered asks the content repository for matching artworks, one
// request per call and no caching. Repository errors are returned unchanged.
func (s *ArtworkService) FetchFiltered(ctx context.Context, opts models.FilterOptions) ([]models.Artwork, error) {
	artworks, err := catalog.FetchFiltered(ctx, s.content, opts)
	if err != nil {
		return nil, err
	}
	models.LabelPrices(artworks, s.currency)
	return artworks, nil
}

// Catalog returns every published artwork, newest first, from cache when fresh
func (s *ArtworkService) Catalog(ctx context.Context) ([]models.Artwork, error) {
	if artworks, ok := s.cache.GetArtworks(); ok {
		return artworks, nil
	}

	artworks, err := catalog.Fetch(ctx, s.content, catalog.Spec{Sort: models.SortNewest})
	if err != nil {
		return nil, err
	}
	models.LabelPrices(artworks, s.currency)
	s.cache.SetArtworks(artworks)
	utils.Log.Debugf("[artworks.catalog] cached %d artworks", len(artworks))
	return artworks, nil
}

// Instant re-filters the cached catalog in memory
func (s *ArtworkService) Instant(ctx context.Context, opts models.ClientFilterOptions) ([]models.Artwork, error) {
	artworks, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(artworks, opts), nil
}

// Categories returns every published category, from cache when fresh
func (s *ArtworkService) Categories(ctx context.Context) ([]models.Category, error) {
	if categories, ok := s.cache.GetCategories(); ok {
		return categories, nil
	}

	categories, err := FetchCategories(ctx, s.content)
	if err != nil {
		return nil, err
	}
	s.cache.SetCategories(categories)
	return categories, nil
}

// BySlug returns a single published artwork
func (s *ArtworkService) BySlug(ctx context.Context, slug string) (*models.Artwork, error) {
	artwork, err := FetchArtworkBySlug(ctx, s.content, slug)
	if err != nil {
		return nil, err
	}
	artwork.PriceLabel = models.PriceLabel(*artwork, s.currency)
	return artwork, nil
}

// Invalidate drops cached catalog data after editors publish
func (s *ArtworkService) Invalidate() {
	s.cache.Invalidate()
}
