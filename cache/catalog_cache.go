package cache

import (
	"sync"
	"time"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

const TTL = 5 * time.Minute

// ── Full catalog cache ───────────────────────────────────────────────────────
// Holds every published artwork, newest first, for in-memory re-filtering.

type artworksEntry struct {
	data      []models.Artwork
	fetchedAt time.Time
}

// ── Categories cache ─────────────────────────────────────────────────────────

type categoriesEntry struct {
	data      []models.Category
	fetchedAt time.Time
}

// CatalogCache is an in-process TTL cache for the storefront catalog
type CatalogCache struct {
	ttl time.Duration
	now func() time.Time

	artworksMu sync.RWMutex
	artworks   *artworksEntry

	categoriesMu sync.RWMutex
	categories   *categoriesEntry
}

// NewCatalogCache creates a cache; ttl <= 0 uses TTL
func NewCatalogCache(ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = TTL
	}
	return &CatalogCache{ttl: ttl, now: time.Now}
}

func (c *CatalogCache) fresh(fetchedAt time.Time) bool {
	return c.now().Sub(fetchedAt) < c.ttl
}

// GetArtworks returns the cached list. Callers must not modify it.
func (c *CatalogCache) GetArtworks() ([]models.Artwork, bool) {
	c.artworksMu.RLock()
	defer c.artworksMu.RUnlock()
	if c.artworks != nil && c.fresh(c.artworks.fetchedAt) {
		return c.artworks.data, true
	}
	return nil, false
}

func (c *CatalogCache) SetArtworks(data []models.Artwork) {
	c.artworksMu.Lock()
	defer c.artworksMu.Unlock()
	c.artworks = &artworksEntry{data: data, fetchedAt: c.now()}
}

func (c *CatalogCache) GetCategories() ([]models.Category, bool) {
	c.categoriesMu.RLock()
	defer c.categoriesMu.RUnlock()
	if c.categories != nil && c.fresh(c.categories.fetchedAt) {
		return c.categories.data, true
	}
	return nil, false
}

func (c *CatalogCache) SetCategories(data []models.Category) {
	c.categoriesMu.Lock()
	defer c.categoriesMu.Unlock()
	c.categories = &categoriesEntry{data: data, fetchedAt: c.now()}
}

// ── Invalidate everything (content publish webhook) ──────────────────────────

func (c *CatalogCache) Invalidate() {
	c.artworksMu.Lock()
	c.artworks = nil
	c.artworksMu.Unlock()

	c.categoriesMu.Lock()
	c.categories = nil
	c.categoriesMu.Unlock()
}
