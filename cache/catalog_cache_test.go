package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

func TestCatalogCache_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCatalogCache(time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.GetArtworks()
	assert.False(t, ok)

	c.SetArtworks([]models.Artwork{{ID: "1"}})
	got, ok := c.GetArtworks()
	assert.True(t, ok)
	assert.Len(t, got, 1)

	now = now.Add(time.Minute)
	_, ok = c.GetArtworks()
	assert.False(t, ok)
}

func TestCatalogCache_Invalidate(t *testing.T) {
	c := NewCatalogCache(0)
	c.SetArtworks([]models.Artwork{{ID: "1"}})
	c.SetCategories([]models.Category{{Title: "Landscape", Type: models.CategorySubject}})

	c.Invalidate()

	_, ok := c.GetArtworks()
	assert.False(t, ok)
	_, ok = c.GetCategories()
	assert.False(t, ok)
}
