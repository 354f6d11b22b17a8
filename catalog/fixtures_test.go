package catalog

import (
	"time"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

func price(v float64) *float64 { return &v }

// sampleArtworks is newest first, the order the content repository returns by default
func sampleArtworks() []models.Artwork {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Artwork{
		{ID: "1", Title: "Mountain peaks", Artist: "Master A", Status: models.StatusAvailable, Price: price(1000),
			Categories: []string{"Style A", "Landscape"}, CreatedAt: base},
		{ID: "2", Title: "Ocean breeze", Artist: "Master B", Status: models.StatusSold, Price: price(2000),
			Categories: []string{"Style B", "Ocean"}, CreatedAt: base.Add(-time.Hour)},
		{ID: "3", Title: "Mountain sunset", Artist: "Master C", Status: models.StatusAvailable, Price: price(500),
			Categories: []string{"Style A", "Landscape"}, CreatedAt: base.Add(-2 * time.Hour)},
	}
}

func ids(artworks []models.Artwork) []string {
	out := make([]string, len(artworks))
	for i, a := range artworks {
		out[i] = a.ID
	}
	return out
}
