package models

import "time"

// CartItem is a static snapshot of an artwork selected for inquiry
type CartItem struct {
	ArtworkID string    `json:"artworkId" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	Artist    string    `json:"artist,omitempty"`
	Slug      string    `json:"slug,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Price     *float64  `json:"price,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

// CartResponse is returned by the cart endpoints
type CartResponse struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
}
