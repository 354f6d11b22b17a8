package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

type countingPersistence struct {
	*MemoryCartPersistence
	loads, saves int
	saveErr      error
}

func (c *countingPersistence) Load(ctx context.Context, id string) ([]models.CartItem, error) {
	c.loads++
	return c.MemoryCartPersistence.Load(ctx, id)
}

func (c *countingPersistence) Save(ctx context.Context, id string, items []models.CartItem) error {
	c.saves++
	if c.saveErr != nil {
		return c.saveErr
	}
	return c.MemoryCartPersistence.Save(ctx, id, items)
}

func TestCart_LoadsOnceAndSavesOnMutation(t *testing.T) {
	ctx := context.Background()
	store := &countingPersistence{MemoryCartPersistence: NewMemoryCartPersistence()}

	cart, err := LoadCart(ctx, store, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, store.loads)
	assert.Empty(t, cart.Items())

	changed, err := cart.Add(ctx, models.CartItem{ArtworkID: "a", Title: "Mountain peaks"})
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = cart.Add(ctx, models.CartItem{ArtworkID: "a", Title: "Mountain peaks"})
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = cart.Add(ctx, models.CartItem{ArtworkID: "b", Title: "Ocean breeze"})
	require.NoError(t, err)
	assert.Equal(t, 2, store.saves)

	reloaded, err := LoadCart(ctx, store, "s1")
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ArtworkID)
	assert.False(t, items[0].AddedAt.IsZero())
}

func TestCart_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCartPersistence()
	cart, _ := LoadCart(ctx, store, "s1")
	_, _ = cart.Add(ctx, models.CartItem{ArtworkID: "a", Title: "A"})
	_, _ = cart.Add(ctx, models.CartItem{ArtworkID: "b", Title: "B"})

	changed, err := cart.Remove(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = cart.Remove(ctx, "a")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, cart.Items(), 1)

	require.NoError(t, cart.Clear(ctx))
	assert.Empty(t, cart.Items())

	reloaded, _ := LoadCart(ctx, store, "s1")
	assert.Empty(t, reloaded.Items())
}

func TestCart_FailedSaveKeepsState(t *testing.T) {
	ctx := context.Background()
	store := &countingPersistence{MemoryCartPersistence: NewMemoryCartPersistence()}
	cart, _ := LoadCart(ctx, store, "s1")
	_, _ = cart.Add(ctx, models.CartItem{ArtworkID: "a", Title: "A"})

	store.saveErr = errors.New("redis down")
	_, err := cart.Add(ctx, models.CartItem{ArtworkID: "b", Title: "B"})
	assert.Error(t, err)
	assert.Len(t, cart.Items(), 1)
}

func TestCart_ItemsIsACopy(t *testing.T) {
	ctx := context.Background()
	cart, _ := LoadCart(ctx, NewMemoryCartPersistence(), "s1")
	_, _ = cart.Add(ctx, models.CartItem{ArtworkID: "a", Title: "A"})

	items := cart.Items()
	items[0].Title = "changed"
	assert.Equal(t, "A", cart.Items()[0].Title)
}
