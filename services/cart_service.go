package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// CartPersistence loads and saves a cart's items by session ID
type CartPersistence interface {
	Load(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
}

// Cart is the selection state for one visitor. It loads once at construction
// and saves after every mutation.
type Cart struct {
	mu        sync.Mutex
	sessionID string
	items     []models.CartItem
	store     CartPersistence
	now       func() time.Time
}

// LoadCart builds a cart for sessionID from store
func LoadCart(ctx context.Context, store CartPersistence, sessionID string) (*Cart, error) {
	items, err := store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return &Cart{sessionID: sessionID, items: items, store: store, now: time.Now}, nil
}

// Items returns a copy of the current selection
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartItem(nil), c.items...)
}

// Add appends item unless the artwork is already selected.
// It reports whether the cart changed.
func (c *Cart) Add(ctx context.Context, item models.CartItem) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.items {
		if existing.ArtworkID == item.ArtworkID {
			return false, nil
		}
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = c.now().UTC()
	}
	next := append(append([]models.CartItem(nil), c.items...), item)
	if err := c.store.Save(ctx, c.sessionID, next); err != nil {
		return false, fmt.Errorf("failed to save cart: %w", err)
	}
	c.items = next
	return true, nil
}

// Remove drops the artwork from the selection. It reports whether the cart changed.
func (c *Cart) Remove(ctx context.Context, artworkID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]models.CartItem, 0, len(c.items))
	for _, existing := range c.items {
		if existing.ArtworkID != artworkID {
			next = append(next, existing)
		}
	}
	if len(next) == len(c.items) {
		return false, nil
	}
	if err := c.store.Save(ctx, c.sessionID, next); err != nil {
		return false, fmt.Errorf("failed to save cart: %w", err)
	}
	c.items = next
	return true, nil
}

// Clear empties the selection
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Save(ctx, c.sessionID, []models.CartItem{}); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	c.items = []models.CartItem{}
	return nil
}

// ════════════════════════════════════════════════════════════
// Redis persistence
// ════════════════════════════════════════════════════════════

const (
	cartKeyPrefix = "cart:"
	CartTTL       = 30 * 24 * time.Hour
)

// RedisCartPersistence stores each cart as a JSON document with a sliding TTL
type RedisCartPersistence struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartPersistence(client *redis.Client) *RedisCartPersistence {
	return &RedisCartPersistence{client: client, ttl: CartTTL}
}

func (r *RedisCartPersistence) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	raw, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("corrupt cart %s: %w", sessionID, err)
	}
	return items, nil
}

func (r *RedisCartPersistence) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	key := cartKeyPrefix + sessionID
	if len(items) == 0 {
		return r.client.Del(ctx, key).Err()
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, raw, r.ttl).Err()
}

// ════════════════════════════════════════════════════════════
// In-memory persistence
// ════════════════════════════════════════════════════════════

// MemoryCartPersistence keeps carts in process memory
type MemoryCartPersistence struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewMemoryCartPersistence() *MemoryCartPersistence {
	return &MemoryCartPersistence{carts: map[string][]models.CartItem{}}
}

func (m *MemoryCartPersistence) Load(_ context.Context, sessionID string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CartItem{}, m.carts[sessionID]...), nil
}

func (m *MemoryCartPersistence) Save(_ context.Context, sessionID string, items []models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(items) == 0 {
		delete(m.carts, sessionID)
		return nil
	}
	m.carts[sessionID] = append([]models.CartItem(nil), items...)
	return nil
}
