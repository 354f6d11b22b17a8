package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// MemoryInvoiceStore keeps invoices in process memory. Used in tests and local runs without Postgres.
type MemoryInvoiceStore struct {
	mu       sync.Mutex
	invoices map[uuid.UUID]models.Invoice
}

func NewMemoryInvoiceStore() *MemoryInvoiceStore {
	return &MemoryInvoiceStore{invoices: make(map[uuid.UUID]models.Invoice)}
}

func (m *MemoryInvoiceStore) Create(_ context.Context, inv *models.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := inv.BeforeCreate(nil); err != nil {
		return err
	}
	m.invoices[inv.ID] = *inv
	return nil
}

func (m *MemoryInvoiceStore) List(_ context.Context, params models.InvoiceListParams) ([]models.Invoice, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]models.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		if params.Status == "" || inv.Status == params.Status {
			all = append(all, inv)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (params.Page - 1) * params.Limit
	if start >= len(all) {
		return []models.Invoice{}, total, nil
	}
	end := start + params.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (m *MemoryInvoiceStore) Get(_ context.Context, id uuid.UUID) (*models.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.invoices[id]
	if !ok {
		return nil, models.ErrInvoiceNotFound
	}
	return &inv, nil
}

func (m *MemoryInvoiceStore) Save(_ context.Context, inv *models.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.invoices[inv.ID]; !ok {
		return models.ErrInvoiceNotFound
	}
	m.invoices[inv.ID] = *inv
	return nil
}

// MemoryInvoiceNumbers counts from 1 for the life of the process
type MemoryInvoiceNumbers struct {
	mu   sync.Mutex
	next int64
}

func (n *MemoryInvoiceNumbers) NextInvoiceNumber(_ context.Context, issuedAt time.Time) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	return FormatInvoiceNumber(issuedAt.Year(), n.next), nil
}
