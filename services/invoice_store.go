package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// InvoiceNumberSequence backs invoice numbering
const InvoiceNumberSequence = "invoice_number_seq"

// InvoiceStore persists invoices
type InvoiceStore interface {
	Create(ctx context.Context, inv *models.Invoice) error
	List(ctx context.Context, params models.InvoiceListParams) ([]models.Invoice, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	Save(ctx context.Context, inv *models.Invoice) error
}

// InvoiceNumberer hands out human-readable invoice numbers
type InvoiceNumberer interface {
	NextInvoiceNumber(ctx context.Context, issuedAt time.Time) (string, error)
}

// FormatInvoiceNumber renders e.g. INV-2026-0042
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}

// PgInvoiceNumbers draws from a Postgres sequence
type PgInvoiceNumbers struct {
	pool *pgxpool.Pool
}

func NewPgInvoiceNumbers(pool *pgxpool.Pool) *PgInvoiceNumbers {
	return &PgInvoiceNumbers{pool: pool}
}

func (p *PgInvoiceNumbers) NextInvoiceNumber(ctx context.Context, issuedAt time.Time) (string, error) {
	var seq int64
	if err := p.pool.QueryRow(ctx, "SELECT nextval('"+InvoiceNumberSequence+"')").Scan(&seq); err != nil {
		return "", fmt.Errorf("next invoice number: %w", err)
	}
	return FormatInvoiceNumber(issuedAt.Year(), seq), nil
}

// GormInvoiceStore keeps invoices in Postgres
type GormInvoiceStore struct {
	db *gorm.DB
}

func NewGormInvoiceStore(db *gorm.DB) *GormInvoiceStore {
	return &GormInvoiceStore{db: db}
}

func (s *GormInvoiceStore) Create(ctx context.Context, inv *models.Invoice) error {
	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// List returns one page of invoices, newest first, with the total count
func (s *GormInvoiceStore) List(ctx context.Context, params models.InvoiceListParams) ([]models.Invoice, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Invoice{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	invoices := []models.Invoice{}
	offset := (params.Page - 1) * params.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(params.Limit).Find(&invoices).Error; err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, total, nil
}

func (s *GormInvoiceStore) Get(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

func (s *GormInvoiceStore) Save(ctx context.Context, inv *models.Invoice) error {
	if err := s.db.WithContext(ctx).Save(inv).Error; err != nil {
		return fmt.Errorf("save invoice: %w", err)
	}
	return nil
}
