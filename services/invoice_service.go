package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

const (
	defaultInvoicePageSize = 20
	maxInvoicePageSize     = 100

	sentSaveAttempts = 3
)

// ErrSentNotRecorded means the customer received the invoice email but the
// sent status could not be stored. Sending again would email them twice.
var ErrSentNotRecorded = errors.New("invoice emailed but not marked sent")

// InvoiceService issues invoices for sales settled outside the storefront
type InvoiceService struct {
	store    InvoiceStore
	numbers  InvoiceNumberer
	mailer   Mailer
	archive  DocumentArchive
	currency string
	now      func() time.Time
	// pause between attempts to record a sent invoice
	retryDelay time.Duration
}

// NewInvoiceService wires the invoice workflow. archive may be nil.
func NewInvoiceService(store InvoiceStore, numbers InvoiceNumberer, mailer Mailer, archive DocumentArchive, currency string) *InvoiceService {
	if currency == "" {
		currency = "USD"
	}
	return &InvoiceService{
		store:    store,
		numbers:  numbers,
		mailer:   mailer,
		archive:  archive,
		currency:   strings.ToUpper(currency),
		now:        time.Now,
		retryDelay: 250 * time.Millisecond,
	}
}

// Create numbers and stores a pending invoice
func (s *InvoiceService) Create(ctx context.Context, req models.CreateInvoiceRequest) (*models.Invoice, error) {
	issuedAt := s.now()

	number, err := s.numbers.NextInvoiceNumber(ctx, issuedAt)
	if err != nil {
		return nil, err
	}

	currency := s.currency
	if req.Currency != "" {
		currency = strings.ToUpper(req.Currency)
	}

	inv := &models.Invoice{
		Number:          number,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Currency:        currency,
		Shipping:        req.Shipping,
		Tax:             req.Tax,
		Discount:        req.Discount,
		Status:          models.InvoicePending,
		Notes:           req.Notes,
		CreatedAt:       issuedAt,
	}
	if req.DueInDays > 0 {
		due := issuedAt.AddDate(0, 0, req.DueInDays)
		inv.DueDate = &due
	}
	if err := inv.SetLineItems(req.Items); err != nil {
		return nil, fmt.Errorf("encode invoice items: %w", err)
	}

	if err := s.store.Create(ctx, inv); err != nil {
		return nil, err
	}

	utils.Log.Infof("[invoice.create] %s for %s, total %.2f %s", inv.Number, inv.CustomerEmail, inv.Total, inv.Currency)
	return inv, nil
}

// List normalises paging and returns one page with pagination metadata
func (s *InvoiceService) List(ctx context.Context, params models.InvoiceListParams) ([]models.Invoice, *models.Pagination, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultInvoicePageSize
	}
	if params.Limit > maxInvoicePageSize {
		params.Limit = maxInvoicePageSize
	}

	invoices, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return invoices, models.NewPagination(params.Page, params.Limit, total), nil
}

func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return s.store.Get(ctx, id)
}

// PDF renders the invoice document
func (s *InvoiceService) PDF(ctx context.Context, id uuid.UUID) ([]byte, *models.Invoice, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	content, err := RenderInvoicePDF(inv)
	if err != nil {
		return nil, nil, err
	}
	return content, inv, nil
}

// Send renders, archives and emails a pending invoice, then marks it sent.
// If the email fails the archived copy is removed and the invoice stays pending.
func (s *InvoiceService) Send(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.Status.CanTransitionTo(models.InvoiceSent) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, inv.Status, models.InvoiceSent)
	}

	content, err := RenderInvoicePDF(inv)
	if err != nil {
		return nil, err
	}

	archived := false
	if s.archive != nil {
		url, err := s.archive.ArchivePDF(ctx, content, inv.Number)
		if err != nil {
			utils.Log.Warnf("[invoice.send] archive failed for %s: %v", inv.Number, err)
		} else {
			inv.PDFURL = url
			archived = true
		}
	}

	if err := s.mailer.Send(ctx, InvoiceEmail(inv, content)); err != nil {
		if archived {
			if derr := s.archive.DeleteDocument(ctx, inv.Number); derr != nil {
				utils.Log.Warnf("[invoice.send] failed to remove archived %s: %v", inv.Number, derr)
			}
		}
		return nil, fmt.Errorf("send invoice email: %w", err)
	}

	sentAt := s.now()
	inv.Status = models.InvoiceSent
	inv.SentAt = &sentAt
	if err := s.saveSent(ctx, inv); err != nil {
		utils.Log.Errorw("[invoice.send] emailed but not marked sent, mark it sent manually",
			"invoice", inv.Number, "email", inv.CustomerEmail, "pdf_url", inv.PDFURL, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", ErrSentNotRecorded, inv.Number, err)
	}

	utils.Log.Infof("[invoice.send] %s sent to %s", inv.Number, inv.CustomerEmail)
	return inv, nil
}

// saveSent retries the store write, since the email has already gone out
func (s *InvoiceService) saveSent(ctx context.Context, inv *models.Invoice) error {
	var err error
	for attempt := 1; attempt <= sentSaveAttempts; attempt++ {
		if err = s.store.Save(ctx, inv); err == nil {
			return nil
		}
		utils.Log.Warnf("[invoice.send] saving %s failed (attempt %d/%d): %v", inv.Number, attempt, sentSaveAttempts, err)
		if attempt == sentSaveAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(s.retryDelay):
		}
	}
	return err
}

// UpdateStatus records a manual status change such as payment received
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, next models.InvoiceStatus) (*models.Invoice, error) {
	inv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !inv.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, inv.Status, next)
	}

	at := s.now()
	switch next {
	case models.InvoiceSent:
		inv.SentAt = &at
	case models.InvoicePaid:
		inv.PaidAt = &at
	}
	prev := inv.Status
	inv.Status = next

	if err := s.store.Save(ctx, inv); err != nil {
		return nil, err
	}

	utils.Log.Infof("[invoice.status] %s %s -> %s", inv.Number, prev, next)
	return inv, nil
}
