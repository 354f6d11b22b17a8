package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

type recordingMailer struct {
	sent []Email
	err  error
}

func (m *recordingMailer) Send(_ context.Context, email Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

type fakeArchive struct {
	archived []string
	deleted  []string
	err      error
}

func (a *fakeArchive) ArchivePDF(_ context.Context, _ []byte, publicID string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.archived = append(a.archived, publicID)
	return "https://res.cloudinary.com/demo/raw/upload/" + publicID + ".pdf", nil
}

func (a *fakeArchive) DeleteDocument(_ context.Context, publicID string) error {
	a.deleted = append(a.deleted, publicID)
	return nil
}

func newTestInvoiceService(mailer Mailer, archive DocumentArchive) *InvoiceService {
	svc := NewInvoiceService(NewMemoryInvoiceStore(), &MemoryInvoiceNumbers{}, mailer, archive, "usd")
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	svc.retryDelay = 0
	return svc
}

func invoiceRequest() models.CreateInvoiceRequest {
	return models.CreateInvoiceRequest{
		CustomerName:  "Asha Rai",
		CustomerEmail: "asha@example.com",
		Items: []models.InvoiceItem{
			{ArtworkID: "1", Title: "Mountain peaks", Artist: "Master A", Price: 1000, Quantity: 1},
		},
		Shipping:  75,
		DueInDays: 14,
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-2026-0007", FormatInvoiceNumber(2026, 7))
	assert.Equal(t, "INV-2026-12345", FormatInvoiceNumber(2026, 12345))
}

func TestInvoiceService_Create(t *testing.T) {
	svc := newTestInvoiceService(&recordingMailer{}, nil)

	inv, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, "INV-2026-0001", inv.Number)
	assert.Equal(t, "USD", inv.Currency)
	assert.Equal(t, models.InvoicePending, inv.Status)
	assert.Equal(t, 1075.0, inv.Total)
	require.NotNil(t, inv.DueDate)
	assert.Equal(t, 28, inv.DueDate.Day())

	second, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0002", second.Number)
}

func TestInvoiceService_List(t *testing.T) {
	svc := newTestInvoiceService(&recordingMailer{}, nil)
	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), invoiceRequest())
		require.NoError(t, err)
	}

	page, meta, err := svc.List(context.Background(), models.InvoiceListParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, 3, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)

	_, meta, err = svc.List(context.Background(), models.InvoiceListParams{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, maxInvoicePageSize, meta.Limit)
	assert.Equal(t, 1, meta.Page)
}

func TestInvoiceService_PDF(t *testing.T) {
	svc := newTestInvoiceService(&recordingMailer{}, nil)
	inv, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)

	content, got, err := svc.PDF(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.Number, got.Number)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestInvoiceService_Send(t *testing.T) {
	mailer := &recordingMailer{}
	archive := &fakeArchive{}
	svc := newTestInvoiceService(mailer, archive)

	inv, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)

	sent, err := svc.Send(context.Background(), inv.ID)
	require.NoError(t, err)

	assert.Equal(t, models.InvoiceSent, sent.Status)
	assert.NotNil(t, sent.SentAt)
	assert.Contains(t, sent.PDFURL, inv.Number)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"asha@example.com"}, mailer.sent[0].To)
	require.Len(t, mailer.sent[0].Attachments, 1)
	assert.Equal(t, "invoice-"+inv.Number+".pdf", mailer.sent[0].Attachments[0].Filename)

	_, err = svc.Send(context.Background(), inv.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestInvoiceService_SendMailFailure(t *testing.T) {
	archive := &fakeArchive{}
	svc := newTestInvoiceService(&recordingMailer{err: errors.New("smtp down")}, archive)

	inv, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), inv.ID)
	require.Error(t, err)
	assert.Equal(t, []string{inv.Number}, archive.deleted)

	stored, err := svc.Get(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePending, stored.Status)
}

func TestInvoiceService_SendArchiveFailureStillMails(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newTestInvoiceService(mailer, &fakeArchive{err: errors.New("quota")})

	inv, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)

	sent, err := svc.Send(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Empty(t, sent.PDFURL)
	assert.Len(t, mailer.sent, 1)
}

func TestInvoiceService_UpdateStatus(t *testing.T) {
	svc := newTestInvoiceService(&recordingMailer{}, nil)
	inv, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), inv.ID, models.InvoicePaid)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = svc.UpdateStatus(context.Background(), inv.ID, models.InvoiceSent)
	require.NoError(t, err)

	paid, err := svc.UpdateStatus(context.Background(), inv.ID, models.InvoicePaid)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)

	_, err = svc.UpdateStatus(context.Background(), inv.ID, models.InvoiceCancelled)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestInvoiceService_GetMissing(t *testing.T) {
	svc := newTestInvoiceService(&recordingMailer{}, nil)
	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrInvoiceNotFound)
}

// flakyStore fails the first failSaves calls to Save
type flakyStore struct {
	*MemoryInvoiceStore
	failSaves int
	saves     int
}

func (f *flakyStore) Save(ctx context.Context, inv *models.Invoice) error {
	f.saves++
	if f.saves <= f.failSaves {
		return errors.New("connection reset")
	}
	return f.MemoryInvoiceStore.Save(ctx, inv)
}

func TestInvoiceService_SendRetriesSave(t *testing.T) {
	store := &flakyStore{MemoryInvoiceStore: NewMemoryInvoiceStore(), failSaves: 2}
	mailer := &recordingMailer{}
	svc := NewInvoiceService(store, &MemoryInvoiceNumbers{}, mailer, nil, "USD")
	svc.retryDelay = 0

	inv, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)

	sent, err := svc.Send(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceSent, sent.Status)
	assert.Equal(t, 3, store.saves)
	assert.Len(t, mailer.sent, 1)
}

func TestInvoiceService_SendSaveFailureKeepsArchive(t *testing.T) {
	store := &flakyStore{MemoryInvoiceStore: NewMemoryInvoiceStore(), failSaves: 10}
	archive := &fakeArchive{}
	mailer := &recordingMailer{}
	svc := NewInvoiceService(store, &MemoryInvoiceNumbers{}, mailer, archive, "USD")
	svc.retryDelay = 0

	inv, err := svc.Create(context.Background(), invoiceRequest())
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), inv.ID)
	require.ErrorIs(t, err, ErrSentNotRecorded)
	assert.Contains(t, err.Error(), inv.Number)
	assert.Equal(t, sentSaveAttempts, store.saves)
	assert.Len(t, mailer.sent, 1)
	assert.Empty(t, archive.deleted)
}
