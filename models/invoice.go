package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrInvalidTransition = errors.New("invalid invoice status transition")
)

// InvoiceStatus tracks manual reconciliation of an offline payment
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoicePending: {InvoiceSent, InvoiceCancelled},
	InvoiceSent:    {InvoicePaid, InvoiceCancelled},
}

// CanTransitionTo reports whether an invoice in status s may move to next.
// Paid and cancelled are terminal.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known status
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoicePending, InvoiceSent, InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// InvoiceItem is a line on an invoice, snapshotted at creation
type InvoiceItem struct {
	ArtworkID string  `json:"artwork_id" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Artist    string  `json:"artist,omitempty"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"gte=1"`
}

// Subtotal is price times quantity
func (i InvoiceItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Invoice is issued by the gallery for a sale settled offline
type Invoice struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Number          string         `gorm:"uniqueIndex;not null" json:"number"`
	CustomerName    string         `gorm:"not null" json:"customer_name"`
	CustomerEmail   string         `gorm:"not null;index" json:"customer_email"`
	CustomerPhone   string         `json:"customer_phone,omitempty"`
	CustomerAddress string         `json:"customer_address,omitempty"`
	Items           datatypes.JSON `gorm:"type:jsonb;not null" json:"items"`
	Currency        string         `gorm:"size:3;not null" json:"currency"`
	Subtotal        float64        `json:"subtotal"`
	Shipping        float64        `json:"shipping"`
	Tax             float64        `json:"tax"`
	Discount        float64        `json:"discount"`
	Total           float64        `json:"total"`
	Status          InvoiceStatus  `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	Notes           string         `json:"notes,omitempty"`
	DueDate         *time.Time     `json:"due_date,omitempty"`
	SentAt          *time.Time     `json:"sent_at,omitempty"`
	PaidAt          *time.Time     `json:"paid_at,omitempty"`
	PDFURL          string         `json:"pdf_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		i.ID = id
	}
	if i.Status == "" {
		i.Status = InvoicePending
	}
	return nil
}

// LineItems decodes the item snapshot
func (i *Invoice) LineItems() ([]InvoiceItem, error) {
	var items []InvoiceItem
	if len(i.Items) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(i.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetLineItems stores items and recomputes the subtotal and total
func (i *Invoice) SetLineItems(items []InvoiceItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	i.Items = datatypes.JSON(raw)

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Subtotal()
	}
	i.Subtotal = subtotal
	i.Total = subtotal + i.Shipping + i.Tax - i.Discount
	return nil
}

// CreateInvoiceRequest is the admin payload for a new invoice
type CreateInvoiceRequest struct {
	CustomerName    string        `json:"customer_name" binding:"required,max=200"`
	CustomerEmail   string        `json:"customer_email" binding:"required,email"`
	CustomerPhone   string        `json:"customer_phone" binding:"omitempty,max=40"`
	CustomerAddress string        `json:"customer_address" binding:"omitempty,max=500"`
	Items           []InvoiceItem `json:"items" binding:"required,min=1,dive"`
	Currency        string        `json:"currency" binding:"omitempty,len=3"`
	Shipping        float64       `json:"shipping" binding:"gte=0"`
	Tax             float64       `json:"tax" binding:"gte=0"`
	Discount        float64       `json:"discount" binding:"gte=0"`
	Notes           string        `json:"notes" binding:"omitempty,max=2000"`
	DueInDays       int           `json:"due_in_days" binding:"omitempty,gte=0,lte=365"`
}

// UpdateInvoiceStatusRequest is the admin payload for manual reconciliation
type UpdateInvoiceStatusRequest struct {
	Status InvoiceStatus `json:"status" binding:"required"`
}

// InvoiceListParams filters the admin invoice list
type InvoiceListParams struct {
	Status InvoiceStatus
	Page   int
	Limit  int
}
