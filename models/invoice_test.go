package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to InvoiceStatus
		want     bool
	}{
		{InvoicePending, InvoiceSent, true},
		{InvoicePending, InvoiceCancelled, true},
		{InvoicePending, InvoicePaid, false},
		{InvoiceSent, InvoicePaid, true},
		{InvoiceSent, InvoiceCancelled, true},
		{InvoiceSent, InvoicePending, false},
		{InvoicePaid, InvoiceCancelled, false},
		{InvoiceCancelled, InvoiceSent, false},
		{InvoicePending, InvoicePending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestInvoice_SetLineItems(t *testing.T) {
	inv := &Invoice{Shipping: 50, Tax: 20, Discount: 10}
	require.NoError(t, inv.SetLineItems([]InvoiceItem{
		{ArtworkID: "a", Title: "Dawn", Price: 1000, Quantity: 1},
		{ArtworkID: "b", Title: "Print", Price: 150, Quantity: 2},
	}))

	assert.Equal(t, 1300.0, inv.Subtotal)
	assert.Equal(t, 1360.0, inv.Total)

	items, err := inv.LineItems()
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Print", items[1].Title)
}

func TestInvoice_LineItemsEmpty(t *testing.T) {
	items, err := (&Invoice{}).LineItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}
