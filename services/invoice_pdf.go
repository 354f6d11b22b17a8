package services

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
)

// pdfAmount keeps to ASCII; the core PDF fonts cannot draw most currency symbols
func pdfAmount(amount float64, currency string) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// RenderInvoicePDF lays out an invoice as an A4 PDF
func RenderInvoicePDF(inv *models.Invoice) ([]byte, error) {
	items, err := inv.LineItems()
	if err != nil {
		return nil, fmt.Errorf("decode invoice items: %w", err)
	}

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("SHAKYA GALLERY", props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(inv.CustomerName, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", inv.Number), props.Text{Size: 10, Color: darkGray, Align: consts.Right})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(inv.CustomerEmail, props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", inv.CreatedAt.Format("Jan 02, 2006")), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
	})

	if inv.CustomerAddress != "" || inv.DueDate != nil {
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(inv.CustomerAddress, props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(6, func() {
				if inv.DueDate != nil {
					m.Text(fmt.Sprintf("Due: %s", inv.DueDate.Format("Jan 02, 2006")), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
				}
			})
		})
	}

	m.Row(8, func() {})

	header := props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right}
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Artwork", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() { m.Text("Qty", header) })
		m.Col(2, func() { m.Text("Price", header) })
		m.Col(2, func() { m.Text("Total", header) })
	})

	cell := props.Text{Size: 9, Color: darkGray, Align: consts.Right}
	for _, item := range items {
		label := item.Title
		if item.Artist != "" {
			label = fmt.Sprintf("%s, %s", item.Title, item.Artist)
		}
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(label, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() { m.Text(fmt.Sprintf("%d", item.Quantity), cell) })
			m.Col(2, func() { m.Text(pdfAmount(item.Price, inv.Currency), cell) })
			m.Col(2, func() { m.Text(pdfAmount(item.Subtotal(), inv.Currency), cell) })
		})
	}

	m.Row(8, func() {})

	summaryRow := func(label string, amount float64) {
		m.Row(5, func() {
			m.Col(8, func() {})
			m.Col(2, func() {
				m.Text(label, props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(pdfAmount(amount, inv.Currency), cell)
			})
		})
	}
	summaryRow("Subtotal", inv.Subtotal)
	if inv.Shipping > 0 {
		summaryRow("Shipping", inv.Shipping)
	}
	if inv.Tax > 0 {
		summaryRow("Tax", inv.Tax)
	}
	if inv.Discount > 0 {
		summaryRow("Discount", -inv.Discount)
	}

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(pdfAmount(inv.Total, inv.Currency), props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	m.Row(12, func() {})

	if inv.Notes != "" {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(inv.Notes, props.Text{Size: 9, Color: mediumGray})
			})
		})
	}

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Payment is arranged directly with the gallery. Thank you.", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
