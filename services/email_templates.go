package services

import (
	"fmt"
	"html"
	"strings"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

const galleryName = "Shakya Gallery"

func emailLayout(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: Georgia, 'Times New Roman', serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 22px; letter-spacing: 2px; color: #262622;">%s</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; font-size: 14px; color: #262622;">
%s
      </td>
    </tr>
    <tr>
      <td style="padding-top: 16px; border-top: 1px solid #e5e5e0; font-size: 12px; color: #79776d;">%s</td>
    </tr>
  </table>
</body>
</html>
`, html.EscapeString(title), strings.ToUpper(galleryName), body, galleryName)
}

func selectionRows(items []models.CartItem, currency string) string {
	var rows strings.Builder
	for _, item := range items {
		price := "Price on request"
		if item.Price != nil {
			price = models.FormatPrice(*item.Price, currency)
		}
		rows.WriteString(fmt.Sprintf(`
        <tr>
          <td style="padding: 6px 0;">%s</td>
          <td style="padding: 6px 0; color: #79776d;">%s</td>
          <td style="padding: 6px 0; text-align: right;">%s</td>
        </tr>`, html.EscapeString(item.Title), html.EscapeString(item.Artist), html.EscapeString(price)))
	}
	return fmt.Sprintf(`<table width="100%%" cellpadding="0" cellspacing="0" border="0">%s
        </table>`, rows.String())
}

func paragraph(text string) string {
	escaped := html.EscapeString(text)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// InquiryNotificationEmail is sent to the gallery inbox when a visitor inquires about their selection
func InquiryNotificationEmail(inbox string, req models.InquiryRequest, items []models.CartItem, currency string) Email {
	var body strings.Builder
	body.WriteString(paragraph(fmt.Sprintf("New inquiry from %s <%s>", req.Name, req.Email)))
	if req.Phone != "" {
		body.WriteString(paragraph("Phone: " + req.Phone))
	}
	if req.Message != "" {
		body.WriteString(paragraph(req.Message))
	}
	body.WriteString(selectionRows(items, currency))

	subject := fmt.Sprintf("Inquiry from %s (%d %s)", req.Name, len(items), plural(len(items), "artwork", "artworks"))
	return Email{
		To:      []string{inbox},
		ReplyTo: req.Email,
		Subject: subject,
		HTML:    emailLayout(subject, body.String()),
	}
}

// InquiryConfirmationEmail acknowledges an inquiry to the visitor
func InquiryConfirmationEmail(req models.InquiryRequest, items []models.CartItem, currency string) Email {
	var body strings.Builder
	body.WriteString(paragraph(fmt.Sprintf("Dear %s,", req.Name)))
	body.WriteString(paragraph("Thank you for your interest. We have received your inquiry about the works below and will be in touch shortly."))
	body.WriteString(selectionRows(items, currency))

	subject := "We received your inquiry"
	return Email{
		To:      []string{req.Email},
		Subject: subject,
		HTML:    emailLayout(subject, body.String()),
	}
}

// ContactEmail forwards the contact form to the gallery inbox
func ContactEmail(inbox string, req models.ContactRequest) Email {
	subject := req.Subject
	if subject == "" {
		subject = "Website contact"
	}
	subject = fmt.Sprintf("%s (from %s)", subject, req.Name)

	var body strings.Builder
	body.WriteString(paragraph(fmt.Sprintf("%s <%s> wrote:", req.Name, req.Email)))
	body.WriteString(paragraph(req.Message))

	return Email{
		To:      []string{inbox},
		ReplyTo: req.Email,
		Subject: subject,
		HTML:    emailLayout(subject, body.String()),
	}
}

// InvoiceEmail delivers an invoice with its PDF attached
func InvoiceEmail(inv *models.Invoice, pdfContent []byte) Email {
	var body strings.Builder
	body.WriteString(paragraph(fmt.Sprintf("Dear %s,", inv.CustomerName)))
	body.WriteString(paragraph(fmt.Sprintf("Please find attached invoice %s for %s.", inv.Number, models.FormatPrice(inv.Total, inv.Currency))))
	if inv.DueDate != nil {
		body.WriteString(paragraph("Payment is due by " + inv.DueDate.Format("Jan 02, 2006") + "."))
	}
	if inv.Notes != "" {
		body.WriteString(paragraph(inv.Notes))
	}

	subject := fmt.Sprintf("Your invoice %s from %s", inv.Number, galleryName)
	return Email{
		To:      []string{inv.CustomerEmail},
		Subject: subject,
		HTML:    emailLayout(subject, body.String()),
		Attachments: []Attachment{
			{Filename: fmt.Sprintf("invoice-%s.pdf", inv.Number), Content: pdfContent},
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
