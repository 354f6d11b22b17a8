package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)
// Mailer sends transactional email
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// Email is a single outgoing message
type Email struct {
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Attachment is a file attached to an Email
type Attachment struct {
	Filename string
	Content  []byte
}

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
	client *resend.Client
}

// NewResendClient creates a new Resend client
func NewResendClient(apiKey, from string) *ResendClient {
	return &ResendClient{
		apiKey: apiKey,
		from:   from,
		client: resend.NewCustomClient(&http.Client{Timeout: 20 * time.Second}, apiKey),
	}
}

// WithEndpoint points the client at another API base URL
func (r *ResendClient) WithEndpoint(baseURL string, httpClient *http.Client) *ResendClient {
	if httpClient != nil {
		r.client = resend.NewCustomClient(httpClient, r.apiKey)
	}
	if u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/"); err == nil {
		r.client.BaseURL = u
	}
	return r
}

// Send posts the email to Resend. Delivery is not retried.
func (r *ResendClient) Send(ctx context.Context, email Email) error {
	if r.apiKey == "" {
		return fmt.Errorf("resend api key not configured")
	}

	req := &resend.SendEmailRequest{
		From:    r.from,
		To:      email.To,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTML,
	}
	for _, a := range email.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}

	sent, err := r.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		utils.Log.Errorf("[resend] failed to send %q: %v", email.Subject, err)
		return fmt.Errorf("resend: %w", err)
	}

	utils.Log.Infof("[resend] email %q sent to %v (%s)", email.Subject, email.To, sent.Id)
	return nil
}
