package invoice_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
)

type recordingMailer struct {
	sent []services.Email
}

func (m *recordingMailer) Send(_ context.Context, email services.Email) error {
	m.sent = append(m.sent, email)
	return nil
}

func setupRouter(mailer services.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(services.NewInvoiceService(services.NewMemoryInvoiceStore(), &services.MemoryInvoiceNumbers{}, mailer, nil, "USD"))

	r := gin.New()
	inv := r.Group("/api/v1/admin/invoices")
	inv.POST("", CreateInvoice)
	inv.GET("", GetInvoices)
	inv.GET("/:id", GetInvoiceByID)
	inv.GET("/:id/pdf", DownloadInvoicePDF)
	inv.POST("/:id/send", SendInvoice)
	inv.PATCH("/:id/status", UpdateInvoiceStatus)
	return r
}

func call(r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInvoice(t *testing.T, w *httptest.ResponseRecorder) models.Invoice {
	t.Helper()
	var env struct {
		Data models.Invoice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func createBody() models.CreateInvoiceRequest {
	return models.CreateInvoiceRequest{
		CustomerName:  "Asha Rai",
		CustomerEmail: "asha@example.com",
		Items:         []models.InvoiceItem{{ArtworkID: "1", Title: "Mountain peaks", Price: 1000, Quantity: 1}},
	}
}

func TestInvoiceWorkflow(t *testing.T) {
	mailer := &recordingMailer{}
	r := setupRouter(mailer)

	w := call(r, http.MethodPost, "/api/v1/admin/invoices", createBody())
	require.Equal(t, http.StatusCreated, w.Code)
	inv := decodeInvoice(t, w)
	assert.Equal(t, models.InvoicePending, inv.Status)
	base := "/api/v1/admin/invoices/" + inv.ID.String()

	w = call(r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, inv.Number, decodeInvoice(t, w).Number)

	w = call(r, http.MethodGet, base+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), inv.Number)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = call(r, http.MethodPatch, base+"/status", models.UpdateInvoiceStatusRequest{Status: models.InvoicePaid})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(r, http.MethodPost, base+"/send", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.InvoiceSent, decodeInvoice(t, w).Status)
	assert.Len(t, mailer.sent, 1)

	w = call(r, http.MethodPatch, base+"/status", models.UpdateInvoiceStatusRequest{Status: models.InvoicePaid})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, decodeInvoice(t, w).PaidAt)

	w = call(r, http.MethodGet, "/api/v1/admin/invoices?status=paid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []models.Invoice  `json:"data"`
		Meta models.Pagination `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)
	assert.Equal(t, 1, list.Meta.Total)
}

func TestInvoiceErrors(t *testing.T) {
	r := setupRouter(&recordingMailer{})

	tests := []struct {
		name   string
		method string
		target string
		body   any
		code   int
	}{
		{"bad id", http.MethodGet, "/api/v1/admin/invoices/not-a-uuid", nil, http.StatusBadRequest},
		{"missing", http.MethodGet, "/api/v1/admin/invoices/" + uuid.NewString(), nil, http.StatusNotFound},
		{"bad status filter", http.MethodGet, "/api/v1/admin/invoices?status=lost", nil, http.StatusBadRequest},
		{"no items", http.MethodPost, "/api/v1/admin/invoices", models.CreateInvoiceRequest{CustomerName: "A", CustomerEmail: "a@example.com"}, http.StatusBadRequest},
		{"bad email", http.MethodPost, "/api/v1/admin/invoices", map[string]any{"customer_name": "A", "customer_email": "nope", "items": createBody().Items}, http.StatusBadRequest},
		{"unknown status", http.MethodPatch, "/api/v1/admin/invoices/" + uuid.NewString() + "/status", map[string]string{"status": "refunded"}, http.StatusBadRequest},
		{"send missing", http.MethodPost, "/api/v1/admin/invoices/" + uuid.NewString() + "/send", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(r, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
