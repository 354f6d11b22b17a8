package invoice_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
)

// DownloadInvoicePDF godoc
// @Summary Download invoice PDF
// @Tags Invoices
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {file} file
// @Failure 400 {object} models.ApiResponse "Invalid invoice ID"
// @Failure 404 {object} models.ApiResponse "Invoice not found"
// @Router /admin/invoices/{id}/pdf [get]
func DownloadInvoicePDF(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	content, inv, err := invoiceService.PDF(ctx, id)
	if err != nil {
		respondInvoiceError(c, "pdf", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, inv.Number))
	c.Data(http.StatusOK, "application/pdf", content)
}
