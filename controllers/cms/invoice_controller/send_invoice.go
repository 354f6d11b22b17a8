package invoice_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// SendInvoice godoc
// @Summary Email an invoice to the customer
// @Description Renders the PDF, archives it and emails it to the customer. The invoice moves to sent.
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.ApiResponse{data=models.Invoice}
// @Failure 400 {object} models.ApiResponse "Invalid invoice ID"
// @Failure 404 {object} models.ApiResponse "Invoice not found"
// @Failure 409 {object} models.ApiResponse "Invoice already sent or closed"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/invoices/{id}/send [post]
func SendInvoice(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithCustomTimeout(config.SlowRequestTimeout)
	defer cancel()

	inv, err := invoiceService.Send(ctx, id)
	if err != nil {
		respondInvoiceError(c, "send", err)
		return
	}
	nameActivity(c, inv)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice sent to customer", inv))
}
