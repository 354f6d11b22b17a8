package invoice_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// GetInvoiceByID godoc
// @Summary Get an invoice
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.ApiResponse{data=models.Invoice}
// @Failure 400 {object} models.ApiResponse "Invalid invoice ID"
// @Failure 404 {object} models.ApiResponse "Invoice not found"
// @Router /admin/invoices/{id} [get]
func GetInvoiceByID(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	inv, err := invoiceService.Get(ctx, id)
	if err != nil {
		respondInvoiceError(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice retrieved successfully", inv))
}
