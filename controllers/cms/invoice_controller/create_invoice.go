package invoice_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// CreateInvoice godoc
// @Summary Create an invoice
// @Description Issue a pending invoice for a sale settled offline
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoice body models.CreateInvoiceRequest true "Customer and line items"
// @Success 201 {object} models.ApiResponse{data=models.Invoice}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/invoices [post]
func CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	inv, err := invoiceService.Create(ctx, req)
	if err != nil {
		respondInvoiceError(c, "create", err)
		return
	}
	nameActivity(c, inv)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Invoice created successfully", inv))
}
