package invoice_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// UpdateInvoiceStatus godoc
// @Summary Update invoice status
// @Description Manual reconciliation. pending -> sent|cancelled, sent -> paid|cancelled.
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param body body models.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Invoice}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Transition not allowed"
// @Router /admin/invoices/{id}/status [patch]
func UpdateInvoiceStatus(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}

	var req models.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	inv, err := invoiceService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		respondInvoiceError(c, "status", err)
		return
	}
	nameActivity(c, inv)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice status updated", inv))
}
