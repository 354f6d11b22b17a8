package invoice_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// GetInvoices godoc
// @Summary List invoices
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, sent, paid, cancelled)
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Success 200 {object} models.ApiResponse{data=[]models.Invoice}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/invoices [get]
func GetInvoices(c *gin.Context) {
	params := models.InvoiceListParams{}
	if s := c.Query("status"); s != "" {
		params.Status = models.InvoiceStatus(s)
		if !params.Status.IsValid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status filter"))
			return
		}
	}
	if p, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = p
	}
	if l, err := strconv.Atoi(c.Query("limit")); err == nil {
		params.Limit = l
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	invoices, meta, err := invoiceService.List(ctx, params)
	if err != nil {
		respondInvoiceError(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Invoices retrieved successfully", invoices, meta))
}
