package invoice_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

var invoiceService *services.InvoiceService

func Init(svc *services.InvoiceService) {
	invoiceService = svc
}

func parseInvoiceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid invoice ID"))
		return uuid.Nil, false
	}
	return id, true
}

// respondInvoiceError maps service errors to responses
func respondInvoiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, models.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Invoice not found"))
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
	case errors.Is(err, services.ErrSentNotRecorded):
		utils.Log.Errorf("[invoice.%s] %v", op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Invoice was emailed but its status could not be saved. Mark it as sent instead of sending again."))
	default:
		utils.Log.Errorf("[invoice.%s] %v", op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
	}
}

func nameActivity(c *gin.Context, inv *models.Invoice) {
	c.Set(middleware.ActivityResourceIDKey, inv.ID.String())
	c.Set(middleware.ActivityResourceNameKey, inv.Number)
}
