package inquiry_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// CreateInquiry godoc
// @Summary Inquire about the selected artworks
// @Description Emails the gallery with the visitor's details and selection, confirms to the visitor and empties the selection. No payment is taken.
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body models.InquiryRequest true "Contact details, optionally with items"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /inquiries [post]
func CreateInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := services.LoadCart(ctx, cartStore, middleware.GetCartSessionID(c))
	if err != nil {
		utils.Log.Errorf("[inquiry.create] load selection failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load selection"))
		return
	}

	items := req.Items
	if len(items) == 0 {
		items = cart.Items()
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Your selection is empty"))
		return
	}

	if err := mailer.Send(ctx, services.InquiryNotificationEmail(inboxEmail, req, items, currency)); err != nil {
		utils.Log.Errorf("[inquiry.create] notify gallery failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send inquiry"))
		return
	}

	if err := mailer.Send(ctx, services.InquiryConfirmationEmail(req, items, currency)); err != nil {
		utils.Log.Warnf("[inquiry.create] confirmation to %s failed: %v", req.Email, err)
	}

	if err := cart.Clear(ctx); err != nil {
		utils.Log.Warnf("[inquiry.create] clear selection failed: %v", err)
	}

	utils.Log.Infof("[inquiry.create] %d artworks from %s", len(items), req.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Inquiry sent", gin.H{"items": len(items)}))
}
