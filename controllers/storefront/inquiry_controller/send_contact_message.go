package inquiry_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// SendContactMessage godoc
// @Summary Contact form
// @Tags inquiries
// @Accept json
// @Produce json
// @Param message body models.ContactRequest true "Message"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /contact [post]
func SendContactMessage(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := mailer.Send(ctx, services.ContactEmail(inboxEmail, req)); err != nil {
		utils.Log.Errorf("[contact.send] failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to send message"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message sent", nil))
}
