package artwork_controller

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

const webhookSecretHeader = "X-Webhook-Secret"

// ContentWebhook godoc
// @Summary Content changed notification
// @Description Called by the content repository after a publish. Drops the cached catalog.
// @Tags store
// @Produce json
// @Param X-Webhook-Secret header string true "Shared secret"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /store/webhooks/content [post]
func ContentWebhook(c *gin.Context) {
	given := c.GetHeader(webhookSecretHeader)
	if webhookSecret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(webhookSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	artworkService.Invalidate()
	utils.Log.Info("[store.webhook] catalog cache invalidated")

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog cache invalidated", nil))
}
