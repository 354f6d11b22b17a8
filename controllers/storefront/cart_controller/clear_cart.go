package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// ClearCart godoc
// @Summary Empty the selection
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	cart, err := loadCart(c)
	if err != nil {
		utils.Log.Errorf("[cart.clear] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load selection"))
		return
	}

	if err := cart.Clear(c.Request.Context()); err != nil {
		utils.Log.Errorf("[cart.clear] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update selection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selection cleared", cartResponse(cart)))
}
