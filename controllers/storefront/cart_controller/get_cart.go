package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// GetCart godoc
// @Summary Get the current selection
// @Tags cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /cart [get]
func GetCart(c *gin.Context) {
	cart, err := loadCart(c)
	if err != nil {
		utils.Log.Errorf("[cart.get] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load selection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selection retrieved successfully", cartResponse(cart)))
}
