package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// RemoveCartItem godoc
// @Summary Remove an artwork from the selection
// @Tags cart
// @Produce json
// @Param id path string true "Artwork ID"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
	cart, err := loadCart(c)
	if err != nil {
		utils.Log.Errorf("[cart.remove] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load selection"))
		return
	}

	removed, err := cart.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Log.Errorf("[cart.remove] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update selection"))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Artwork not in selection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Artwork removed from selection", cartResponse(cart)))
}
