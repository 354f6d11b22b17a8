package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// AddCartItem godoc
// @Summary Add an artwork to the selection
// @Description Adding an artwork that is already selected leaves the selection unchanged
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.CartItem true "Artwork snapshot"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse} "Already selected"
// @Success 201 {object} models.ApiResponse{data=models.CartResponse} "Added"
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /cart/items [post]
func AddCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	cart, err := loadCart(c)
	if err != nil {
		utils.Log.Errorf("[cart.add] load failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load selection"))
		return
	}

	added, err := cart.Add(c.Request.Context(), item)
	if err != nil {
		utils.Log.Errorf("[cart.add] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update selection"))
		return
	}

	if !added {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Artwork already in selection", cartResponse(cart)))
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Artwork added to selection", cartResponse(cart)))
}
