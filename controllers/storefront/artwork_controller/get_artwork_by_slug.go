package artwork_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// GetArtworkBySlug godoc
// @Summary Get a single artwork
// @Tags store
// @Produce json
// @Param slug path string true "Artwork slug"
// @Success 200 {object} models.ApiResponse{data=models.Artwork}
// @Failure 404 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/artworks/{slug} [get]
func GetArtworkBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	artwork, err := artworkService.BySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, services.ErrArtworkNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Artwork not found"))
			return
		}
		utils.Log.Errorf("[store.artwork] fetch %q failed: %v", slug, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch artwork"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Artwork retrieved successfully", artwork))
}
