package artwork_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// GetInstantArtworks godoc
// @Summary Filter the cached catalog
// @Description Instant filtering over the cached catalog. Substring search over title and artist, one category.
// @Tags store
// @Produce json
// @Param q query string false "Substring search over title and artist"
// @Param category query string false "Category title"
// @Param status query string false "Availability" Enums(all, available, sold) default(all)
// @Param sort query string false "Order" Enums(newest, price_asc, price_desc) default(newest)
// @Success 200 {object} models.ApiResponse{data=[]models.Artwork}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/artworks/instant [get]
func GetInstantArtworks(c *gin.Context) {
	var q models.ArtworkQuery
	if err := queryDecoder.Decode(&q, c.Request.URL.Query()); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	artworks, err := artworkService.Instant(ctx, q.ClientFilterOptions())
	if err != nil {
		utils.Log.Errorf("[store.artworks.instant] catalog unavailable: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch artworks"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Artworks retrieved successfully", artworks))
}
