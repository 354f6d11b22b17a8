package artwork_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// GetArtworks godoc
// @Summary List artworks
// @Description Search, filter and sort the published catalog. The query runs in the content repository.
// @Tags store
// @Produce json
// @Param q query string false "Prefix search over title, artist and material"
// @Param category query []string false "Category titles (repeatable ?category=A&category=B)"
// @Param status query string false "Availability" Enums(all, available, sold) default(all)
// @Param sort query string false "Order" Enums(newest, price_asc, price_desc) default(newest)
// @Success 200 {object} models.ApiResponse{data=[]models.Artwork}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /store/artworks [get]
func GetArtworks(c *gin.Context) {
	var q models.ArtworkQuery
	if err := queryDecoder.Decode(&q, c.Request.URL.Query()); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}
	opts := q.FilterOptions()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	artworks, err := artworkService.FetchFiltered(ctx, opts)
	if err != nil {
		utils.Log.Errorf("[store.artworks] fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch artworks"))
		return
	}

	utils.Log.Debugf("[store.artworks] q=%q categories=%v status=%s sort=%s -> %d",
		opts.SearchQuery, opts.SelectedCategories, opts.StatusFilter, opts.SortOption, len(artworks))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Artworks retrieved successfully", artworks))
}
