package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/config"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

var artworkService *services.ArtworkService

func Init(svc *services.ArtworkService) {
	artworkService = svc
}

// GetCategories godoc
// @Summary Filter bar categories
// @Description Categories grouped by type (style, subject, medium, collection)
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.GroupedCategories}
// @Failure 502 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := artworkService.Categories(ctx)
	if err != nil {
		utils.Log.Errorf("[store.categories] fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", models.GroupCategories(categories)))
}
