package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// GetAdminMe godoc
// @Summary Current admin
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AdminResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /admin/me [get]
func GetAdminMe(c *gin.Context) {
	email, ok := middleware.GetAdminEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin retrieved successfully", models.AdminResponse{Email: email}))
}
