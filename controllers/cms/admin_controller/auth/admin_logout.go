package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clears the admin token cookie
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", secureCookies, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
