package admin_auth_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate the gallery admin with email and password. Returns a JWT and sets it as a cookie.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	email, err := authService.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.Log.Infof("[admin.login] rejected: %s from %s, %s", req.Email, c.ClientIP(), utils.DescribeUserAgent(c.Request.UserAgent()))
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, expiresAt, err := jwtService.GenerateAdminJWT(email)
	if err != nil {
		utils.Log.Errorf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AdminTokenCookie,
		token,
		int(time.Until(expiresAt).Seconds()),
		"/",
		"",
		secureCookies,
		true,
	)

	utils.Log.Infof("[admin.login] success: %s from %s, %s", email, c.ClientIP(), utils.DescribeUserAgent(c.Request.UserAgent()))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Email:     email,
		Token:     token,
		ExpiresAt: expiresAt,
	}))
}
