package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

// AdminTokenCookie carries the admin JWT for browser sessions
const AdminTokenCookie = "admin_token"

// AdminAuthMiddleware validates the admin JWT from the cookie or the Authorization header
func AdminAuthMiddleware(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminTokenCookie)
		if err != nil || token == "" {
			token, err = utils.ExtractTokenFromHeader(c.GetHeader("Authorization"))
			if err != nil {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}
		}

		claims, err := jwtService.VerifyAdminJWT(token)
		if err != nil {
			utils.Log.Infof("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}

// GetAdminEmailFromContext returns the email set by AdminAuthMiddleware
func GetAdminEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("adminEmail")
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}
