package cms_routes

import (
	"github.com/gin-gonic/gin"

	admin_controller "github.com/shrawan-shakya/shakya-gallery-sub000/controllers/cms/admin_controller"
	admin_auth "github.com/shrawan-shakya/shakya-gallery-sub000/controllers/cms/admin_controller/auth"
	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
)

// SetupAdminRoutes registers /admin and returns the authenticated group
func SetupAdminRoutes(rg *gin.RouterGroup, jwtService *services.JWTService) *gin.RouterGroup {
	admin := rg.Group("/admin")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	admin.POST("/login", admin_auth.AdminLogin)
	admin.POST("/logout", admin_auth.AdminLogout)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════
	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware(jwtService))
	{
		protected.GET("/me", admin_auth.GetAdminMe)
		protected.GET("/activity-logs", admin_controller.GetActivityLogs)
	}

	return protected
}
