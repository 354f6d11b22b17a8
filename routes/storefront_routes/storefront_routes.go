package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/storefront/artwork_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/storefront/cart_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/storefront/category_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/controllers/storefront/inquiry_controller"
	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	artworks := store.Group("/artworks")
	{
		artworks.GET("", artwork_controller.GetArtworks)
		artworks.GET("/instant", artwork_controller.GetInstantArtworks)
		artworks.GET("/:slug", artwork_controller.GetArtworkBySlug)
	}

	store.GET("/categories", category_controller.GetCategories)
	store.POST("/webhooks/content", artwork_controller.ContentWebhook)
}

// SetupSelectionRoutes registers the cart and the inquiry endpoints, which share the cart session
func SetupSelectionRoutes(router *gin.RouterGroup, secureCookies bool) {
	session := router.Group("", middleware.CartSession(secureCookies))

	cart := session.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.DELETE("/items/:id", cart_controller.RemoveCartItem)
		cart.DELETE("", cart_controller.ClearCart)
	}

	session.POST("/inquiries", inquiry_controller.CreateInquiry)
	router.POST("/contact", inquiry_controller.SendContactMessage)
}
