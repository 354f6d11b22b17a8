package cart_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/shrawan-shakya/shakya-gallery-sub000/middleware"
	"github.com/shrawan-shakya/shakya-gallery-sub000/models"
	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
)

var cartStore services.CartPersistence

// Init sets where carts are kept
func Init(store services.CartPersistence) {
	cartStore = store
}

func loadCart(c *gin.Context) (*services.Cart, error) {
	return services.LoadCart(c.Request.Context(), cartStore, middleware.GetCartSessionID(c))
}

func cartResponse(cart *services.Cart) models.CartResponse {
	items := cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	return models.CartResponse{Items: items, Count: len(items)}
}
