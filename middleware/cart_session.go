package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
	"github.com/shrawan-shakya/shakya-gallery-sub000/utils"
)

const (
	CartCookie       = "gallery_cart"
	cartSessionIDKey = "cartSessionID"
)

// CartSession reads the anonymous cart cookie, minting a new id when it is
// absent or malformed
func CartSession(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CartCookie)
		if err != nil || uuid.Validate(id) != nil {
			newID, err := uuid.NewV7()
			if err != nil {
				utils.Log.Errorf("[cart.session] failed to mint id: %v", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			id = newID.String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CartCookie, id, int(services.CartTTL.Seconds()), "/", "", secureCookie, true)
		}

		c.Set(cartSessionIDKey, id)
		c.Next()
	}
}

// GetCartSessionID returns the id set by CartSession
func GetCartSessionID(c *gin.Context) string {
	return c.GetString(cartSessionIDKey)
}
