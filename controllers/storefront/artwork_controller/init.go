package artwork_controller

import (
	"github.com/gorilla/schema"

	"github.com/shrawan-shakya/shakya-gallery-sub000/services"
)

var (
	artworkService *services.ArtworkService
	webhookSecret  string
	queryDecoder   = newQueryDecoder()
)

// Init sets the service used by the artwork handlers
func Init(svc *services.ArtworkService, secret string) {
	artworkService = svc
	webhookSecret = secret
}

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}
