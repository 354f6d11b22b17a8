package inquiry_controller

import "github.com/shrawan-shakya/shakya-gallery-sub000/services"

var (
	mailer     services.Mailer
	cartStore  services.CartPersistence
	inboxEmail string
	currency   string
)

// Init sets the mailer, the cart store and the gallery inbox that receives inquiries
func Init(m services.Mailer, store services.CartPersistence, inbox, currencyCode string) {
	mailer = m
	cartStore = store
	inboxEmail = inbox
	currency = currencyCode
}
