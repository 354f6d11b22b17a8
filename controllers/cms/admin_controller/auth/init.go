package admin_auth_controller

import "github.com/shrawan-shakya/shakya-gallery-sub000/services"

var (
	authService   *services.AdminAuthService
	jwtService    *services.JWTService
	secureCookies bool
)

// Init sets the credential checker and token issuer
func Init(auth *services.AdminAuthService, jwt *services.JWTService, secure bool) {
	authService = auth
	jwtService = jwt
	secureCookies = secure
}
