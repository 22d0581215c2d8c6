package response

import "github.com/Bigstrengthboys/sweet-shop/internal/domain"

// LoginResponse is the session handed to the storefront: the bearer token
// plus the user record it caches.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
