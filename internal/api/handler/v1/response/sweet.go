package response

import "github.com/Bigstrengthboys/sweet-shop/internal/domain"

// PurchaseResponse returns the purchase receipt together with the
// sweet's post-purchase state so the storefront can refresh its list.
type PurchaseResponse struct {
	Sweet    domain.Sweet    `json:"sweet"`
	Purchase domain.Purchase `json:"purchase"`
}
