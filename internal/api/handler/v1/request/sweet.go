package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/Bigstrengthboys/sweet-shop/internal/domain"
)

var errRestockQuantityNotPositive = errors.New("quantity must be at least 1")

func categoryRule() validation.Rule {
	categories := domain.SweetCategories()
	values := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		values = append(values, c)
	}

	return validation.In(values...)
}

// SaveSweetRequest covers both the create and the edit form. ImageURL may
// be a hosted path or an inline data-URL produced by the admin form's
// image picker.
type SaveSweetRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

func (req *SaveSweetRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Category, validation.Required, categoryRule()),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
	)
}

// RestockSweetRequest adds stock to an existing sweet. An omitted
// quantity means "use the default increment"; an explicit zero or
// negative quantity is rejected.
type RestockSweetRequest struct {
	Quantity *int `json:"quantity"`
}

func (req *RestockSweetRequest) Validate() error {
	// ozzo treats zero as empty and skips its rules, so the bound is
	// checked directly.
	if req.Quantity != nil && *req.Quantity < 1 {
		return errRestockQuantityNotPositive
	}

	return nil
}
