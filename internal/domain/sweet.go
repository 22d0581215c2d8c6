package domain

import "time"

// Categories a sweet can belong to. The catalog filter treats the empty
// string and "all" as "any category".
const (
	CategoryTraditional = "traditional"
	CategoryPremium     = "premium"
	CategoryMilkBased   = "milk-based"
	CategoryCrispy      = "crispy"
	CategorySpongy      = "spongy"
	CategoryLadoos      = "ladoos"
	CategoryBaked       = "baked"
)

func SweetCategories() []string {
	return []string{
		CategoryTraditional,
		CategoryPremium,
		CategoryMilkBased,
		CategoryCrispy,
		CategorySpongy,
		CategoryLadoos,
		CategoryBaked,
	}
}

type Sweet struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InStock reports whether the sweet can still be purchased.
func (s *Sweet) InStock() bool {
	return s.Quantity > 0
}
