package service

import (
	"strings"

	"github.com/Bigstrengthboys/sweet-shop/internal/domain"
)

// CategoryAll disables the category criterion, like the empty string.
const CategoryAll = "all"

// FilterCriteria narrows a catalog listing. All criteria are combined
// with AND; the price bounds are inclusive on both ends.
type FilterCriteria struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
}

// FilterSweets returns the sweets matching every criterion. It is a pure
// function: no I/O, input untouched, and it always returns a non-nil
// slice so an empty result stays distinguishable from "not loaded".
func FilterSweets(sweets []domain.Sweet, c FilterCriteria) []domain.Sweet {
	matched := make([]domain.Sweet, 0, len(sweets))

	search := strings.ToLower(c.Search)
	for _, sweet := range sweets {
		if !strings.Contains(strings.ToLower(sweet.Name), search) {
			continue
		}
		if c.Category != "" && c.Category != CategoryAll && sweet.Category != c.Category {
			continue
		}
		if sweet.Price < c.MinPrice || sweet.Price > c.MaxPrice {
			continue
		}

		matched = append(matched, sweet)
	}

	return matched
}
