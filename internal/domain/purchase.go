package domain

import "time"

// Purchase records a single checkout of one sweet. Records are append-only;
// TotalPrice is fixed at the sweet's unit price when the purchase happens.
type Purchase struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	SweetID    uint      `json:"sweet_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}
