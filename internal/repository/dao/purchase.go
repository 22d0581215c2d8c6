package dao

import "time"

// Purchase references its user and sweet by plain ID columns, without
// gorm associations. The history is append-only and must outlive the
// catalog row, so no foreign key may block deleting a sold sweet.
type Purchase struct {
	ID         uint    `gorm:"primaryKey"`
	UserID     uint    `gorm:"not null;index"`
	SweetID    uint    `gorm:"not null;index"`
	Quantity   int     `gorm:"not null;default:1"`
	TotalPrice float64 `gorm:"not null"`
	CreatedAt  time.Time
}

func (Purchase) TableName() string {
	return "purchases"
}
