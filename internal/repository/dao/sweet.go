package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSweetNotFound   = errors.New("sweet not found")
	ErrSweetOutOfStock = errors.New("sweet is out of stock")
)

type Sweet struct {
	ID uint `gorm:"primaryKey"`

	Name     string  `gorm:"not null"`
	Category string  `gorm:"not null;index"`
	Price    float64 `gorm:"not null"`
	Quantity int     `gorm:"not null;default:0"`

	Description string
	ImageURL    string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SweetDAO struct {
	db *gorm.DB
}

func NewSweetDAO(db *gorm.DB) *SweetDAO {
	return &SweetDAO{
		db: db,
	}
}

// FindAll returns the whole catalog, newest first.
func (d *SweetDAO) FindAll(ctx context.Context) ([]Sweet, error) {
	var sweets []Sweet

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&sweets)
	if result.Error != nil {
		return nil, result.Error
	}

	return sweets, nil
}

func (d *SweetDAO) FindByID(ctx context.Context, id uint) (Sweet, error) {
	var sweet Sweet

	result := d.db.WithContext(ctx).First(&sweet, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Sweet{}, ErrSweetNotFound
		}

		return Sweet{}, result.Error
	}

	return sweet, nil
}

func (d *SweetDAO) Insert(ctx context.Context, sweet Sweet) (Sweet, error) {
	result := d.db.WithContext(ctx).Create(&sweet)
	if result.Error != nil {
		return Sweet{}, result.Error
	}

	return sweet, nil
}

func (d *SweetDAO) Update(ctx context.Context, sweet Sweet) (Sweet, error) {
	result := d.db.WithContext(ctx).Model(&Sweet{ID: sweet.ID}).
		Select("Name", "Category", "Price", "Quantity", "Description", "ImageURL").
		Updates(sweet)
	if result.Error != nil {
		return Sweet{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Sweet{}, ErrSweetNotFound
	}

	return d.FindByID(ctx, sweet.ID)
}

func (d *SweetDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Sweet{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSweetNotFound
	}

	return nil
}

// Restock atomically adds amount to the sweet's quantity and returns the
// refreshed row.
func (d *SweetDAO) Restock(ctx context.Context, id uint, amount int) (Sweet, error) {
	result := d.db.WithContext(ctx).Model(&Sweet{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", amount))
	if result.Error != nil {
		return Sweet{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Sweet{}, ErrSweetNotFound
	}

	return d.FindByID(ctx, id)
}

// PurchaseOne decrements the sweet's stock by one and inserts the matching
// purchase row inside a single transaction. The row is locked first so the
// quantity can never drop below zero under concurrent purchases.
func (d *SweetDAO) PurchaseOne(ctx context.Context, sweetID, userID uint) (Sweet, Purchase, error) {
	var (
		sweet    Sweet
		purchase Purchase
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sweet, sweetID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrSweetNotFound
			}

			return result.Error
		}

		if sweet.Quantity <= 0 {
			return ErrSweetOutOfStock
		}

		if err := tx.Model(&Sweet{}).
			Where("id = ?", sweet.ID).
			Update("quantity", gorm.Expr("quantity - 1")).Error; err != nil {
			return err
		}
		sweet.Quantity--

		purchase = Purchase{
			UserID:     userID,
			SweetID:    sweet.ID,
			Quantity:   1,
			TotalPrice: sweet.Price,
		}

		return tx.Create(&purchase).Error
	})
	if err != nil {
		return Sweet{}, Purchase{}, err
	}

	return sweet, purchase, nil
}

// FindPurchasesByUserID returns the user's purchase history, newest first.
func (d *SweetDAO) FindPurchasesByUserID(ctx context.Context, userID uint) ([]Purchase, error) {
	var purchases []Purchase

	result := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases)
	if result.Error != nil {
		return nil, result.Error
	}

	return purchases, nil
}
