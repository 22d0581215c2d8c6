package repository

import (
	"context"
	"fmt"

	"github.com/Bigstrengthboys/sweet-shop/internal/domain"
	"github.com/Bigstrengthboys/sweet-shop/internal/repository/dao"
)

var (
	ErrSweetNotFound   = dao.ErrSweetNotFound
	ErrSweetOutOfStock = dao.ErrSweetOutOfStock
)

type SweetDAO interface {
	FindAll(ctx context.Context) ([]dao.Sweet, error)
	FindByID(ctx context.Context, id uint) (dao.Sweet, error)
	Insert(ctx context.Context, sweet dao.Sweet) (dao.Sweet, error)
	Update(ctx context.Context, sweet dao.Sweet) (dao.Sweet, error)
	Delete(ctx context.Context, id uint) error
	Restock(ctx context.Context, id uint, amount int) (dao.Sweet, error)
	PurchaseOne(ctx context.Context, sweetID, userID uint) (dao.Sweet, dao.Purchase, error)
	FindPurchasesByUserID(ctx context.Context, userID uint) ([]dao.Purchase, error)
}

type SweetRepository struct {
	dao SweetDAO
}

func NewSweetRepository(dao SweetDAO) *SweetRepository {
	return &SweetRepository{
		dao: dao,
	}
}

func (r *SweetRepository) FindAll(ctx context.Context) ([]domain.Sweet, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	sweets := make([]domain.Sweet, 0, len(found))
	for _, s := range found {
		sweets = append(sweets, r.daoToDomain(s))
	}

	return sweets, nil
}

func (r *SweetRepository) FindByID(ctx context.Context, id uint) (domain.Sweet, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SweetRepository) Create(ctx context.Context, sweet domain.Sweet) (domain.Sweet, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(sweet))
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SweetRepository) Update(ctx context.Context, sweet domain.Sweet) (domain.Sweet, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(sweet))
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SweetRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SweetRepository) Restock(ctx context.Context, id uint, amount int) (domain.Sweet, error) {
	restocked, err := r.dao.Restock(ctx, id, amount)
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("r.dao.Restock -> %w", err)
	}

	return r.daoToDomain(restocked), nil
}

func (r *SweetRepository) PurchaseOne(ctx context.Context, sweetID, userID uint) (domain.Sweet, domain.Purchase, error) {
	sweet, purchase, err := r.dao.PurchaseOne(ctx, sweetID, userID)
	if err != nil {
		return domain.Sweet{}, domain.Purchase{}, fmt.Errorf("r.dao.PurchaseOne -> %w", err)
	}

	return r.daoToDomain(sweet), r.purchaseDaoToDomain(purchase), nil
}

func (r *SweetRepository) FindPurchasesByUserID(ctx context.Context, userID uint) ([]domain.Purchase, error) {
	found, err := r.dao.FindPurchasesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPurchasesByUserID -> %w", err)
	}

	purchases := make([]domain.Purchase, 0, len(found))
	for _, p := range found {
		purchases = append(purchases, r.purchaseDaoToDomain(p))
	}

	return purchases, nil
}

func (r *SweetRepository) domainToDao(s domain.Sweet) dao.Sweet {
	return dao.Sweet{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

func (r *SweetRepository) daoToDomain(s dao.Sweet) domain.Sweet {
	return domain.Sweet{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SweetRepository) purchaseDaoToDomain(p dao.Purchase) domain.Purchase {
	return domain.Purchase{
		ID:         p.ID,
		UserID:     p.UserID,
		SweetID:    p.SweetID,
		Quantity:   p.Quantity,
		TotalPrice: p.TotalPrice,
		CreatedAt:  p.CreatedAt,
	}
}
