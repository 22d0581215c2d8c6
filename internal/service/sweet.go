package service

import (
	"context"
	"fmt"

	"github.com/Bigstrengthboys/sweet-shop/internal/domain"
	"github.com/Bigstrengthboys/sweet-shop/internal/repository"
)

var (
	ErrSweetNotFound   = repository.ErrSweetNotFound
	ErrSweetOutOfStock = repository.ErrSweetOutOfStock
)

// DefaultRestockAmount is added when a restock request carries no explicit
// quantity.
const DefaultRestockAmount = 10

type SweetRepository interface {
	FindAll(ctx context.Context) ([]domain.Sweet, error)
	FindByID(ctx context.Context, id uint) (domain.Sweet, error)
	Create(ctx context.Context, sweet domain.Sweet) (domain.Sweet, error)
	Update(ctx context.Context, sweet domain.Sweet) (domain.Sweet, error)
	Delete(ctx context.Context, id uint) error
	Restock(ctx context.Context, id uint, amount int) (domain.Sweet, error)
	PurchaseOne(ctx context.Context, sweetID, userID uint) (domain.Sweet, domain.Purchase, error)
	FindPurchasesByUserID(ctx context.Context, userID uint) ([]domain.Purchase, error)
}

type SweetService struct {
	repo SweetRepository
}

func NewSweetService(repo SweetRepository) *SweetService {
	return &SweetService{
		repo: repo,
	}
}

// ListSweets fetches the catalog (newest first) and applies the filter
// criteria in memory.
func (s *SweetService) ListSweets(ctx context.Context, criteria FilterCriteria) ([]domain.Sweet, error) {
	sweets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return FilterSweets(sweets, criteria), nil
}

func (s *SweetService) GetSweet(ctx context.Context, id uint) (domain.Sweet, error) {
	sweet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return sweet, nil
}

func (s *SweetService) CreateSweet(ctx context.Context, sweet domain.Sweet) (domain.Sweet, error) {
	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SweetService) UpdateSweet(ctx context.Context, sweet domain.Sweet) (domain.Sweet, error) {
	updated, err := s.repo.Update(ctx, sweet)
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SweetService) DeleteSweet(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// RestockSweet adds amount units to the sweet's stock. Amount zero falls
// back to DefaultRestockAmount; negative amounts are rejected at the
// request layer before reaching here.
func (s *SweetService) RestockSweet(ctx context.Context, id uint, amount int) (domain.Sweet, error) {
	if amount == 0 {
		amount = DefaultRestockAmount
	}

	sweet, err := s.repo.Restock(ctx, id, amount)
	if err != nil {
		return domain.Sweet{}, fmt.Errorf("s.repo.Restock -> %w", err)
	}

	return sweet, nil
}

// Purchase buys one unit of the sweet for the user. The stock decrement
// and the purchase record commit together or not at all.
func (s *SweetService) Purchase(ctx context.Context, sweetID, userID uint) (domain.Sweet, domain.Purchase, error) {
	sweet, purchase, err := s.repo.PurchaseOne(ctx, sweetID, userID)
	if err != nil {
		return domain.Sweet{}, domain.Purchase{}, fmt.Errorf("s.repo.PurchaseOne -> %w", err)
	}

	return sweet, purchase, nil
}

func (s *SweetService) ListPurchases(ctx context.Context, userID uint) ([]domain.Purchase, error) {
	purchases, err := s.repo.FindPurchasesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPurchasesByUserID -> %w", err)
	}

	return purchases, nil
}
