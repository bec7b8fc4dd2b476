package product

import (
	"context"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	AddMany(ctx context.Context, products []domain.Product) error
	AppendReview(ctx context.Context, productID string, review domain.Review) error
}
