package product

import (
	"context"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
)

// Unavailable stands in for the repository when the embedded database could
// not be opened. Every call fails with ErrStorageUnavailable so callers take
// their snapshot-fallback path instead of crashing.
type Unavailable struct{}

func (Unavailable) GetAll(context.Context) ([]domain.Product, error) {
	return nil, domain.ErrStorageUnavailable
}

func (Unavailable) GetByID(context.Context, string) (*domain.Product, error) {
	return nil, domain.ErrStorageUnavailable
}

func (Unavailable) AddMany(context.Context, []domain.Product) error {
	return domain.ErrStorageUnavailable
}

func (Unavailable) AppendReview(context.Context, string, domain.Review) error {
	return domain.ErrStorageUnavailable
}
