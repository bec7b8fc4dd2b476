package seed

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
	productrepo "github.com/MostafaGhazall/E-commerce-Website/internal/repository/product"
)

// FlagKey marks the catalog as already seeded.
const FlagKey = "productsSeeded"

type flagStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// IfEmpty populates the product store with the demo catalog once. The flag
// check makes repeat calls cheap and the upsert in AddMany makes even a
// racing double call harmless: each product ends up stored exactly once.
func IfEmpty(ctx context.Context, repo productrepo.Repository, flags flagStore, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if _, err := flags.Get(FlagKey); err == nil {
		logger.Printf("seed: already applied")
		return nil
	} else if err != domain.ErrNotFound {
		return fmt.Errorf("seed: read flag: %w", err)
	}

	products := DemoProducts()
	if err := repo.AddMany(ctx, products); err != nil {
		return fmt.Errorf("seed: add products: %w", err)
	}
	if err := flags.Set(FlagKey, []byte("true")); err != nil {
		return fmt.Errorf("seed: set flag: %w", err)
	}
	logger.Printf("seed: applied count=%d", len(products))
	return nil
}

// DemoProducts returns the built-in demo catalog.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Classic Tee",
			Price:       620,
			Description: "Embrace the beauty of simplicity and let your confidence shine through.",
			Images:      []string{"/assets/tee1.jpg", "/assets/tee2.jpg", "/assets/tee3.jpg"},
			Stock:       10,
			Rating:      4.4,
			Reviews: []domain.Review{
				{Comment: "الخامة جيدة والمقاس مضبوط ونفس شكل الصورة", Name: "Sara", Rating: 5, Date: "2024-11-01"},
				{Comment: "مغلف بطريقة جيدة جدا", Name: "Ali", Rating: 4, Date: "2024-10-20"},
			},
			Category: "clothing",
			Sizes:    []string{"M", "L", "XL", "XXL", "XXXL"},
			Colors: []domain.Color{
				{Name: "Dark Green", Value: "#006400", Images: []string{"/assets/tee1.jpg"}},
				{Name: "White", Value: "#ffffff", Images: []string{"/assets/tee3.jpg"}},
				{Name: "Black", Value: "#000000", Images: []string{"/assets/tee2.jpg"}},
			},
		},
		{
			ID:          "2",
			Name:        "Eco Bottle",
			Price:       150,
			Description: "Reusable water bottle made from eco-friendly materials.",
			Images:      []string{"/assets/bottle.jpg"},
			Stock:       20,
			Rating:      4.7,
			Reviews: []domain.Review{
				{Comment: "Useful and stylish", Name: "Mohamed", Rating: 5, Date: "2024-12-01"},
				{Comment: "Keeps water cold", Name: "Julia", Rating: 4, Date: "2024-11-15"},
			},
			Category: "accessories",
		},
	}
}
