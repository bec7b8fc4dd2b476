package product

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/MostafaGhazall/E-commerce-Website/internal/db"
	"github.com/MostafaGhazall/E-commerce-Website/internal/domain"
	"go.etcd.io/bbolt"
)

type boltRepo struct {
	db     *bbolt.DB
	logger *log.Logger
}

func NewBolt(database *bbolt.DB, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &boltRepo{db: database, logger: logger}
}

func (r *boltRepo) GetAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var result []domain.Product
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(db.BucketProducts)
		if bucket == nil {
			return domain.ErrStorageUnavailable
		}
		return bucket.ForEach(func(_, v []byte) error {
			var p domain.Product
			if err := json.Unmarshal(v, &p); err != nil {
				return err
			}
			result = append(result, p)
			return nil
		})
	})
	if err != nil {
		r.logger.Printf("product repo: get all error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: get all count=%d", len(result))
	return result, nil
}

func (r *boltRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var p domain.Product
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(db.BucketProducts)
		if bucket == nil {
			return domain.ErrStorageUnavailable
		}
		raw := bucket.Get([]byte(id))
		if raw == nil {
			return domain.ErrNotFound
		}
		return json.Unmarshal(raw, &p)
	})
	if err != nil {
		if err != domain.ErrNotFound {
			r.logger.Printf("product repo: get id=%s error=%v", id, err)
		}
		return nil, err
	}
	return &p, nil
}

// AddMany upserts by id, so re-seeding the same dataset leaves each product
// stored exactly once.
func (r *boltRepo) AddMany(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(db.BucketProducts)
		if bucket == nil {
			return domain.ErrStorageUnavailable
		}
		for _, p := range products {
			raw, err := json.Marshal(p)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(p.ID), raw); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Printf("product repo: add many count=%d error=%v", len(products), err)
		return err
	}
	r.logger.Printf("product repo: add many count=%d", len(products))
	return nil
}

func (r *boltRepo) AppendReview(ctx context.Context, productID string, review domain.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(db.BucketProducts)
		if bucket == nil {
			return domain.ErrStorageUnavailable
		}
		raw := bucket.Get([]byte(productID))
		if raw == nil {
			return domain.ErrNotFound
		}
		var p domain.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		p.Reviews = append(p.Reviews, review)
		updated, err := json.Marshal(p)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(productID), updated)
	})
	if err != nil {
		r.logger.Printf("product repo: append review id=%s error=%v", productID, err)
		return err
	}
	r.logger.Printf("product repo: append review id=%s reviewer=%s", productID, review.Name)
	return nil
}
