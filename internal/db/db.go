package db

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// BucketProducts holds the product catalog, keyed by product id.
var BucketProducts = []byte("products")

// Open opens the embedded database file and makes sure the application
// buckets exist. The open timeout bounds the wait on the file lock when
// another process holds the database.
func Open(path string, timeout time.Duration) (*bbolt.DB, error) {
	database, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	err = database.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(BucketProducts)
		return err
	})
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return database, nil
}
