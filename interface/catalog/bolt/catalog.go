package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/airbusgeo/geotransform/interface/catalog"
	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

var fitsBucket = []byte("fits")

type boltCatalog struct {
	db *bbolt.DB
}

// New opens (or creates) the bolt database at path
func New(ctx context.Context, path string) (catalog.Catalog, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt.New[%s]: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(fitsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bolt.New[%s]: %w", path, err)
	}
	return &boltCatalog{db: db}, nil
}

func (c *boltCatalog) Put(ctx context.Context, fit *geotransform.Fit) error {
	data, err := json.Marshal(fit)
	if err != nil {
		return fmt.Errorf("Put: %w", err)
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(fitsBucket).Put(fit.ID[:], data)
	})
}

func (c *boltCatalog) Get(ctx context.Context, id uuid.UUID) (*geotransform.Fit, error) {
	var fit *geotransform.Fit
	err := c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(fitsBucket).Get(id[:])
		if data == nil {
			return fmt.Errorf("%w: %s", catalog.ErrFitNotFound, id)
		}
		// data is only valid during the transaction: Unmarshal copies it
		fit = &geotransform.Fit{}
		return json.Unmarshal(data, fit)
	})
	if err != nil {
		return nil, fmt.Errorf("Get.%w", err)
	}
	return fit, nil
}

func (c *boltCatalog) List(ctx context.Context) ([]*geotransform.Fit, error) {
	var fits []*geotransform.Fit
	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(fitsBucket).ForEach(func(k, v []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fit := &geotransform.Fit{}
			if err := json.Unmarshal(v, fit); err != nil {
				return fmt.Errorf("fit %x: %w", k, err)
			}
			fits = append(fits, fit)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("List.%w", err)
	}
	sort.SliceStable(fits, func(i, j int) bool {
		return fits[i].CreatedAt.Before(fits[j].CreatedAt)
	})
	return fits, nil
}

func (c *boltCatalog) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(fitsBucket)
		if b.Get(id[:]) == nil {
			return fmt.Errorf("%w: %s", catalog.ErrFitNotFound, id)
		}
		return b.Delete(id[:])
	})
	if err != nil {
		return fmt.Errorf("Delete.%w", err)
	}
	return nil
}

func (c *boltCatalog) Close() error {
	return c.db.Close()
}
