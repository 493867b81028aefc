package bbolt

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/pressload/pkg/meta"
)

type metaRepository struct {
	db *bbolt.DB
}

func NewMetaRepository(db *bbolt.DB) meta.Repository {
	return &metaRepository{
		db: db,
	}
}

func metaBucket(kind meta.Kind) string {
	return string(kind) + "_meta"
}

func (r *metaRepository) FindByObjectIds(ctx context.Context, kind meta.Kind, objectIds []int64) (map[int64]meta.Values, error) {
	result, err := dbView(ctx, r.db, metaBucket(kind), func(tx *bbolt.Tx, bucket *bbolt.Bucket) (map[int64]meta.Values, error) {
		result := make(map[int64]meta.Values, len(objectIds))
		for _, id := range uniquePositive(objectIds) {
			values, err := getJSON[meta.Values](bucket, id, metaBucket(kind))
			if err != nil {
				return nil, err
			}
			if values != nil && len(*values) != 0 {
				result[id] = *values
			}
		}
		return result, nil
	})
	if result == nil && err == nil {
		result = map[int64]meta.Values{}
	}
	return result, err
}

func (r *metaRepository) Add(ctx context.Context, kind meta.Kind, objectId int64, key string, value string) error {
	_, err := dbUpdate(ctx, r.db, metaBucket(kind), func(tx *bbolt.Tx, bucket *bbolt.Bucket) (struct{}, error) {
		values, err := getJSON[meta.Values](bucket, objectId, metaBucket(kind))
		if err != nil {
			return struct{}{}, err
		}
		if values == nil {
			values = &meta.Values{}
		}
		values.Add(key, value)
		return struct{}{}, putJSON(bucket, objectId, metaBucket(kind), values)
	})
	return err
}
