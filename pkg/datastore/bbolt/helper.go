package bbolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/pressload/pkg/dbx"
)

func dbView[T any](ctx context.Context, db *bbolt.DB, bucketName string, callback func(*bbolt.Tx, *bbolt.Bucket) (T, error)) (T, error) {
	return dbTx(ctx, db, bucketName, false, callback)
}

func dbUpdate[T any](ctx context.Context, db *bbolt.DB, bucketName string, callback func(*bbolt.Tx, *bbolt.Bucket) (T, error)) (T, error) {
	return dbTx(ctx, db, bucketName, true, callback)
}

// dbTx runs callback in the transaction carried by ctx, or in a new one. Read-only
// callers get a nil bucket result short-circuit when the bucket does not exist yet.
func dbTx[T any](ctx context.Context, db *bbolt.DB, bucketName string, writable bool, callback func(*bbolt.Tx, *bbolt.Bucket) (T, error)) (T, error) {
	return dbx.InBBoltTransactionScopeWithResult(ctx, db, writable, func(ctx context.Context, tx *bbolt.Tx) (result T, err error) {
		var bucket *bbolt.Bucket
		if writable {
			bucket, err = tx.CreateBucketIfNotExists([]byte(bucketName))
			if err != nil {
				return result, err
			}
		} else {
			bucket = tx.Bucket([]byte(bucketName))
			if bucket == nil {
				return result, nil
			}
		}
		return callback(tx, bucket)
	})
}

func itob(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func btoi(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}

func getJSON[T any](bucket *bbolt.Bucket, id int64, name string) (*T, error) {
	data := bucket.Get(itob(id))
	if data == nil {
		return nil, nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s %d: %w", name, id, err)
	}
	return &value, nil
}

func putJSON(bucket *bbolt.Bucket, id int64, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %d: %w", name, id, err)
	}
	return bucket.Put(itob(id), data)
}

// nextId allocates the next sequence value of bucket as an entity id.
func nextId(bucket *bbolt.Bucket) (int64, error) {
	seq, err := bucket.NextSequence()
	if err != nil {
		return 0, err
	}
	return int64(seq), nil
}

func uniquePositive(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
