package bbolt

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/pressload/pkg/comment"
)

const (
	commentBucket = "comment"
)

type commentRepository struct {
	db *bbolt.DB
}

func NewCommentRepository(db *bbolt.DB) comment.Repository {
	return &commentRepository{
		db: db,
	}
}

// CountApprovedByPostIds scans the comment bucket once for the whole id set.
func (r *commentRepository) CountApprovedByPostIds(ctx context.Context, postIds []int64) (map[int64]int, error) {
	wanted := make(map[int64]struct{}, len(postIds))
	for _, id := range uniquePositive(postIds) {
		wanted[id] = struct{}{}
	}

	counts, err := dbView(ctx, r.db, commentBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) (map[int64]int, error) {
		counts := make(map[int64]int)
		err := bucket.ForEach(func(k, v []byte) error {
			var c comment.Comment
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal comment %d: %w", btoi(k), err)
			}
			if _, ok := wanted[c.PostId]; ok && c.Approved {
				counts[c.PostId]++
			}
			return nil
		})
		return counts, err
	})
	if counts == nil && err == nil {
		counts = map[int64]int{}
	}
	return counts, err
}

func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	return dbUpdate(ctx, r.db, commentBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) (*comment.Comment, error) {
		id, err := nextId(bucket)
		if err != nil {
			return nil, err
		}
		c.Id = id
		return c, putJSON(bucket, id, "comment", c)
	})
}
