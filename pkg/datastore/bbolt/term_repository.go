package bbolt

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/pressload/pkg/term"
)

const (
	termBucket             = "term"
	termRelationshipBucket = "term_relationship"
)

type termRepository struct {
	db *bbolt.DB
}

func NewTermRepository(db *bbolt.DB) term.Repository {
	return &termRepository{
		db: db,
	}
}

func (r *termRepository) FindAll(ctx context.Context, options *term.FindOptions) ([]*term.Term, error) {
	return dbView(ctx, r.db, termBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) ([]*term.Term, error) {
		matches := func(t *term.Term) bool {
			return options.Taxonomy == nil || t.Taxonomy == *options.Taxonomy
		}

		var terms []*term.Term
		if len(options.Ids) != 0 {
			for _, id := range uniquePositive(options.Ids) {
				t, err := getJSON[term.Term](bucket, id, "term")
				if err != nil {
					return nil, err
				}
				if t != nil && matches(t) {
					terms = append(terms, t)
				}
			}
			return terms, nil
		}

		err := bucket.ForEach(func(k, v []byte) error {
			var t *term.Term
			if err := json.Unmarshal(v, &t); err != nil {
				return fmt.Errorf("failed to unmarshal term: %w", err)
			}
			if matches(t) {
				terms = append(terms, t)
			}
			return nil
		})
		return terms, err
	})
}

func (r *termRepository) FindTermIdsByPostIds(ctx context.Context, postIds []int64) (map[int64][]int64, error) {
	result, err := dbView(ctx, r.db, termRelationshipBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) (map[int64][]int64, error) {
		result := make(map[int64][]int64, len(postIds))
		for _, postId := range uniquePositive(postIds) {
			termIds, err := getJSON[[]int64](bucket, postId, "term relationship")
			if err != nil {
				return nil, err
			}
			if termIds != nil && len(*termIds) != 0 {
				result[postId] = *termIds
			}
		}
		return result, nil
	})
	if result == nil && err == nil {
		result = map[int64][]int64{}
	}
	return result, err
}

func (r *termRepository) Create(ctx context.Context, t *term.Term) (*term.Term, error) {
	return dbUpdate(ctx, r.db, termBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) (*term.Term, error) {
		id, err := nextId(bucket)
		if err != nil {
			return nil, err
		}
		t.Id = id
		return t, putJSON(bucket, id, "term", t)
	})
}

func (r *termRepository) SetPostTerms(ctx context.Context, postId int64, termIds []int64) error {
	_, err := dbUpdate(ctx, r.db, termRelationshipBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) (struct{}, error) {
		termIds = uniquePositive(termIds)
		if len(termIds) == 0 {
			return struct{}{}, bucket.Delete(itob(postId))
		}
		return struct{}{}, putJSON(bucket, postId, "term relationship", termIds)
	})
	return err
}
