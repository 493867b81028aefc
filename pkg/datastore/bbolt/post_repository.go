package bbolt

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/pressload/pkg/post"
)

const (
	postBucket = "post"
)

type postRepository struct {
	db *bbolt.DB
}

func NewPostRepository(db *bbolt.DB) post.Repository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) FindAll(ctx context.Context, options *post.FindOptions) ([]*post.Post, error) {
	return dbView(ctx, r.db, postBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) ([]*post.Post, error) {
		matches := func(p *post.Post) bool {
			return options.Status == nil || p.Status == *options.Status
		}

		var posts []*post.Post
		if len(options.Ids) != 0 {
			for _, id := range uniquePositive(options.Ids) {
				p, err := getJSON[post.Post](bucket, id, "post")
				if err != nil {
					return nil, err
				}
				if p != nil && matches(p) {
					posts = append(posts, p)
				}
			}
			return posts, nil
		}

		c := bucket.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			p, err := getJSON[post.Post](bucket, btoi(k), "post")
			if err != nil {
				return nil, err
			}
			if matches(p) {
				posts = append(posts, p)
			}
		}
		return posts, nil
	})
}

func (r *postRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	return dbUpdate(ctx, r.db, postBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) (*post.Post, error) {
		id, err := nextId(bucket)
		if err != nil {
			return nil, err
		}
		p.Id = id
		return p, putJSON(bucket, id, "post", p)
	})
}
