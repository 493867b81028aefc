package term

import (
	"context"
)

type Repository interface {
	FindAll(ctx context.Context, options *FindOptions) ([]*Term, error)
	FindTermIdsByPostIds(ctx context.Context, postIds []int64) (map[int64][]int64, error)
	Create(ctx context.Context, term *Term) (*Term, error)
	SetPostTerms(ctx context.Context, postId int64, termIds []int64) error
}
