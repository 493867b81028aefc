package post

import (
	"context"
)

type Repository interface {
	FindAll(ctx context.Context, options *FindOptions) ([]*Post, error)
	Create(ctx context.Context, post *Post) (*Post, error)
}
