package comment

import (
	"context"
)

type Repository interface {
	// CountApprovedByPostIds returns counts only for posts with approved comments.
	CountApprovedByPostIds(ctx context.Context, postIds []int64) (map[int64]int, error)
	Create(ctx context.Context, comment *Comment) (*Comment, error)
}
