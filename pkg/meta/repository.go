package meta

import (
	"context"
)

type Repository interface {
	FindByObjectIds(ctx context.Context, kind Kind, objectIds []int64) (map[int64]Values, error)
	Add(ctx context.Context, kind Kind, objectId int64, key string, value string) error
}
