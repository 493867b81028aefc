package batchloader

import (
	"context"
)

// FetchFunction resolves a batch of unique positive ids. Ids without a value must be
// left out of the returned map; an error is reserved for infrastructure failures.
type FetchFunction func(ctx context.Context, ids []int64) (map[int64]any, error)

// TypedFetchFunction is a FetchFunction with a known value type.
type TypedFetchFunction[V any] func(ctx context.Context, ids []int64) (map[int64]V, error)

// FetchFunc erases the value type of fetch.
func FetchFunc[V any](fetch TypedFetchFunction[V]) FetchFunction {
	return func(ctx context.Context, ids []int64) (map[int64]any, error) {
		values, err := fetch(ctx, ids)
		if err != nil {
			return nil, err
		}
		result := make(map[int64]any, len(values))
		for id, value := range values {
			result[id] = value
		}
		return result, nil
	}
}
