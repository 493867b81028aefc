package loaders

import (
	"context"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/UnAfraid/pressload/pkg/batchloader"
)

// QueryCache keeps fetched entities across requests for a limited time. It sits
// between a loader and its adapter and only remembers ids that resolved to a value.
type QueryCache struct {
	c *cache.Cache
}

func NewQueryCache(expiration time.Duration, cleanupInterval time.Duration) *QueryCache {
	return &QueryCache{
		c: cache.New(expiration, cleanupInterval),
	}
}

// Wrap serves cached ids of loaderType from memory and forwards the rest to fetch in
// a single call. Entries are not invalidated before they expire.
func (qc *QueryCache) Wrap(loaderType batchloader.Type, fetch batchloader.FetchFunction) batchloader.FetchFunction {
	return func(ctx context.Context, ids []int64) (map[int64]any, error) {
		result := make(map[int64]any, len(ids))
		var misses []int64
		for _, id := range ids {
			if value, ok := qc.c.Get(cacheKey(loaderType, id)); ok {
				result[id] = value
				continue
			}
			misses = append(misses, id)
		}

		logrus.
			WithField("loaderType", loaderType).
			WithField("hits", len(result)).
			WithField("misses", len(misses)).
			Trace("query cache lookup")

		if len(misses) == 0 {
			return result, nil
		}

		values, err := fetch(ctx, misses)
		if err != nil {
			return nil, err
		}
		for id, value := range values {
			qc.c.SetDefault(cacheKey(loaderType, id), value)
			result[id] = value
		}
		return result, nil
	}
}

func cacheKey(loaderType batchloader.Type, id int64) string {
	return string(loaderType) + ":" + strconv.FormatInt(id, 10)
}
