// Package batchloader batches and deduplicates "fetch entity by id" lookups made
// during one processing cycle.
//
// Callers queue ids from unrelated places without doing any I/O. A later Load,
// LoadAll or Get drains the queue of a type with exactly one FetchFunction call, and
// every id of that batch is cached, either with its value or as a confirmed miss, so
// nothing is fetched twice within the cycle.
//
//	loader := batchloader.New()
//	loader.RegisterLoader("users", fetchUsers)
//
//	for _, p := range posts {
//		loader.Queue("users", p.AuthorId)
//	}
//	if err := loader.LoadAll(ctx); err != nil {
//		return err
//	}
//	author, ok, err := loader.Get(ctx, "users", posts[0].AuthorId)
//
// A Loader is created per request and carried in the request context with
// NewContext; it is not a cross-request cache.
package batchloader
