package loaders

import (
	"context"

	"github.com/UnAfraid/pressload/pkg/batchloader"
	"github.com/UnAfraid/pressload/pkg/comment"
	"github.com/UnAfraid/pressload/pkg/meta"
	"github.com/UnAfraid/pressload/pkg/post"
	"github.com/UnAfraid/pressload/pkg/term"
	"github.com/UnAfraid/pressload/pkg/user"
)

func usersFetcher(userService user.Service) batchloader.TypedFetchFunction[*user.User] {
	return func(ctx context.Context, ids []int64) (map[int64]*user.User, error) {
		users, err := userService.FindUsers(ctx, &user.FindOptions{
			Ids: ids,
		})
		if err != nil {
			return nil, err
		}
		return keyBy(users, func(u *user.User) int64 { return u.Id }), nil
	}
}

func postsFetcher(postService post.Service) batchloader.TypedFetchFunction[*post.Post] {
	return func(ctx context.Context, ids []int64) (map[int64]*post.Post, error) {
		posts, err := postService.FindPosts(ctx, &post.FindOptions{
			Ids: ids,
		})
		if err != nil {
			return nil, err
		}
		return keyBy(posts, func(p *post.Post) int64 { return p.Id }), nil
	}
}

func termsFetcher(termService term.Service) batchloader.TypedFetchFunction[*term.Term] {
	return func(ctx context.Context, ids []int64) (map[int64]*term.Term, error) {
		terms, err := termService.FindTerms(ctx, &term.FindOptions{
			Ids: ids,
		})
		if err != nil {
			return nil, err
		}
		return keyBy(terms, func(t *term.Term) int64 { return t.Id }), nil
	}
}

func metaFetcher(metaService meta.Service, kind meta.Kind) batchloader.TypedFetchFunction[meta.Values] {
	return func(ctx context.Context, ids []int64) (map[int64]meta.Values, error) {
		return metaService.FindMeta(ctx, kind, ids)
	}
}

func postTermsFetcher(termService term.Service) batchloader.TypedFetchFunction[[]*term.Term] {
	return func(ctx context.Context, ids []int64) (map[int64][]*term.Term, error) {
		return termService.FindTermsByPostIds(ctx, ids)
	}
}

// commentCountsFetcher resolves every requested post, posts without approved
// comments count as 0.
func commentCountsFetcher(commentService comment.Service) batchloader.TypedFetchFunction[int] {
	return func(ctx context.Context, ids []int64) (map[int64]int, error) {
		return commentService.CountApprovedByPostIds(ctx, ids)
	}
}

func keyBy[T any](items []T, keyFn func(T) int64) map[int64]T {
	result := make(map[int64]T, len(items))
	for _, item := range items {
		result[keyFn(item)] = item
	}
	return result
}
