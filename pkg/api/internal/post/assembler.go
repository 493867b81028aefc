package post

import (
	"context"

	"github.com/UnAfraid/pressload/pkg/api/internal/model"
	"github.com/UnAfraid/pressload/pkg/batchloader"
	"github.com/UnAfraid/pressload/pkg/internal/adapt"
	"github.com/UnAfraid/pressload/pkg/loaders"
	"github.com/UnAfraid/pressload/pkg/post"
)

// queuePosts registers everything needed to render posts, without any I/O.
func queuePosts(loader *batchloader.Loader, posts []*post.Post) {
	authorIds := adapt.Ids(posts, func(p *post.Post) int64 { return p.AuthorId })
	postIds := adapt.Ids(posts, func(p *post.Post) int64 { return p.Id })

	loaders.Users(loader).Queue(authorIds...)
	loaders.UserMeta(loader).Queue(authorIds...)
	loaders.PostMeta(loader).Queue(postIds...)
	loaders.PostTerms(loader).Queue(postIds...)
	loaders.CommentCounts(loader).Queue(postIds...)
}

// assemblePost reads the relations of p from loader. Anything still queued is
// resolved on the spot.
func assemblePost(ctx context.Context, loader *batchloader.Loader, p *post.Post) (*model.Post, error) {
	result := model.ToPost(p)

	author, ok, err := loaders.Users(loader).Get(ctx, p.AuthorId)
	if err != nil {
		return nil, err
	}
	if ok {
		authorMeta, _, err := loaders.UserMeta(loader).Get(ctx, p.AuthorId)
		if err != nil {
			return nil, err
		}
		result.Author = model.ToUser(author, authorMeta)
	}

	postMeta, _, err := loaders.PostMeta(loader).Get(ctx, p.Id)
	if err != nil {
		return nil, err
	}
	result.Meta = postMeta

	terms, ok, err := loaders.PostTerms(loader).Get(ctx, p.Id)
	if err != nil {
		return nil, err
	}
	if ok {
		result.Terms = adapt.Array(terms, model.ToTerm)
	}

	commentCount, ok, err := loaders.CommentCounts(loader).Get(ctx, p.Id)
	if err != nil {
		return nil, err
	}
	result.CommentCount = adapt.ToPointerOk(commentCount, ok)

	return result, nil
}

func assemblePosts(ctx context.Context, loader *batchloader.Loader, posts []*post.Post) ([]*model.Post, error) {
	queuePosts(loader, posts)
	if err := loader.LoadAll(ctx); err != nil {
		return nil, err
	}

	result := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		assembled, err := assemblePost(ctx, loader, p)
		if err != nil {
			return nil, err
		}
		result = append(result, assembled)
	}
	return result, nil
}
