package loaders

import (
	"github.com/UnAfraid/pressload/pkg/batchloader"
	"github.com/UnAfraid/pressload/pkg/comment"
	"github.com/UnAfraid/pressload/pkg/meta"
	"github.com/UnAfraid/pressload/pkg/post"
	"github.com/UnAfraid/pressload/pkg/term"
	"github.com/UnAfraid/pressload/pkg/user"
)

const (
	TypeUsers         batchloader.Type = "users"
	TypeUserMeta      batchloader.Type = "user_meta"
	TypePosts         batchloader.Type = "posts"
	TypePostMeta      batchloader.Type = "post_meta"
	TypeTerms         batchloader.Type = "terms"
	TypePostTerms     batchloader.Type = "post_terms"
	TypeCommentCounts batchloader.Type = "comment_counts"
)

type Services struct {
	User    user.Service
	Post    post.Service
	Meta    meta.Service
	Term    term.Service
	Comment comment.Service
}

type Option func(f *Factory)

func WithQueryCache(queryCache *QueryCache) Option {
	return func(f *Factory) {
		f.queryCache = queryCache
	}
}

func WithMetrics(metrics batchloader.Metrics) Option {
	return func(f *Factory) {
		f.metrics = metrics
	}
}

// Factory builds per-request loaders with the built-in adapters registered.
type Factory struct {
	services   Services
	queryCache *QueryCache
	metrics    batchloader.Metrics
}

func NewFactory(services Services, options ...Option) *Factory {
	f := &Factory{
		services: services,
	}
	for _, option := range options {
		option(f)
	}
	return f
}

func (f *Factory) New() *batchloader.Loader {
	loader := batchloader.New(batchloader.WithMetrics(f.metrics))

	loader.RegisterLoader(TypeUsers, f.cached(TypeUsers, batchloader.FetchFunc(usersFetcher(f.services.User))))
	loader.RegisterLoader(TypeUserMeta, batchloader.FetchFunc(metaFetcher(f.services.Meta, meta.KindUser)))
	loader.RegisterLoader(TypePosts, batchloader.FetchFunc(postsFetcher(f.services.Post)))
	loader.RegisterLoader(TypePostMeta, batchloader.FetchFunc(metaFetcher(f.services.Meta, meta.KindPost)))
	loader.RegisterLoader(TypeTerms, f.cached(TypeTerms, batchloader.FetchFunc(termsFetcher(f.services.Term))))
	loader.RegisterLoader(TypePostTerms, batchloader.FetchFunc(postTermsFetcher(f.services.Term)))
	loader.RegisterLoader(TypeCommentCounts, batchloader.FetchFunc(commentCountsFetcher(f.services.Comment)))

	return loader
}

func (f *Factory) cached(loaderType batchloader.Type, fetch batchloader.FetchFunction) batchloader.FetchFunction {
	if f.queryCache == nil {
		return fetch
	}
	return f.queryCache.Wrap(loaderType, fetch)
}

// Users is the typed view of the users loader.
func Users(loader *batchloader.Loader) *batchloader.Typed[*user.User] {
	return batchloader.For[*user.User](loader, TypeUsers)
}

func UserMeta(loader *batchloader.Loader) *batchloader.Typed[meta.Values] {
	return batchloader.For[meta.Values](loader, TypeUserMeta)
}

func Posts(loader *batchloader.Loader) *batchloader.Typed[*post.Post] {
	return batchloader.For[*post.Post](loader, TypePosts)
}

func PostMeta(loader *batchloader.Loader) *batchloader.Typed[meta.Values] {
	return batchloader.For[meta.Values](loader, TypePostMeta)
}

func Terms(loader *batchloader.Loader) *batchloader.Typed[*term.Term] {
	return batchloader.For[*term.Term](loader, TypeTerms)
}

func PostTerms(loader *batchloader.Loader) *batchloader.Typed[[]*term.Term] {
	return batchloader.For[[]*term.Term](loader, TypePostTerms)
}

func CommentCounts(loader *batchloader.Loader) *batchloader.Typed[int] {
	return batchloader.For[int](loader, TypeCommentCounts)
}
