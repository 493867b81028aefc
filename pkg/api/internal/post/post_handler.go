package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/UnAfraid/pressload/pkg/api/internal/handler"
	"github.com/UnAfraid/pressload/pkg/batchloader"
	"github.com/UnAfraid/pressload/pkg/internal/adapt"
	"github.com/UnAfraid/pressload/pkg/loaders"
	"github.com/UnAfraid/pressload/pkg/post"
)

type postHandler struct {
	postService post.Service
}

func NewPostHandler(postService post.Service) http.Handler {
	h := &postHandler{
		postService: postService,
	}

	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/{postId}", h.get)
	return r
}

func (h *postHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	options := &post.FindOptions{}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := post.Status(raw)
		if !status.Valid() {
			handler.WriteError(w, r, post.ErrStatusInvalid)
			return
		}
		options.Status = adapt.ToPointer(status)
	}

	posts, err := h.postService.FindPosts(ctx, options)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}

	loader, err := batchloader.FromContext(ctx)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}

	loaders.Posts(loader).Prime(keyById(posts))

	result, err := assemblePosts(ctx, loader, posts)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, result)
}

func (h *postHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postId, err := handler.ParseId(chi.URLParam(r, "postId"))
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}

	loader, err := batchloader.FromContext(ctx)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}

	posts := loaders.Posts(loader)
	posts.Queue(postId)
	p, ok, err := posts.Get(ctx, postId)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}
	if !ok {
		handler.WriteError(w, r, post.ErrPostNotFound)
		return
	}

	queuePosts(loader, []*post.Post{p})
	result, err := assemblePost(ctx, loader, p)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, result)
}

func keyById(posts []*post.Post) map[int64]*post.Post {
	result := make(map[int64]*post.Post, len(posts))
	for _, p := range posts {
		result[p.Id] = p
	}
	return result
}
