package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/UnAfraid/pressload/pkg/api/internal/handler"
	"github.com/UnAfraid/pressload/pkg/api/internal/model"
	"github.com/UnAfraid/pressload/pkg/batchloader"
	"github.com/UnAfraid/pressload/pkg/loaders"
)

type userHandler struct{}

func NewUserHandler() http.Handler {
	h := &userHandler{}

	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/{userId}", h.get)
	return r
}

// list returns the users named by ?ids=1,2,3 in request order. Unknown ids are
// left out.
func (h *userHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ids, err := handler.ParseIds(r.URL.Query().Get("ids"))
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}

	loader, err := batchloader.FromContext(ctx)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}

	users := loaders.Users(loader)
	userMeta := loaders.UserMeta(loader)
	users.Queue(ids...)
	userMeta.Queue(ids...)
	if err := loader.LoadAll(ctx); err != nil {
		handler.WriteError(w, r, err)
		return
	}

	result := make([]*model.User, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		u, ok, err := users.Get(ctx, id)
		if err != nil {
			handler.WriteError(w, r, err)
			return
		}
		if !ok {
			continue
		}
		values, _, err := userMeta.Get(ctx, id)
		if err != nil {
			handler.WriteError(w, r, err)
			return
		}
		result = append(result, model.ToUser(u, values))
	}
	handler.WriteJSON(w, http.StatusOK, result)
}

func (h *userHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userId, err := handler.ParseId(chi.URLParam(r, "userId"))
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}

	loader, err := batchloader.FromContext(ctx)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}

	loaders.Users(loader).Queue(userId)
	loaders.UserMeta(loader).Queue(userId)

	u, ok, err := loaders.Users(loader).Get(ctx, userId)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}
	if !ok {
		handler.WriteError(w, r, handler.ErrNotFound)
		return
	}

	values, _, err := loaders.UserMeta(loader).Get(ctx, userId)
	if err != nil {
		handler.WriteError(w, r, err)
		return
	}
	handler.WriteJSON(w, http.StatusOK, model.ToUser(u, values))
}
