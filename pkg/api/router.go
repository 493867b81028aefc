package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/UnAfraid/pressload/pkg/api/internal/handler"
	postHandler "github.com/UnAfraid/pressload/pkg/api/internal/post"
	userHandler "github.com/UnAfraid/pressload/pkg/api/internal/user"
	"github.com/UnAfraid/pressload/pkg/batchloader"
	"github.com/UnAfraid/pressload/pkg/config"
	"github.com/UnAfraid/pressload/pkg/post"
)

func NewRouter(
	conf *config.Config,
	newLoader func() *batchloader.Loader,
	postService post.Service,
) http.Handler {
	corsMiddleware := cors.Handler(cors.Options{
		AllowedOrigins:   conf.CorsAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: conf.CorsAllowCredentials,
	})

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(corsMiddleware)

	router.HandleFunc("/health", func(writer http.ResponseWriter, request *http.Request) {})

	router.Route("/api", func(r chi.Router) {
		r.Use(handler.NewBatchLoaderMiddleware(newLoader))

		r.Mount("/posts", postHandler.NewPostHandler(postService))
		r.Mount("/users", userHandler.NewUserHandler())
	})

	return router
}
