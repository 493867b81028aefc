package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/UnAfraid/pressload/pkg/batchloader"
)

// NewBatchLoaderMiddleware gives every request its own loader, so nothing resolved
// for one request is visible to another.
func NewBatchLoaderMiddleware(newLoader func() *batchloader.Loader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loader := newLoader()
			ctx := batchloader.NewContext(r.Context(), loader)

			next.ServeHTTP(w, r.WithContext(ctx))

			if logrus.IsLevelEnabled(logrus.DebugLevel) {
				logrus.
					WithField("cycleId", uuid.NewString()).
					WithField("path", r.URL.Path).
					WithField("loaderStatus", loader.Status()).
					Debug("request loader released")
			}
		})
	}
}
