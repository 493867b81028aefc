package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/UnAfraid/pressload/pkg/api/internal/model"
	"github.com/UnAfraid/pressload/pkg/post"
	"github.com/UnAfraid/pressload/pkg/user"
)

var (
	ErrInvalidId  = errors.New("invalid id")
	ErrIdRequired = errors.New("at least one id is required")
	ErrNotFound   = errors.New("not found")
)

func statusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidId),
		errors.Is(err, ErrIdRequired),
		errors.Is(err, post.ErrStatusInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound),
		errors.Is(err, post.ErrPostNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		logrus.
			WithError(err).
			WithField("method", r.Method).
			WithField("path", r.URL.Path).
			Error("request failed")
		message = http.StatusText(code)
	}
	WriteJSON(w, code, &model.Error{Error: message})
}
