package batchloader

import (
	"context"
)

type contextKey struct{ name string }

var loaderCtxKey = &contextKey{"batchLoader"}

func NewContext(ctx context.Context, loader *Loader) context.Context {
	return context.WithValue(ctx, loaderCtxKey, loader)
}

func FromContext(ctx context.Context) (*Loader, error) {
	loader, ok := ctx.Value(loaderCtxKey).(*Loader)
	if !ok || loader == nil {
		return nil, ErrNoLoader
	}
	return loader, nil
}
