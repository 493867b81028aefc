package batchloader

import (
	"context"
	"fmt"
)

// Typed is a view of one loader type with a compile-time value type.
type Typed[V any] struct {
	loader     *Loader
	loaderType Type
}

func For[V any](loader *Loader, loaderType Type) *Typed[V] {
	return &Typed[V]{
		loader:     loader,
		loaderType: loaderType,
	}
}

func (t *Typed[V]) Queue(ids ...int64) {
	t.loader.Queue(t.loaderType, ids...)
}

func (t *Typed[V]) Load(ctx context.Context) error {
	return t.loader.Load(ctx, t.loaderType)
}

func (t *Typed[V]) Get(ctx context.Context, id int64) (value V, ok bool, err error) {
	raw, ok, err := t.loader.Get(ctx, t.loaderType, id)
	if err != nil || !ok {
		return value, false, err
	}
	return t.cast(id, raw)
}

// GetMany queues ids, resolves them with at most one fetch and returns the found
// values keyed by id.
func (t *Typed[V]) GetMany(ctx context.Context, ids []int64) (map[int64]V, error) {
	t.loader.Queue(t.loaderType, ids...)
	if err := t.loader.Load(ctx, t.loaderType); err != nil {
		return nil, err
	}

	values := make(map[int64]V, len(ids))
	for _, id := range ids {
		value, ok, err := t.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			values[id] = value
		}
	}
	return values, nil
}

func (t *Typed[V]) GetAll() (map[int64]V, error) {
	raw := t.loader.GetAll(t.loaderType)
	values := make(map[int64]V, len(raw))
	for id, r := range raw {
		value, _, err := t.cast(id, r)
		if err != nil {
			return nil, err
		}
		values[id] = value
	}
	return values, nil
}

func (t *Typed[V]) Prime(data map[int64]V) {
	erased := make(map[int64]any, len(data))
	for id, value := range data {
		erased[id] = value
	}
	t.loader.Prime(t.loaderType, erased)
}

func (t *Typed[V]) cast(id int64, raw any) (value V, ok bool, err error) {
	if raw == nil {
		// resolved to a legitimate nil value
		return value, true, nil
	}
	value, ok = raw.(V)
	if !ok {
		return value, false, fmt.Errorf("%w: %s[%d] is %T, want %T", ErrTypeMismatch, t.loaderType, id, raw, value)
	}
	return value, true, nil
}
