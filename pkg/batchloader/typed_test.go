package batchloader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type author struct {
	Id   int64
	Name string
}

func TestTypedGetMany(t *testing.T) {
	ctx := context.Background()
	var batches [][]int64
	loader := New()
	loader.RegisterLoader(usersType, FetchFunc[*author](func(_ context.Context, ids []int64) (map[int64]*author, error) {
		batches = append(batches, ids)
		result := make(map[int64]*author)
		for _, id := range ids {
			if id%2 == 1 {
				result[id] = &author{Id: id, Name: "odd"}
			}
		}
		return result, nil
	}))

	authors := For[*author](loader, usersType)
	values, err := authors.GetMany(ctx, []int64{1, 2, 3, 3})
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, int64(3), values[3].Id)
	assert.Len(t, batches, 1)

	a, ok, err := authors.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "odd", a.Name)

	_, ok, err = authors.Get(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := authors.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Len(t, batches, 1)
}

func TestTypedPrimeAndMismatch(t *testing.T) {
	ctx := context.Background()
	loader := New()

	For[string](loader, termsType).Prime(map[int64]string{4: "news"})

	name, ok, err := For[string](loader, termsType).Get(ctx, 4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "news", name)

	_, _, err = For[int](loader, termsType).Get(ctx, 4)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestTypedNilValue(t *testing.T) {
	loader := New()
	loader.Prime(usersType, map[int64]any{1: nil})

	a, ok, err := For[*author](loader, usersType).Get(context.Background(), 1)
	require.NoError(t, err)
	// Value() reports ok for a resolved nil
	assert.True(t, ok)
	assert.Nil(t, a)
}

func TestContext(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrNoLoader)

	loader := New()
	ctx := NewContext(context.Background(), loader)
	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, loader, got)
}
