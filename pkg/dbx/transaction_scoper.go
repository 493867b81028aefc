package dbx

import (
	"context"
)

type TransactionScoper interface {
	InTransactionScope(ctx context.Context, transactionScope func(ctx context.Context) error) error
	// InReadScope shares one read-only transaction between every repository call
	// made with the scoped ctx.
	InReadScope(ctx context.Context, readScope func(ctx context.Context) error) error
}

func InReadScopeWithResult[T any](ctx context.Context, transactionScoper TransactionScoper, readScope func(ctx context.Context) (T, error)) (result T, err error) {
	err = transactionScoper.InReadScope(ctx, func(ctx context.Context) error {
		result, err = readScope(ctx)
		return err
	})
	return result, err
}
