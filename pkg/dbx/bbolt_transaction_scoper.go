package dbx

import (
	"context"
	"errors"

	"go.etcd.io/bbolt"
)

type contextKey struct{ name string }

var bboltTxKey = contextKey{name: "bboltTxKey"}

var ErrReadOnlyTransaction = errors.New("write requested inside a read-only transaction")

type bboltTransactionScoper struct {
	db *bbolt.DB
}

func NewBBoltTransactionScoper(db *bbolt.DB) TransactionScoper {
	return &bboltTransactionScoper{
		db: db,
	}
}

func (bts *bboltTransactionScoper) InTransactionScope(ctx context.Context, transactionScope func(ctx context.Context) error) (err error) {
	return InBBoltTransactionScope(ctx, bts.db, true, func(ctx context.Context, tx *bbolt.Tx) error {
		return transactionScope(ctx)
	})
}

func (bts *bboltTransactionScoper) InReadScope(ctx context.Context, readScope func(ctx context.Context) error) (err error) {
	return InBBoltTransactionScope(ctx, bts.db, false, func(ctx context.Context, tx *bbolt.Tx) error {
		return readScope(ctx)
	})
}

func InBBoltTransactionScope(ctx context.Context, db *bbolt.DB, writable bool, transactionScope func(ctx context.Context, tx *bbolt.Tx) error) (retErr error) {
	tx, transactionCloser, err := useOrStartBBoltTransaction(ctx, db, writable)
	if err != nil {
		return err
	}

	defer func() {
		retErr = transactionCloser(retErr)
	}()

	return transactionScope(context.WithValue(ctx, bboltTxKey, tx), tx)
}

func InBBoltTransactionScopeWithResult[T any](ctx context.Context, db *bbolt.DB, writable bool, transactionScope func(ctx context.Context, tx *bbolt.Tx) (T, error)) (result T, err error) {
	tx, transactionCloser, err := useOrStartBBoltTransaction(ctx, db, writable)
	if err != nil {
		return result, err
	}

	defer func() {
		err = transactionCloser(err)
	}()

	return transactionScope(context.WithValue(ctx, bboltTxKey, tx), tx)
}

// useOrStartBBoltTransaction joins the transaction carried by ctx, or starts one that
// is committed (writable) or rolled back (read-only) by the returned closer.
func useOrStartBBoltTransaction(ctx context.Context, db *bbolt.DB, writable bool) (*bbolt.Tx, func(err error) error, error) {
	if tx, ok := ctx.Value(bboltTxKey).(*bbolt.Tx); ok {
		if writable && !tx.Writable() {
			return nil, nil, ErrReadOnlyTransaction
		}
		transactionCloser := func(err error) error {
			return err
		}
		return tx, transactionCloser, nil
	}

	tx, err := db.Begin(writable)
	if err != nil {
		return nil, nil, err
	}

	transactionCloser := func(err error) error {
		if err != nil || !writable {
			if txErr := tx.Rollback(); txErr != nil {
				err = errors.Join(err, txErr)
			}
			return err
		}
		return tx.Commit()
	}

	return tx, transactionCloser, nil
}
