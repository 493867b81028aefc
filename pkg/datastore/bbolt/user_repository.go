package bbolt

import (
	"context"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/UnAfraid/pressload/pkg/user"
)

const (
	userBucket      = "user"
	userLoginBucket = "user_login"
)

type userRepository struct {
	db *bbolt.DB
}

func NewUserRepository(db *bbolt.DB) user.Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindOne(ctx context.Context, options *user.FindOneOptions) (*user.User, error) {
	return dbView(ctx, r.db, userBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) (*user.User, error) {
		index := tx.Bucket([]byte(userLoginBucket))
		if index == nil || options.LoginOption == nil {
			return nil, nil
		}
		id := index.Get([]byte(strings.ToLower(options.LoginOption.Login)))
		if id == nil {
			return nil, nil
		}
		return getJSON[user.User](bucket, btoi(id), "user")
	})
}

func (r *userRepository) FindAll(ctx context.Context, options *user.FindOptions) ([]*user.User, error) {
	return dbView(ctx, r.db, userBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) ([]*user.User, error) {
		var users []*user.User
		if len(options.Ids) != 0 {
			for _, id := range uniquePositive(options.Ids) {
				u, err := getJSON[user.User](bucket, id, "user")
				if err != nil {
					return nil, err
				}
				if u != nil {
					users = append(users, u)
				}
			}
			return users, nil
		}

		c := bucket.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			u, err := getJSON[user.User](bucket, btoi(k), "user")
			if err != nil {
				return nil, err
			}
			users = append(users, u)
		}
		return users, nil
	})
}

func (r *userRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	return dbUpdate(ctx, r.db, userBucket, func(tx *bbolt.Tx, bucket *bbolt.Bucket) (*user.User, error) {
		index, err := tx.CreateBucketIfNotExists([]byte(userLoginBucket))
		if err != nil {
			return nil, err
		}

		login := []byte(strings.ToLower(u.Login))
		if index.Get(login) != nil {
			return nil, user.ErrLoginAlreadyExists
		}

		id, err := nextId(bucket)
		if err != nil {
			return nil, err
		}
		u.Id = id

		if err := putJSON(bucket, id, "user", u); err != nil {
			return nil, err
		}
		return u, index.Put(login, itob(id))
	})
}
