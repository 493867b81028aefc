package bbolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/UnAfraid/pressload/pkg/comment"
	"github.com/UnAfraid/pressload/pkg/datastore"
	"github.com/UnAfraid/pressload/pkg/dbx"
	"github.com/UnAfraid/pressload/pkg/meta"
	"github.com/UnAfraid/pressload/pkg/post"
	"github.com/UnAfraid/pressload/pkg/term"
	"github.com/UnAfraid/pressload/pkg/user"
)

func newTestDB(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := datastore.NewBBoltDB(filepath.Join(t.TempDir(), "test.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repository := NewUserRepository(newTestDB(t))

	users, err := repository.FindAll(ctx, &user.FindOptions{Ids: []int64{1}})
	require.NoError(t, err)
	assert.Empty(t, users)

	alice, err := repository.Create(ctx, &user.User{Login: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.Id)

	_, err = repository.Create(ctx, &user.User{Login: "Alice"})
	require.ErrorIs(t, err, user.ErrLoginAlreadyExists)

	bob, err := repository.Create(ctx, &user.User{Login: "bob"})
	require.NoError(t, err)

	found, err := repository.FindOne(ctx, &user.FindOneOptions{LoginOption: &user.LoginOption{Login: "BOB"}})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, bob.Id, found.Id)

	users, err = repository.FindAll(ctx, &user.FindOptions{Ids: []int64{bob.Id, 99, bob.Id, -1}})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Login)

	users, err = repository.FindAll(ctx, &user.FindOptions{})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestPostRepositoryFiltersStatus(t *testing.T) {
	ctx := context.Background()
	repository := NewPostRepository(newTestDB(t))

	for _, status := range []post.Status{post.StatusPublish, post.StatusDraft, post.StatusPublish} {
		_, err := repository.Create(ctx, &post.Post{AuthorId: 1, Title: "t", Status: status})
		require.NoError(t, err)
	}

	publish := post.StatusPublish
	posts, err := repository.FindAll(ctx, &post.FindOptions{Status: &publish})
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = repository.FindAll(ctx, &post.FindOptions{Ids: []int64{2, 3}, Status: &publish})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(3), posts[0].Id)

	posts, err = repository.FindAll(ctx, &post.FindOptions{Ids: []int64{42}})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestMetaRepository(t *testing.T) {
	ctx := context.Background()
	repository := NewMetaRepository(newTestDB(t))

	values, err := repository.FindByObjectIds(ctx, meta.KindPost, []int64{1})
	require.NoError(t, err)
	assert.Empty(t, values)

	require.NoError(t, repository.Add(ctx, meta.KindPost, 1, "tag", "a"))
	require.NoError(t, repository.Add(ctx, meta.KindPost, 1, "tag", "b"))
	require.NoError(t, repository.Add(ctx, meta.KindUser, 1, "nickname", "ali"))

	values, err = repository.FindByObjectIds(ctx, meta.KindPost, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[int64]meta.Values{1: {"tag": {"a", "b"}}}, values)

	values, err = repository.FindByObjectIds(ctx, meta.KindUser, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, "ali", values[1].Get("nickname"))
}

func TestTermRepositoryRelationships(t *testing.T) {
	ctx := context.Background()
	repository := NewTermRepository(newTestDB(t))

	news, err := repository.Create(ctx, &term.Term{Name: "News", Slug: "news", Taxonomy: term.TaxonomyCategory})
	require.NoError(t, err)
	tag, err := repository.Create(ctx, &term.Term{Name: "Go", Slug: "go", Taxonomy: term.TaxonomyTag})
	require.NoError(t, err)

	require.NoError(t, repository.SetPostTerms(ctx, 10, []int64{news.Id, tag.Id, news.Id}))
	require.NoError(t, repository.SetPostTerms(ctx, 11, []int64{tag.Id}))
	require.NoError(t, repository.SetPostTerms(ctx, 11, nil))

	termIds, err := repository.FindTermIdsByPostIds(ctx, []int64{10, 11, 12})
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{10: {news.Id, tag.Id}}, termIds)

	taxonomy := term.TaxonomyTag
	terms, err := repository.FindAll(ctx, &term.FindOptions{Taxonomy: &taxonomy})
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "go", terms[0].Slug)
}

func TestCommentRepositoryCountsApproved(t *testing.T) {
	ctx := context.Background()
	repository := NewCommentRepository(newTestDB(t))

	counts, err := repository.CountApprovedByPostIds(ctx, []int64{1})
	require.NoError(t, err)
	assert.Empty(t, counts)

	for _, c := range []*comment.Comment{
		{PostId: 1, Content: "a", Approved: true},
		{PostId: 1, Content: "b", Approved: true},
		{PostId: 1, Content: "c"},
		{PostId: 2, Content: "d", Approved: true},
		{PostId: 3, Content: "e", Approved: true},
	} {
		_, err := repository.Create(ctx, c)
		require.NoError(t, err)
	}

	counts, err = repository.CountApprovedByPostIds(ctx, []int64{1, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 2, 2: 1}, counts)
}

func TestReadScopeRejectsWrites(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repository := NewPostRepository(db)
	transactionScoper := dbx.NewBBoltTransactionScoper(db)

	err := transactionScoper.InReadScope(ctx, func(ctx context.Context) error {
		_, err := repository.Create(ctx, &post.Post{AuthorId: 1, Title: "t"})
		return err
	})
	require.ErrorIs(t, err, dbx.ErrReadOnlyTransaction)

	err = transactionScoper.InTransactionScope(ctx, func(ctx context.Context) error {
		if _, err := repository.Create(ctx, &post.Post{AuthorId: 1, Title: "t"}); err != nil {
			return err
		}
		_, err := repository.Create(ctx, &post.Post{AuthorId: 1, Title: "u"})
		return err
	})
	require.NoError(t, err)

	posts, err := repository.FindAll(ctx, &post.FindOptions{})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
