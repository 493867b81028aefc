package loaders

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnAfraid/pressload/pkg/comment"
	"github.com/UnAfraid/pressload/pkg/datastore"
	"github.com/UnAfraid/pressload/pkg/datastore/bbolt"
	"github.com/UnAfraid/pressload/pkg/dbx"
	"github.com/UnAfraid/pressload/pkg/meta"
	"github.com/UnAfraid/pressload/pkg/post"
	"github.com/UnAfraid/pressload/pkg/term"
	"github.com/UnAfraid/pressload/pkg/user"
)

type countingUserService struct {
	user.Service
	calls [][]int64
}

func (s *countingUserService) FindUsers(ctx context.Context, options *user.FindOptions) ([]*user.User, error) {
	s.calls = append(s.calls, options.Ids)
	return s.Service.FindUsers(ctx, options)
}

type fixture struct {
	services Services
	users    *countingUserService
	alice    *user.User
	bob      *user.User
	posts    []*post.Post
	news     *term.Term
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := datastore.NewBBoltDB(filepath.Join(t.TempDir(), "pressload.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	transactionScoper := dbx.NewBBoltTransactionScoper(db)
	users := &countingUserService{Service: user.NewService(bbolt.NewUserRepository(db))}
	services := Services{
		User:    users,
		Post:    post.NewService(bbolt.NewPostRepository(db)),
		Meta:    meta.NewService(bbolt.NewMetaRepository(db)),
		Term:    term.NewService(bbolt.NewTermRepository(db), transactionScoper),
		Comment: comment.NewService(bbolt.NewCommentRepository(db)),
	}

	f := &fixture{services: services, users: users}

	f.alice, err = users.CreateUser(ctx, &user.CreateOptions{Login: "alice", Email: "alice@example.com", Password: "a"})
	require.NoError(t, err)
	f.bob, err = users.CreateUser(ctx, &user.CreateOptions{Login: "bob", Email: "bob@example.com", Password: "b"})
	require.NoError(t, err)

	f.news, err = services.Term.CreateTerm(ctx, &term.CreateOptions{Name: "News", Taxonomy: term.TaxonomyCategory})
	require.NoError(t, err)

	for i, authorId := range []int64{f.alice.Id, f.bob.Id, f.alice.Id} {
		p, err := services.Post.CreatePost(ctx, &post.CreateOptions{
			AuthorId: authorId,
			Title:    "post " + string(rune('a'+i)),
			Status:   post.StatusPublish,
		})
		require.NoError(t, err)
		f.posts = append(f.posts, p)
	}

	require.NoError(t, services.Term.SetPostTerms(ctx, f.posts[0].Id, []int64{f.news.Id}))
	require.NoError(t, services.Meta.AddMeta(ctx, meta.KindPost, f.posts[0].Id, "subtitle", "first"))
	require.NoError(t, services.Meta.AddMeta(ctx, meta.KindUser, f.alice.Id, "nickname", "ali"))
	_, err = services.Comment.CreateComment(ctx, &comment.CreateOptions{PostId: f.posts[1].Id, Content: "hi", Approved: true})
	require.NoError(t, err)
	_, err = services.Comment.CreateComment(ctx, &comment.CreateOptions{PostId: f.posts[1].Id, Content: "spam"})
	require.NoError(t, err)

	return f
}

func TestFactoryResolvesPageInOneBatchPerType(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	loader := NewFactory(f.services).New()

	for _, p := range f.posts {
		loader.Queue(TypeUsers, p.AuthorId)
		loader.Queue(TypeUserMeta, p.AuthorId)
		loader.Queue(TypePostMeta, p.Id)
		loader.Queue(TypePostTerms, p.Id)
		loader.Queue(TypeCommentCounts, p.Id)
	}
	require.NoError(t, loader.LoadAll(ctx))

	require.Len(t, f.users.calls, 1)
	assert.ElementsMatch(t, []int64{f.alice.Id, f.bob.Id}, f.users.calls[0])

	author, ok, err := Users(loader).Get(ctx, f.posts[1].AuthorId)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "bob", author.Login)

	nick, ok, err := UserMeta(loader).Get(ctx, f.alice.Id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ali", nick.Get("nickname"))

	_, ok, err = UserMeta(loader).Get(ctx, f.bob.Id)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, loader.Has(TypeUserMeta, f.bob.Id))

	subtitle, ok, err := PostMeta(loader).Get(ctx, f.posts[0].Id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", subtitle.Get("subtitle"))

	terms, ok, err := PostTerms(loader).Get(ctx, f.posts[0].Id)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, terms, 1)
	assert.Equal(t, "news", terms[0].Slug)

	counts, err := CommentCounts(loader).GetMany(ctx, []int64{f.posts[0].Id, f.posts[1].Id})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{f.posts[0].Id: 0, f.posts[1].Id: 1}, counts)

	status := loader.Status()
	assert.Equal(t, 2, status[TypeUsers].Cached)
	assert.Equal(t, 0, status[TypeUsers].Queued)
	assert.Contains(t, status, TypeTerms)
}

func TestFactoryMissingIdsAreAbsent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	loader := NewFactory(f.services).New()

	posts, err := Posts(loader).GetMany(ctx, []int64{f.posts[0].Id, 999})
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	result, err := loader.Result(ctx, TypePosts, 999)
	require.NoError(t, err)
	assert.True(t, result.IsAbsent())
}

func TestFactoryQueryCacheSharesAcrossLoaders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	factory := NewFactory(f.services, WithQueryCache(NewQueryCache(time.Minute, time.Minute)))

	first := factory.New()
	_, err := Users(first).GetMany(ctx, []int64{f.alice.Id, 42})
	require.NoError(t, err)

	second := factory.New()
	Users(second).Queue(f.alice.Id)
	u, ok, err := Users(second).Get(ctx, f.alice.Id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice", u.Login)

	// the miss for 42 is not remembered across requests
	_, err = Users(second).GetMany(ctx, []int64{42})
	require.NoError(t, err)

	assert.Equal(t, [][]int64{{f.alice.Id, 42}, {42}}, f.users.calls)

	Terms(second).Queue(f.news.Id)
	news, ok, err := Terms(second).Get(ctx, f.news.Id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "News", news.Name)
}
