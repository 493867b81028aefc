package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/UnAfraid/pressload/pkg/comment"
	"github.com/UnAfraid/pressload/pkg/loaders"
	"github.com/UnAfraid/pressload/pkg/meta"
	"github.com/UnAfraid/pressload/pkg/post"
	"github.com/UnAfraid/pressload/pkg/term"
	"github.com/UnAfraid/pressload/pkg/user"
)

const adminLogin = "admin"

// InitializeDemoContent creates a small set of users, terms, posts and comments
// unless the admin user already exists.
func InitializeDemoContent(ctx context.Context, services loaders.Services) error {
	admin, err := services.User.FindUser(ctx, &user.FindOneOptions{
		LoginOption: &user.LoginOption{
			Login: adminLogin,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to find admin user: %w", err)
	}
	if admin != nil {
		logrus.
			WithField("userId", admin.Id).
			Debug("demo content already present")
		return nil
	}

	var authors []*user.User
	for _, options := range []*user.CreateOptions{
		{Login: adminLogin, Email: "admin@example.com", DisplayName: "Site Admin", Password: "admin"},
		{Login: "editor", Email: "editor@example.com", DisplayName: "Editor", Password: "editor"},
	} {
		u, err := services.User.CreateUser(ctx, options)
		if err != nil {
			return fmt.Errorf("failed to create demo user: %w", err)
		}
		authors = append(authors, u)
	}
	if err := services.Meta.AddMeta(ctx, meta.KindUser, authors[0].Id, "description", "Keeps the lights on"); err != nil {
		return err
	}

	var termIds []int64
	for _, options := range []*term.CreateOptions{
		{Name: "News", Taxonomy: term.TaxonomyCategory},
		{Name: "Go", Taxonomy: term.TaxonomyTag},
	} {
		t, err := services.Term.CreateTerm(ctx, options)
		if err != nil {
			return fmt.Errorf("failed to create demo term: %w", err)
		}
		termIds = append(termIds, t.Id)
	}

	for i := 0; i < 10; i++ {
		p, err := services.Post.CreatePost(ctx, &post.CreateOptions{
			AuthorId: authors[i%len(authors)].Id,
			Title:    fmt.Sprintf("Demo post #%d", i+1),
			Content:  "Lorem ipsum dolor sit amet.",
			Status:   post.StatusPublish,
		})
		if err != nil {
			return fmt.Errorf("failed to create demo post: %w", err)
		}
		if err := services.Term.SetPostTerms(ctx, p.Id, termIds[:1+i%len(termIds)]); err != nil {
			return err
		}
		if err := services.Meta.AddMeta(ctx, meta.KindPost, p.Id, "reading_time", fmt.Sprintf("%d", 2+i)); err != nil {
			return err
		}
		for j := 0; j < i%3; j++ {
			if _, err := services.Comment.CreateComment(ctx, &comment.CreateOptions{
				PostId:   p.Id,
				Author:   "visitor",
				Content:  "Great read!",
				Approved: j%2 == 0,
			}); err != nil {
				return fmt.Errorf("failed to create demo comment: %w", err)
			}
		}
	}

	logrus.
		WithField("users", len(authors)).
		WithField("terms", len(termIds)).
		Info("demo content created")
	return nil
}
