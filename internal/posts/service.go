package posts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/ItsBhatt/devConnector/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSaveAttempts bounds how many times a mutation is replayed after losing
// a concurrent save race on the same post
const DefaultSaveAttempts = 3

type postService struct {
	repo         Repository
	users        UserDirectory
	notifier     Notifier
	now          func() time.Time
	newID        func() primitive.ObjectID
	saveAttempts int
}

// NewPostService creates a post service. notifier may be nil.
func NewPostService(repo Repository, users UserDirectory, notifier Notifier, saveAttempts int) Service {
	if saveAttempts < 1 {
		saveAttempts = DefaultSaveAttempts
	}
	return &postService{
		repo:         repo,
		users:        users,
		notifier:     notifier,
		now:          time.Now,
		newID:        primitive.NewObjectID,
		saveAttempts: saveAttempts,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID, text string) (*models.Post, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	author, err := s.users.GetProfile(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post, err := NewPost(s.newID(), authorID, author, text, s.now())
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	sortNewestFirst(all)
	return all, nil
}

func (s *postService) ListPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	if _, err := s.users.GetProfile(ctx, authorID); err != nil {
		if IsNotFound(err) {
			return nil, ErrNoPostsForUser
		}
		return nil, err
	}

	byAuthor, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for author %s: %w", authorID, err)
	}
	if len(byAuthor) == 0 {
		return nil, ErrNoPostsForUser
	}
	sortNewestFirst(byAuthor)
	return byAuthor, nil
}

func (s *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return s.repo.GetByID(ctx, postID)
}

func (s *postService) DeletePost(ctx context.Context, postID, userID string) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := CanDelete(*post, userID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, post)
}

func (s *postService) LikePost(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := s.mutate(ctx, postID, func(p models.Post) (models.Post, error) {
		return Like(p, userID)
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, post, userID, models.NotificationTypeLike)
	return post.Likes, nil
}

func (s *postService) UnlikePost(ctx context.Context, postID, userID string) ([]models.Like, error) {
	post, err := s.mutate(ctx, postID, func(p models.Post) (models.Post, error) {
		return Unlike(p, userID)
	})
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *postService) AddComment(ctx context.Context, postID, userID, text string) ([]models.Comment, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	author, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The ID survives replays; the timestamp is taken per attempt so a replayed
	// comment still lands newest first
	comment, err := NewComment(s.newID(), userID, author, text, s.now())
	if err != nil {
		return nil, err
	}

	post, err := s.mutate(ctx, postID, func(p models.Post) (models.Post, error) {
		c := comment
		c.CreatedAt = s.now()
		return AddComment(p, c)
	})
	if err != nil {
		return nil, err
	}
	s.notify(ctx, post, userID, models.NotificationTypeComment)
	return post.Comments, nil
}

func (s *postService) DeleteComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error) {
	post, err := s.mutate(ctx, postID, func(p models.Post) (models.Post, error) {
		return DeleteComment(p, commentID, userID)
	})
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// mutate loads the post, applies transform and saves the result. A lost
// version race replays the whole cycle against the fresh document.
func (s *postService) mutate(ctx context.Context, postID string, transform func(models.Post) (models.Post, error)) (*models.Post, error) {
	var lastErr error
	for attempt := 0; attempt < s.saveAttempts; attempt++ {
		current, err := s.repo.GetByID(ctx, postID)
		if err != nil {
			return nil, err
		}

		next, err := transform(*current)
		if err != nil {
			return nil, err
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next.UpdatedAt = s.now()
		err = s.repo.Save(ctx, &next)
		if err == nil {
			return &next, nil
		}
		if !errors.Is(err, ErrConcurrentModification) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: gave up on post %s after %d attempts: %w", ErrStore, postID, s.saveAttempts, lastErr)
}

// notify is best effort: the post is already saved, so failures are only logged
func (s *postService) notify(ctx context.Context, post *models.Post, actorID, kind string) {
	if s.notifier == nil || post.AuthorID == actorID {
		return
	}

	actor, err := s.users.GetProfile(ctx, actorID)
	if err != nil {
		log.Printf("Skipping %s notification for post %s: %v", kind, post.ID.Hex(), err)
		return
	}

	message := actor.Name + " liked your post"
	if kind == models.NotificationTypeComment {
		message = actor.Name + " commented on your post"
	}

	n := &models.Notification{
		Type:        kind,
		ActorID:     actorID,
		RecipientID: post.AuthorID,
		TargetID:    post.ID.Hex(),
		Message:     message,
		CreatedAt:   s.now(),
	}
	if err := s.notifier.CreateNotification(ctx, n); err != nil {
		log.Printf("Error creating %s notification for post %s: %v", kind, post.ID.Hex(), err)
	}
}

func sortNewestFirst(list []models.Post) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}
