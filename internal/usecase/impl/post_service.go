package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "kurvalgom/internal/delivery/context"
	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/repository"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.BlogPostRepository
	logger    *slog.Logger
	now       func() time.Time
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.BlogPostRepository
	Logger    *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost stores the post as given. Range checks belong to the caller.
func (srv *postService) CreatePost(ctx context.Context, actorID uuid.UUID, input usecase.CreatePostInput) (*entity.BlogPost, error) {
	post := &entity.BlogPost{
		UserID:     actorID,
		Image:      input.Image,
		Comment:    input.Comment,
		Rating:     input.Rating,
		Restaurant: input.Restaurant,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.String("user_id", actorID.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Post created",
		slog.String("post_id", post.ID.String()),
		slog.String("restaurant", post.Restaurant.Ref()),
	)

	return post, nil
}

// UpdatePost reads, checks ownership and writes inside one transaction.
func (srv *postService) UpdatePost(ctx context.Context, actorID, postID uuid.UUID, patch entity.PostPatch) (*entity.BlogPost, error) {
	var updated *entity.BlogPost
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewBlogPostRepository()

		post, err := srv.ownedPost(ctx, postRepo, actorID, postID)
		if err != nil {
			return err
		}

		patch.Apply(post)
		stamp := srv.now().UTC()
		post.UpdatedAt = &stamp

		if err := postRepo.Update(ctx, post); err != nil {
			return mapPostError(err)
		}
		updated = post

		return nil
	})
	if err != nil {
		srv.logRejected(ctx, "update", actorID, postID, err)

		return nil, err
	}

	return updated, nil
}

func (srv *postService) DeletePost(ctx context.Context, actorID, postID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewBlogPostRepository()

		if _, err := srv.ownedPost(ctx, postRepo, actorID, postID); err != nil {
			return err
		}

		return mapPostError(postRepo.Delete(ctx, postID))
	})
	if err != nil {
		srv.logRejected(ctx, "delete", actorID, postID, err)

		return err
	}

	srv.log(ctx).Info("Post deleted", slog.String("post_id", postID.String()))

	return nil
}

func (srv *postService) GetPost(ctx context.Context, postID uuid.UUID) (*entity.BlogPost, error) {
	post, err := srv.postRepo.FindByID(ctx, postID, false)
	if err != nil {
		return nil, mapPostError(err)
	}

	return post, nil
}

func (srv *postService) ListAllPosts(ctx context.Context) ([]*entity.BlogPost, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return newestPostsFirst(posts), nil
}

func (srv *postService) ListPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.BlogPost, error) {
	posts, err := srv.postRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return newestPostsFirst(posts), nil
}

// ownedPost loads the post with a row lock and rejects actors other than the author.
func (srv *postService) ownedPost(ctx context.Context, postRepo repository.BlogPostRepository, actorID, postID uuid.UUID) (*entity.BlogPost, error) {
	post, err := postRepo.FindByID(ctx, postID, true)
	if err != nil {
		return nil, mapPostError(err)
	}

	if !post.IsOwnedBy(actorID) {
		return nil, domainerrors.ErrPostOwnership
	}

	return post, nil
}

func (srv *postService) logRejected(ctx context.Context, action string, actorID, postID uuid.UUID, err error) {
	attrs := []any{
		slog.String("action", action),
		slog.String("post_id", postID.String()),
		slog.String("user_id", actorID.String()),
	}

	switch {
	case errors.Is(err, domainerrors.ErrPostNotFound), errors.Is(err, domainerrors.ErrPostOwnership):
		srv.log(ctx).Info("Post change rejected", append(attrs, slog.String("reason", err.Error()))...)
	default:
		srv.log(ctx).Error("Post change failed", append(attrs, slog.Any("error", err))...)
	}
}

func mapPostError(err error) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return domainerrors.ErrPostNotFound
	}

	return err
}

func newestPostsFirst(posts []*entity.BlogPost) []*entity.BlogPost {
	slices.SortStableFunc(posts, func(a, b *entity.BlogPost) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return posts
}
