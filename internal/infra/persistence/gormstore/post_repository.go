package gormstore

import (
	"context"

	"kurvalgom/internal/domain/entity"
	domainerrors "kurvalgom/internal/domain/errors"
	"kurvalgom/internal/domain/repository"
	"kurvalgom/internal/errors"
	"kurvalgom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type blogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository is the constructor for blogPostRepository.
func NewBlogPostRepository(db *gorm.DB) repository.BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (repo *blogPostRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	if post.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate post id")
		}
		post.ID = id
	}

	postM := fromBlogPostDomain(post)
	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog post")
	}

	post.CreatedAt = postM.CreatedAt

	return nil
}

func (repo *blogPostRepository) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entity.BlogPost, error) {
	db := repo.db.WithContext(ctx)
	if forUpdate && rowLocksSupported(db) {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var postM model.BlogPostModel
	if err := db.Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog post")
	}

	return toBlogPostDomain(&postM), nil
}

func (repo *blogPostRepository) FindAll(ctx context.Context) ([]*entity.BlogPost, error) {
	var postMs []model.BlogPostModel
	if err := repo.db.WithContext(ctx).Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	return toBlogPostDomains(postMs), nil
}

func (repo *blogPostRepository) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.BlogPost, error) {
	var postMs []model.BlogPostModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts by owner")
	}

	return toBlogPostDomains(postMs), nil
}

// Update writes the mutable columns. UserID and CreatedAt are never touched.
func (repo *blogPostRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	postM := fromBlogPostDomain(post)
	result := repo.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("id = ?", post.ID).
		Select("image", "comment", "rating", "restaurant", "updated_at").
		Updates(postM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (repo *blogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BlogPostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func fromBlogPostDomain(post *entity.BlogPost) *model.BlogPostModel {
	return &model.BlogPostModel{
		ID:         post.ID,
		UserID:     post.UserID,
		Image:      post.Image,
		Comment:    post.Comment,
		Rating:     post.Rating,
		Restaurant: model.RestaurantSnapshot(post.Restaurant),
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

func toBlogPostDomain(postM *model.BlogPostModel) *entity.BlogPost {
	return &entity.BlogPost{
		ID:         postM.ID,
		UserID:     postM.UserID,
		Image:      postM.Image,
		Comment:    postM.Comment,
		Rating:     postM.Rating,
		Restaurant: entity.Restaurant(postM.Restaurant),
		CreatedAt:  postM.CreatedAt,
		UpdatedAt:  postM.UpdatedAt,
	}
}

func toBlogPostDomains(postMs []model.BlogPostModel) []*entity.BlogPost {
	posts := make([]*entity.BlogPost, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, toBlogPostDomain(&postMs[i]))
	}

	return posts
}
