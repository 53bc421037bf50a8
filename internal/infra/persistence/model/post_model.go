package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogPostModel mirrors the 'blog_posts' table at the current schema version.
type BlogPostModel struct {
	ID         uuid.UUID          `gorm:"type:varchar(36);primaryKey"`
	UserID     uuid.UUID          `gorm:"type:varchar(36);not null;index:idx_blog_posts_user_id"`
	Image      string             `gorm:"type:text"`
	Comment    string             `gorm:"type:text"`
	Rating     int                `gorm:"not null;default:0"`
	Restaurant RestaurantSnapshot `gorm:"type:text;not null;default:'{}'"`
	CreatedAt  time.Time          `gorm:"index:idx_blog_posts_created_at"`
	UpdatedAt  *time.Time         `gorm:"autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}
