package repository

import (
	"github.com/Linkeder/linkeder_backend/internal/models"

	"gorm.io/gorm"
)

// PostRepository 投稿に関するデータベース操作を行うインターフェース
type PostRepository interface {
	Create(post *models.Post) error
	ListAll() ([]models.Post, error)
}

// postRepository PostRepositoryの実装
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository PostRepositoryを作成
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 新しい投稿を作成
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// ListAll 全投稿を作成者付きで新着順に取得
func (r *postRepository) ListAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Preload("Author").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
