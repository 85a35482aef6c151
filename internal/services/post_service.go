package services

import (
	"strings"

	"github.com/Linkeder/linkeder_backend/internal/models"
	"github.com/Linkeder/linkeder_backend/internal/repository"
)

// PostService 投稿に関するサービスインターフェース
type PostService interface {
	List() ([]models.Post, error)
	Create(authorID uint, title, content string) (*models.Post, error)
}

// postService PostServiceの実装
type postService struct {
	postRepo repository.PostRepository
}

// NewPostService PostServiceを作成
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{
		postRepo: postRepo,
	}
}

// List 公開フィード用に全投稿を新着順に取得
func (s *postService) List() ([]models.Post, error) {
	return s.postRepo.ListAll()
}

// Create 新しい投稿を作成
func (s *postService) Create(authorID uint, title, content string) (*models.Post, error) {
	// タイトルと本文は必須
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrValidation
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: &authorID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return post, nil
}
