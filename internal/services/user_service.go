package services

import (
	"errors"

	"github.com/Linkeder/linkeder_backend/internal/models"
	"github.com/Linkeder/linkeder_backend/internal/repository"

	"gorm.io/gorm"
)

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	GetByID(id uint) (*models.User, error)
	GetProfile(userID uint) (*models.User, error)
}

// userService UserServiceの実装
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService UserServiceを作成
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// GetByID IDでユーザーを投稿一覧付きで取得
func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithPosts(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetProfile 認証済みユーザー自身のプロフィールを取得
// トークンは有効でもユーザーが削除されている場合はErrUserNotFound
func (s *userService) GetProfile(userID uint) (*models.User, error) {
	return s.GetByID(userID)
}
