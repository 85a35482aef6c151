package controllers

import (
	"time"

	"github.com/Linkeder/linkeder_backend/internal/config"
	"github.com/Linkeder/linkeder_backend/internal/middlewares"
	"github.com/Linkeder/linkeder_backend/internal/models"
	"github.com/Linkeder/linkeder_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthService テスト用のAuthService
// 関数フィールドが未設定の場合は失敗を返す
type fakeAuthService struct {
	signup   func(name, email, password, description string) (*models.User, error)
	login    func(email, password string) (*models.User, string, error)
	validate func(tokenString string) (*services.Claims, error)
}

func (f *fakeAuthService) Signup(name, email, password, description string) (*models.User, error) {
	if f.signup == nil {
		return nil, services.ErrValidation
	}
	return f.signup(name, email, password, description)
}

func (f *fakeAuthService) Login(email, password string) (*models.User, string, error) {
	if f.login == nil {
		return nil, "", services.ErrInvalidCredentials
	}
	return f.login(email, password)
}

func (f *fakeAuthService) ValidateToken(tokenString string) (*services.Claims, error) {
	if f.validate == nil {
		return nil, services.ErrInvalidToken
	}
	return f.validate(tokenString)
}

// fakeUserService テスト用のUserService
type fakeUserService struct {
	getByID func(id uint) (*models.User, error)
}

func (f *fakeUserService) GetByID(id uint) (*models.User, error) {
	if f.getByID == nil {
		return nil, services.ErrUserNotFound
	}
	return f.getByID(id)
}

func (f *fakeUserService) GetProfile(userID uint) (*models.User, error) {
	return f.GetByID(userID)
}

// fakePostService テスト用のPostService
type fakePostService struct {
	list    func() ([]models.Post, error)
	create  func(authorID uint, title, content string) (*models.Post, error)
	created []models.Post // Createが成功した投稿の記録
}

func (f *fakePostService) List() ([]models.Post, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list()
}

func (f *fakePostService) Create(authorID uint, title, content string) (*models.Post, error) {
	if f.create == nil {
		return nil, services.ErrValidation
	}
	post, err := f.create(authorID, title, content)
	if err == nil {
		f.created = append(f.created, *post)
	}
	return post, err
}

// validTokenAuth "valid-token"のみを受け付けるfakeAuthServiceを作成
func validTokenAuth(userID uint) *fakeAuthService {
	return &fakeAuthService{
		validate: func(tokenString string) (*services.Claims, error) {
			if tokenString != "valid-token" {
				return nil, services.ErrInvalidToken
			}
			return &services.Claims{UserID: userID}, nil
		},
	}
}

// newTestRouter APIルートのみを登録したテスト用ルーターを作成
func newTestRouter(authService services.AuthService, userService services.UserService, postService services.PostService) *gin.Engine {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
		},
	}

	authController := NewAuthController(authService, userService, cfg)
	userController := NewUserController(userService)
	postController := NewPostController(postService)

	authMiddleware := middlewares.AuthMiddleware(authService)

	r := gin.New()
	r.POST("/signup", authController.Signup)
	r.POST("/signin", authController.Signin)
	r.POST("/signout", authController.Signout)
	r.GET("/auth/me", authMiddleware, authController.GetMe)
	r.GET("/posts", postController.List)
	r.POST("/posts", authMiddleware, postController.Create)
	r.GET("/user/profile", authMiddleware, userController.GetProfile)
	r.GET("/user/:id", userController.GetByID)

	return r
}
