package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Linkeder/linkeder_backend/internal/config"
	"github.com/Linkeder/linkeder_backend/internal/models"
	"github.com/Linkeder/linkeder_backend/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost パスワードハッシュのコストファクター
const bcryptCost = 12

// mysqlDuplicateEntry MySQLの一意制約違反のエラー番号
const mysqlDuplicateEntry = 1062

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Signup(name, email, password, description string) (*models.User, error)
	Login(email, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Claims JWTのペイロード
// ダウンストリームのハンドラーが参照するのはUserIDのみ
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.StandardClaims
}

// Signup ユーザー登録
func (s *authService) Signup(name, email, password, description string) (*models.User, error) {
	// 必須項目を確認
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrValidation
	}

	// メールアドレスが既に使用されているか確認
	existingUser, err := s.userRepo.FindByEmail(email)
	if err == nil && existingUser != nil {
		return nil, ErrEmailTaken
	}

	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	// 新しいユーザーを作成
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Description:  description,
	}

	if err := s.userRepo.Create(user); err != nil {
		// 同時登録は一意制約に任せる。制約違反はConflictとして返す
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login ログイン
// 成功時はユーザーと署名済みトークンを返す
func (s *authService) Login(email, password string) (*models.User, string, error) {
	// ユーザーを検索
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	// パスワードを検証
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// JWTトークンを生成
	token, err := mintToken(user.ID, s.config.Auth.JWTSecret, s.config.Auth.TokenExpiry)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ValidateToken トークンを検証してクレームを返す
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 署名方法を確認
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// mintToken ユーザーIDからJWTトークンを生成する
// 発行時とリクエスト毎の検証以外でトークンに触る箇所はない
func mintToken(userID uint, secret string, expiry time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(expiry).Unix(),
			IssuedAt:  now.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
