package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Linkeder/linkeder_backend/internal/config"
	"github.com/Linkeder/linkeder_backend/internal/middlewares"
	"github.com/Linkeder/linkeder_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService services.AuthService
	userService services.UserService
	config      *config.Config
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService, userService services.UserService, cfg *config.Config) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
		config:      cfg,
	}
}

// SignupRequest ユーザー登録リクエスト
type SignupRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Description string `json:"description"`
}

// SigninRequest ログインリクエスト
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 認証レスポンス
type AuthResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}

// Signup ユーザー登録
// 登録のみ行い、セッションは発行しない
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "名前、メールアドレス、パスワードは必須です"})
		return
	}

	user, err := c.authService.Signup(req.Name, req.Email, req.Password, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("ユーザー登録に失敗しました: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		}
		return
	}

	// PasswordHashはjson:"-"のためレスポンスに含まれない
	ctx.JSON(http.StatusCreated, gin.H{"user": user})
}

// Signin ログイン
// 成功時はHTTP-onlyクッキーにトークンを設定する
func (c *AuthController) Signin(ctx *gin.Context) {
	var req SigninRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "メールアドレスとパスワードは必須です"})
		return
	}

	user, token, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		// ユーザー不在とパスワード不一致は区別せずに返す
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "メールアドレスまたはパスワードが正しくありません"})
			return
		}
		log.Printf("ログインに失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	maxAge := int(c.config.Auth.TokenExpiry / time.Second)
	ctx.SetCookie(middlewares.TokenCookieName, token, maxAge, "/", "", false, true)

	ctx.JSON(http.StatusOK, AuthResponse{
		User:  user,
		Token: token,
	})
}

// Signout ログアウト
// サーバー側に失効リストはないため、クッキーの破棄のみ行う
func (c *AuthController) Signout(ctx *gin.Context) {
	ctx.SetCookie(middlewares.TokenCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "ログアウトしました"})
}

// GetMe 現在のユーザー情報を取得
func (c *AuthController) GetMe(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}

	user, err := c.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("ユーザー情報の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
