package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Linkeder/linkeder_backend/internal/middlewares"
	"github.com/Linkeder/linkeder_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetByID IDでユーザーを取得
// 投稿一覧（新着順）を含む
func (c *UserController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "ユーザーが見つかりません"})
		return
	}

	user, err := c.userService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("ユーザーの取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetProfile 認証済みユーザー自身のプロフィールを取得
func (c *UserController) GetProfile(ctx *gin.Context) {
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
		log.Printf("プロフィールの取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
