package controllers

import (
	"log"
	"net/http"

	"github.com/Linkeder/linkeder_backend/internal/middlewares"
	"github.com/Linkeder/linkeder_backend/internal/models"
	"github.com/Linkeder/linkeder_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PageController サーバーレンダリングするページのコントローラー
type PageController struct {
	postService services.PostService
	userService services.UserService
}

// NewPageController PageControllerを作成
func NewPageController(postService services.PostService, userService services.UserService) *PageController {
	return &PageController{
		postService: postService,
		userService: userService,
	}
}

// currentUser ログイン中ならユーザーを返す（未ログインはnil）
func (c *PageController) currentUser(ctx *gin.Context) *models.User {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		return nil
	}
	user, err := c.userService.GetProfile(userID)
	if err != nil {
		return nil
	}
	return user
}

// Home フィードページ
func (c *PageController) Home(ctx *gin.Context) {
	posts, err := c.postService.List()
	if err != nil {
		log.Printf("フィードの取得に失敗しました: %v", err)
		ctx.String(http.StatusInternalServerError, "サーバーエラーが発生しました")
		return
	}

	ctx.HTML(http.StatusOK, "home.html", gin.H{
		"Posts": posts,
		"User":  c.currentUser(ctx),
	})
}

// Signin ログインページ
func (c *PageController) Signin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "signin.html", nil)
}

// Signup 登録ページ
func (c *PageController) Signup(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "signup.html", nil)
}

// Profile プロフィールページ
// 未ログインの場合はログインページへリダイレクト
func (c *PageController) Profile(ctx *gin.Context) {
	user := c.currentUser(ctx)
	if user == nil {
		ctx.Redirect(http.StatusFound, "/signin")
		return
	}

	ctx.HTML(http.StatusOK, "profile.html", gin.H{
		"User": user,
	})
}
