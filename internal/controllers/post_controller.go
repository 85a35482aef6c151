package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Linkeder/linkeder_backend/internal/middlewares"
	"github.com/Linkeder/linkeder_backend/internal/models"
	"github.com/Linkeder/linkeder_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController 投稿に関するコントローラー
type PostController struct {
	postService services.PostService
}

// NewPostController PostControllerを作成
func NewPostController(postService services.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CreatePostRequest 投稿作成リクエスト
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// FeedAuthor フィードに載せる作成者情報（表示名とアバターのみ）
type FeedAuthor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// FeedPost フィードの投稿レスポンス
type FeedPost struct {
	ID        uint        `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	AuthorID  *uint       `json:"author_id"`
	Author    *FeedAuthor `json:"author"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// toFeedPost モデルをフィードレスポンスに変換
func toFeedPost(post models.Post) FeedPost {
	item := FeedPost{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Author != nil {
		item.Author = &FeedAuthor{
			Name:  post.Author.Name,
			Image: post.Author.Image,
		}
	}
	return item
}

// List 公開フィードを取得
func (c *PostController) List(ctx *gin.Context) {
	posts, err := c.postService.List()
	if err != nil {
		log.Printf("投稿一覧の取得に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	feed := make([]FeedPost, 0, len(posts))
	for _, post := range posts {
		feed = append(feed, toFeedPost(post))
	}

	ctx.JSON(http.StatusOK, feed)
}

// Create 新しい投稿を作成
func (c *PostController) Create(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return
	}

	var req CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "タイトルと本文は必須です"})
		return
	}

	post, err := c.postService.Create(userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "タイトルと本文は必須です"})
			return
		}
		log.Printf("投稿の作成に失敗しました: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(http.StatusCreated, post)
}
