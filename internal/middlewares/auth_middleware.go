package middlewares

import (
	"net/http"
	"strings"

	"github.com/Linkeder/linkeder_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TokenCookieName セッショントークンを運ぶHTTP-onlyクッキーの名前
const TokenCookieName = "token"

// UserIDKey 認証済みユーザーIDを保持するginコンテキストのキー
// AuthenticatorとcurrentUserを読む全ハンドラーが同じキーを使う
const UserIDKey = "userID"

// extractToken クッキーまたはAuthorizationヘッダーからトークンを取り出す
func extractToken(ctx *gin.Context) (string, bool) {
	// クッキーを優先
	if token, err := ctx.Cookie(TokenCookieName); err == nil && token != "" {
		return token, true
	}

	// Bearer トークンにフォールバック（APIクライアント用）
	authHeader := ctx.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), true
	}

	return "", false
}

// AuthMiddleware 認証ミドルウェア
// トークンを検証し、クレームのユーザーIDをコンテキストに保存する
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := extractToken(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
			ctx.Abort()
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "無効なトークンです"})
			ctx.Abort()
			return
		}

		ctx.Set(UserIDKey, claims.UserID)
		ctx.Next()
	}
}

// OptionalAuthMiddleware オプショナル認証ミドルウェア（認証がない場合もエラーを返さない）
func OptionalAuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := extractToken(ctx)
		if !ok {
			ctx.Next()
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			ctx.Next()
			return
		}

		ctx.Set(UserIDKey, claims.UserID)
		ctx.Next()
	}
}

// CurrentUserID コンテキストから認証済みユーザーIDを取得
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
