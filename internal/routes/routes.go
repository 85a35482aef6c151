package routes

import (
	"github.com/Linkeder/linkeder_backend/internal/config"
	"github.com/Linkeder/linkeder_backend/internal/controllers"
	"github.com/Linkeder/linkeder_backend/internal/middlewares"
	"github.com/Linkeder/linkeder_backend/internal/repository"
	"github.com/Linkeder/linkeder_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// ページテンプレートをロード
	r.LoadHTMLGlob("web/templates/*.html")

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)
	healthService := services.NewHealthService()

	// コントローラーを作成
	authController := controllers.NewAuthController(authService, userService, cfg)
	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)
	healthController := controllers.NewHealthController(healthService)
	pageController := controllers.NewPageController(postService, userService)

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)
	optionalAuthMiddleware := middlewares.OptionalAuthMiddleware(authService)

	// ヘルスチェックルート（認証不要）
	r.GET("/health", healthController.Check)

	// 認証ルート
	r.POST("/signup", authController.Signup)
	r.POST("/signin", authController.Signin)
	r.POST("/signout", authController.Signout)
	r.GET("/auth/me", authMiddleware, authController.GetMe)

	// 投稿ルート
	posts := r.Group("/posts")
	{
		// 公開フィード
		posts.GET("", postController.List)

		// 認証が必要
		posts.POST("", authMiddleware, postController.Create)
	}

	// ユーザールート
	user := r.Group("/user")
	{
		user.GET("/profile", authMiddleware, userController.GetProfile)
		user.GET("/:id", userController.GetByID)
	}

	// ページルート
	r.GET("/", optionalAuthMiddleware, pageController.Home)
	r.GET("/signin", pageController.Signin)
	r.GET("/signup", pageController.Signup)
	r.GET("/profile", optionalAuthMiddleware, pageController.Profile)

	return r
}
