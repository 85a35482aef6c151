package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Linkeder/linkeder_backend/internal/config"
	"github.com/Linkeder/linkeder_backend/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// ログ設定
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("サーバーを起動しています...")

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// Gin モードの設定（環境変数が設定されていない場合はデバッグモード）
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	// ルーターをセットアップ
	router := routes.SetupRouter(cfg, db)

	// サーバー起動
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("サーバーを開始しています... PORT: %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
