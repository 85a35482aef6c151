package controllers

import (
	"net/http"

	"github.com/Linkeder/linkeder_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// HealthController ヘルスチェックに関するコントローラー
type HealthController struct {
	healthService services.HealthService
}

// NewHealthController HealthControllerを作成
func NewHealthController(healthService services.HealthService) *HealthController {
	return &HealthController{
		healthService: healthService,
	}
}

// HealthStatus ヘルスステータスレスポンス
type HealthStatus struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Check ヘルスチェック
func (c *HealthController) Check(ctx *gin.Context) {
	status, uptime, timestamp := c.healthService.GetStatus()

	ctx.JSON(http.StatusOK, HealthStatus{
		Status:    status,
		Uptime:    uptime,
		Timestamp: timestamp,
	})
}
