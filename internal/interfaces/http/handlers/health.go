package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
)

var startedAt = time.Now()

// HealthCheck 健康检查
// @Summary 健康检查
// @Description 检查服务健康状态
// @Tags 健康检查
// @Produce json
// @Success 200 {object} contracts.SystemHealth
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.SystemHealth{
		Status:    contracts.HealthStatusHealthy,
		Timestamp: time.Now(),
		Uptime:    time.Since(startedAt),
		Version:   "1.0",
	})
}
