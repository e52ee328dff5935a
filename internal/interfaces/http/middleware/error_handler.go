package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

// ErrorHandlerMiddleware 统一错误处理中间件
// 捕获handler中设置的错误,自动转换为合适的HTTP响应
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var serviceErr *contracts.ServiceError
			if errors.As(err, &serviceErr) {
				statusCode := mapErrorCodeToHTTPStatus(serviceErr.Code)
				c.JSON(statusCode, gin.H{
					"error":   serviceErr.Message,
					"code":    serviceErr.Code,
					"details": serviceErr.Details,
				})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": err.Error(),
					"code":  contracts.ErrorCodeInternalError,
				})
			}
		}
	}
}

// mapErrorCodeToHTTPStatus 将业务错误码映射到HTTP状态码
func mapErrorCodeToHTTPStatus(code contracts.ErrorCode) int {
	switch code {
	case contracts.ErrorCodeInvalidRequest:
		return http.StatusBadRequest
	case contracts.ErrorCodeNotFound:
		return http.StatusNotFound
	case contracts.ErrorCodeConflict:
		return http.StatusConflict
	case contracts.ErrorCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case contracts.ErrorCodeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// RecoverMiddleware 恢复中间件 - 捕获panic并转换为500错误
func RecoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("请求处理发生 panic", "path", c.Request.URL.Path, "panic", err)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  contracts.ErrorCodeInternalError,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
