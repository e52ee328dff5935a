package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/pkg/utils/httputil"
)

// respondError 把业务错误映射为 HTTP 响应
func respondError(c *gin.Context, err error, fallback string) {
	var serviceErr *contracts.ServiceError
	if errors.As(err, &serviceErr) {
		status := mapErrorCodeToHTTPStatus(serviceErr.Code)
		httputil.ErrorWithStatus(c, status, status, serviceErr.Message)
		return
	}
	httputil.ErrorWithStatus(c, http.StatusInternalServerError, http.StatusInternalServerError,
		fallback+": "+err.Error())
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
