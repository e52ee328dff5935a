package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/application/services"
	"github.com/leafmoes/bangumi-catalog/pkg/utils/httputil"
)

// CatalogHandler REST目录识别处理器 - 纯协议转换层
type CatalogHandler struct {
	container *services.ServiceContainer
}

// NewCatalogHandler 创建目录识别处理器
func NewCatalogHandler(container *services.ServiceContainer) *CatalogHandler {
	return &CatalogHandler{container: container}
}

// Scan 扫描目录
// @Summary 扫描媒体目录
// @Description 遍历目录识别剧集分组，开启 merge 时同时返回同季与跨季合并结果
// @Tags 目录识别
// @Accept json
// @Produce json
// @Param request body contracts.ScanRequest true "扫描请求"
// @Success 200 {object} contracts.ScanResponse "识别结果"
// @Failure 400 {object} httputil.Response "请求参数错误"
// @Failure 404 {object} httputil.Response "目录不存在"
// @Router /catalog/scan [post]
func (h *CatalogHandler) Scan(c *gin.Context) {
	var req contracts.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, 400, "Invalid request parameters: "+err.Error())
		return
	}

	catalogService := h.container.GetCatalogService()
	response, err := catalogService.ScanDirectory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to scan directory")
		return
	}

	httputil.Success(c, response)
}

// Export 扫描并导出
// @Summary 导出识别结果
// @Description 扫描目录并把识别结果导出为 JSON 或 CSV，可选生成播放列表
// @Tags 目录识别
// @Accept json
// @Produce json
// @Param request body contracts.ExportRequest true "导出请求"
// @Success 200 {object} contracts.ExportResponse "导出结果"
// @Failure 400 {object} httputil.Response "请求参数错误"
// @Router /catalog/export [post]
func (h *CatalogHandler) Export(c *gin.Context) {
	var req contracts.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, 400, "Invalid request parameters: "+err.Error())
		return
	}

	catalogService := h.container.GetCatalogService()
	response, err := catalogService.Export(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to export catalog")
		return
	}

	httputil.Success(c, response)
}

// Rules 查询生效规则
// @Summary 查询当前生效的解析规则
// @Description 返回内置默认规则与配置追加项合并后的完整规则集
// @Tags 目录识别
// @Produce json
// @Success 200 {object} contracts.RulesResponse "规则集"
// @Router /catalog/rules [get]
func (h *CatalogHandler) Rules(c *gin.Context) {
	catalogService := h.container.GetCatalogService()
	response, err := catalogService.EffectiveRules(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load rules")
		return
	}

	httputil.Success(c, response)
}
