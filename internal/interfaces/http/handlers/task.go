package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/application/services"
	"github.com/leafmoes/bangumi-catalog/pkg/utils/httputil"
)

// TaskHandler REST任务处理器 - 纯协议转换层
type TaskHandler struct {
	container *services.ServiceContainer
}

// NewTaskHandler 创建任务处理器
func NewTaskHandler(container *services.ServiceContainer) *TaskHandler {
	return &TaskHandler{container: container}
}

// CreateTask 创建定时扫描任务
// @Summary 创建定时扫描任务
// @Description 创建一个按照cron表达式定期扫描目录的任务
// @Tags 定时任务
// @Accept json
// @Produce json
// @Param request body contracts.TaskRequest true "创建任务请求"
// @Success 200 {object} contracts.TaskResponse "任务创建成功"
// @Failure 400 {object} httputil.Response "请求参数错误"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req contracts.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, 400, "Invalid request parameters: "+err.Error())
		return
	}

	taskService := h.container.GetTaskService()
	response, err := taskService.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}

	httputil.Success(c, gin.H{
		"message": "Task created successfully",
		"task":    response,
	})
}

// GetTask 获取单个任务
// @Summary 获取任务详情
// @Description 根据任务ID获取定时扫描任务的详细信息
// @Tags 定时任务
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} contracts.TaskResponse "任务详情"
// @Failure 404 {object} httputil.Response "任务不存在"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, 400, "Task ID is required")
		return
	}

	taskService := h.container.GetTaskService()
	response, err := taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "Failed to get task")
		return
	}

	httputil.Success(c, response)
}

// ListTasks 列出所有任务
// @Summary 获取任务列表
// @Description 返回所有定时扫描任务及启用状态摘要
// @Tags 定时任务
// @Produce json
// @Success 200 {object} contracts.TaskListResponse "任务列表"
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	taskService := h.container.GetTaskService()
	response, err := taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list tasks")
		return
	}

	httputil.Success(c, response)
}

// UpdateTask 更新任务
// @Summary 更新任务
// @Description 更新定时扫描任务，未出现的字段保持原值
// @Tags 定时任务
// @Accept json
// @Produce json
// @Param id path string true "任务ID"
// @Param request body contracts.TaskUpdateRequest true "更新任务请求"
// @Success 200 {object} contracts.TaskResponse "更新后的任务"
// @Failure 404 {object} httputil.Response "任务不存在"
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, 400, "Task ID is required")
		return
	}

	var req contracts.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, 400, "Invalid request parameters: "+err.Error())
		return
	}

	taskService := h.container.GetTaskService()
	response, err := taskService.UpdateTask(c.Request.Context(), taskID, req)
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}

	httputil.Success(c, response)
}

// DeleteTask 删除任务
// @Summary 删除任务
// @Description 删除定时扫描任务并移除其调度
// @Tags 定时任务
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} httputil.Response "删除成功"
// @Failure 404 {object} httputil.Response "任务不存在"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, 400, "Task ID is required")
		return
	}

	taskService := h.container.GetTaskService()
	if err := taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}

	httputil.Success(c, gin.H{"message": "Task deleted successfully"})
}

// RunTaskNow 立即执行任务
// @Summary 立即执行任务
// @Description 跳过调度立即执行一次扫描任务并返回识别结果
// @Tags 定时任务
// @Produce json
// @Param id path string true "任务ID"
// @Success 200 {object} contracts.TaskRunResponse "执行结果"
// @Failure 404 {object} httputil.Response "任务不存在"
// @Router /tasks/{id}/run [post]
func (h *TaskHandler) RunTaskNow(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		httputil.ErrorWithStatus(c, http.StatusBadRequest, 400, "Task ID is required")
		return
	}

	taskService := h.container.GetTaskService()
	response, err := taskService.RunTaskNow(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err, "Failed to run task")
		return
	}

	httputil.Success(c, response)
}
