package contracts

import (
	"context"
	"time"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

// TaskRequest 定时扫描任务创建参数
type TaskRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Path     string `json:"path" validate:"required"`
	CronExpr string `json:"cron_expr" validate:"required"`
	Merge    bool   `json:"merge"`
	Notify   bool   `json:"notify"`
	Enabled  bool   `json:"enabled"`
}

// TaskUpdateRequest 任务更新请求，nil 字段保持原值
type TaskUpdateRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Path     *string `json:"path,omitempty"`
	CronExpr *string `json:"cron_expr,omitempty"`
	Merge    *bool   `json:"merge,omitempty"`
	Notify   *bool   `json:"notify,omitempty"`
	Enabled  *bool   `json:"enabled,omitempty"`
}

// TaskResponse 任务响应统一格式
type TaskResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Path         string              `json:"path"`
	CronExpr     string              `json:"cron_expr"`
	Merge        bool                `json:"merge"`
	Notify       bool                `json:"notify"`
	Enabled      bool                `json:"enabled"`
	Status       entities.TaskStatus `json:"status"`
	LastRunAt    *time.Time          `json:"last_run_at,omitempty"`
	NextRunAt    *time.Time          `json:"next_run_at,omitempty"`
	RunCount     int                 `json:"run_count"`
	SuccessCount int                 `json:"success_count"`
	FailureCount int                 `json:"failure_count"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TaskListResponse 任务列表响应
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	TotalCount int            `json:"total_count"`
	Summary    TaskSummary    `json:"summary"`
}

// TaskSummary 任务摘要信息
type TaskSummary struct {
	EnabledCount  int `json:"enabled_count"`
	DisabledCount int `json:"disabled_count"`
	RunningCount  int `json:"running_count"`
	ErrorCount    int `json:"error_count"`
}

// TaskRunResponse 手动触发任务的响应
type TaskRunResponse struct {
	TaskID    string        `json:"task_id"`
	StartedAt time.Time     `json:"started_at"`
	Scan      *ScanResponse `json:"scan,omitempty"`
}

// TaskService 定时扫描任务业务契约
type TaskService interface {
	CreateTask(ctx context.Context, req TaskRequest) (*TaskResponse, error)
	GetTask(ctx context.Context, id string) (*TaskResponse, error)
	UpdateTask(ctx context.Context, id string, req TaskUpdateRequest) (*TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context) (*TaskListResponse, error)

	RunTaskNow(ctx context.Context, id string) (*TaskRunResponse, error)
}
