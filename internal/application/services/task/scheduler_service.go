package task

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/repository"
	"github.com/leafmoes/bangumi-catalog/pkg/logger"
)

// SchedulerService 定时扫描任务服务，实现 TaskService 契约
type SchedulerService struct {
	cron            *cron.Cron
	taskRepo        *repository.TaskRepository
	catalogService  contracts.CatalogService
	notificationSvc contracts.NotificationService
	jobs            map[string]cron.EntryID
	mu              sync.RWMutex
	running         bool
}

func NewSchedulerService(taskRepo *repository.TaskRepository, catalogService contracts.CatalogService, notificationSvc contracts.NotificationService) *SchedulerService {
	return &SchedulerService{
		cron:            cron.New(), // 标准5字段格式（分 时 日 月 周）
		taskRepo:        taskRepo,
		catalogService:  catalogService,
		notificationSvc: notificationSvc,
		jobs:            make(map[string]cron.EntryID),
	}
}

// Start 启动调度器并注册所有启用的任务
func (s *SchedulerService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	for _, t := range tasks {
		if t.Enabled {
			if err := s.scheduleTask(t); err != nil {
				logger.Error("任务注册失败", "task", t.Name, "error", err)
			}
		}
	}

	s.cron.Start()
	s.running = true
	logger.Info("调度器已启动", "tasks", len(s.jobs))

	return nil
}

// Stop 停止调度器
func (s *SchedulerService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.cron.Stop()
		s.running = false
		logger.Info("调度器已停止")
	}
}

// CreateTask 创建新任务
func (s *SchedulerService) CreateTask(ctx context.Context, req contracts.TaskRequest) (*contracts.TaskResponse, error) {
	if _, err := cron.ParseStandard(req.CronExpr); err != nil {
		return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInvalidRequest,
			"cron 表达式无效: "+req.CronExpr, err)
	}
	if req.Path == "" {
		return nil, contracts.NewServiceError(contracts.ErrorCodeInvalidRequest, "扫描目录不能为空")
	}

	t := &entities.ScanTask{
		Name:    req.Name,
		Cron:    req.CronExpr,
		Path:    req.Path,
		Merge:   req.Merge,
		Notify:  req.Notify,
		Enabled: req.Enabled,
		Status:  entities.TaskStatusIdle,
	}
	if err := s.taskRepo.Create(t); err != nil {
		return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, "任务保存失败", err)
	}

	s.mu.Lock()
	if t.Enabled && s.running {
		if err := s.scheduleTask(t); err != nil {
			s.mu.Unlock()
			s.taskRepo.Delete(t.ID)
			return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, "任务调度失败", err)
		}
	}
	s.mu.Unlock()

	logger.Info("任务已创建", "task", t.Name, "id", t.ID)
	return toResponse(t), nil
}

// GetTask 获取任务
func (s *SchedulerService) GetTask(ctx context.Context, id string) (*contracts.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(id)
	if err != nil {
		return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeNotFound, "任务不存在: "+id, err)
	}
	return toResponse(t), nil
}

// UpdateTask 更新任务，nil 字段保持原值
func (s *SchedulerService) UpdateTask(ctx context.Context, id string, req contracts.TaskUpdateRequest) (*contracts.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(id)
	if err != nil {
		return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeNotFound, "任务不存在: "+id, err)
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Path != nil {
		t.Path = *req.Path
	}
	if req.CronExpr != nil {
		if _, err := cron.ParseStandard(*req.CronExpr); err != nil {
			return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInvalidRequest,
				"cron 表达式无效: "+*req.CronExpr, err)
		}
		t.Cron = *req.CronExpr
	}
	if req.Merge != nil {
		t.Merge = *req.Merge
	}
	if req.Notify != nil {
		t.Notify = *req.Notify
	}
	if req.Enabled != nil {
		t.Enabled = *req.Enabled
	}

	if err := s.taskRepo.Update(t); err != nil {
		return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, "任务更新失败", err)
	}

	s.mu.Lock()
	if entryID, exists := s.jobs[t.ID]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, t.ID)
	}
	if t.Enabled && s.running {
		if err := s.scheduleTask(t); err != nil {
			s.mu.Unlock()
			return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, "任务重新调度失败", err)
		}
	}
	s.mu.Unlock()

	logger.Info("任务已更新", "task", t.Name, "id", t.ID)
	return toResponse(t), nil
}

// DeleteTask 删除任务并移除调度
func (s *SchedulerService) DeleteTask(ctx context.Context, id string) error {
	if err := s.taskRepo.Delete(id); err != nil {
		return contracts.NewServiceErrorWithCause(contracts.ErrorCodeNotFound, "任务不存在: "+id, err)
	}

	s.mu.Lock()
	if entryID, exists := s.jobs[id]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, id)
	}
	s.mu.Unlock()

	logger.Info("任务已删除", "id", id)
	return nil
}

// ListTasks 列出所有任务及摘要
func (s *SchedulerService) ListTasks(ctx context.Context) (*contracts.TaskListResponse, error) {
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeInternalError, "任务列表读取失败", err)
	}

	resp := &contracts.TaskListResponse{
		Tasks:      make([]contracts.TaskResponse, 0, len(tasks)),
		TotalCount: len(tasks),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, *toResponse(t))
		if t.Enabled {
			resp.Summary.EnabledCount++
		} else {
			resp.Summary.DisabledCount++
		}
		switch t.Status {
		case entities.TaskStatusRunning:
			resp.Summary.RunningCount++
		case entities.TaskStatusError:
			resp.Summary.ErrorCount++
		}
	}
	return resp, nil
}

// RunTaskNow 立即执行一次任务
func (s *SchedulerService) RunTaskNow(ctx context.Context, id string) (*contracts.TaskRunResponse, error) {
	t, err := s.taskRepo.GetByID(id)
	if err != nil {
		return nil, contracts.NewServiceErrorWithCause(contracts.ErrorCodeNotFound, "任务不存在: "+id, err)
	}

	startedAt := time.Now()
	scan, runErr := s.executeTask(ctx, t)
	if runErr != nil {
		return nil, runErr
	}

	return &contracts.TaskRunResponse{
		TaskID:    t.ID,
		StartedAt: startedAt,
		Scan:      scan,
	}, nil
}

// scheduleTask 注册单个任务到 cron，调用方必须持有锁
func (s *SchedulerService) scheduleTask(t *entities.ScanTask) error {
	taskID := t.ID
	entryID, err := s.cron.AddFunc(t.Cron, func() {
		// 每次触发都重读任务，避免执行到已被修改的旧快照
		current, err := s.taskRepo.GetByID(taskID)
		if err != nil {
			logger.Warn("定时任务已不存在，跳过执行", "id", taskID)
			return
		}
		s.executeTask(context.Background(), current)
	})
	if err != nil {
		return err
	}

	s.jobs[t.ID] = entryID

	entry := s.cron.Entry(entryID)
	if !entry.Next.IsZero() {
		next := entry.Next
		t.NextRunAt = &next
		s.taskRepo.Update(t)
	}

	return nil
}

// executeTask 执行一次扫描并更新任务状态与计数
func (s *SchedulerService) executeTask(ctx context.Context, t *entities.ScanTask) (*contracts.ScanResponse, error) {
	logger.Info("执行扫描任务", "task", t.Name, "path", t.Path)

	now := time.Now()
	t.LastRunAt = &now
	t.Status = entities.TaskStatusRunning
	t.RunCount++
	s.taskRepo.Update(t)

	start := time.Now()
	scan, err := s.catalogService.ScanDirectory(ctx, contracts.ScanRequest{
		Directory: t.Path,
		Merge:     t.Merge,
	})

	summary := contracts.ScanSummary{
		TaskName:   t.Name,
		Directory:  t.Path,
		DurationMs: time.Since(start).Milliseconds(),
	}

	if err != nil {
		t.Status = entities.TaskStatusError
		t.FailureCount++
		s.taskRepo.Update(t)
		logger.Error("扫描任务失败", "task", t.Name, "error", err)

		if t.Notify && s.notificationSvc != nil {
			summary.Err = err.Error()
			s.notificationSvc.NotifyScanCompleted(ctx, summary)
		}
		return nil, err
	}

	t.Status = entities.TaskStatusSuccess
	t.SuccessCount++
	s.taskRepo.Update(t)

	if t.Notify && s.notificationSvc != nil {
		summary.FileCount = scan.FileCount
		summary.SeriesCount = scan.Stats.SeriesCount
		summary.BangumiCount = scan.Stats.BangumiCount
		s.notificationSvc.NotifyScanCompleted(ctx, summary)
	}

	return scan, nil
}

func toResponse(t *entities.ScanTask) *contracts.TaskResponse {
	return &contracts.TaskResponse{
		ID:           t.ID,
		Name:         t.Name,
		Path:         t.Path,
		CronExpr:     t.Cron,
		Merge:        t.Merge,
		Notify:       t.Notify,
		Enabled:      t.Enabled,
		Status:       t.Status,
		LastRunAt:    t.LastRunAt,
		NextRunAt:    t.NextRunAt,
		RunCount:     t.RunCount,
		SuccessCount: t.SuccessCount,
		FailureCount: t.FailureCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
