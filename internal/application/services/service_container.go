package services

import (
	"fmt"

	"github.com/leafmoes/bangumi-catalog/internal/application/contracts"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/catalog"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/export"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/notification"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/parser"
	"github.com/leafmoes/bangumi-catalog/internal/application/services/task"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/config"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/repository"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/scanner"
)

// ServiceContainer 应用服务容器，负责依赖装配
type ServiceContainer struct {
	config *config.Config

	catalogService      contracts.CatalogService
	taskService         contracts.TaskService
	notificationService contracts.NotificationService
	schedulerService    *task.SchedulerService

	taskRepo *repository.TaskRepository
}

// NewServiceContainer 创建服务容器，按依赖顺序初始化各层
func NewServiceContainer(cfg *config.Config) (*ServiceContainer, error) {
	container := &ServiceContainer{config: cfg}

	rules, err := parser.Compile(cfg.EffectiveRuleSet())
	if err != nil {
		return nil, fmt.Errorf("failed to compile rules: %w", err)
	}

	taskRepo, err := repository.NewTaskRepository(cfg.Scan.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create task repository: %w", err)
	}
	container.taskRepo = taskRepo

	dirScanner := scanner.NewScanner(cfg.EffectiveVideoExtensions())
	exporter := export.NewAppExportService()

	container.catalogService = catalog.NewAppCatalogService(rules, dirScanner, exporter)
	container.notificationService = notification.NewAppNotificationService(cfg)

	scheduler := task.NewSchedulerService(taskRepo, container.catalogService, container.notificationService)
	container.schedulerService = scheduler
	container.taskService = scheduler

	return container, nil
}

// Start 启动常驻组件
func (c *ServiceContainer) Start() error {
	if c.config.Scheduler.Enabled {
		return c.schedulerService.Start()
	}
	return nil
}

// Stop 停止常驻组件
func (c *ServiceContainer) Stop() {
	c.schedulerService.Stop()
}

func (c *ServiceContainer) GetCatalogService() contracts.CatalogService {
	return c.catalogService
}

func (c *ServiceContainer) GetTaskService() contracts.TaskService {
	return c.taskService
}

func (c *ServiceContainer) GetNotificationService() contracts.NotificationService {
	return c.notificationService
}

func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}
