package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leafmoes/bangumi-catalog/internal/domain/entities"
)

// TaskRepository 定时扫描任务的 JSON 文件存储
type TaskRepository struct {
	filePath string
	mu       sync.RWMutex
	tasks    map[string]*entities.ScanTask
}

func NewTaskRepository(dataDir string) (*TaskRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &TaskRepository{
		filePath: filepath.Join(dataDir, "scan_tasks.json"),
		tasks:    make(map[string]*entities.ScanTask),
	}

	if err := repo.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	return repo, nil
}

// load 从文件加载任务
func (r *TaskRepository) load() error {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return err
	}

	var tasks []*entities.ScanTask
	if err := json.Unmarshal(data, &tasks); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = make(map[string]*entities.ScanTask)
	for _, task := range tasks {
		r.tasks[task.ID] = task
	}

	return nil
}

// saveUnlocked 保存任务到文件，调用时必须已经持有锁
func (r *TaskRepository) saveUnlocked() error {
	tasks := make([]*entities.ScanTask, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.filePath, data, 0644)
}

// Create 创建新任务
func (r *TaskRepository) Create(task *entities.ScanTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = entities.TaskStatusIdle
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = task
	return r.saveUnlocked()
}

// Update 更新任务
func (r *TaskRepository) Update(task *entities.ScanTask) error {
	task.UpdatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tasks[task.ID]; !exists {
		return fmt.Errorf("task not found: %s", task.ID)
	}
	r.tasks[task.ID] = task
	return r.saveUnlocked()
}

// Delete 删除任务
func (r *TaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tasks[id]; !exists {
		return fmt.Errorf("task not found: %s", id)
	}
	delete(r.tasks, id)
	return r.saveUnlocked()
}

// GetByID 根据ID获取任务
func (r *TaskRepository) GetByID(id string) (*entities.ScanTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, exists := r.tasks[id]
	if !exists {
		return nil, fmt.Errorf("task not found: %s", id)
	}

	return task, nil
}

// GetAll 获取所有任务，按创建时间排序
func (r *TaskRepository) GetAll() ([]*entities.ScanTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*entities.ScanTask, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}
