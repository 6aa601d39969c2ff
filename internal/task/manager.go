package task

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/kelvinlyk2002/final-backend/internal/config"
	"github.com/kelvinlyk2002/final-backend/internal/logger"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// Manager 任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	pool      *ants.Pool
	db        *gorm.DB
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(db *gorm.DB, cfg *config.Config) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(cfg.Task.PoolSize)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: s,
		pool:      pool,
		db:        db,
		config:    cfg,
	}, nil
}

// Start 启动任务管理器
func Start(db *gorm.DB, cfg *config.Config) *Manager {
	manager, err := NewManager(db, cfg)
	if err != nil {
		logger.Fatal("Failed to create task manager: %v", err)
	}

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	// 注册项目到期释放任务
	m.RegisterProjectReleaseJob()
}

// RegisterProjectReleaseJob 注册项目到期释放任务
func (m *Manager) RegisterProjectReleaseJob() {
	job := NewProjectReleaseJob(m.db, m.config)

	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(func() {
			if err := m.pool.Submit(job.Execute); err != nil {
				logger.Error("Failed to submit job %s to pool: %v", job.GetName(), err)
			}
		}),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	m.pool.Release()
	logger.Info("Task manager stopped")
}
