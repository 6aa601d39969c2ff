package task

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/kelvinlyk2002/final-backend/internal/config"
	"github.com/kelvinlyk2002/final-backend/internal/logger"
	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"github.com/kelvinlyk2002/final-backend/internal/model"
	"gorm.io/gorm"
)

// ProjectReleaseJob 项目到期释放任务
// 将 release_epoch 已过的 active 项目置为 released
type ProjectReleaseJob struct {
	db      *gorm.DB
	refdata *logic.RefdataLogic
	config  *config.Config
}

// NewProjectReleaseJob 创建项目到期释放任务
func NewProjectReleaseJob(db *gorm.DB, cfg *config.Config) *ProjectReleaseJob {
	return &ProjectReleaseJob{
		db:      db,
		refdata: logic.NewRefdataLogic(db),
		config:  cfg,
	}
}

// GetName 获取任务名称
func (j *ProjectReleaseJob) GetName() string {
	return "project_release_updater"
}

// GetSchedule 获取调度配置
func (j *ProjectReleaseJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *ProjectReleaseJob) Execute() {
	now := time.Now().Unix()

	var active model.StatusModel
	if err := j.db.Where("name = ?", model.StatusActive).First(&active).Error; err != nil {
		// 还没有任何 active 项目
		return
	}

	released, err := j.refdata.GetOrCreateStatus(model.StatusReleased)
	if err != nil {
		logger.Error("Failed to resolve released status: %v", err)
		return
	}

	result := j.db.Model(&model.ProjectModel{}).
		Where("status_id = ? AND release_epoch > 0 AND release_epoch <= ?", active.Id, now).
		Update("status_id", released.Id)
	if result.Error != nil {
		logger.Error("Failed to release due projects: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		logger.Info("Released %d due projects", result.RowsAffected)
	}
}
