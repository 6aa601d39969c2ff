package logic

import (
	"errors"

	"github.com/kelvinlyk2002/final-backend/internal/model"
	"gorm.io/gorm"
)

// CommentLogic 评论业务逻辑
type CommentLogic struct {
	db      *gorm.DB
	refdata *RefdataLogic
	project *ProjectLogic
}

// NewCommentLogic 创建评论业务逻辑
func NewCommentLogic(db *gorm.DB) *CommentLogic {
	return &CommentLogic{
		db:      db,
		refdata: NewRefdataLogic(db),
		project: NewProjectLogic(db),
	}
}

// CreateComment 为已有项目添加评论，用户必须已存在
func (c *CommentLogic) CreateComment(projectAddress, userAddress, details string) (*model.CommentModel, error) {
	if details == "" {
		return nil, ErrEmptyComment
	}

	project, err := c.project.GetProjectByAddress(projectAddress)
	if err != nil {
		return nil, err
	}

	user, err := c.refdata.GetUser(userAddress)
	if err != nil {
		return nil, err
	}

	comment := model.CommentModel{
		ProjectId: project.Id,
		UserId:    user.Id,
		Details:   details,
	}

	if err := c.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	// 返回带用户信息的评论
	if err := c.db.Preload("User").First(&comment, comment.Id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateComment 按ID部分更新评论
func (c *CommentLogic) UpdateComment(id int64, updates map[string]interface{}) (*model.CommentModel, error) {
	if len(updates) == 0 {
		return nil, ErrNothingToUpdate
	}

	var comment model.CommentModel
	if err := c.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := c.db.Model(&comment).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := c.db.Preload("User").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment 按ID硬删除评论，重复删除返回未找到
func (c *CommentLogic) DeleteComment(id int64) error {
	var comment model.CommentModel
	if err := c.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	return c.db.Delete(&comment).Error
}
