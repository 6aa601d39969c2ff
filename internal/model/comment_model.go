package model

import (
	"time"
)

// CommentModel 项目评论
type CommentModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId int64 `json:"project" gorm:"not null;index"`

	Details string `json:"details" gorm:"type:text"`

	UserId int64     `json:"user_id" gorm:"not null"`
	User   UserModel `json:"user,omitempty" gorm:"foreignKey:UserId"`
}

// TableName 自定义表名
func (CommentModel) TableName() string {
	return "comment"
}
