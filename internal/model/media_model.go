package model

import (
	"time"
)

// MediaModel 项目图片
type MediaModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId int64 `json:"project" gorm:"not null;index"`
	// 相对媒体根目录的文件路径（user_upload/<文件名>）
	Image string `json:"image" gorm:"not null;index"`
}

// TableName 自定义表名
func (MediaModel) TableName() string {
	return "media"
}
