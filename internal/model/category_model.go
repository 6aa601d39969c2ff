package model

import (
	"time"
)

// CategoryModel 项目分类
type CategoryModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 分类名称
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

// TableName 自定义表名
func (CategoryModel) TableName() string {
	return "category"
}
