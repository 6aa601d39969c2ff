package model

import (
	"time"
)

// StatusModel 状态表（active / released / blocked 等）
type StatusModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 状态名称
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

// TableName 自定义表名
func (StatusModel) TableName() string {
	return "status"
}

// 常用状态名称
const (
	StatusActive   = "active"
	StatusReleased = "released"
)
