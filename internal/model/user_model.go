package model

import (
	"time"
)

// UserModel 用户（以钱包地址标识）
type UserModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 钱包地址
	Address string `json:"address" gorm:"not null;default:'0x';uniqueIndex"`
}

// TableName 自定义表名
func (UserModel) TableName() string {
	return "app_user"
}
