package model

import (
	"time"
)

// NetworkModel 部署网络
type NetworkModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 网络名称
	Name string `json:"name" gorm:"not null;uniqueIndex:idx_network_name_chain"`
	// 链ID
	ChainId int64 `json:"chainid" gorm:"not null;uniqueIndex:idx_network_name_chain"`
}

// TableName 自定义表名
func (NetworkModel) TableName() string {
	return "network"
}
