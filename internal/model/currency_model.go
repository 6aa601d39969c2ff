package model

import (
	"time"
)

// CurrencyModel 项目接受的代币
type CurrencyModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 代币合约地址
	Address string `json:"address" gorm:"not null;default:'0x';uniqueIndex:idx_currency_addr_network"`
	// 代币名称
	Name string `json:"name" gorm:"not null;default:'ERC20'"`
	// 所在网络
	NetworkId int64        `json:"network_id" gorm:"not null;uniqueIndex:idx_currency_addr_network"`
	Network   NetworkModel `json:"network,omitempty" gorm:"foreignKey:NetworkId"`
}

// TableName 自定义表名
func (CurrencyModel) TableName() string {
	return "currency"
}
