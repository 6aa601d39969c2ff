package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributionModel 贡献记录
type ContributionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId int64 `json:"project_id" gorm:"not null;index"`

	// 贡献人与代币
	UserId     int64         `json:"user_id" gorm:"not null"`
	User       UserModel     `json:"user,omitempty" gorm:"foreignKey:UserId"`
	CurrencyId int64         `json:"currency_id" gorm:"not null"`
	Currency   CurrencyModel `json:"currency,omitempty" gorm:"foreignKey:CurrencyId"`

	// 代币数量（支持18位小数精度）
	Amount decimal.Decimal `json:"amount" gorm:"type:decimal(80,18);not null"`
	// 入库时按实时汇率折算的美元金额，此后不再重算
	UsdAmount float64 `json:"usd_amount" gorm:"not null;default:0"`
	// 交易哈希
	Hsh string `json:"hsh" gorm:"not null;default:'0x'"`
}

// TableName 自定义表名
func (ContributionModel) TableName() string {
	return "contribution"
}
