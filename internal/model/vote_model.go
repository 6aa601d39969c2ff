package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoteModel 提案投票
type VoteModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 投票人
	VoterId int64     `json:"voter_id" gorm:"not null"`
	Voter   UserModel `json:"voter,omitempty" gorm:"foreignKey:VoterId"`

	// 提案的数字ID，按链上回执原样存储，不做外键约束
	ProposalId int64 `json:"proposal" gorm:"not null;index"`

	// 票权重（按代币数量计）
	Weight decimal.Decimal `json:"weight" gorm:"type:decimal(80,18);not null"`
	// 赞成/反对
	Vote bool `json:"vote" gorm:"not null;default:false"`
	// 投票交易哈希
	Hsh string `json:"hsh" gorm:"not null;default:'0x'"`
}

// TableName 自定义表名
func (VoteModel) TableName() string {
	return "vote"
}
