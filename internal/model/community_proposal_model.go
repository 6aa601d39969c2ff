package model

import (
	"time"
)

// CommunityProposalModel 社区治理提案
type CommunityProposalModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId int64 `json:"project" gorm:"not null;index"`

	StatusId int64       `json:"status_id" gorm:"not null"`
	Status   StatusModel `json:"status,omitempty" gorm:"foreignKey:StatusId"`

	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	// 链上提案序号
	OnchainProposalNonce int64 `json:"onchain_proposal_nonce" gorm:"not null"`
}

// TableName 自定义表名
func (CommunityProposalModel) TableName() string {
	return "community_proposal"
}
