package model

import (
	"time"
)

// ProjectModel 众筹项目
type ProjectModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`

	// 发起人
	FundraiserId int64     `json:"fundraiser_id" gorm:"not null"`
	Fundraiser   UserModel `json:"fundraiser,omitempty" gorm:"foreignKey:FundraiserId"`

	// 分类与状态
	CategoryId int64         `json:"category_id" gorm:"not null"`
	Category   CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryId"`
	StatusId   int64         `json:"status_id" gorm:"not null"`
	Status     StatusModel   `json:"status,omitempty" gorm:"foreignKey:StatusId"`

	// 链上信息
	ProjectAddress     string `json:"project_address" gorm:"not null;index"`
	CommunityOversight bool   `json:"community_oversight" gorm:"default:false"`
	ReleaseEpoch       int64  `json:"release_epoch"`
	CreationHash       string `json:"creation_hash" gorm:"not null;default:'0x'"`

	// 接受的代币（多对多）
	Currencies []CurrencyModel `json:"currencies,omitempty" gorm:"many2many:project_currency"`

	// 关联（随项目级联删除）
	Media         []MediaModel             `json:"media,omitempty" gorm:"foreignKey:ProjectId;constraint:OnDelete:CASCADE"`
	Contributions []ContributionModel      `json:"contributions,omitempty" gorm:"foreignKey:ProjectId;constraint:OnDelete:CASCADE"`
	Proposals     []CommunityProposalModel `json:"community_proposals,omitempty" gorm:"foreignKey:ProjectId;constraint:OnDelete:CASCADE"`
	Comments      []CommentModel           `json:"comments,omitempty" gorm:"foreignKey:ProjectId;constraint:OnDelete:CASCADE"`
}

// TableName 自定义表名
func (ProjectModel) TableName() string {
	return "project"
}
