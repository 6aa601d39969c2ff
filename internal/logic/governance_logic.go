package logic

import (
	"errors"

	"github.com/kelvinlyk2002/final-backend/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GovernanceLogic 社区治理业务逻辑
type GovernanceLogic struct {
	db      *gorm.DB
	refdata *RefdataLogic
	project *ProjectLogic
}

// NewGovernanceLogic 创建社区治理业务逻辑
func NewGovernanceLogic(db *gorm.DB) *GovernanceLogic {
	return &GovernanceLogic{
		db:      db,
		refdata: NewRefdataLogic(db),
		project: NewProjectLogic(db),
	}
}

// CreateProposalInput 发起提案入参
type CreateProposalInput struct {
	ProjectAddress string
	Title          string
	Description    string
	Nonce          int64
}

// CreateProposal 为已有项目发起社区提案
func (g *GovernanceLogic) CreateProposal(input CreateProposalInput) (*model.CommunityProposalModel, error) {
	project, err := g.project.GetProjectByAddress(input.ProjectAddress)
	if err != nil {
		return nil, err
	}

	status, err := g.refdata.GetOrCreateStatus(model.StatusActive)
	if err != nil {
		return nil, err
	}

	proposal := model.CommunityProposalModel{
		ProjectId:            project.Id,
		StatusId:             status.Id,
		Title:                input.Title,
		Description:          input.Description,
		OnchainProposalNonce: input.Nonce,
	}

	if err := g.db.Create(&proposal).Error; err != nil {
		return nil, err
	}

	return &proposal, nil
}

// GetProposals 列出项目的全部提案
func (g *GovernanceLogic) GetProposals(projectAddress string) ([]model.CommunityProposalModel, error) {
	project, err := g.project.GetProjectByAddress(projectAddress)
	if err != nil {
		return nil, err
	}

	var proposals []model.CommunityProposalModel
	err = g.db.Where("project_id = ?", project.Id).
		Preload("Status").
		Order("created_at DESC").
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

// CreateVoteInput 投票入参
type CreateVoteInput struct {
	Voter      string
	ProposalId int64
	Weight     decimal.Decimal
	Vote       bool
	Hsh        string
}

// CreateVote 记录一张提案投票
// 提案ID按链上回执原样存储，不校验本地提案是否存在
func (g *GovernanceLogic) CreateVote(input CreateVoteInput) (*model.VoteModel, error) {
	voter, err := g.refdata.GetUser(input.Voter)
	if err != nil {
		return nil, err
	}

	vote := model.VoteModel{
		VoterId:    voter.Id,
		ProposalId: input.ProposalId,
		Weight:     input.Weight,
		Vote:       input.Vote,
		Hsh:        input.Hsh,
	}

	if err := g.db.Create(&vote).Error; err != nil {
		return nil, err
	}

	return &vote, nil
}

// GetVotes 列出提案的全部投票
func (g *GovernanceLogic) GetVotes(proposalId int64) ([]model.VoteModel, error) {
	var proposal model.CommunityProposalModel
	if err := g.db.First(&proposal, proposalId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}

	var votes []model.VoteModel
	err := g.db.Where("proposal_id = ?", proposalId).
		Preload("Voter").
		Order("created_at DESC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}
