package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GovernanceHandler 社区治理处理器
type GovernanceHandler struct {
	governanceLogic *logic.GovernanceLogic
}

// NewGovernanceHandler 创建社区治理处理器
func NewGovernanceHandler(db *gorm.DB) *GovernanceHandler {
	return &GovernanceHandler{
		governanceLogic: logic.NewGovernanceLogic(db),
	}
}

// ProposeCommunityAction 发起社区提案
func (h *GovernanceHandler) ProposeCommunityAction(c *gin.Context) {
	var req ProposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	proposal, err := h.governanceLogic.CreateProposal(logic.CreateProposalInput{
		ProjectAddress: req.ProjectAddress,
		Title:          req.Title,
		Description:    req.Description,
		Nonce:          req.Nonce,
	})
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	DataResponse(c, http.StatusCreated, newProposalData(*proposal))
}

// VoteCommunityAction 对提案投票
func (h *GovernanceHandler) VoteCommunityAction(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	weight := decimal.Zero
	if req.Weight != "" {
		var err error
		weight, err = decimal.NewFromString(req.Weight)
		if err != nil {
			ErrorResponse(c, http.StatusBadRequest, "Invalid vote weight")
			return
		}
	}

	vote, err := h.governanceLogic.CreateVote(logic.CreateVoteInput{
		Voter:      req.Voter,
		ProposalId: req.ProposalId,
		Weight:     weight,
		Vote:       req.Vote,
		Hsh:        req.Hsh,
	})
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	DataResponse(c, http.StatusCreated, newVoteData(*vote))
}

// GetCommunityProposals 列出项目提案
func (h *GovernanceHandler) GetCommunityProposals(c *gin.Context) {
	projectAddress := c.Param("project_address")

	proposals, err := h.governanceLogic.GetProposals(projectAddress)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	results := make([]ProposalData, 0, len(proposals))
	for _, p := range proposals {
		results = append(results, newProposalData(p))
	}

	DataResponse(c, http.StatusOK, results)
}

// GetVotes 列出提案投票
func (h *GovernanceHandler) GetVotes(c *gin.Context) {
	proposalId, err := strconv.ParseInt(c.Param("proposal_id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid proposal id")
		return
	}

	votes, err := h.governanceLogic.GetVotes(proposalId)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	results := make([]VoteData, 0, len(votes))
	for _, v := range votes {
		results = append(results, newVoteData(v))
	}

	DataResponse(c, http.StatusOK, results)
}
