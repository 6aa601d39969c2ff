package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kelvinlyk2002/final-backend/internal/exchange"
	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"gorm.io/gorm"
)

// ContributionHandler 贡献记录处理器
type ContributionHandler struct {
	contributionLogic *logic.ContributionLogic
}

// NewContributionHandler 创建贡献记录处理器
func NewContributionHandler(db *gorm.DB, rates exchange.RateClient) *ContributionHandler {
	return &ContributionHandler{
		contributionLogic: logic.NewContributionLogic(db, rates),
	}
}

// ContributeProject 记录一笔链上贡献
func (h *ContributionHandler) ContributeProject(c *gin.Context) {
	var req ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		FieldErrorsResponse(c, errs)
		return
	}

	_, err := h.contributionLogic.CreateContribution(c.Request.Context(), logic.CreateContributionInput{
		ProjectAddress:  req.ProjectAddress,
		Contributor:     req.Contributor,
		CurrencyAddress: req.CurrencyAddress,
		Amount:          req.Amount,
		Hsh:             req.Hsh,
	})
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "Contribution successful")
}
