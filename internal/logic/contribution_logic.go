package logic

import (
	"context"

	"github.com/kelvinlyk2002/final-backend/internal/exchange"
	"github.com/kelvinlyk2002/final-backend/internal/logger"
	"github.com/kelvinlyk2002/final-backend/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContributionLogic 贡献记录业务逻辑
type ContributionLogic struct {
	db      *gorm.DB
	refdata *RefdataLogic
	project *ProjectLogic
	rates   exchange.RateClient
}

// NewContributionLogic 创建贡献记录业务逻辑
func NewContributionLogic(db *gorm.DB, rates exchange.RateClient) *ContributionLogic {
	return &ContributionLogic{
		db:      db,
		refdata: NewRefdataLogic(db),
		project: NewProjectLogic(db),
		rates:   rates,
	}
}

// CreateContributionInput 记录贡献入参
type CreateContributionInput struct {
	ProjectAddress  string
	Contributor     string
	CurrencyAddress string
	Amount          string // 高精度小数字符串
	Hsh             string
}

// CreateContribution 记录一笔链上贡献并折算美元金额
// 贡献人和代币必须已经存在，不做自动创建
func (c *ContributionLogic) CreateContribution(ctx context.Context, input CreateContributionInput) (*model.ContributionModel, error) {
	project, err := c.project.GetProjectByAddress(input.ProjectAddress)
	if err != nil {
		return nil, err
	}

	user, err := c.refdata.GetUser(input.Contributor)
	if err != nil {
		return nil, err
	}

	currency, err := c.refdata.GetCurrencyByAddress(input.CurrencyAddress)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	usdAmount := c.usdValue(ctx, currency, amount)

	contribution := model.ContributionModel{
		ProjectId:  project.Id,
		UserId:     user.Id,
		CurrencyId: currency.Id,
		Amount:     amount,
		UsdAmount:  usdAmount,
		Hsh:        input.Hsh,
	}

	if err := c.db.Create(&contribution).Error; err != nil {
		return nil, err
	}

	return &contribution, nil
}

// usdValue 按实时汇率折算美元金额，汇率服务不可用时退化为0
func (c *ContributionLogic) usdValue(ctx context.Context, currency *model.CurrencyModel, amount decimal.Decimal) float64 {
	symbol := currency.Name
	// WETH 没有独立报价，按 ETH 查询
	if symbol == "WETH" {
		symbol = "ETH"
	}

	rate, err := c.rates.USDRate(ctx, symbol)
	if err != nil {
		logger.Warn("Failed to fetch USD rate for %s, recording zero usd amount: %v", symbol, err)
		return 0
	}

	value, _ := amount.Float64()
	return rate * value
}
