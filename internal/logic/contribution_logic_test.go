package logic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"github.com/kelvinlyk2002/final-backend/internal/model"
)

func TestCreateContribution(t *testing.T) {
	db := newTestDB(t)

	project := seedProject(t, db, "Solar Farm", "0x0000000000000000000000000000000000000001")
	contributor := seedUser(t, db, "0x4444444444444444444444444444444444444444")
	currency := seedCurrency(t, db, "0x5555555555555555555555555555555555555555", "DAI")

	rater := &fakeRater{rate: 1.01}
	contributionLogic := logic.NewContributionLogic(db, rater)

	contribution, err := contributionLogic.CreateContribution(context.Background(), logic.CreateContributionInput{
		ProjectAddress:  project.ProjectAddress,
		Contributor:     contributor.Address,
		CurrencyAddress: currency.Address,
		Amount:          "100.000000000000000001",
		Hsh:             "0xfeed",
	})
	require.NoError(t, err)

	assert.Equal(t, "DAI", rater.lastSymbol)
	assert.Equal(t, project.Id, contribution.ProjectId)
	assert.Equal(t, contributor.Id, contribution.UserId)
	assert.Equal(t, currency.Id, contribution.CurrencyId)
	assert.Equal(t, "0xfeed", contribution.Hsh)
	assert.InDelta(t, 101.0, contribution.UsdAmount, 0.01)

	// 数据库里保留完整的18位小数精度
	var stored model.ContributionModel
	require.NoError(t, db.First(&stored, contribution.Id).Error)
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("100.000000000000000001")))
	assert.Equal(t, "100.000000000000000001", stored.Amount.String())
}

func TestCreateContributionWETHQueriedAsETH(t *testing.T) {
	db := newTestDB(t)

	project := seedProject(t, db, "Solar Farm", "0x0000000000000000000000000000000000000001")
	contributor := seedUser(t, db, "0x4444444444444444444444444444444444444444")
	currency := seedCurrency(t, db, "0x5555555555555555555555555555555555555555", "WETH")

	rater := &fakeRater{rate: 2500}
	_, err := logic.NewContributionLogic(db, rater).CreateContribution(context.Background(), logic.CreateContributionInput{
		ProjectAddress:  project.ProjectAddress,
		Contributor:     contributor.Address,
		CurrencyAddress: currency.Address,
		Amount:          "2",
		Hsh:             "0xfeed",
	})
	require.NoError(t, err)

	// WETH 没有独立报价，必须按 ETH 查询
	assert.Equal(t, "ETH", rater.lastSymbol)
	assert.Equal(t, 1, rater.calls)
}

func TestCreateContributionRateFailureRecordsZero(t *testing.T) {
	db := newTestDB(t)

	project := seedProject(t, db, "Solar Farm", "0x0000000000000000000000000000000000000001")
	contributor := seedUser(t, db, "0x4444444444444444444444444444444444444444")
	currency := seedCurrency(t, db, "0x5555555555555555555555555555555555555555", "DAI")

	rater := &fakeRater{err: errors.New("exchange rate API returned status 503")}
	contribution, err := logic.NewContributionLogic(db, rater).CreateContribution(context.Background(), logic.CreateContributionInput{
		ProjectAddress:  project.ProjectAddress,
		Contributor:     contributor.Address,
		CurrencyAddress: currency.Address,
		Amount:          "100",
		Hsh:             "0xfeed",
	})

	// 汇率服务退化不阻止记录贡献
	require.NoError(t, err)
	assert.Equal(t, float64(0), contribution.UsdAmount)

	var count int64
	db.Model(&model.ContributionModel{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateContributionUnknownProject(t *testing.T) {
	db := newTestDB(t)

	_, err := logic.NewContributionLogic(db, &fakeRater{rate: 1}).CreateContribution(context.Background(), logic.CreateContributionInput{
		ProjectAddress:  "0x00000000000000000000000000000000000000ff",
		Contributor:     "0x4444444444444444444444444444444444444444",
		CurrencyAddress: "0x5555555555555555555555555555555555555555",
		Amount:          "1",
		Hsh:             "0xfeed",
	})
	assert.ErrorIs(t, err, logic.ErrProjectNotFound)
}

func TestCreateContributionUnknownContributor(t *testing.T) {
	db := newTestDB(t)

	project := seedProject(t, db, "Solar Farm", "0x0000000000000000000000000000000000000001")
	seedCurrency(t, db, "0x5555555555555555555555555555555555555555", "DAI")

	// 贡献人必须已经存在，不自动创建
	_, err := logic.NewContributionLogic(db, &fakeRater{rate: 1}).CreateContribution(context.Background(), logic.CreateContributionInput{
		ProjectAddress:  project.ProjectAddress,
		Contributor:     "0x9999999999999999999999999999999999999999",
		CurrencyAddress: "0x5555555555555555555555555555555555555555",
		Amount:          "1",
		Hsh:             "0xfeed",
	})
	assert.ErrorIs(t, err, logic.ErrUserNotFound)

	var count int64
	db.Model(&model.ContributionModel{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateContributionUnknownCurrency(t *testing.T) {
	db := newTestDB(t)

	project := seedProject(t, db, "Solar Farm", "0x0000000000000000000000000000000000000001")
	contributor := seedUser(t, db, "0x4444444444444444444444444444444444444444")

	_, err := logic.NewContributionLogic(db, &fakeRater{rate: 1}).CreateContribution(context.Background(), logic.CreateContributionInput{
		ProjectAddress:  project.ProjectAddress,
		Contributor:     contributor.Address,
		CurrencyAddress: "0x9999999999999999999999999999999999999999",
		Amount:          "1",
		Hsh:             "0xfeed",
	})
	assert.ErrorIs(t, err, logic.ErrCurrencyNotFound)
}

func TestCreateContributionInvalidAmount(t *testing.T) {
	db := newTestDB(t)

	project := seedProject(t, db, "Solar Farm", "0x0000000000000000000000000000000000000001")
	contributor := seedUser(t, db, "0x4444444444444444444444444444444444444444")
	currency := seedCurrency(t, db, "0x5555555555555555555555555555555555555555", "DAI")

	rater := &fakeRater{rate: 1}
	_, err := logic.NewContributionLogic(db, rater).CreateContribution(context.Background(), logic.CreateContributionInput{
		ProjectAddress:  project.ProjectAddress,
		Contributor:     contributor.Address,
		CurrencyAddress: currency.Address,
		Amount:          "not-a-number",
		Hsh:             "0xfeed",
	})
	assert.ErrorIs(t, err, logic.ErrInvalidAmount)
	assert.Equal(t, 0, rater.calls)
}
