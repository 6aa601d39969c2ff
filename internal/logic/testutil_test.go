package logic_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/kelvinlyk2002/final-backend/internal/logic"
	"github.com/kelvinlyk2002/final-backend/internal/model"
	"github.com/kelvinlyk2002/final-backend/internal/repository"
)

// newTestDB 打开内存数据库并迁移全部业务表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	// sqlite 对 decimal(80,18) 列按 NUMERIC 亲和性处理，金额会被折成浮点数丢失精度，
	// 测试库重建为 TEXT 亲和性列
	for _, stmt := range []string{
		"ALTER TABLE contribution DROP COLUMN amount",
		"ALTER TABLE contribution ADD COLUMN amount TEXT NOT NULL DEFAULT '0'",
		"ALTER TABLE vote DROP COLUMN weight",
		"ALTER TABLE vote ADD COLUMN weight TEXT NOT NULL DEFAULT '0'",
	} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

// seedProject 创建一个带默认引用数据的项目
func seedProject(t *testing.T, db *gorm.DB, title, projectAddress string) *model.ProjectModel {
	t.Helper()

	project, err := logic.NewProjectLogic(db).CreateProject(logic.CreateProjectInput{
		Title:           title,
		Description:     "seeded project",
		Category:        "environment",
		WalletAddress:   "0x1111111111111111111111111111111111111111",
		ProjectAddress:  projectAddress,
		ReleaseEpoch:    1700000000,
		TransactionHash: "0xabc",
	})
	require.NoError(t, err)
	return project
}

// seedCurrency 创建一个指定名称的代币
func seedCurrency(t *testing.T, db *gorm.DB, address, name string) *model.CurrencyModel {
	t.Helper()

	refdata := logic.NewRefdataLogic(db)
	network, err := refdata.GetOrCreateNetwork("Optimism Goerli", 420)
	require.NoError(t, err)
	currency, err := refdata.GetOrCreateCurrency(address, name, network)
	require.NoError(t, err)
	return currency
}

// seedUser 创建一个用户
func seedUser(t *testing.T, db *gorm.DB, address string) *model.UserModel {
	t.Helper()

	user, err := logic.NewRefdataLogic(db).GetOrCreateUser(address)
	require.NoError(t, err)
	return user
}

// fakeRater 可控的汇率客户端替身
type fakeRater struct {
	rate       float64
	err        error
	lastSymbol string
	calls      int
}

func (f *fakeRater) USDRate(_ context.Context, symbol string) (float64, error) {
	f.lastSymbol = symbol
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}
