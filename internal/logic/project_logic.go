package logic

import (
	"errors"
	"strings"

	"github.com/kelvinlyk2002/final-backend/internal/model"
	"gorm.io/gorm"
)

// 未指定网络时使用的默认网络
const (
	DefaultNetworkName    = "Optimism Goerli"
	DefaultNetworkChainId = 420
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db      *gorm.DB
	refdata *RefdataLogic
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB) *ProjectLogic {
	return &ProjectLogic{db: db, refdata: NewRefdataLogic(db)}
}

// CreateProjectInput 创建项目入参
type CreateProjectInput struct {
	Title              string
	Description        string
	Category           string
	WalletAddress      string
	ProjectAddress     string
	CommunityOversight bool
	ReleaseEpoch       int64
	TransactionHash    string
	Chain              string
	ChainId            int64
	Currency           string // 代币合约地址，可选
	CurrencyName       string
}

// CreateProject 创建项目并解析全部引用数据
func (p *ProjectLogic) CreateProject(input CreateProjectInput) (*model.ProjectModel, error) {
	if input.Chain == "" {
		input.Chain = DefaultNetworkName
	}
	if input.ChainId == 0 {
		input.ChainId = DefaultNetworkChainId
	}

	network, err := p.refdata.GetOrCreateNetwork(input.Chain, input.ChainId)
	if err != nil {
		return nil, err
	}

	currency, err := p.refdata.GetOrCreateCurrency(input.Currency, input.CurrencyName, network)
	if err != nil {
		return nil, err
	}

	category, err := p.refdata.GetOrCreateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	status, err := p.refdata.GetOrCreateStatus(model.StatusActive)
	if err != nil {
		return nil, err
	}

	fundraiser, err := p.refdata.GetOrCreateUser(input.WalletAddress)
	if err != nil {
		return nil, err
	}

	project := model.ProjectModel{
		Title:              input.Title,
		Description:        input.Description,
		FundraiserId:       fundraiser.Id,
		CategoryId:         category.Id,
		StatusId:           status.Id,
		ProjectAddress:     input.ProjectAddress,
		CommunityOversight: input.CommunityOversight,
		ReleaseEpoch:       input.ReleaseEpoch,
		CreationHash:       input.TransactionHash,
		Currencies:         []model.CurrencyModel{*currency},
	}

	if err := p.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetProjectByAddress 按链上地址查找项目
func (p *ProjectLogic) GetProjectByAddress(projectAddress string) (*model.ProjectModel, error) {
	var project model.ProjectModel
	if err := p.db.Where("project_address = ?", projectAddress).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// GetProjectData 按链上地址获取项目全量数据（含所有关联）
func (p *ProjectLogic) GetProjectData(projectAddress string) (*model.ProjectModel, error) {
	var project model.ProjectModel
	err := p.db.Where("project_address = ?", projectAddress).
		Preload("Fundraiser").
		Preload("Category").
		Preload("Status").
		Preload("Currencies").
		Preload("Media").
		Preload("Contributions").
		Preload("Contributions.User").
		Preload("Contributions.Currency").
		Preload("Proposals").
		Preload("Proposals.Status").
		Preload("Comments").
		Preload("Comments.User").
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// AddCurrency 向已有项目追加可接受的代币
func (p *ProjectLogic) AddCurrency(projectAddress, chain string, chainId int64, currencyAddress, currencyName string) error {
	// 先定位项目，避免为不存在的项目留下孤立的代币行
	project, err := p.GetProjectByAddress(projectAddress)
	if err != nil {
		return err
	}

	if chain == "" {
		chain = DefaultNetworkName
	}
	if chainId == 0 {
		chainId = DefaultNetworkChainId
	}

	network, err := p.refdata.GetOrCreateNetwork(chain, chainId)
	if err != nil {
		return err
	}

	currency, err := p.refdata.GetOrCreateCurrency(currencyAddress, currencyName, network)
	if err != nil {
		return err
	}

	return p.db.Model(project).Association("Currencies").Append(currency)
}

// SearchProjects 按字段搜索项目
// title/category 为不区分大小写的子串匹配，fundraiser/contributor 为地址精确匹配
func (p *ProjectLogic) SearchProjects(field, value string) ([]model.ProjectModel, error) {
	query := p.db.Model(&model.ProjectModel{}).
		Preload("Fundraiser").
		Preload("Category").
		Preload("Status").
		Preload("Currencies")

	switch field {
	case "title":
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(value)+"%")

	case "category":
		sub := p.db.Model(&model.CategoryModel{}).
			Select("id").
			Where("LOWER(name) LIKE ?", "%"+strings.ToLower(value)+"%")
		query = query.Where("category_id IN (?)", sub)

	case "fundraiser":
		user, err := p.refdata.GetUser(value)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return []model.ProjectModel{}, nil
			}
			return nil, err
		}
		query = query.Where("fundraiser_id = ?", user.Id)

	case "contributor":
		user, err := p.refdata.GetUser(value)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return []model.ProjectModel{}, nil
			}
			return nil, err
		}
		sub := p.db.Model(&model.ContributionModel{}).
			Select("project_id").
			Where("user_id = ?", user.Id)
		query = query.Where("id IN (?)", sub)

	default:
		return nil, ErrUnknownSearchField
	}

	var projects []model.ProjectModel
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
