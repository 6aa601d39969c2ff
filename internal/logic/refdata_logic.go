package logic

import (
	"errors"

	"github.com/kelvinlyk2002/final-backend/internal/model"
	"gorm.io/gorm"
)

// RefdataLogic 引用数据解析（按自然键查找，不存在则创建）
type RefdataLogic struct {
	db *gorm.DB
}

// NewRefdataLogic 创建引用数据逻辑
func NewRefdataLogic(db *gorm.DB) *RefdataLogic {
	return &RefdataLogic{db: db}
}

// GetOrCreateNetwork 按 (名称, 链ID) 解析网络
func (r *RefdataLogic) GetOrCreateNetwork(name string, chainId int64) (*model.NetworkModel, error) {
	var network model.NetworkModel
	err := r.db.Where(&model.NetworkModel{Name: name, ChainId: chainId}).
		FirstOrCreate(&network, model.NetworkModel{Name: name, ChainId: chainId}).Error
	if err != nil {
		return nil, err
	}
	return &network, nil
}

// GetOrCreateCurrency 按 (合约地址, 网络) 解析代币
func (r *RefdataLogic) GetOrCreateCurrency(address, name string, network *model.NetworkModel) (*model.CurrencyModel, error) {
	if name == "" {
		name = "ERC20"
	}

	var currency model.CurrencyModel
	err := r.db.Where(&model.CurrencyModel{Address: address, NetworkId: network.Id}).
		FirstOrCreate(&currency, model.CurrencyModel{Address: address, Name: name, NetworkId: network.Id}).Error
	if err != nil {
		return nil, err
	}
	return &currency, nil
}

// GetOrCreateCategory 按名称解析分类
func (r *RefdataLogic) GetOrCreateCategory(name string) (*model.CategoryModel, error) {
	var category model.CategoryModel
	err := r.db.Where(&model.CategoryModel{Name: name}).
		FirstOrCreate(&category, model.CategoryModel{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetOrCreateStatus 按名称解析状态
func (r *RefdataLogic) GetOrCreateStatus(name string) (*model.StatusModel, error) {
	var status model.StatusModel
	err := r.db.Where(&model.StatusModel{Name: name}).
		FirstOrCreate(&status, model.StatusModel{Name: name}).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetOrCreateUser 按钱包地址解析用户
func (r *RefdataLogic) GetOrCreateUser(address string) (*model.UserModel, error) {
	var user model.UserModel
	err := r.db.Where(&model.UserModel{Address: address}).
		FirstOrCreate(&user, model.UserModel{Address: address}).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser 按钱包地址查找已有用户，不自动创建
func (r *RefdataLogic) GetUser(address string) (*model.UserModel, error) {
	var user model.UserModel
	if err := r.db.Where("address = ?", address).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetCurrencyByAddress 按合约地址查找已有代币，不自动创建
func (r *RefdataLogic) GetCurrencyByAddress(address string) (*model.CurrencyModel, error) {
	var currency model.CurrencyModel
	if err := r.db.Where("address = ?", address).First(&currency).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCurrencyNotFound
		}
		return nil, err
	}
	return &currency, nil
}
