package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
)

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

// Read - 根據ID查詢購物車項目
func (s *CartRepo) GetByID(ctx context.Context, id uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.conn(ctx).First(&item, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}

// Read - 查詢用戶的某商品購物車項目
func (s *CartRepo) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.conn(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}

// Read - 查詢用戶的購物車
func (s *CartRepo) ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.db.conn(ctx).Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// Save - 新增或更新購物車項目
func (s *CartRepo) Save(ctx context.Context, item *model.CartItem) error {
	return s.db.conn(ctx).Save(item).Error
}

// Delete - 刪除購物車項目
func (s *CartRepo) Delete(ctx context.Context, id uint) error {
	res := s.db.conn(ctx).Delete(&model.CartItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete - 清空用戶購物車，結帳成功後使用
func (s *CartRepo) DeleteByUser(ctx context.Context, userID uint) error {
	return s.db.conn(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
