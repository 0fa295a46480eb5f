package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 創建訂單，OrderItems 一併寫入
func (s *OrderRepo) Create(ctx context.Context, order *model.Order) error {
	return s.db.conn(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.conn(ctx).Preload("OrderItems").First(&order, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

// Read - 根據用戶ID查詢訂單
func (s *OrderRepo) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.conn(ctx).Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("order_id DESC").
		Find(&orders).Error
	return orders, err
}
