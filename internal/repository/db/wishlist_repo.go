package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
)

type WishlistRepo struct {
	db *DbDao
}

func NewWishlistRepo(db *DbDao) *WishlistRepo {
	return &WishlistRepo{db: db}
}

func (s *WishlistRepo) GetByID(ctx context.Context, id uint) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := s.db.conn(ctx).First(&item, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}

func (s *WishlistRepo) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := s.db.conn(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}

func (s *WishlistRepo) ListByUser(ctx context.Context, userID uint) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	err := s.db.conn(ctx).Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (s *WishlistRepo) Create(ctx context.Context, item *model.WishlistItem) error {
	return s.db.conn(ctx).Create(item).Error
}

func (s *WishlistRepo) Delete(ctx context.Context, id uint) error {
	res := s.db.conn(ctx).Delete(&model.WishlistItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
