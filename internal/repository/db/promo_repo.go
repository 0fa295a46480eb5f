package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type PromoRepo struct {
	db *DbDao
}

func NewPromoRepo(db *DbDao) *PromoRepo {
	return &PromoRepo{db: db}
}

// Create - 創建折扣碼
func (s *PromoRepo) Create(ctx context.Context, promo *model.PromoCode) error {
	return s.db.conn(ctx).Create(promo).Error
}

// Read - 根據ID查詢折扣碼
func (s *PromoRepo) GetByID(ctx context.Context, id uint) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := s.db.conn(ctx).First(&promo, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &promo, nil
}

// Read - 根據代碼查詢折扣碼
func (s *PromoRepo) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	var promo model.PromoCode
	err := s.db.conn(ctx).Where("code = ?", code).First(&promo).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &promo, nil
}

// Read - 查詢所有折扣碼
func (s *PromoRepo) List(ctx context.Context) ([]model.PromoCode, error) {
	var promos []model.PromoCode
	err := s.db.conn(ctx).Find(&promos).Error
	return promos, err
}

// Update - 更新折扣碼
func (s *PromoRepo) Update(ctx context.Context, promo *model.PromoCode) error {
	return s.db.conn(ctx).Save(promo).Error
}
