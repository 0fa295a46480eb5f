package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const productCacheTTL = 10 * time.Minute

type ProductRepo struct {
	db *DbDao
	// ProductCache 可為nil，nil時全部走DB
	ProductCache *redis.Client
}

func NewProductRepo(db *DbDao, productCache *redis.Client) *ProductRepo {
	return &ProductRepo{db: db, ProductCache: productCache}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Create - 創建商品
func (s *ProductRepo) Create(ctx context.Context, product *model.Product) error {
	return s.db.conn(ctx).Create(product).Error
}

// Read - 根據ID查詢商品，先查快取，未命中則回DB並回填
func (s *ProductRepo) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	if s.ProductCache != nil {
		cached, err := s.ProductCache.Get(ctx, productCacheKey(id)).Result()
		if err == nil {
			var product model.Product
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
		}
	}

	var product model.Product
	err := s.db.conn(ctx).First(&product, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}

	if s.ProductCache != nil {
		if productJSON, err := json.Marshal(&product); err == nil {
			s.ProductCache.Set(ctx, productCacheKey(id), productJSON, productCacheTTL)
		}
	}
	return &product, nil
}

// Read - 鎖定商品列後讀取，結帳交易內使用，不走快取
func (s *ProductRepo) GetByIDForUpdate(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := s.db.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

// Read - 商品列表，支援分類過濾與熱門度排序
func (s *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	var products []model.Product
	query := s.db.conn(ctx).Model(&model.Product{})

	if filter.Category != "" {
		query = query.Where("products.category = ?", filter.Category)
	}

	if filter.Popular != "" {
		// 依累積售出數量排序，沒賣過的視為0
		direction := "DESC"
		if filter.Popular == constants.SortOrderLeast {
			direction = "ASC"
		}
		query = query.
			Joins("LEFT JOIN order_items ON order_items.product_id = products.product_id").
			Group("products.product_id").
			Order("COALESCE(SUM(order_items.quantity), 0) " + direction)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Find(&products).Error
	return products, err
}

// Update - 更新商品
func (s *ProductRepo) Update(ctx context.Context, product *model.Product) error {
	err := s.db.conn(ctx).Save(product).Error
	if err != nil {
		return err
	}
	s.invalidate(ctx, product.ProductID)
	return nil
}

// Delete - 軟刪除商品
func (s *ProductRepo) Delete(ctx context.Context, id uint) error {
	res := s.db.conn(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	s.invalidate(ctx, id)
	return nil
}

// Update - 扣減庫存，條件式更新避免扣成負數
func (s *ProductRepo) DeductStock(ctx context.Context, id uint, quantity int) error {
	res := s.db.conn(ctx).Model(&model.Product{}).
		Where("product_id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrStockNotEnough
	}
	s.invalidate(ctx, id)
	return nil
}

// 取得低庫存商品
func (s *ProductRepo) GetLowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	var products []model.Product
	err := s.db.conn(ctx).Where("stock <= ?", threshold).Find(&products).Error
	return products, err
}

// 銷售統計（根據訂單項目數量加總，含零銷售商品）
func (s *ProductRepo) GetSalesReport(ctx context.Context, category string, sort constants.SortOrderEnum, limit int) ([]model.ProductSales, error) {
	var rows []model.ProductSales
	direction := "DESC"
	if sort == constants.SortOrderLeast {
		direction = "ASC"
	}

	query := s.db.conn(ctx).Model(&model.Product{}).
		Select("products.product_id AS product_id, products.name AS name, products.category AS category, COALESCE(SUM(order_items.quantity), 0) AS times_sold").
		Joins("LEFT JOIN order_items ON order_items.product_id = products.product_id").
		Group("products.product_id")

	if category != "" {
		query = query.Where("products.category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Order("times_sold " + direction).Scan(&rows).Error
	return rows, err
}

func (s *ProductRepo) invalidate(ctx context.Context, id uint) {
	if s.ProductCache != nil {
		s.ProductCache.Del(ctx, productCacheKey(id))
	}
}
