package repository

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

var (
	// ErrNotFound 查無資料時由各實作回傳
	ErrNotFound = errors.New("not found")
	// ErrStockNotEnough 扣減庫存時庫存不足
	ErrStockNotEnough = errors.New("stock not enough")
)

// ProductFilter 商品列表過濾與排序條件
type ProductFilter struct {
	Category string
	// Popular: "most" 或 "least"，依累積售出數量排序；空值不排序
	Popular constants.SortOrderEnum
	Limit   int
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	// GetByIDForUpdate 在交易內鎖定商品列，用於結帳的庫存檢查與扣減
	GetByIDForUpdate(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
	// DeductStock 扣減庫存，庫存不足時不得扣成負數
	DeductStock(ctx context.Context, id uint, quantity int) error
	GetLowStock(ctx context.Context, threshold int) ([]model.Product, error)
	GetSalesReport(ctx context.Context, category string, sort constants.SortOrderEnum, limit int) ([]model.ProductSales, error)
}

type CartRepository interface {
	GetByID(ctx context.Context, id uint) (*model.CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error)
	ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	// Save 新增或更新同一筆 (user, product) 的數量
	Save(ctx context.Context, item *model.CartItem) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type WishlistRepository interface {
	GetByID(ctx context.Context, id uint) (*model.WishlistItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID uint) (*model.WishlistItem, error)
	ListByUser(ctx context.Context, userID uint) ([]model.WishlistItem, error)
	Create(ctx context.Context, item *model.WishlistItem) error
	Delete(ctx context.Context, id uint) error
}

type OrderRepository interface {
	// Create 連同 OrderItems 一起寫入
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
}

type PromoRepository interface {
	Create(ctx context.Context, promo *model.PromoCode) error
	GetByID(ctx context.Context, id uint) (*model.PromoCode, error)
	GetByCode(ctx context.Context, code string) (*model.PromoCode, error)
	List(ctx context.Context) ([]model.PromoCode, error)
	Update(ctx context.Context, promo *model.PromoCode) error
}

// TxManager 交易邊界。結帳流程的讀寫必須全部落在同一個交易內
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
