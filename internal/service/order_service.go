package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
	"github.com/shopspring/decimal"
)

type IOrderService interface {
	// Checkout 把用戶購物車轉成訂單，promoCode 為空表示不使用折扣碼
	Checkout(ctx context.Context, userID uint, promoCode string) (*model.Order, error)
	ListOrders(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID uint, userID uint, role model.UserRole) (*model.Order, error)
}

type OrderService struct {
	txManager   repository.TxManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	promoRepo   repository.PromoRepository
}

func NewOrderService(
	txManager repository.TxManager,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	promoRepo repository.PromoRepository,
) IOrderService {
	return &OrderService{
		txManager:   txManager,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		promoRepo:   promoRepo,
	}
}

// Checkout 結帳。整個流程在單一交易內完成：
// 讀購物車 -> 鎖商品列驗證庫存 -> 驗證折扣碼 -> 扣庫存 -> 建立訂單 -> 清空購物車
// 任一步失敗即整筆回滾，不會留下部分效果
// 單價以結帳當下的商品價格為準，寫入 PriceAtPurchase
func (s *OrderService) Checkout(ctx context.Context, userID uint, promoCode string) (*model.Order, error) {
	var order *model.Order

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		cartItems, err := s.cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		// 先全部驗證完才開始異動
		subtotal := decimal.Zero
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			product, err := s.productRepo.GetByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%w: product %d no longer exists", ErrNotFound, item.ProductID)
				}
				return err
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for %s", ErrInsufficientStock, product.Name)
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			subtotal = subtotal.Add(lineTotal)
			orderItems = append(orderItems, model.OrderItem{
				ProductID:       product.ProductID,
				Quantity:        item.Quantity,
				PriceAtPurchase: product.Price,
			})
		}

		discount := decimal.Zero
		if promoCode != "" {
			promo, err := s.promoRepo.GetByCode(ctx, promoCode)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrInvalidPromoCode, promoCode)
				}
				return err
			}
			if !promo.IsUsable(time.Now().UTC()) {
				return fmt.Errorf("%w: %s", ErrInvalidPromoCode, promoCode)
			}
			if !promo.MeetsMinimum(subtotal) {
				return fmt.Errorf("%w: minimum order amount is %s",
					ErrPromoMinimumNotMet, promo.MinOrderAmount.StringFixed(2))
			}
			discount = promo.DiscountFor(subtotal)
		}

		for _, item := range cartItems {
			if err := s.productRepo.DeductStock(ctx, item.ProductID, item.Quantity); err != nil {
				if errors.Is(err, repository.ErrStockNotEnough) {
					return fmt.Errorf("%w for product %d", ErrInsufficientStock, item.ProductID)
				}
				return err
			}
		}

		order = &model.Order{
			UserID:         userID,
			TotalAmount:    subtotal.Sub(discount),
			DiscountAmount: discount,
			OrderItems:     orderItems,
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}

		return s.cartRepo.DeleteByUser(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetOrder 本人或管理員才可查看
func (s *OrderService) GetOrder(ctx context.Context, orderID uint, userID uint, role model.UserRole) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}
	if order.UserID != userID && role != model.RoleManager {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	return order, nil
}
