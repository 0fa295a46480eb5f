package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
	"github.com/shopspring/decimal"
)

// CartLine 購物車明細，帶出商品資訊與小計
type CartLine struct {
	CartItemID uint
	Product    model.Product
	Quantity   int
	LineTotal  decimal.Decimal
}

type ICartService interface {
	AddToCart(ctx context.Context, userID uint, productID uint, quantity int) (*model.CartItem, error)
	ListCart(ctx context.Context, userID uint) ([]CartLine, decimal.Decimal, error)
	RemoveFromCart(ctx context.Context, userID uint, cartItemID uint) error
}

type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) ICartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart 同商品已在購物車則累加數量
// 這裡只做軟性庫存檢查，實際扣庫存在結帳交易內
func (s *CartService) AddToCart(ctx context.Context, userID uint, productID uint, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidArgument)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, err
	}

	item, err := s.cartRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		item = &model.CartItem{
			UserID:    userID,
			ProductID: productID,
		}
	}

	requested := item.Quantity + quantity
	if requested > product.Stock {
		return nil, fmt.Errorf("%w for %s", ErrInsufficientStock, product.Name)
	}

	item.Quantity = requested
	if err := s.cartRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListCart 回傳購物車明細與小計
func (s *CartService) ListCart(ctx context.Context, userID uint) ([]CartLine, decimal.Decimal, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines := make([]CartLine, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// 商品已下架，明細跳過不計
				continue
			}
			return nil, decimal.Zero, err
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, CartLine{
			CartItemID: item.CartItemID,
			Product:    *product,
			Quantity:   item.Quantity,
			LineTotal:  lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return lines, subtotal, nil
}

// RemoveFromCart 只能刪自己的項目，非本人一律回傳 not found
func (s *CartService) RemoveFromCart(ctx context.Context, userID uint, cartItemID uint) error {
	item, err := s.cartRepo.GetByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: cart item %d", ErrNotFound, cartItemID)
		}
		return err
	}
	if item.UserID != userID {
		return fmt.Errorf("%w: cart item %d", ErrNotFound, cartItemID)
	}
	return s.cartRepo.Delete(ctx, cartItemID)
}
