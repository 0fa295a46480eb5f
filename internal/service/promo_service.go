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

type CreatePromoParams struct {
	Code            string
	DiscountPercent int
	ExpiresAt       time.Time
	MinOrderAmount  decimal.Decimal
	Active          bool
}

// UpdatePromoParams 欄位為 nil 表示不更新
type UpdatePromoParams struct {
	Code            *string
	DiscountPercent *int
	ExpiresAt       *time.Time
	MinOrderAmount  *decimal.Decimal
	Active          *bool
}

// PromoQuote 折扣試算結果，不產生任何寫入
type PromoQuote struct {
	Code     string
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

type IPromoService interface {
	CreatePromo(ctx context.Context, arg CreatePromoParams) (*model.PromoCode, error)
	UpdatePromo(ctx context.Context, id uint, arg UpdatePromoParams) (*model.PromoCode, error)
	ListPromos(ctx context.Context) ([]model.PromoCode, error)
	ApplyPromo(ctx context.Context, userID uint, code string) (*PromoQuote, error)
}

type PromoService struct {
	promoRepo   repository.PromoRepository
	cartService ICartService
}

func NewPromoService(promoRepo repository.PromoRepository, cartService ICartService) IPromoService {
	return &PromoService{
		promoRepo:   promoRepo,
		cartService: cartService,
	}
}

func (s *PromoService) CreatePromo(ctx context.Context, arg CreatePromoParams) (*model.PromoCode, error) {
	if arg.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidArgument)
	}
	if !model.IsValidDiscountPercent(arg.DiscountPercent) {
		return nil, fmt.Errorf("%w: discount percent must be between %d and %d",
			ErrInvalidArgument, model.MinDiscountPercent, model.MaxDiscountPercent)
	}
	if arg.MinOrderAmount.IsNegative() {
		return nil, fmt.Errorf("%w: minimum order amount must not be negative", ErrInvalidArgument)
	}

	// 代碼不可重複
	_, err := s.promoRepo.GetByCode(ctx, arg.Code)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrPromoCodeExists, arg.Code)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	promo := &model.PromoCode{
		Code:            arg.Code,
		DiscountPercent: arg.DiscountPercent,
		ExpiresAt:       arg.ExpiresAt,
		MinOrderAmount:  arg.MinOrderAmount,
		Active:          arg.Active,
	}
	if err := s.promoRepo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

// UpdatePromo 部分更新，nil 欄位保留原值
func (s *PromoService) UpdatePromo(ctx context.Context, id uint, arg UpdatePromoParams) (*model.PromoCode, error) {
	promo, err := s.promoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: promo code %d", ErrNotFound, id)
		}
		return nil, err
	}

	if arg.Code != nil {
		if *arg.Code == "" {
			return nil, fmt.Errorf("%w: code is required", ErrInvalidArgument)
		}
		// 代碼不可與其他折扣碼重複，自己除外
		existing, err := s.promoRepo.GetByCode(ctx, *arg.Code)
		if err == nil && existing.PromoID != promo.PromoID {
			return nil, fmt.Errorf("%w: %s", ErrPromoCodeExists, *arg.Code)
		}
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		promo.Code = *arg.Code
	}
	if arg.DiscountPercent != nil {
		if !model.IsValidDiscountPercent(*arg.DiscountPercent) {
			return nil, fmt.Errorf("%w: discount percent must be between %d and %d",
				ErrInvalidArgument, model.MinDiscountPercent, model.MaxDiscountPercent)
		}
		promo.DiscountPercent = *arg.DiscountPercent
	}
	if arg.ExpiresAt != nil {
		promo.ExpiresAt = *arg.ExpiresAt
	}
	if arg.MinOrderAmount != nil {
		if arg.MinOrderAmount.IsNegative() {
			return nil, fmt.Errorf("%w: minimum order amount must not be negative", ErrInvalidArgument)
		}
		promo.MinOrderAmount = *arg.MinOrderAmount
	}
	if arg.Active != nil {
		promo.Active = *arg.Active
	}

	if err := s.promoRepo.Update(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *PromoService) ListPromos(ctx context.Context) ([]model.PromoCode, error) {
	return s.promoRepo.List(ctx)
}

// ApplyPromo 以目前購物車內容試算折扣，不異動任何資料
func (s *PromoService) ApplyPromo(ctx context.Context, userID uint, code string) (*PromoQuote, error) {
	lines, subtotal, err := s.cartService.ListCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	promo, err := s.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPromoCode, code)
		}
		return nil, err
	}
	if !promo.IsUsable(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPromoCode, code)
	}
	if !promo.MeetsMinimum(subtotal) {
		return nil, fmt.Errorf("%w: minimum order amount is %s", ErrPromoMinimumNotMet, promo.MinOrderAmount.StringFixed(2))
	}

	discount := promo.DiscountFor(subtotal)
	return &PromoQuote{
		Code:     promo.Code,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}, nil
}
