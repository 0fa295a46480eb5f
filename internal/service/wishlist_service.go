package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
)

// WishlistLine 願望清單明細，帶出商品資訊
type WishlistLine struct {
	WishlistItemID uint
	Product        model.Product
}

type IWishlistService interface {
	AddToWishlist(ctx context.Context, userID uint, productID uint) (*model.WishlistItem, error)
	ListWishlist(ctx context.Context, userID uint) ([]WishlistLine, error)
	RemoveFromWishlist(ctx context.Context, userID uint, wishlistItemID uint) error
}

type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) IWishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// AddToWishlist 冪等，重複加入回傳既有項目
func (s *WishlistService) AddToWishlist(ctx context.Context, userID uint, productID uint) (*model.WishlistItem, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return nil, err
	}

	existing, err := s.wishlistRepo.GetByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	item := &model.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WishlistService) ListWishlist(ctx context.Context, userID uint) ([]WishlistLine, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]WishlistLine, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		lines = append(lines, WishlistLine{
			WishlistItemID: item.WishlistItemID,
			Product:        *product,
		})
	}
	return lines, nil
}

// RemoveFromWishlist 只能刪自己的項目，非本人一律回傳 not found
func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID uint, wishlistItemID uint) error {
	item, err := s.wishlistRepo.GetByID(ctx, wishlistItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: wishlist item %d", ErrNotFound, wishlistItemID)
		}
		return err
	}
	if item.UserID != userID {
		return fmt.Errorf("%w: wishlist item %d", ErrNotFound, wishlistItemID)
	}
	return s.wishlistRepo.Delete(ctx, wishlistItemID)
}
