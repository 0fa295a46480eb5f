package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddToWishlistIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 5)

	first, err := env.wishlistService.AddToWishlist(ctx, 1, product.ProductID)
	require.NoError(t, err)

	// 重複加入回傳既有項目，不報錯也不新增
	second, err := env.wishlistService.AddToWishlist(ctx, 1, product.ProductID)
	require.NoError(t, err)
	require.Equal(t, first.WishlistItemID, second.WishlistItemID)

	lines, err := env.wishlistService.ListWishlist(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// 商品不存在
	_, err = env.wishlistService.AddToWishlist(ctx, 1, 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFromWishlist(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 5)
	item, err := env.wishlistService.AddToWishlist(ctx, 1, product.ProductID)
	require.NoError(t, err)

	// 非本人刪不到
	err = env.wishlistService.RemoveFromWishlist(ctx, 2, item.WishlistItemID)
	require.ErrorIs(t, err, ErrNotFound)

	err = env.wishlistService.RemoveFromWishlist(ctx, 1, item.WishlistItemID)
	require.NoError(t, err)

	lines, err := env.wishlistService.ListWishlist(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, lines)
}
