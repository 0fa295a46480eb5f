package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreatePromoValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	expiresAt := time.Now().Add(24 * time.Hour)

	_, err := env.promoService.CreatePromo(ctx, CreatePromoParams{
		Code: "", DiscountPercent: 10, ExpiresAt: expiresAt,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// 折扣區間 1~90
	for _, percent := range []int{0, 91, -5} {
		_, err = env.promoService.CreatePromo(ctx, CreatePromoParams{
			Code: "SAVE", DiscountPercent: percent, ExpiresAt: expiresAt,
		})
		require.ErrorIs(t, err, ErrInvalidArgument)
	}

	_, err = env.promoService.CreatePromo(ctx, CreatePromoParams{
		Code: "SAVE", DiscountPercent: 10, ExpiresAt: expiresAt,
		MinOrderAmount: decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	env.createPromo(t, "SAVE10", 10, "0", expiresAt, true)

	// 代碼重複
	_, err = env.promoService.CreatePromo(ctx, CreatePromoParams{
		Code: "SAVE10", DiscountPercent: 20, ExpiresAt: expiresAt,
	})
	require.ErrorIs(t, err, ErrPromoCodeExists)
}

func TestUpdatePromoPartial(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	promo := env.createPromo(t, "SAVE10", 10, "100.00", time.Now().Add(24*time.Hour), true)

	// 只停用，其他欄位不動
	inactive := false
	updated, err := env.promoService.UpdatePromo(ctx, promo.PromoID, UpdatePromoParams{Active: &inactive})
	require.NoError(t, err)
	require.False(t, updated.Active)
	require.Equal(t, 10, updated.DiscountPercent)

	// 非法折扣要擋
	bad := 200
	_, err = env.promoService.UpdatePromo(ctx, promo.PromoID, UpdatePromoParams{DiscountPercent: &bad})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = env.promoService.UpdatePromo(ctx, 999, UpdatePromoParams{Active: &inactive})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePromoCode(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	expiresAt := time.Now().Add(24 * time.Hour)
	promo := env.createPromo(t, "SAVE10", 10, "0", expiresAt, true)
	other := env.createPromo(t, "BIG20", 20, "0", expiresAt, true)

	// 改代碼
	newCode := "SAVE15"
	updated, err := env.promoService.UpdatePromo(ctx, promo.PromoID, UpdatePromoParams{Code: &newCode})
	require.NoError(t, err)
	require.Equal(t, "SAVE15", updated.Code)

	found, err := env.promos.GetByCode(ctx, "SAVE15")
	require.NoError(t, err)
	require.Equal(t, promo.PromoID, found.PromoID)

	// 帶原代碼不算重複
	same := "SAVE15"
	_, err = env.promoService.UpdatePromo(ctx, promo.PromoID, UpdatePromoParams{Code: &same})
	require.NoError(t, err)

	// 與其他折扣碼重複要擋
	dup := other.Code
	_, err = env.promoService.UpdatePromo(ctx, promo.PromoID, UpdatePromoParams{Code: &dup})
	require.ErrorIs(t, err, ErrPromoCodeExists)

	// 空代碼要擋
	empty := ""
	_, err = env.promoService.UpdatePromo(ctx, promo.PromoID, UpdatePromoParams{Code: &empty})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestApplyPromoQuote(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 10)
	env.createPromo(t, "SAVE10", 10, "100.00", time.Now().Add(24*time.Hour), true)

	// 購物車為空不能試算
	_, err := env.promoService.ApplyPromo(ctx, 1, "SAVE10")
	require.ErrorIs(t, err, ErrEmptyCart)

	_, err = env.cartService.AddToCart(ctx, 1, product.ProductID, 3)
	require.NoError(t, err)

	quote, err := env.promoService.ApplyPromo(ctx, 1, "SAVE10")
	require.NoError(t, err)
	require.True(t, quote.Subtotal.Equal(decimal.RequireFromString("150.00")), quote.Subtotal.String())
	require.True(t, quote.Discount.Equal(decimal.RequireFromString("15.00")), quote.Discount.String())
	require.True(t, quote.Total.Equal(decimal.RequireFromString("135.00")), quote.Total.String())

	// 試算不留任何效果
	lines, _, err := env.cartService.ListCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// 低於低消
	bigMin := env.createPromo(t, "BIG20", 20, "500.00", time.Now().Add(24*time.Hour), true)
	_, err = env.promoService.ApplyPromo(ctx, 1, bigMin.Code)
	require.ErrorIs(t, err, ErrPromoMinimumNotMet)

	// 不存在的代碼
	_, err = env.promoService.ApplyPromo(ctx, 1, "NOPE")
	require.ErrorIs(t, err, ErrInvalidPromoCode)
}
