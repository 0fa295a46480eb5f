package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPromoCodeIsUsable(t *testing.T) {
	now := time.Now().UTC()

	promo := PromoCode{Active: true, ExpiresAt: now.Add(time.Hour)}
	require.True(t, promo.IsUsable(now))

	expired := PromoCode{Active: true, ExpiresAt: now.Add(-time.Hour)}
	require.False(t, expired.IsUsable(now))

	inactive := PromoCode{Active: false, ExpiresAt: now.Add(time.Hour)}
	require.False(t, inactive.IsUsable(now))
}

func TestPromoCodeDiscountFor(t *testing.T) {
	promo := PromoCode{DiscountPercent: 10}

	discount := promo.DiscountFor(decimal.RequireFromString("150.00"))
	require.True(t, discount.Equal(decimal.RequireFromString("15.00")), discount.String())

	// 除不盡時四捨五入到分
	odd := PromoCode{DiscountPercent: 33}
	discount = odd.DiscountFor(decimal.RequireFromString("99.99"))
	require.True(t, discount.Equal(decimal.RequireFromString("33.00")), discount.String())
}

func TestPromoCodeMeetsMinimum(t *testing.T) {
	promo := PromoCode{MinOrderAmount: decimal.RequireFromString("100.00")}

	require.True(t, promo.MeetsMinimum(decimal.RequireFromString("100.00")))
	require.True(t, promo.MeetsMinimum(decimal.RequireFromString("150.00")))
	require.False(t, promo.MeetsMinimum(decimal.RequireFromString("99.99")))
}

func TestIsValidDiscountPercent(t *testing.T) {
	require.True(t, IsValidDiscountPercent(1))
	require.True(t, IsValidDiscountPercent(90))
	require.False(t, IsValidDiscountPercent(0))
	require.False(t, IsValidDiscountPercent(91))
}
