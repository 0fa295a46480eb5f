package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePromoDTO struct {
	Code            string          `json:"code"`
	DiscountPercent int             `json:"discount_percent"`
	ExpiresAt       time.Time       `json:"expires_at"`
	MinOrderAmount  decimal.Decimal `json:"min_order_amount"`
	// Active 未帶時預設啟用
	Active *bool `json:"active"`
}

// UpdatePromoDTO 未帶的欄位不更新
type UpdatePromoDTO struct {
	Code            *string          `json:"code"`
	DiscountPercent *int             `json:"discount_percent"`
	ExpiresAt       *time.Time       `json:"expires_at"`
	MinOrderAmount  *decimal.Decimal `json:"min_order_amount"`
	Active          *bool            `json:"active"`
}

type PromoDTO struct {
	PromoID         uint      `json:"promo_id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discount_percent"`
	ExpiresAt       time.Time `json:"expires_at"`
	MinOrderAmount  Money     `json:"min_order_amount"`
	Active          bool      `json:"active"`
}

type ApplyPromoDTO struct {
	Code string `json:"code"`
}

type PromoQuoteDTO struct {
	Code     string `json:"code"`
	Subtotal Money  `json:"subtotal"`
	Discount Money  `json:"discount"`
	Total    Money  `json:"total"`
}
