package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinDiscountPercent = 1
	MaxDiscountPercent = 90
)

type PromoCode struct {
	PromoID         uint            `gorm:"primaryKey" json:"id"`
	Code            string          `gorm:"unique;not null;type:varchar(50)" json:"code"`
	DiscountPercent int             `gorm:"not null" json:"discount_percent"`
	ExpiresAt       time.Time       `gorm:"not null" json:"expires_at"`
	MinOrderAmount  decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"min_order_amount"`
	Active          bool            `gorm:"not null;default:true" json:"active"`
	BaseModel
}

// IsUsable 僅在啟用且未過期時可套用，門檻另外檢查
func (p *PromoCode) IsUsable(now time.Time) bool {
	return p.Active && now.Before(p.ExpiresAt)
}

func (p *PromoCode) MeetsMinimum(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(p.MinOrderAmount)
}

// DiscountFor 折扣金額 = 小計 × 百分比 / 100，四捨五入至分
func (p *PromoCode) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.
		Mul(decimal.NewFromInt(int64(p.DiscountPercent))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}

func IsValidDiscountPercent(percent int) bool {
	return percent >= MinDiscountPercent && percent <= MaxDiscountPercent
}
