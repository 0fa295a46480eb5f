package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order 結帳後不可變更
// 不變量: Σ(quantity × price_at_purchase) - discount_amount = total_amount
type Order struct {
	OrderID        uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"not null;index" json:"user_id"`
	TotalAmount    decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	DiscountAmount decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"discount_amount"`
	OrderItems     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt      time.Time       `gorm:"not null;default:now()" json:"created_at"`
}

// OrderItem 單價為結帳當下快照，不隨商品後續改價變動
type OrderItem struct {
	OrderItemID     uint            `gorm:"primaryKey" json:"-"`
	OrderID         uint            `gorm:"not null;index" json:"-"`
	ProductID       uint            `gorm:"not null;index" json:"product_id"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price_at_purchase"`
}
