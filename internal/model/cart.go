package model

import "time"

// CartItem 同一個 (user, product) 只會有一筆，加入購物車時累加數量
type CartItem struct {
	CartItemID uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"null" json:"updated_at"`
}
