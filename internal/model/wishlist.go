package model

import "time"

type WishlistItem struct {
	WishlistItemID uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID      uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
}
