package dto

import "time"

type CheckoutDTO struct {
	PromoCode string `json:"promo_code"`
}

type OrderItemDTO struct {
	ProductID       uint  `json:"product_id"`
	Quantity        int   `json:"quantity"`
	PriceAtPurchase Money `json:"price_at_purchase"`
}

type OrderDTO struct {
	OrderID        uint           `json:"order_id"`
	UserID         uint           `json:"user_id"`
	TotalAmount    Money          `json:"total_amount"`
	DiscountAmount Money          `json:"discount_amount"`
	CreatedAt      time.Time      `json:"created_at"`
	Items          []OrderItemDTO `json:"items"`
}
