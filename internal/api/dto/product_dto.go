package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateProductDTO struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	ImageURL string          `json:"image_url"`
}

// UpdateProductDTO 未帶的欄位不更新
type UpdateProductDTO struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
	ImageURL *string          `json:"image_url"`
}

type ProductDTO struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     Money     `json:"price"`
	Stock     int       `json:"stock"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductSalesDTO struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	TimesSold int    `json:"times_sold"`
}
