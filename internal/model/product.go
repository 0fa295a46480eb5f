package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID  uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"not null;type:varchar(100)" json:"name"`
	Category   string          `gorm:"type:varchar(50);index" json:"category"`
	Price      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Stock      int             `gorm:"not null;default:0" json:"stock"`
	ImageURL   string          `gorm:"type:varchar(255)" json:"image_url"`
	OrderItems []OrderItem     `gorm:"foreignKey:ProductID" json:"-"`
	BaseModel
}

// ProductSales 銷售統計查詢結果，非資料表
type ProductSales struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	TimesSold int    `json:"times_sold"`
}
