package dto

type AddToCartDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CartLineDTO struct {
	CartItemID uint       `json:"cart_item_id"`
	Product    ProductDTO `json:"product"`
	Quantity   int        `json:"quantity"`
	LineTotal  Money      `json:"line_total"`
}

type CartResponse struct {
	Items    []CartLineDTO `json:"items"`
	Subtotal Money         `json:"subtotal"`
}
