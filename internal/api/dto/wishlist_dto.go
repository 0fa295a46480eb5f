package dto

type AddToWishlistDTO struct {
	ProductID uint `json:"product_id"`
}

type WishlistLineDTO struct {
	WishlistItemID uint       `json:"wishlist_item_id"`
	Product        ProductDTO `json:"product"`
}
