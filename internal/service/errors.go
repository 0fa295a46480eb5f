package service

import "errors"

// service 層錯誤，handler 依此對應 HTTP status
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("resource not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidPromoCode   = errors.New("invalid or expired promo code")
	ErrPromoMinimumNotMet = errors.New("order amount below promo code minimum")
	ErrPromoCodeExists    = errors.New("promo code already exists")
)
