package api

import "github.com/RoyceAzure/lab/shopcenter/internal/api/handler"

type Server struct {
	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	OrderHandler    *handler.OrderHandler
	PromoHandler    *handler.PromoHandler
	ReportHandler   *handler.ReportHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	wishlistHandler *handler.WishlistHandler,
	orderHandler *handler.OrderHandler,
	promoHandler *handler.PromoHandler,
	reportHandler *handler.ReportHandler,
) *Server {
	return &Server{
		AuthHandler:     authHandler,
		ProductHandler:  productHandler,
		CartHandler:     cartHandler,
		WishlistHandler: wishlistHandler,
		OrderHandler:    orderHandler,
		PromoHandler:    promoHandler,
		ReportHandler:   reportHandler,
	}
}
