package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker, logger *zerolog.Logger, uploadDir string) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	// 商品圖片靜態檔案
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		//Auth相關路由
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", server.AuthHandler.Register)
			r.Post("/login", server.AuthHandler.Login)
			r.With(m.AuthMiddleware).Get("/me", server.AuthHandler.Me)
		})

		//商品路由，讀取公開，異動限管理員
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.List)
			r.Get("/{id}", server.ProductHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(m.AuthMiddleware)
				r.Use(m.RequireRole(model.RoleManager))
				r.Post("/", server.ProductHandler.Create)
				r.Patch("/{id}", server.ProductHandler.Update)
				r.Delete("/{id}", server.ProductHandler.Delete)
				r.Post("/{id}/image", server.ProductHandler.UploadImage)
			})
		})

		//購物車、願望清單與訂單，限一般用戶
		r.Group(func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Use(m.RequireRole(model.RoleCustomer))

			r.Route("/cart", func(r chi.Router) {
				r.Post("/", server.CartHandler.Add)
				r.Get("/", server.CartHandler.List)
				r.Delete("/{id}", server.CartHandler.Remove)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Post("/", server.WishlistHandler.Add)
				r.Get("/", server.WishlistHandler.List)
				r.Delete("/{id}", server.WishlistHandler.Remove)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Post("/checkout", server.OrderHandler.Checkout)
				r.Get("/", server.OrderHandler.List)
				r.Get("/{id}", server.OrderHandler.Get)
			})
		})

		//折扣碼，試算開放登入用戶，管理限管理員
		r.Route("/promos", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Post("/apply", server.PromoHandler.Apply)

			r.Group(func(r chi.Router) {
				r.Use(m.RequireRole(model.RoleManager))
				r.Post("/", server.PromoHandler.Create)
				r.Get("/", server.PromoHandler.List)
				r.Patch("/{id}", server.PromoHandler.Update)
			})
		})

		//報表，限管理員
		r.Route("/reports", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Use(m.RequireRole(model.RoleManager))
			r.Get("/low-stock", server.ReportHandler.LowStock)
			r.Get("/sales", server.ReportHandler.Sales)
		})
	})

	return r
}
