package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/router"
	"github.com/RoyceAzure/lab/shopcenter/internal/appcontext"
	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/rs/zerolog"
)

// @title shopcenter
// @version 1.0
// @description 簡易電商後端，含商品、購物車、訂單與折扣碼

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        Authorization
// @description                 Description for Authorization header: Type "Bearer" followed by a space and the token. Example: "Bearer {token}"

func main() {
	cf, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
		return
	}

	app, err := appcontext.NewApplicationContext(cf)
	if err != nil {
		log.Fatal(err)
		return
	}

	// 初始化 handler
	authHandler := handler.NewAuthHandler(app.AuthService)
	productHandler := handler.NewProductHandler(app.ProductService, cf.UploadDir)
	cartHandler := handler.NewCartHandler(app.CartService)
	wishlistHandler := handler.NewWishlistHandler(app.WishlistService)
	orderHandler := handler.NewOrderHandler(app.OrderService)
	promoHandler := handler.NewPromoHandler(app.PromoService)
	reportHandler := handler.NewReportHandler(app.ProductService, cf.LowStockThreshold)

	server := api.NewServer(
		authHandler,
		productHandler,
		cartHandler,
		wishlistHandler,
		orderHandler,
		promoHandler,
		reportHandler,
	)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 設置路由
	r := router.SetupRouter(server, app.TokenMaker, &logger, cf.UploadDir)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDonwCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDonwCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDonwCompleted
	log.Printf("closed completed")
}
