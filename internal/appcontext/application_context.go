package appcontext

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type ApplicationContext struct {
	Cf          *config.Config
	DbDao       *db.DbDao
	RedisClient *redis.Client
	TokenMaker  token.Maker

	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	WishlistRepo repository.WishlistRepository
	OrderRepo    repository.OrderRepository
	PromoRepo    repository.PromoRepository
	TxManager    repository.TxManager

	AuthService     service.IAuthService
	ProductService  service.IProductService
	CartService     service.ICartService
	WishlistService service.IWishlistService
	OrderService    service.IOrderService
	PromoService    service.IPromoService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbDao()
	if err != nil {
		return err
	}

	err = app.setUpRedis()
	if err != nil {
		return err
	}

	err = app.setTokenMaker()
	if err != nil {
		return err
	}

	app.setUpRepositories()
	app.setUpServices()

	if app.Cf.SeedData {
		err = app.seedData()
		if err != nil {
			return err
		}
	}

	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}

	app.DbDao = db.NewDbDao(conn)
	err = app.DbDao.InitMigrate()
	if err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

// setUpRedis redis為選配，未設定則商品查詢不走快取
func (app *ApplicationContext) setUpRedis() error {
	if app.Cf.RedisAddr == "" {
		log.Printf("Redis not configured, product cache disabled")
		return nil
	}

	log.Printf("Start setup redis")
	client := redis.NewClient(&redis.Options{
		Addr: app.Cf.RedisAddr,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect redis: %w", err)
	}
	app.RedisClient = client
	log.Printf("Finish setup redis")
	return nil
}

func (app *ApplicationContext) setTokenMaker() error {
	log.Printf("Start setup token maker")
	tokenMaker, err := token.NewJWTMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return err
	}
	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpRepositories() {
	log.Printf("Start setup repositories")
	app.UserRepo = db.NewUserRepo(app.DbDao)
	app.ProductRepo = db.NewProductRepo(app.DbDao, app.RedisClient)
	app.CartRepo = db.NewCartRepo(app.DbDao)
	app.WishlistRepo = db.NewWishlistRepo(app.DbDao)
	app.OrderRepo = db.NewOrderRepo(app.DbDao)
	app.PromoRepo = db.NewPromoRepo(app.DbDao)
	app.TxManager = db.NewTxManager(app.DbDao)
	log.Printf("Finish setup repositories")
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")
	app.AuthService = service.NewAuthService(app.UserRepo, app.TokenMaker, app.Cf.AccessTokenDuration)
	app.ProductService = service.NewProductService(app.ProductRepo)
	app.CartService = service.NewCartService(app.CartRepo, app.ProductRepo)
	app.WishlistService = service.NewWishlistService(app.WishlistRepo, app.ProductRepo)
	app.OrderService = service.NewOrderService(app.TxManager, app.CartRepo, app.ProductRepo, app.OrderRepo, app.PromoRepo)
	app.PromoService = service.NewPromoService(app.PromoRepo, app.CartService)
	log.Printf("Finish setup services")
}

// seedData 初始測試資料，已存在則跳過
func (app *ApplicationContext) seedData() error {
	log.Printf("Start seed data")
	ctx := context.Background()

	seedUsers := []struct {
		name     string
		email    string
		password string
		role     model.UserRole
	}{
		{"Manager", "manager@example.com", "managerpass", model.RoleManager},
		{"Customer", "customer@example.com", "custpass", model.RoleCustomer},
	}
	for _, su := range seedUsers {
		_, err := app.UserRepo.GetByEmail(ctx, su.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		hashed, err := util.HashPassword(su.password)
		if err != nil {
			return err
		}
		err = app.UserRepo.Create(ctx, &model.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: hashed,
			Role:         su.role,
		})
		if err != nil {
			return err
		}
	}

	products, err := app.ProductRepo.List(ctx, repository.ProductFilter{Limit: 1})
	if err != nil {
		return err
	}
	if len(products) == 0 {
		seedProducts := []model.Product{
			{Name: "Apple", Category: "Fruits", Price: decimal.NewFromInt(50), Stock: 100},
			{Name: "Bread", Category: "Bakery", Price: decimal.NewFromInt(30), Stock: 50},
			{Name: "Milk", Category: "Dairy", Price: decimal.NewFromInt(45), Stock: 200},
		}
		for i := range seedProducts {
			if err := app.ProductRepo.Create(ctx, &seedProducts[i]); err != nil {
				return err
			}
		}
	}

	log.Printf("Finish seed data")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.RedisClient != nil {
			log.Printf("Closing redis connection...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis shutdown error: %v", err)
			}
		}

		if app.DbDao != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbDao.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
