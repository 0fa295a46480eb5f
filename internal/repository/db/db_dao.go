package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

func GetDbConn(dbName, dbHost, dbPort, dbUser, dbPas string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPas, dbName, dbPort)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.PromoCode{},
	)
}

type txKey struct{}

// conn 取得目前作用中的交易連線，沒有交易則用底層連線
func (d *DbDao) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return d.DB.WithContext(ctx)
}

// wrapNotFound 將 gorm 的查無資料轉成 repository.ErrNotFound
func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

// TxManager 用 gorm 交易實作 repository.TxManager
// 交易連線放進 context，讓各 repo 在 fn 內的操作共用同一個交易
type TxManager struct {
	db *DbDao
}

func NewTxManager(db *DbDao) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
