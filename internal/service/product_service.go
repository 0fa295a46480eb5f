package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
	"github.com/shopspring/decimal"
)

type CreateProductParams struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
	ImageURL string
}

// UpdateProductParams 欄位為 nil 表示不更新
type UpdateProductParams struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Stock    *int
	ImageURL *string
}

type ListProductsParams struct {
	Category string
	Popular  string
	Limit    int
}

type SalesReportParams struct {
	Category string
	Sort     string
	Limit    int
}

type IProductService interface {
	CreateProduct(ctx context.Context, arg CreateProductParams) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context, arg ListProductsParams) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id uint, arg UpdateProductParams) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	GetLowStock(ctx context.Context, threshold int) ([]model.Product, error)
	GetSalesReport(ctx context.Context, arg SalesReportParams) ([]model.ProductSales, error)
}

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) IProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

func validateProductFields(name string, price decimal.Decimal, stock int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidArgument)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidArgument)
	}
	return nil
}

func (s *ProductService) CreateProduct(ctx context.Context, arg CreateProductParams) (*model.Product, error) {
	if err := validateProductFields(arg.Name, arg.Price, arg.Stock); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:     arg.Name,
		Category: arg.Category,
		Price:    arg.Price,
		Stock:    arg.Stock,
		ImageURL: arg.ImageURL,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, arg ListProductsParams) ([]model.Product, error) {
	if arg.Popular != "" && !constants.IsValidSortOrderEnum(arg.Popular) {
		return nil, fmt.Errorf("%w: popular must be %q or %q", ErrInvalidArgument,
			constants.SortOrderMost, constants.SortOrderLeast)
	}
	limit := arg.Limit
	if limit <= 0 {
		limit = constants.DefaultProductLimit
	}

	return s.productRepo.List(ctx, repository.ProductFilter{
		Category: arg.Category,
		Popular:  constants.SortOrderEnum(arg.Popular),
		Limit:    limit,
	})
}

// UpdateProduct 部分更新，nil 欄位保留原值
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, arg UpdateProductParams) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if arg.Name != nil {
		product.Name = *arg.Name
	}
	if arg.Category != nil {
		product.Category = *arg.Category
	}
	if arg.Price != nil {
		product.Price = *arg.Price
	}
	if arg.Stock != nil {
		product.Stock = *arg.Stock
	}
	if arg.ImageURL != nil {
		product.ImageURL = *arg.ImageURL
	}

	if err := validateProductFields(product.Name, product.Price, product.Stock); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.productRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return err
}

// GetLowStock 庫存小於等於門檻的商品，補貨提醒用
func (s *ProductService) GetLowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	if threshold <= 0 {
		threshold = constants.DefaultLowStockThreshold
	}
	return s.productRepo.GetLowStock(ctx, threshold)
}

// GetSalesReport 依累積售出數量排序的銷售報表
func (s *ProductService) GetSalesReport(ctx context.Context, arg SalesReportParams) ([]model.ProductSales, error) {
	sort := arg.Sort
	if sort == "" {
		sort = string(constants.SortOrderMost)
	}
	if !constants.IsValidSortOrderEnum(sort) {
		return nil, fmt.Errorf("%w: sort must be %q or %q", ErrInvalidArgument,
			constants.SortOrderMost, constants.SortOrderLeast)
	}
	limit := arg.Limit
	if limit <= 0 {
		limit = constants.DefaultReportLimit
	}

	return s.productRepo.GetSalesReport(ctx, arg.Category, constants.SortOrderEnum(sort), limit)
}
