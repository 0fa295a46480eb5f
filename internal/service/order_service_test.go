package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	users    repository.UserRepository
	products repository.ProductRepository
	carts    repository.CartRepository
	promos   repository.PromoRepository
	orders   repository.OrderRepository

	productService  IProductService
	cartService     ICartService
	orderService    IOrderService
	promoService    IPromoService
	wishlistService IWishlistService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	env := &testEnv{
		users:    memory.NewUsers(store),
		products: memory.NewProducts(store),
		carts:    memory.NewCarts(store),
		promos:   memory.NewPromos(store),
		orders:   memory.NewOrders(store),
	}
	wishlists := memory.NewWishlists(store)
	tx := memory.NewTx(store)

	env.productService = NewProductService(env.products)
	env.cartService = NewCartService(env.carts, env.products)
	env.wishlistService = NewWishlistService(wishlists, env.products)
	env.orderService = NewOrderService(tx, env.carts, env.products, env.orders, env.promos)
	env.promoService = NewPromoService(env.promos, env.cartService)
	return env
}

func (env *testEnv) createProduct(t *testing.T, name string, price string, stock int) *model.Product {
	t.Helper()
	product, err := env.productService.CreateProduct(context.Background(), CreateProductParams{
		Name:     name,
		Category: "General",
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
	})
	require.NoError(t, err)
	return product
}

func (env *testEnv) createPromo(t *testing.T, code string, percent int, minAmount string, expiresAt time.Time, active bool) *model.PromoCode {
	t.Helper()
	promo, err := env.promoService.CreatePromo(context.Background(), CreatePromoParams{
		Code:            code,
		DiscountPercent: percent,
		ExpiresAt:       expiresAt,
		MinOrderAmount:  decimal.RequireFromString(minAmount),
		Active:          active,
	})
	require.NoError(t, err)
	return promo
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 7)
	_, err := env.cartService.AddToCart(ctx, 1, product.ProductID, 3)
	require.NoError(t, err)

	order, err := env.orderService.Checkout(ctx, 1, "")
	require.NoError(t, err)
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("150.00")), order.TotalAmount.String())
	require.True(t, order.DiscountAmount.IsZero())
	require.Len(t, order.OrderItems, 1)
	require.Equal(t, product.ProductID, order.OrderItems[0].ProductID)
	require.Equal(t, 3, order.OrderItems[0].Quantity)
	require.True(t, order.OrderItems[0].PriceAtPurchase.Equal(decimal.RequireFromString("50.00")))

	// 庫存扣減
	after, err := env.productService.GetProduct(ctx, product.ProductID)
	require.NoError(t, err)
	require.Equal(t, 4, after.Stock)

	// 購物車清空
	lines, subtotal, err := env.cartService.ListCart(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, lines)
	require.True(t, subtotal.IsZero())
}

func TestCheckoutWithPromo(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 7)
	env.createPromo(t, "SAVE10", 10, "100.00", time.Now().Add(24*time.Hour), true)

	_, err := env.cartService.AddToCart(ctx, 1, product.ProductID, 3)
	require.NoError(t, err)

	order, err := env.orderService.Checkout(ctx, 1, "SAVE10")
	require.NoError(t, err)
	require.True(t, order.DiscountAmount.Equal(decimal.RequireFromString("15.00")), order.DiscountAmount.String())
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("135.00")), order.TotalAmount.String())
}

func TestCheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.orderService.Checkout(ctx, 1, "")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutInsufficientStockNoPartialEffects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	p1 := env.createProduct(t, "Apple", "50.00", 10)
	p2 := env.createProduct(t, "Bread", "30.00", 2)

	_, err := env.cartService.AddToCart(ctx, 1, p1.ProductID, 2)
	require.NoError(t, err)
	_, err = env.cartService.AddToCart(ctx, 1, p2.ProductID, 2)
	require.NoError(t, err)

	// 結帳前 Bread 被買到只剩1個
	one := 1
	_, err = env.productService.UpdateProduct(ctx, p2.ProductID, UpdateProductParams{Stock: &one})
	require.NoError(t, err)

	_, err = env.orderService.Checkout(ctx, 1, "")
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Contains(t, err.Error(), "Bread")

	// 無任何部分效果：庫存不變、購物車保留、沒有訂單
	p1After, err := env.productService.GetProduct(ctx, p1.ProductID)
	require.NoError(t, err)
	require.Equal(t, 10, p1After.Stock)

	lines, _, err := env.cartService.ListCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	orders, err := env.orderService.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestCheckoutInvalidPromo(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 10)

	testCases := []struct {
		name  string
		setup func(t *testing.T)
		code  string
	}{
		{
			name:  "unknown code",
			setup: func(t *testing.T) {},
			code:  "NOPE",
		},
		{
			name: "expired code",
			setup: func(t *testing.T) {
				env.createPromo(t, "OLD10", 10, "0", time.Now().Add(-time.Hour), true)
			},
			code: "OLD10",
		},
		{
			name: "inactive code",
			setup: func(t *testing.T) {
				env.createPromo(t, "OFF10", 10, "0", time.Now().Add(24*time.Hour), false)
			},
			code: "OFF10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup(t)
			_, err := env.cartService.AddToCart(ctx, 1, product.ProductID, 1)
			require.NoError(t, err)

			_, err = env.orderService.Checkout(ctx, 1, tc.code)
			require.ErrorIs(t, err, ErrInvalidPromoCode)

			// 失敗不扣庫存、購物車保留
			after, err := env.productService.GetProduct(ctx, product.ProductID)
			require.NoError(t, err)
			require.Equal(t, 10, after.Stock)

			lines, _, err := env.cartService.ListCart(ctx, 1)
			require.NoError(t, err)
			require.Len(t, lines, 1)
		})
	}
}

func TestCheckoutPromoMinimumNotMet(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 10)
	env.createPromo(t, "BIG20", 20, "500.00", time.Now().Add(24*time.Hour), true)

	_, err := env.cartService.AddToCart(ctx, 1, product.ProductID, 1)
	require.NoError(t, err)

	_, err = env.orderService.Checkout(ctx, 1, "BIG20")
	require.ErrorIs(t, err, ErrPromoMinimumNotMet)
}

func TestCheckoutUsesCurrentPrice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 10)
	_, err := env.cartService.AddToCart(ctx, 1, product.ProductID, 2)
	require.NoError(t, err)

	// 加入購物車後漲價，結帳以當下價格為準
	newPrice := decimal.RequireFromString("60.00")
	_, err = env.productService.UpdateProduct(ctx, product.ProductID, UpdateProductParams{Price: &newPrice})
	require.NoError(t, err)

	order, err := env.orderService.Checkout(ctx, 1, "")
	require.NoError(t, err)
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("120.00")), order.TotalAmount.String())
	require.True(t, order.OrderItems[0].PriceAtPurchase.Equal(decimal.RequireFromString("60.00")))
}

func TestGetOrderOwnership(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 10)
	_, err := env.cartService.AddToCart(ctx, 1, product.ProductID, 1)
	require.NoError(t, err)
	order, err := env.orderService.Checkout(ctx, 1, "")
	require.NoError(t, err)

	// 本人可查
	got, err := env.orderService.GetOrder(ctx, order.OrderID, 1, model.RoleCustomer)
	require.NoError(t, err)
	require.Equal(t, order.OrderID, got.OrderID)

	// 其他用戶不可查
	_, err = env.orderService.GetOrder(ctx, order.OrderID, 2, model.RoleCustomer)
	require.ErrorIs(t, err, ErrNotFound)

	// 管理員可查
	got, err = env.orderService.GetOrder(ctx, order.OrderID, 99, model.RoleManager)
	require.NoError(t, err)
	require.Equal(t, order.OrderID, got.OrderID)
}

func TestListOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	product := env.createProduct(t, "Apple", "50.00", 100)
	for i := 0; i < 3; i++ {
		_, err := env.cartService.AddToCart(ctx, 1, product.ProductID, 1)
		require.NoError(t, err)
		_, err = env.orderService.Checkout(ctx, 1, "")
		require.NoError(t, err)
	}

	orders, err := env.orderService.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.Greater(t, orders[0].OrderID, orders[1].OrderID)
	require.Greater(t, orders[1].OrderID, orders[2].OrderID)
}
