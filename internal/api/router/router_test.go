package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository/memory"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/token"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.NewStore()
	userRepo := memory.NewUsers(store)
	productRepo := memory.NewProducts(store)
	cartRepo := memory.NewCarts(store)
	wishlistRepo := memory.NewWishlists(store)
	orderRepo := memory.NewOrders(store)
	promoRepo := memory.NewPromos(store)
	tx := memory.NewTx(store)

	tokenMaker, err := token.NewJWTMaker("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	authService := service.NewAuthService(userRepo, tokenMaker, 24*time.Hour)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)
	orderService := service.NewOrderService(tx, cartRepo, productRepo, orderRepo, promoRepo)
	promoService := service.NewPromoService(promoRepo, cartService)

	uploadDir := t.TempDir()
	server := api.NewServer(
		handler.NewAuthHandler(authService),
		handler.NewProductHandler(productService, uploadDir),
		handler.NewCartHandler(cartService),
		handler.NewWishlistHandler(wishlistService),
		handler.NewOrderHandler(orderService),
		handler.NewPromoHandler(promoService),
		handler.NewReportHandler(productService, 5),
	)

	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	r := SetupRouter(server, tokenMaker, &logger, uploadDir)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, accessToken string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func loginAs(t *testing.T, ts *httptest.Server, email, password, role string) string {
	t.Helper()
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/auth/register", "", map[string]string{
		"name": "Test", "email": email, "password": password, "role": role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var result struct {
		Data struct {
			AccessToken struct {
				Value string `json:"value"`
			} `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.Data.AccessToken.Value)
	return result.Data.AccessToken.Value
}

func TestRouterAuthorization(t *testing.T) {
	ts := newTestServer(t)

	managerToken := loginAs(t, ts, "manager@example.com", "managerpass", "manager")
	customerToken := loginAs(t, ts, "customer@example.com", "custpass", "customer")

	newProduct := map[string]any{"name": "Apple", "category": "Fruits", "price": "50.00", "stock": 10}

	// 未登入不能建商品
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/products", "", newProduct)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// 一般用戶不能建商品
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/products", customerToken, newProduct)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// 管理員可以
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/products", managerToken, newProduct)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// 商品列表公開
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 報表限管理員
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/v1/reports/low-stock", customerToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, ts.URL+"/api/v1/reports/low-stock", managerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 購物車與結帳限一般用戶，管理員不能下單
	addToCart := map[string]any{"product_id": 1, "quantity": 1}
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/cart", managerToken, addToCart)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders/checkout", managerToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/wishlist", managerToken, addToCart)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/cart", customerToken, addToCart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRouterCheckoutFlow(t *testing.T) {
	ts := newTestServer(t)

	managerToken := loginAs(t, ts, "manager@example.com", "managerpass", "manager")
	customerToken := loginAs(t, ts, "customer@example.com", "custpass", "customer")

	// 管理員建商品
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/v1/products", managerToken,
		map[string]any{"name": "Apple", "category": "Fruits", "price": "50.00", "stock": 7})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var createResp struct {
		Data struct {
			ProductID uint `json:"product_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&createResp))
	resp.Body.Close()

	// 空購物車結帳要擋
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders/checkout", customerToken, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// 加入購物車後結帳
	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/cart", customerToken,
		map[string]any{"product_id": createResp.Data.ProductID, "quantity": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders/checkout", customerToken, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var orderResp struct {
		Data struct {
			OrderID     uint   `json:"order_id"`
			TotalAmount string `json:"total_amount"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orderResp))
	resp.Body.Close()
	require.Equal(t, "150.00", orderResp.Data.TotalAmount)

	// 訂單歷史
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/v1/orders", customerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
