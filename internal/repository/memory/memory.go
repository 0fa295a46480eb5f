package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/repository"
)

// Store in-memory 儲存，測試與本機無DB環境使用
// 交易用全域寫鎖模擬，repo 在交易內跳過內部鎖
type Store struct {
	mu                 sync.RWMutex
	nextUserID         uint
	nextProductID      uint
	nextCartItemID     uint
	nextWishlistItemID uint
	nextOrderID        uint
	nextOrderItemID    uint
	nextPromoID        uint
	users              map[uint]model.User
	products           map[uint]model.Product
	cartItems          map[uint]model.CartItem
	wishlistItems      map[uint]model.WishlistItem
	orders             map[uint]model.Order
	promos             map[uint]model.PromoCode
}

func NewStore() *Store {
	return &Store{
		nextUserID:         1,
		nextProductID:      1,
		nextCartItemID:     1,
		nextWishlistItemID: 1,
		nextOrderID:        1,
		nextOrderItemID:    1,
		nextPromoID:        1,
		users:              make(map[uint]model.User),
		products:           make(map[uint]model.Product),
		cartItems:          make(map[uint]model.CartItem),
		wishlistItems:      make(map[uint]model.WishlistItem),
		orders:             make(map[uint]model.Order),
		promos:             make(map[uint]model.PromoCode),
	}
}

type txKey struct{}

func isTx(ctx context.Context) bool {
	v, ok := ctx.Value(txKey{}).(bool)
	return ok && v
}

func (m *Store) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}

func (m *Store) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}

func (m *Store) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}

func (m *Store) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// soldCount 商品累積售出數量，未賣過為0
func (m *Store) soldCount(productID uint) int {
	total := 0
	for _, order := range m.orders {
		for _, item := range order.OrderItems {
			if item.ProductID == productID {
				total += item.Quantity
			}
		}
	}
	return total
}

// Tx 用寫鎖模擬交易邊界
type Tx struct{ store *Store }

func NewTx(store *Store) *Tx { return &Tx{store: store} }

var _ repository.TxManager = (*Tx)(nil)

func (tx *Tx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}

// Users repository.UserRepository 實作
type Users struct{ store *Store }

func NewUsers(store *Store) *Users { return &Users{store: store} }

var _ repository.UserRepository = (*Users)(nil)

func (u *Users) Create(ctx context.Context, user *model.User) error {
	u.store.wlock(ctx)
	defer u.store.wunlock(ctx)
	user.UserID = u.store.nextUserID
	u.store.nextUserID++
	user.CreatedAt = time.Now().UTC()
	u.store.users[user.UserID] = *user
	return nil
}

func (u *Users) GetByID(ctx context.Context, id uint) (*model.User, error) {
	u.store.rlock(ctx)
	defer u.store.runlock(ctx)
	user, ok := u.store.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := user
	return &cp, nil
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u.store.rlock(ctx)
	defer u.store.runlock(ctx)
	for _, user := range u.store.users {
		if user.Email == email {
			cp := user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

// Products repository.ProductRepository 實作
type Products struct{ store *Store }

func NewProducts(store *Store) *Products { return &Products{store: store} }

var _ repository.ProductRepository = (*Products)(nil)

func (p *Products) Create(ctx context.Context, product *model.Product) error {
	p.store.wlock(ctx)
	defer p.store.wunlock(ctx)
	product.ProductID = p.store.nextProductID
	p.store.nextProductID++
	product.CreatedAt = time.Now().UTC()
	p.store.products[product.ProductID] = *product
	return nil
}

func (p *Products) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	p.store.rlock(ctx)
	defer p.store.runlock(ctx)
	product, ok := p.store.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := product
	return &cp, nil
}

// GetByIDForUpdate in-memory 交易本身就是全域鎖，行為同 GetByID
func (p *Products) GetByIDForUpdate(ctx context.Context, id uint) (*model.Product, error) {
	return p.GetByID(ctx, id)
}

func (p *Products) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	p.store.rlock(ctx)
	defer p.store.runlock(ctx)

	out := make([]model.Product, 0)
	for _, product := range p.store.products {
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		out = append(out, product)
	}
	// 先依ID排序，熱門度相同時維持ID順序
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })

	if filter.Popular != "" {
		desc := filter.Popular == constants.SortOrderMost
		sort.SliceStable(out, func(i, j int) bool {
			si, sj := p.store.soldCount(out[i].ProductID), p.store.soldCount(out[j].ProductID)
			if desc {
				return si > sj
			}
			return si < sj
		})
	}

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (p *Products) Update(ctx context.Context, product *model.Product) error {
	p.store.wlock(ctx)
	defer p.store.wunlock(ctx)
	if _, ok := p.store.products[product.ProductID]; !ok {
		return repository.ErrNotFound
	}
	product.UpdatedAt = time.Now().UTC()
	p.store.products[product.ProductID] = *product
	return nil
}

func (p *Products) Delete(ctx context.Context, id uint) error {
	p.store.wlock(ctx)
	defer p.store.wunlock(ctx)
	if _, ok := p.store.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(p.store.products, id)
	return nil
}

func (p *Products) DeductStock(ctx context.Context, id uint, quantity int) error {
	p.store.wlock(ctx)
	defer p.store.wunlock(ctx)
	product, ok := p.store.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	if product.Stock < quantity {
		return repository.ErrStockNotEnough
	}
	product.Stock -= quantity
	p.store.products[id] = product
	return nil
}

func (p *Products) GetLowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	p.store.rlock(ctx)
	defer p.store.runlock(ctx)
	out := make([]model.Product, 0)
	for _, product := range p.store.products {
		if product.Stock <= threshold {
			out = append(out, product)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (p *Products) GetSalesReport(ctx context.Context, category string, sort_ constants.SortOrderEnum, limit int) ([]model.ProductSales, error) {
	p.store.rlock(ctx)
	defer p.store.runlock(ctx)

	rows := make([]model.ProductSales, 0)
	for _, product := range p.store.products {
		if category != "" && product.Category != category {
			continue
		}
		rows = append(rows, model.ProductSales{
			ProductID: product.ProductID,
			Name:      product.Name,
			Category:  product.Category,
			TimesSold: p.store.soldCount(product.ProductID),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })
	desc := sort_ != constants.SortOrderLeast
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return rows[i].TimesSold > rows[j].TimesSold
		}
		return rows[i].TimesSold < rows[j].TimesSold
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// Carts repository.CartRepository 實作
type Carts struct{ store *Store }

func NewCarts(store *Store) *Carts { return &Carts{store: store} }

var _ repository.CartRepository = (*Carts)(nil)

func (c *Carts) GetByID(ctx context.Context, id uint) (*model.CartItem, error) {
	c.store.rlock(ctx)
	defer c.store.runlock(ctx)
	item, ok := c.store.cartItems[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := item
	return &cp, nil
}

func (c *Carts) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	c.store.rlock(ctx)
	defer c.store.runlock(ctx)
	for _, item := range c.store.cartItems {
		if item.UserID == userID && item.ProductID == productID {
			cp := item
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (c *Carts) ListByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	c.store.rlock(ctx)
	defer c.store.runlock(ctx)
	out := make([]model.CartItem, 0)
	for _, item := range c.store.cartItems {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CartItemID < out[j].CartItemID })
	return out, nil
}

func (c *Carts) Save(ctx context.Context, item *model.CartItem) error {
	c.store.wlock(ctx)
	defer c.store.wunlock(ctx)
	if item.CartItemID == 0 {
		item.CartItemID = c.store.nextCartItemID
		c.store.nextCartItemID++
		item.CreatedAt = time.Now().UTC()
	}
	item.UpdatedAt = time.Now().UTC()
	c.store.cartItems[item.CartItemID] = *item
	return nil
}

func (c *Carts) Delete(ctx context.Context, id uint) error {
	c.store.wlock(ctx)
	defer c.store.wunlock(ctx)
	if _, ok := c.store.cartItems[id]; !ok {
		return repository.ErrNotFound
	}
	delete(c.store.cartItems, id)
	return nil
}

func (c *Carts) DeleteByUser(ctx context.Context, userID uint) error {
	c.store.wlock(ctx)
	defer c.store.wunlock(ctx)
	for id, item := range c.store.cartItems {
		if item.UserID == userID {
			delete(c.store.cartItems, id)
		}
	}
	return nil
}

// Wishlists repository.WishlistRepository 實作
type Wishlists struct{ store *Store }

func NewWishlists(store *Store) *Wishlists { return &Wishlists{store: store} }

var _ repository.WishlistRepository = (*Wishlists)(nil)

func (w *Wishlists) GetByID(ctx context.Context, id uint) (*model.WishlistItem, error) {
	w.store.rlock(ctx)
	defer w.store.runlock(ctx)
	item, ok := w.store.wishlistItems[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := item
	return &cp, nil
}

func (w *Wishlists) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*model.WishlistItem, error) {
	w.store.rlock(ctx)
	defer w.store.runlock(ctx)
	for _, item := range w.store.wishlistItems {
		if item.UserID == userID && item.ProductID == productID {
			cp := item
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (w *Wishlists) ListByUser(ctx context.Context, userID uint) ([]model.WishlistItem, error) {
	w.store.rlock(ctx)
	defer w.store.runlock(ctx)
	out := make([]model.WishlistItem, 0)
	for _, item := range w.store.wishlistItems {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WishlistItemID < out[j].WishlistItemID })
	return out, nil
}

func (w *Wishlists) Create(ctx context.Context, item *model.WishlistItem) error {
	w.store.wlock(ctx)
	defer w.store.wunlock(ctx)
	item.WishlistItemID = w.store.nextWishlistItemID
	w.store.nextWishlistItemID++
	item.CreatedAt = time.Now().UTC()
	w.store.wishlistItems[item.WishlistItemID] = *item
	return nil
}

func (w *Wishlists) Delete(ctx context.Context, id uint) error {
	w.store.wlock(ctx)
	defer w.store.wunlock(ctx)
	if _, ok := w.store.wishlistItems[id]; !ok {
		return repository.ErrNotFound
	}
	delete(w.store.wishlistItems, id)
	return nil
}

// Orders repository.OrderRepository 實作
type Orders struct{ store *Store }

func NewOrders(store *Store) *Orders { return &Orders{store: store} }

var _ repository.OrderRepository = (*Orders)(nil)

func (o *Orders) Create(ctx context.Context, order *model.Order) error {
	o.store.wlock(ctx)
	defer o.store.wunlock(ctx)
	order.OrderID = o.store.nextOrderID
	o.store.nextOrderID++
	order.CreatedAt = time.Now().UTC()
	for i := range order.OrderItems {
		order.OrderItems[i].OrderItemID = o.store.nextOrderItemID
		o.store.nextOrderItemID++
		order.OrderItems[i].OrderID = order.OrderID
	}
	o.store.orders[order.OrderID] = *order
	return nil
}

func (o *Orders) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	o.store.rlock(ctx)
	defer o.store.runlock(ctx)
	order, ok := o.store.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := order
	return &cp, nil
}

func (o *Orders) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	o.store.rlock(ctx)
	defer o.store.runlock(ctx)
	out := make([]model.Order, 0)
	for _, order := range o.store.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID > out[j].OrderID })
	return out, nil
}

// Promos repository.PromoRepository 實作
type Promos struct{ store *Store }

func NewPromos(store *Store) *Promos { return &Promos{store: store} }

var _ repository.PromoRepository = (*Promos)(nil)

func (p *Promos) Create(ctx context.Context, promo *model.PromoCode) error {
	p.store.wlock(ctx)
	defer p.store.wunlock(ctx)
	promo.PromoID = p.store.nextPromoID
	p.store.nextPromoID++
	promo.CreatedAt = time.Now().UTC()
	p.store.promos[promo.PromoID] = *promo
	return nil
}

func (p *Promos) GetByID(ctx context.Context, id uint) (*model.PromoCode, error) {
	p.store.rlock(ctx)
	defer p.store.runlock(ctx)
	promo, ok := p.store.promos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := promo
	return &cp, nil
}

func (p *Promos) GetByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	p.store.rlock(ctx)
	defer p.store.runlock(ctx)
	for _, promo := range p.store.promos {
		if promo.Code == code {
			cp := promo
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (p *Promos) List(ctx context.Context) ([]model.PromoCode, error) {
	p.store.rlock(ctx)
	defer p.store.runlock(ctx)
	out := make([]model.PromoCode, 0)
	for _, promo := range p.store.promos {
		out = append(out, promo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PromoID < out[j].PromoID })
	return out, nil
}

func (p *Promos) Update(ctx context.Context, promo *model.PromoCode) error {
	p.store.wlock(ctx)
	defer p.store.wunlock(ctx)
	if _, ok := p.store.promos[promo.PromoID]; !ok {
		return repository.ErrNotFound
	}
	promo.UpdatedAt = time.Now().UTC()
	p.store.promos[promo.PromoID] = *promo
	return nil
}
