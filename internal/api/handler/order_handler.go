package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

func convertOrderModelToDTO(order *model.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, dto.OrderItemDTO{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: dto.NewMoney(item.PriceAtPurchase),
		})
	}
	return dto.OrderDTO{
		OrderID:        order.OrderID,
		UserID:         order.UserID,
		TotalAmount:    dto.NewMoney(order.TotalAmount),
		DiscountAmount: dto.NewMoney(order.DiscountAmount),
		CreatedAt:      order.CreatedAt,
		Items:          items,
	}
}

// @Summary checkout current cart
// @Tags order
// @Accept json
// @Produce json
// @Param checkoutInfo body dto.CheckoutDTO false "optional promo code"
// @Success 201 {object} api.Response{data=dto.OrderDTO} "created"
// @Failure 400 {object} api.ResponseError{} "empty cart, insufficient stock or invalid promo code"
// @Security ApiKeyAuth
// @Router /orders/checkout [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	// body 可省略，等同不帶折扣碼
	var checkoutDTO dto.CheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&checkoutDTO); err != nil && err != io.EOF {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	order, err := h.orderService.Checkout(r.Context(), payload.UserID, checkoutDTO.PromoCode)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, convertOrderModelToDTO(order), nil)
}

// @Summary list own orders
// @Tags order
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.OrderDTO} "success"
// @Security ApiKeyAuth
// @Router /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	out := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, convertOrderModelToDTO(&orders[i]))
	}
	api.SuccessJSON(w, out, nil)
}

// @Summary get order by id
// @Tags order
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} api.Response{data=dto.OrderDTO} "success"
// @Failure 404 {object} api.ResponseError{} "not found"
// @Security ApiKeyAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id, payload.UserID, payload.Role)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertOrderModelToDTO(order), nil)
}
