package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// requirePayload 受保護路由一定掛過 AuthMiddleware，這裡只是保險
func requirePayload(w http.ResponseWriter, r *http.Request) *token.Payload {
	payload := util.GetTokenPayloadFromContext(r.Context())
	if payload == nil {
		api.ErrorJSON(w, http.StatusUnauthorized, errors.New("token is invalid"), "unauthenticated")
		return nil
	}
	return payload
}

// @Summary add product to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param cartInfo body dto.AddToCartDTO true "product and quantity"
// @Success 200 {object} api.Response{} "success"
// @Failure 400 {object} api.ResponseError{} "invalid argument or insufficient stock"
// @Failure 404 {object} api.ResponseError{} "product not found"
// @Security ApiKeyAuth
// @Router /cart [post]
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	var addDTO dto.AddToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	item, err := h.cartService.AddToCart(r.Context(), payload.UserID, addDTO.ProductID, addDTO.Quantity)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.AddToCartDTO{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}, nil)
}

// @Summary list cart with subtotal
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=dto.CartResponse} "success"
// @Security ApiKeyAuth
// @Router /cart [get]
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	lines, subtotal, err := h.cartService.ListCart(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items := make([]dto.CartLineDTO, 0, len(lines))
	for i := range lines {
		items = append(items, dto.CartLineDTO{
			CartItemID: lines[i].CartItemID,
			Product:    convertProductModelToDTO(&lines[i].Product),
			Quantity:   lines[i].Quantity,
			LineTotal:  dto.NewMoney(lines[i].LineTotal),
		})
	}

	api.SuccessJSON(w, dto.CartResponse{
		Items:    items,
		Subtotal: dto.NewMoney(subtotal),
	}, nil)
}

// @Summary remove cart item
// @Tags cart
// @Produce json
// @Param id path int true "cart item id"
// @Success 200 {object} api.Response{} "success"
// @Failure 404 {object} api.ResponseError{} "not found"
// @Security ApiKeyAuth
// @Router /cart/{id} [delete]
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid cart item id")
		return
	}

	if err := h.cartService.RemoveFromCart(r.Context(), payload.UserID, id); err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}
