package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type WishlistHandler struct {
	wishlistService service.IWishlistService
}

func NewWishlistHandler(wishlistService service.IWishlistService) *WishlistHandler {
	if wishlistService == nil {
		panic("wishlistService cannot be nil")
	}
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// @Summary add product to wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param wishlistInfo body dto.AddToWishlistDTO true "product id"
// @Success 200 {object} api.Response{} "success, idempotent"
// @Failure 404 {object} api.ResponseError{} "product not found"
// @Security ApiKeyAuth
// @Router /wishlist [post]
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	var addDTO dto.AddToWishlistDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	item, err := h.wishlistService.AddToWishlist(r.Context(), payload.UserID, addDTO.ProductID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.AddToWishlistDTO{ProductID: item.ProductID}, nil)
}

// @Summary list wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.WishlistLineDTO} "success"
// @Security ApiKeyAuth
// @Router /wishlist [get]
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	lines, err := h.wishlistService.ListWishlist(r.Context(), payload.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items := make([]dto.WishlistLineDTO, 0, len(lines))
	for i := range lines {
		items = append(items, dto.WishlistLineDTO{
			WishlistItemID: lines[i].WishlistItemID,
			Product:        convertProductModelToDTO(&lines[i].Product),
		})
	}

	api.SuccessJSON(w, items, nil)
}

// @Summary remove wishlist item
// @Tags wishlist
// @Produce json
// @Param id path int true "wishlist item id"
// @Success 200 {object} api.Response{} "success"
// @Failure 404 {object} api.ResponseError{} "not found"
// @Security ApiKeyAuth
// @Router /wishlist/{id} [delete]
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid wishlist item id")
		return
	}

	if err := h.wishlistService.RemoveFromWishlist(r.Context(), payload.UserID, id); err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}
