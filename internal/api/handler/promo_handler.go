package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type PromoHandler struct {
	promoService service.IPromoService
}

func NewPromoHandler(promoService service.IPromoService) *PromoHandler {
	if promoService == nil {
		panic("promoService cannot be nil")
	}
	return &PromoHandler{
		promoService: promoService,
	}
}

func convertPromoModelToDTO(promo *model.PromoCode) dto.PromoDTO {
	return dto.PromoDTO{
		PromoID:         promo.PromoID,
		Code:            promo.Code,
		DiscountPercent: promo.DiscountPercent,
		ExpiresAt:       promo.ExpiresAt,
		MinOrderAmount:  dto.NewMoney(promo.MinOrderAmount),
		Active:          promo.Active,
	}
}

// @Summary create promo code
// @Tags promo
// @Accept json
// @Produce json
// @Param promoInfo body dto.CreatePromoDTO true "promo code info"
// @Success 201 {object} api.Response{data=dto.PromoDTO} "created"
// @Failure 400 {object} api.ResponseError{} "invalid argument"
// @Failure 409 {object} api.ResponseError{} "code already exists"
// @Security ApiKeyAuth
// @Router /promos [post]
func (h *PromoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreatePromoDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	active := true
	if createDTO.Active != nil {
		active = *createDTO.Active
	}

	promo, err := h.promoService.CreatePromo(r.Context(), service.CreatePromoParams{
		Code:            createDTO.Code,
		DiscountPercent: createDTO.DiscountPercent,
		ExpiresAt:       createDTO.ExpiresAt,
		MinOrderAmount:  createDTO.MinOrderAmount,
		Active:          active,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, convertPromoModelToDTO(promo), nil)
}

// @Summary update promo code
// @Tags promo
// @Accept json
// @Produce json
// @Param id path int true "promo id"
// @Param promoInfo body dto.UpdatePromoDTO true "fields to update"
// @Success 200 {object} api.Response{data=dto.PromoDTO} "success"
// @Failure 404 {object} api.ResponseError{} "not found"
// @Security ApiKeyAuth
// @Router /promos/{id} [patch]
func (h *PromoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid promo id")
		return
	}

	var updateDTO dto.UpdatePromoDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	promo, err := h.promoService.UpdatePromo(r.Context(), id, service.UpdatePromoParams{
		Code:            updateDTO.Code,
		DiscountPercent: updateDTO.DiscountPercent,
		ExpiresAt:       updateDTO.ExpiresAt,
		MinOrderAmount:  updateDTO.MinOrderAmount,
		Active:          updateDTO.Active,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertPromoModelToDTO(promo), nil)
}

// @Summary list promo codes
// @Tags promo
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.PromoDTO} "success"
// @Security ApiKeyAuth
// @Router /promos [get]
func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promoService.ListPromos(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	out := make([]dto.PromoDTO, 0, len(promos))
	for i := range promos {
		out = append(out, convertPromoModelToDTO(&promos[i]))
	}
	api.SuccessJSON(w, out, nil)
}

// @Summary preview promo discount for current cart
// @Tags promo
// @Accept json
// @Produce json
// @Param applyInfo body dto.ApplyPromoDTO true "promo code"
// @Success 200 {object} api.Response{data=dto.PromoQuoteDTO} "success"
// @Failure 400 {object} api.ResponseError{} "invalid promo code or empty cart"
// @Security ApiKeyAuth
// @Router /promos/apply [post]
func (h *PromoHandler) Apply(w http.ResponseWriter, r *http.Request) {
	payload := requirePayload(w, r)
	if payload == nil {
		return
	}

	var applyDTO dto.ApplyPromoDTO
	if err := json.NewDecoder(r.Body).Decode(&applyDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	quote, err := h.promoService.ApplyPromo(r.Context(), payload.UserID, applyDTO.Code)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.PromoQuoteDTO{
		Code:     quote.Code,
		Subtotal: dto.NewMoney(quote.Subtotal),
		Discount: dto.NewMoney(quote.Discount),
		Total:    dto.NewMoney(quote.Total),
	}, nil)
}
