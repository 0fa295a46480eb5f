package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type ReportHandler struct {
	productService service.IProductService
	// 低庫存預設門檻，可由設定覆蓋
	lowStockThreshold int
}

func NewReportHandler(productService service.IProductService, lowStockThreshold int) *ReportHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ReportHandler{
		productService:    productService,
		lowStockThreshold: lowStockThreshold,
	}
}

func convertSalesToDTO(rows []model.ProductSales) []dto.ProductSalesDTO {
	out := make([]dto.ProductSalesDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ProductSalesDTO{
			ProductID: row.ProductID,
			Name:      row.Name,
			Category:  row.Category,
			TimesSold: row.TimesSold,
		})
	}
	return out
}

// @Summary low stock products
// @Tags report
// @Produce json
// @Param threshold query int false "stock threshold, default from config"
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Security ApiKeyAuth
// @Router /reports/low-stock [get]
func (h *ReportHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold := h.lowStockThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			api.ErrorJSON(w, http.StatusBadRequest, fmt.Errorf("invalid threshold: %q", raw), "invalid threshold")
			return
		}
		threshold = n
	}

	products, err := h.productService.GetLowStock(r.Context(), threshold)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductListToDTO(products), nil)
}

// @Summary product sales report
// @Tags report
// @Produce json
// @Param category query string false "filter by category"
// @Param sort query string false "most or least, default most"
// @Param limit query int false "max rows, default 50"
// @Success 200 {object} api.Response{data=[]dto.ProductSalesDTO} "success"
// @Failure 400 {object} api.ResponseError{} "invalid argument"
// @Security ApiKeyAuth
// @Router /reports/sales [get]
func (h *ReportHandler) Sales(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			api.ErrorJSON(w, http.StatusBadRequest, fmt.Errorf("invalid limit: %q", raw), "invalid limit")
			return
		}
		limit = n
	}

	rows, err := h.productService.GetSalesReport(r.Context(), service.SalesReportParams{
		Category: query.Get("category"),
		Sort:     query.Get("sort"),
		Limit:    limit,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertSalesToDTO(rows), nil)
}
