package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// 商品圖片上限 5MB
const maxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type ProductHandler struct {
	productService service.IProductService
	uploadDir      string
}

func NewProductHandler(productService service.IProductService, uploadDir string) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
		uploadDir:      uploadDir,
	}
}

func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return uint(id), nil
}

func convertProductModelToDTO(product *model.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ProductID: product.ProductID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     dto.NewMoney(product.Price),
		Stock:     product.Stock,
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
	}
}

func convertProductListToDTO(products []model.Product) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, convertProductModelToDTO(&products[i]))
	}
	return out
}

// @Summary create product
// @Tags product
// @Accept json
// @Produce json
// @Param productInfo body dto.CreateProductDTO true "product info"
// @Success 201 {object} api.Response{data=dto.ProductDTO} "created"
// @Failure 400 {object} api.ResponseError{} "invalid argument"
// @Security ApiKeyAuth
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), service.CreateProductParams{
		Name:     createDTO.Name,
		Category: createDTO.Category,
		Price:    createDTO.Price,
		Stock:    createDTO.Stock,
		ImageURL: createDTO.ImageURL,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.CreatedJSON(w, convertProductModelToDTO(product), nil)
}

// @Summary list products
// @Tags product
// @Produce json
// @Param category query string false "filter by category"
// @Param popular query string false "sort by sales: most or least"
// @Param limit query int false "max rows, default 50"
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Failure 400 {object} api.ResponseError{} "invalid argument"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
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

	products, err := h.productService.ListProducts(r.Context(), service.ListProductsParams{
		Category: query.Get("category"),
		Popular:  query.Get("popular"),
		Limit:    limit,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductListToDTO(products), nil)
}

// @Summary get product by id
// @Tags product
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{} "not found"
// @Router /products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductModelToDTO(product), nil)
}

// @Summary update product
// @Tags product
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Param productInfo body dto.UpdateProductDTO true "fields to update"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{} "not found"
// @Security ApiKeyAuth
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid product id")
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, service.UpdateProductParams{
		Name:     updateDTO.Name,
		Category: updateDTO.Category,
		Price:    updateDTO.Price,
		Stock:    updateDTO.Stock,
		ImageURL: updateDTO.ImageURL,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductModelToDTO(product), nil)
}

// @Summary delete product
// @Tags product
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} api.Response{} "success"
// @Failure 404 {object} api.ResponseError{} "not found"
// @Security ApiKeyAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// @Summary upload product image
// @Tags product
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "product id"
// @Param file formData file true "image file"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 400 {object} api.ResponseError{} "invalid file"
// @Failure 404 {object} api.ResponseError{} "not found"
// @Security ApiKeyAuth
// @Router /products/{id}/image [post]
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseUintParam(r, "id")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "invalid product id")
		return
	}

	// 先確認商品存在再收檔案
	if _, err := h.productService.GetProduct(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, err, "file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		api.ErrorJSON(w, http.StatusBadRequest, fmt.Errorf("unsupported file type: %q", ext), "unsupported file type")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	// 檔名用 uuid，避免路徑穿越與互相覆蓋
	fileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dst, err := os.Create(filepath.Join(h.uploadDir, fileName))
	if err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, nil, "internal server error")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		api.ErrorJSON(w, http.StatusInternalServerError, nil, "internal server error")
		return
	}

	imageURL := fmt.Sprintf("/uploads/%s", fileName)
	product, err := h.productService.UpdateProduct(r.Context(), id, service.UpdateProductParams{
		ImageURL: &imageURL,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	api.SuccessJSON(w, convertProductModelToDTO(product), nil)
}
