package adaptor

import (
	"net/http"

	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/usecase"
	"umkm-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler melayani CRUD produk milik vendor yang login
type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// CreateProduct handles POST /api/v1/vendor/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req request.CreateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), identity.UmkmID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// GetOwnProducts handles GET /api/v1/vendor/products
func (h *ProductHandler) GetOwnProducts(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	products, err := h.service.GetOwnProducts(r.Context(), identity.UmkmID)
	if err != nil {
		handleServiceError(w, h.log, err, "get own products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// GetOwnProduct handles GET /api/v1/vendor/products/{id}
func (h *ProductHandler) GetOwnProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetOwnProduct(r.Context(), identity.UmkmID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get own product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// UpdateProduct handles PUT /api/v1/vendor/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), identity.UmkmID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/v1/vendor/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), identity.UmkmID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}
