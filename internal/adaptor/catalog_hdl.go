package adaptor

import (
	"net/http"

	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/usecase"
	"umkm-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetUmkms handles GET /api/v1/umkms?page=1&per_page=10
func (h *CatalogHandler) GetUmkms(w http.ResponseWriter, r *http.Request) {
	umkms, err := h.service.GetUmkms(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get umkms")
		return
	}

	utils.ResponseSuccess(w, "UMKMs retrieved successfully", umkms)
}

// GetStore handles GET /api/v1/umkms/{username}
func (h *CatalogHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	store, err := h.service.GetStore(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		handleServiceError(w, h.log, err, "get store")
		return
	}

	utils.ResponseSuccess(w, "Store retrieved successfully", store)
}

// GetProducts handles GET /api/v1/products?page=1&per_page=10
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetProducts(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// GetProductDetail handles GET /api/v1/products/{id}
func (h *CatalogHandler) GetProductDetail(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProductDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get product detail")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
	req.PerPage = req.Limit()
	return req
}
