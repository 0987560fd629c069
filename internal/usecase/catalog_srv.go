package usecase

import (
	"context"

	"umkm-marketplace/internal/data/entity"
	"umkm-marketplace/internal/data/repository"
	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/dto/response"
	"umkm-marketplace/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MsgStoreNotFound = "UMKM store not found"

// CatalogService melayani halaman publik (tanpa login)
type CatalogService interface {
	GetUmkms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UmkmResponse], error)
	GetStore(ctx context.Context, username string) (*response.StoreResponse, error)
	GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	GetProductDetail(ctx context.Context, productID string) (*response.ProductDetailResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetUmkms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UmkmResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	umkms, err := s.repo.Umkm.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get umkms", zap.Error(err), zap.Int("page", req.Page), zap.Int("per_page", limit))
		return nil, internalError(err)
	}

	total, err := s.repo.Umkm.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count umkms", zap.Error(err))
		return nil, internalError(err)
	}

	items := make([]response.UmkmResponse, len(umkms))
	for i, umkm := range umkms {
		items[i] = response.UmkmToResponse(umkm)
	}

	return response.NewPaginatedResponse(items, req.Page, limit, total), nil
}

func (s *catalogService) GetStore(ctx context.Context, username string) (*response.StoreResponse, error) {
	umkm, err := s.repo.Umkm.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to get umkm by username", zap.Error(err), zap.String("username", username))
		return nil, internalError(err)
	}
	if umkm == nil {
		return nil, apperror.NotFound(MsgStoreNotFound)
	}

	products, err := s.repo.Product.FindByUmkmID(ctx, umkm.ID)
	if err != nil {
		s.log.Error("Failed to get store products", zap.Error(err), zap.String("umkm_id", umkm.ID.String()))
		return nil, internalError(err)
	}

	rated, err := s.rateProducts(ctx, products)
	if err != nil {
		return nil, err
	}

	return &response.StoreResponse{
		Umkm:     response.UmkmToResponse(umkm),
		Products: rated,
	}, nil
}

func (s *catalogService) GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	products, err := s.repo.Product.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get products", zap.Error(err), zap.Int("page", req.Page), zap.Int("per_page", limit))
		return nil, internalError(err)
	}

	total, err := s.repo.Product.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, internalError(err)
	}

	return response.NewPaginatedResponse(response.ProductsToResponse(products), req.Page, limit, total), nil
}

func (s *catalogService) GetProductDetail(ctx context.Context, productID string) (*response.ProductDetailResponse, error) {
	id, err := parseID(productID, "product")
	if err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", productID))
		return nil, internalError(err)
	}
	if product == nil {
		return nil, apperror.NotFound(MsgProductNotFound)
	}

	umkm, err := s.repo.Umkm.FindByID(ctx, product.UmkmID)
	if err != nil {
		s.log.Error("Failed to get product owner", zap.Error(err), zap.String("umkm_id", product.UmkmID.String()))
		return nil, internalError(err)
	}
	if umkm == nil {
		s.log.Error("Product has no owner", zap.String("product_id", productID))
		return nil, internalError(errUmkmMissing)
	}

	feedback, err := s.repo.Feedback.FindByProductID(ctx, product.ID)
	if err != nil {
		s.log.Error("Failed to get product feedback", zap.Error(err), zap.String("product_id", productID))
		return nil, internalError(err)
	}

	ratings := make([]int, len(feedback))
	for i, f := range feedback {
		ratings[i] = f.Rating
	}

	return &response.ProductDetailResponse{
		ProductResponse: response.ProductToResponse(product),
		Umkm:            response.UmkmToContact(umkm),
		AverageRating:   entity.AverageRating(ratings),
		Feedback:        response.FeedbackListToResponse(feedback),
	}, nil
}

// rateProducts menghitung rata-rata rating semua produk dengan satu query
func (s *catalogService) rateProducts(ctx context.Context, products []*entity.Product) ([]response.RatedProductResponse, error) {
	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	ratings, err := s.repo.Feedback.FindRatingsByProductIDs(ctx, ids)
	if err != nil {
		s.log.Error("Failed to get product ratings", zap.Error(err), zap.Int("product_count", len(ids)))
		return nil, internalError(err)
	}

	out := make([]response.RatedProductResponse, len(products))
	for i, p := range products {
		out[i] = response.RatedProductResponse{
			ProductResponse: response.ProductToResponse(p),
			AverageRating:   entity.AverageRating(ratings[p.ID]),
		}
	}
	return out, nil
}
