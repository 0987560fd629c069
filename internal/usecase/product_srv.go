package usecase

import (
	"context"
	"time"

	"umkm-marketplace/internal/data/entity"
	"umkm-marketplace/internal/data/repository"
	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/dto/response"
	"umkm-marketplace/pkg/apperror"
	"umkm-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgProductNotFound = "Product not found"
	MsgNotYourProduct  = "You do not have permission to modify this product"
)

type ProductService interface {
	CreateProduct(ctx context.Context, umkmID uuid.UUID, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetOwnProducts(ctx context.Context, umkmID uuid.UUID) ([]response.ProductResponse, error)
	GetOwnProduct(ctx context.Context, umkmID uuid.UUID, productID string) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, umkmID uuid.UUID, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, umkmID uuid.UUID, productID string) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) CreateProduct(ctx context.Context, umkmID uuid.UUID, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UmkmID:      umkmID,
		Name:        req.Name,
		Description: optionalString(req.Description),
		Price:       *req.Price,
		Images:      images,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("umkm_id", umkmID.String()))
		return nil, internalError(err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("umkm_id", umkmID.String()),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetOwnProducts(ctx context.Context, umkmID uuid.UUID) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindByUmkmID(ctx, umkmID)
	if err != nil {
		s.log.Error("Failed to get own products", zap.Error(err), zap.String("umkm_id", umkmID.String()))
		return nil, internalError(err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *productService) GetOwnProduct(ctx context.Context, umkmID uuid.UUID, productID string) (*response.ProductResponse, error) {
	product, err := s.findOwned(ctx, umkmID, productID)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, umkmID uuid.UUID, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	product, err := s.findOwned(ctx, umkmID, productID)
	if err != nil {
		return nil, err
	}

	updated := false

	if req.Name != nil {
		product.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		product.Description = optionalString(req.Description)
		updated = true
	}
	if req.Price != nil {
		product.Price = *req.Price
		updated = true
	}
	if req.Images != nil {
		product.Images = req.Images
		updated = true
	}

	if !updated {
		return nil, apperror.BadRequest(MsgNothingToUpdate)
	}

	product.UpdatedAt = time.Now()
	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, internalError(err)
	}

	s.log.Info("Product updated",
		zap.String("product_id", productID),
		zap.String("umkm_id", umkmID.String()),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, umkmID uuid.UUID, productID string) error {
	product, err := s.findOwned(ctx, umkmID, productID)
	if err != nil {
		return err
	}

	if err := s.repo.Product.Delete(ctx, product.ID); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return internalError(err)
	}

	s.log.Info("Product deleted",
		zap.String("product_id", productID),
		zap.String("umkm_id", umkmID.String()),
	)
	return nil
}

// findOwned memastikan produk ada dan milik umkm yang sedang login
func (s *productService) findOwned(ctx context.Context, umkmID uuid.UUID, productID string) (*entity.Product, error) {
	id, err := parseID(productID, "product")
	if err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", productID))
		return nil, internalError(err)
	}
	if product == nil {
		return nil, apperror.NotFound(MsgProductNotFound)
	}

	if product.UmkmID != umkmID {
		s.log.Warn("Product ownership mismatch",
			zap.String("product_id", productID),
			zap.String("owner_umkm_id", product.UmkmID.String()),
			zap.String("caller_umkm_id", umkmID.String()),
		)
		return nil, apperror.Forbidden(MsgNotYourProduct)
	}

	return product, nil
}
