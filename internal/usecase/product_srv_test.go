package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"umkm-marketplace/internal/data/entity"
	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProductService() (*mocks, ProductService) {
	m, repo := newMocks()
	return m, NewProductService(repo, zap.NewNop())
}

func productOf(umkmID uuid.UUID) *entity.Product {
	now := time.Now()
	return &entity.Product{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UmkmID: umkmID,
		Name:   "Keripik Singkong",
		Price:  15000,
		Images: []string{},
	}
}

func ptr[T any](v T) *T { return &v }

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	umkmID := uuid.New()

	t.Run("success", func(t *testing.T) {
		m, svc := newTestProductService()
		m.product.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.UmkmID == umkmID && p.Price == 15000 && p.Images != nil
		})).Return(nil).Once()

		resp, err := svc.CreateProduct(ctx, umkmID, &request.CreateProductRequest{
			Name:  "Keripik Singkong",
			Price: ptr(15000.0),
		})
		require.NoError(t, err)
		assert.Equal(t, umkmID.String(), resp.UmkmID)
		assert.Equal(t, []string{}, resp.Images)
		m.assertExpectations(t)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		m, svc := newTestProductService()
		m.product.On("Create", ctx, mock.Anything).Return(nil).Once()

		_, err := svc.CreateProduct(ctx, umkmID, &request.CreateProductRequest{Name: "Sampel Gratis", Price: ptr(0.0)})
		assert.NoError(t, err)
	})

	t.Run("invalid input", func(t *testing.T) {
		m, svc := newTestProductService()

		_, err := svc.CreateProduct(ctx, umkmID, &request.CreateProductRequest{
			Name:   "ab",
			Price:  ptr(-1.0),
			Images: []string{"not a url"},
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		fields := appErr.Meta["fields"].(map[string]string)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "price")
		m.product.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("price above column precision", func(t *testing.T) {
		m, svc := newTestProductService()

		_, err := svc.CreateProduct(ctx, umkmID, &request.CreateProductRequest{Name: "Kopi Luwak", Price: ptr(1e15)})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeBadRequest, appErr.Code)
		assert.Contains(t, appErr.Meta["fields"], "price")
		m.product.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("largest storable price", func(t *testing.T) {
		m, svc := newTestProductService()
		m.product.On("Create", ctx, mock.Anything).Return(nil).Once()

		_, err := svc.CreateProduct(ctx, umkmID, &request.CreateProductRequest{Name: "Kopi Luwak", Price: ptr(999999999999.99)})
		assert.NoError(t, err)
	})

	t.Run("missing price", func(t *testing.T) {
		_, svc := newTestProductService()
		_, err := svc.CreateProduct(ctx, umkmID, &request.CreateProductRequest{Name: "Keripik"})
		assert.True(t, apperror.IsCode(err, apperror.CodeBadRequest))
	})

	t.Run("store failure", func(t *testing.T) {
		m, svc := newTestProductService()
		m.product.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

		_, err := svc.CreateProduct(ctx, umkmID, &request.CreateProductRequest{Name: "Keripik", Price: ptr(1.0)})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInternal, appErr.Code)
		assert.Equal(t, "Internal server error", appErr.Message)
	})
}

func TestProductService_Ownership(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	t.Run("update by non-owner is forbidden", func(t *testing.T) {
		m, svc := newTestProductService()
		product := productOf(owner)
		m.product.On("FindByID", ctx, product.ID).Return(product, nil).Once()

		_, err := svc.UpdateProduct(ctx, other, product.ID.String(), &request.UpdateProductRequest{Name: ptr("Nama Baru")})
		assert.True(t, apperror.IsCode(err, apperror.CodeForbidden))
		assert.Equal(t, "Keripik Singkong", product.Name)
		m.product.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("delete by non-owner is forbidden", func(t *testing.T) {
		m, svc := newTestProductService()
		product := productOf(owner)
		m.product.On("FindByID", ctx, product.ID).Return(product, nil).Once()

		err := svc.DeleteProduct(ctx, other, product.ID.String())
		assert.True(t, apperror.IsCode(err, apperror.CodeForbidden))
		m.product.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing product is not found", func(t *testing.T) {
		m, svc := newTestProductService()
		id := uuid.New()
		m.product.On("FindByID", ctx, id).Return(nil, nil).Twice()

		err := svc.DeleteProduct(ctx, owner, id.String())
		assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))

		_, err = svc.GetOwnProduct(ctx, owner, id.String())
		assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
		m.product.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		m, svc := newTestProductService()
		err := svc.DeleteProduct(ctx, owner, "abc")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeBadRequest, appErr.Code)
		assert.Equal(t, "Invalid product ID", appErr.Message)
		m.product.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("owner can delete", func(t *testing.T) {
		m, svc := newTestProductService()
		product := productOf(owner)
		m.product.On("FindByID", ctx, product.ID).Return(product, nil).Once()
		m.product.On("Delete", ctx, product.ID).Return(nil).Once()

		require.NoError(t, svc.DeleteProduct(ctx, owner, product.ID.String()))
		m.assertExpectations(t)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		m, svc := newTestProductService()
		product := productOf(owner)
		product.Description = ptr("Renyah")
		m.product.On("FindByID", ctx, product.ID).Return(product, nil).Once()
		m.product.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Price == 20000 && p.Name == "Keripik Singkong" && *p.Description == "Renyah"
		})).Return(nil).Once()

		resp, err := svc.UpdateProduct(ctx, owner, product.ID.String(), &request.UpdateProductRequest{Price: ptr(20000.0)})
		require.NoError(t, err)
		assert.Equal(t, 20000.0, resp.Price)
		m.assertExpectations(t)
	})

	t.Run("empty description clears it", func(t *testing.T) {
		m, svc := newTestProductService()
		product := productOf(owner)
		product.Description = ptr("Renyah")
		m.product.On("FindByID", ctx, product.ID).Return(product, nil).Once()
		m.product.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Description == nil
		})).Return(nil).Once()

		resp, err := svc.UpdateProduct(ctx, owner, product.ID.String(), &request.UpdateProductRequest{Description: ptr("  ")})
		require.NoError(t, err)
		assert.Nil(t, resp.Description)
	})

	t.Run("nothing to update", func(t *testing.T) {
		m, svc := newTestProductService()
		product := productOf(owner)
		m.product.On("FindByID", ctx, product.ID).Return(product, nil).Once()

		_, err := svc.UpdateProduct(ctx, owner, product.ID.String(), &request.UpdateProductRequest{})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, MsgNothingToUpdate, appErr.Message)
		m.product.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, svc := newTestProductService()
		_, err := svc.UpdateProduct(ctx, owner, uuid.NewString(), &request.UpdateProductRequest{Price: ptr(-5.0)})
		assert.True(t, apperror.IsCode(err, apperror.CodeBadRequest))
	})

	t.Run("price above column precision rejected", func(t *testing.T) {
		m, svc := newTestProductService()
		_, err := svc.UpdateProduct(ctx, owner, uuid.NewString(), &request.UpdateProductRequest{Price: ptr(1e15)})
		assert.True(t, apperror.IsCode(err, apperror.CodeBadRequest))
		m.product.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProductService_GetOwnProducts(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	m, svc := newTestProductService()
	m.product.On("FindByUmkmID", ctx, owner).Return([]*entity.Product{productOf(owner), productOf(owner)}, nil).Once()

	products, err := svc.GetOwnProducts(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
