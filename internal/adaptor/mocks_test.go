package adaptor

import (
	"context"

	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of usecase.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.RegisterResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LoginResponse), args.Error(1)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResendVerification(ctx context.Context, req *request.ResendVerificationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *request.UpdatePasswordRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

// MockProductService is a mock implementation of usecase.ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, umkmID uuid.UUID, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	args := m.Called(ctx, umkmID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ProductResponse), args.Error(1)
}

func (m *MockProductService) GetOwnProducts(ctx context.Context, umkmID uuid.UUID) ([]response.ProductResponse, error) {
	args := m.Called(ctx, umkmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ProductResponse), args.Error(1)
}

func (m *MockProductService) GetOwnProduct(ctx context.Context, umkmID uuid.UUID, productID string) (*response.ProductResponse, error) {
	args := m.Called(ctx, umkmID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ProductResponse), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, umkmID uuid.UUID, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	args := m.Called(ctx, umkmID, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ProductResponse), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, umkmID uuid.UUID, productID string) error {
	return m.Called(ctx, umkmID, productID).Error(0)
}

// MockFeedbackService is a mock implementation of usecase.FeedbackService
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) SubmitFeedback(ctx context.Context, productID string, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.FeedbackResponse), args.Error(1)
}

func (m *MockFeedbackService) GetProductFeedback(ctx context.Context, productID string) ([]response.FeedbackResponse, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.FeedbackResponse), args.Error(1)
}

func (m *MockFeedbackService) DeleteFeedback(ctx context.Context, feedbackID string) error {
	return m.Called(ctx, feedbackID).Error(0)
}

func (m *MockFeedbackService) GetUmkmFeedback(ctx context.Context, umkmID uuid.UUID) ([]response.FeedbackResponse, error) {
	args := m.Called(ctx, umkmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.FeedbackResponse), args.Error(1)
}

// MockCatalogService is a mock implementation of usecase.CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetUmkms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UmkmResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.UmkmResponse]), args.Error(1)
}

func (m *MockCatalogService) GetStore(ctx context.Context, username string) (*response.StoreResponse, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.StoreResponse), args.Error(1)
}

func (m *MockCatalogService) GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.ProductResponse]), args.Error(1)
}

func (m *MockCatalogService) GetProductDetail(ctx context.Context, productID string) (*response.ProductDetailResponse, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ProductDetailResponse), args.Error(1)
}
