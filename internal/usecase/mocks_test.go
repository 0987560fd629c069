package usecase

import (
	"context"
	"time"

	"umkm-marketplace/internal/data/entity"
	"umkm-marketplace/internal/data/repository"
	"umkm-marketplace/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByVerificationToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUmkmRepository is a mock implementation of repository.UmkmRepository
type MockUmkmRepository struct {
	mock.Mock
}

func (m *MockUmkmRepository) Create(ctx context.Context, umkm *entity.Umkm) error {
	return m.Called(ctx, umkm).Error(0)
}

func (m *MockUmkmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Umkm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Umkm), args.Error(1)
}

func (m *MockUmkmRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Umkm, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Umkm), args.Error(1)
}

func (m *MockUmkmRepository) FindByUsername(ctx context.Context, username string) (*entity.Umkm, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Umkm), args.Error(1)
}

func (m *MockUmkmRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Umkm, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Umkm), args.Error(1)
}

func (m *MockUmkmRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUmkmRepository) Update(ctx context.Context, umkm *entity.Umkm) error {
	return m.Called(ctx, umkm).Error(0)
}

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByUmkmID(ctx context.Context, umkmID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, umkmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockFeedbackRepository is a mock implementation of repository.FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	return m.Called(ctx, feedback).Error(0)
}

func (m *MockFeedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.Feedback, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByUmkmID(ctx context.Context, umkmID uuid.UUID) ([]*entity.FeedbackWithProduct, error) {
	args := m.Called(ctx, umkmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FeedbackWithProduct), args.Error(1)
}

func (m *MockFeedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFeedbackRepository) FindRatingsByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]int, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID][]int), args.Error(1)
}

// MockResetTokenRepository is a mock implementation of repository.ResetTokenRepository
type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PasswordResetToken), args.Error(1)
}

func (m *MockResetTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockResetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockNotifier is a mock implementation of mailer.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendVerification(ctx context.Context, to, link string) error {
	return m.Called(ctx, to, link).Error(0)
}

func (m *MockNotifier) SendPasswordReset(ctx context.Context, to, link string) error {
	return m.Called(ctx, to, link).Error(0)
}

type mocks struct {
	user     *MockUserRepository
	umkm     *MockUmkmRepository
	product  *MockProductRepository
	feedback *MockFeedbackRepository
	reset    *MockResetTokenRepository
	notifier *MockNotifier
}

func newMocks() (*mocks, *repository.Repository) {
	m := &mocks{
		user:     new(MockUserRepository),
		umkm:     new(MockUmkmRepository),
		product:  new(MockProductRepository),
		feedback: new(MockFeedbackRepository),
		reset:    new(MockResetTokenRepository),
		notifier: new(MockNotifier),
	}
	repo := &repository.Repository{
		User:       m.user,
		Umkm:       m.umkm,
		Product:    m.product,
		Feedback:   m.feedback,
		ResetToken: m.reset,
	}
	return m, repo
}

func (m *mocks) assertExpectations(t mock.TestingT) {
	m.user.AssertExpectations(t)
	m.umkm.AssertExpectations(t)
	m.product.AssertExpectations(t)
	m.feedback.AssertExpectations(t)
	m.reset.AssertExpectations(t)
	m.notifier.AssertExpectations(t)
}

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:        "umkm-marketplace",
			BaseURL:     "http://api.test",
			FrontendURL: "http://front.test",
		},
		JWT:      utils.JWTConfig{Secret: "test_jwt_secret", ExpiryMinutes: 60},
		Token:    utils.TokenConfig{VerificationTTLMinutes: 60, ResetTTLMinutes: 15},
		Security: utils.SecurityConfig{BcryptCost: 4, UsernameAttempts: 5},
	}
}

func newTestAuthService() (*mocks, AuthService) {
	m, repo := newMocks()
	cfg := testConfig()
	jwt := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL(), cfg.App.Name)
	return m, NewAuthService(repo, cfg, jwt, m.notifier, zap.NewNop())
}

func mustHash(password string) string {
	hash, err := utils.HashPassword(password, 4)
	if err != nil {
		panic(err)
	}
	return hash
}

func verifiedUser(email, password string) *entity.User {
	now := time.Now()
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:        email,
		PasswordHash: mustHash(password),
		IsVerified:   true,
	}
}

func umkmFor(userID uuid.UUID, username string) *entity.Umkm {
	now := time.Now()
	return &entity.Umkm{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      userID,
		OwnerName:   "Siti Aminah",
		CompanyName: "Warung Bu Siti",
		Username:    username,
		PhoneNumber: "081234567890",
	}
}
