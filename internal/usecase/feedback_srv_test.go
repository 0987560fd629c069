package usecase

import (
	"context"
	"testing"

	"umkm-marketplace/internal/data/entity"
	"umkm-marketplace/internal/dto/request"
	"umkm-marketplace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFeedbackService() (*mocks, FeedbackService) {
	m, repo := newMocks()
	return m, NewFeedbackService(repo, zap.NewNop())
}

func TestFeedbackService_SubmitFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m, svc := newTestFeedbackService()
		product := productOf(uuid.New())
		m.product.On("FindByID", ctx, product.ID).Return(product, nil).Once()
		m.feedback.On("Create", ctx, mock.MatchedBy(func(f *entity.Feedback) bool {
			return f.ProductID == product.ID && f.Rating == 5 && *f.Comment == "Enak"
		})).Return(nil).Once()

		resp, err := svc.SubmitFeedback(ctx, product.ID.String(), &request.CreateFeedbackRequest{
			BuyerName: "Budi",
			Rating:    5,
			Comment:   ptr("Enak"),
		})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Rating)
		m.assertExpectations(t)
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			m, svc := newTestFeedbackService()
			_, err := svc.SubmitFeedback(ctx, uuid.NewString(), &request.CreateFeedbackRequest{
				BuyerName: "Budi",
				Rating:    rating,
			})

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr, "rating %d", rating)
			assert.Equal(t, apperror.CodeBadRequest, appErr.Code)
			assert.Contains(t, appErr.Meta["fields"], "rating")
			m.feedback.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		m, svc := newTestFeedbackService()
		id := uuid.New()
		m.product.On("FindByID", ctx, id).Return(nil, nil).Once()

		_, err := svc.SubmitFeedback(ctx, id.String(), &request.CreateFeedbackRequest{BuyerName: "Budi", Rating: 3})
		assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
		m.feedback.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFeedbackService_DeleteFeedback(t *testing.T) {
	ctx := context.Background()

	t.Run("anyone can delete existing feedback", func(t *testing.T) {
		m, svc := newTestFeedbackService()
		fb := feedbackOf(uuid.New(), 1)
		m.feedback.On("FindByID", ctx, fb.ID).Return(fb, nil).Once()
		m.feedback.On("Delete", ctx, fb.ID).Return(nil).Once()

		require.NoError(t, svc.DeleteFeedback(ctx, fb.ID.String()))
		m.assertExpectations(t)
	})

	t.Run("unknown feedback", func(t *testing.T) {
		m, svc := newTestFeedbackService()
		id := uuid.New()
		m.feedback.On("FindByID", ctx, id).Return(nil, nil).Once()

		err := svc.DeleteFeedback(ctx, id.String())
		assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
		m.feedback.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, svc := newTestFeedbackService()
		err := svc.DeleteFeedback(ctx, "1")
		assert.True(t, apperror.IsCode(err, apperror.CodeBadRequest))
	})
}

func TestFeedbackService_GetUmkmFeedback(t *testing.T) {
	ctx := context.Background()
	m, svc := newTestFeedbackService()
	umkmID := uuid.New()
	fb := feedbackOf(uuid.New(), 4)
	m.feedback.On("FindByUmkmID", ctx, umkmID).Return([]*entity.FeedbackWithProduct{
		{Feedback: *fb, ProductName: "Keripik Singkong"},
	}, nil).Once()

	list, err := svc.GetUmkmFeedback(ctx, umkmID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Keripik Singkong", list[0].ProductName)
}
