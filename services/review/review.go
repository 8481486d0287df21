package review

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	reviewRepo "shopsphere/database/repository/review"
	"shopsphere/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

const maxCommentLength = 2000

type ReviewService interface {
	SubmitReview(ctx context.Context, shopID, userID string, rating int, comment string) (*models.Review, error)
	ListReviews(ctx context.Context, shopID string) ([]models.Review, error)
	RatingSummary(ctx context.Context, shopID string) (*models.RatingSummary, error)
}

type DefaultReviewService struct {
	Repo   reviewRepo.ReviewRepository
	Now    func() time.Time
	Logger *zap.Logger
}

func NewReviewService(repo reviewRepo.ReviewRepository, logger *zap.Logger) *DefaultReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultReviewService{Repo: repo, Now: func() time.Time { return time.Now().UTC() }, Logger: logger}
}

// truncateComment caps comment at maxCommentLength bytes without
// splitting a multi-byte rune.
func truncateComment(comment string) string {
	if len(comment) <= maxCommentLength {
		return comment
	}
	cut := maxCommentLength
	for cut > 0 && !utf8.RuneStart(comment[cut]) {
		cut--
	}
	return comment[:cut]
}

func (s *DefaultReviewService) SubmitReview(ctx context.Context, shopID, userID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	comment = truncateComment(strings.TrimSpace(comment))
	review := &models.Review{
		ID:        uuid.New().String(),
		ShopID:    shopID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.Now(),
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		s.Logger.Error("failed to store review", zap.String("shopId", shopID), zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (s *DefaultReviewService) ListReviews(ctx context.Context, shopID string) ([]models.Review, error) {
	return s.Repo.ListByShop(ctx, shopID)
}

func (s *DefaultReviewService) RatingSummary(ctx context.Context, shopID string) (*models.RatingSummary, error) {
	return s.Repo.Summary(ctx, shopID)
}
