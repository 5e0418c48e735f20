package services

import (
	"github.com/google/uuid"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/models"
	"gorm.io/gorm"
)

// DashboardService aggregates a user's swap activity and rating for the
// landing view.
type DashboardService struct {
	db       *gorm.DB
	feedback *FeedbackService
}

func NewDashboardService(db *gorm.DB, feedback *FeedbackService) *DashboardService {
	return &DashboardService{db: db, feedback: feedback}
}

func (s *DashboardService) Stats(userID uuid.UUID) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	involving := func() *gorm.DB {
		return s.db.Model(&models.SwapRequest{}).
			Where("requester_id = ? OR recipient_id = ?", userID, userID)
	}

	if err := involving().Count(&stats.TotalRequests).Error; err != nil {
		return nil, err
	}
	if err := involving().Where("status = ?", models.SwapStatusPending).
		Count(&stats.PendingRequests).Error; err != nil {
		return nil, err
	}
	if err := involving().Where("status = ?", models.SwapStatusAccepted).
		Count(&stats.CompletedSwaps).Error; err != nil {
		return nil, err
	}

	avg, err := s.feedback.AverageRating(userID)
	if err != nil {
		return nil, err
	}
	stats.AverageRating = avg

	return stats, nil
}

// RecentRequests returns the latest requests involving the user in either
// direction, newest-first.
func (s *DashboardService) RecentRequests(userID uuid.UUID, limit int) ([]models.SwapRequest, error) {
	if limit <= 0 {
		limit = 5
	}

	var requests []models.SwapRequest
	err := s.db.Where("requester_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&requests).Error
	return requests, err
}
