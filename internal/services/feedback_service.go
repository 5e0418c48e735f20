package services

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/ksrami99/SkillSwap/internal/apperror"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/models"
	"github.com/rs/xid"
	"gorm.io/gorm"
)

// FeedbackService records ratings between users and derives aggregate
// ratings on demand. A feedback row is write-once: no exposed operation
// updates or deletes it.
type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// Submit records one rating from fromID about toID, optionally scoped to an
// accepted swap both ends participated in. At most one feedback exists per
// (from, to, swap) triple; a nil swap id is its own grouping key. The
// duplicate lookup is best-effort, like the pending-swap guard.
func (s *FeedbackService) Submit(fromID, toID uuid.UUID, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if fromID == toID {
		return nil, apperror.New(apperror.CodeSelfReference, "You cannot give feedback to yourself.")
	}

	if req.Rating != math.Trunc(req.Rating) || req.Rating < 1 || req.Rating > 5 {
		return nil, apperror.New(apperror.CodeInvalidRating, "Rating must be a whole number between 1 and 5.")
	}

	if req.SwapID != nil {
		var swap models.SwapRequest
		if err := s.db.First(&swap, "id = ?", *req.SwapID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.New(apperror.CodeSwapNotFound,
					"Swap request not found. It may have been deleted or doesn't exist.")
			}
			return nil, err
		}
		if swap.Status != models.SwapStatusAccepted {
			return nil, apperror.New(apperror.CodeSwapNotAccepted,
				"You can only give feedback for completed swaps that were accepted.")
		}
		if swap.RequesterID != fromID && swap.RecipientID != fromID {
			return nil, apperror.New(apperror.CodeNotParticipant,
				"You can only give feedback for swaps you participated in.")
		}
	}

	dup := s.db.Where("from_id = ? AND to_id = ?", fromID, toID)
	if req.SwapID != nil {
		dup = dup.Where("swap_id = ?", *req.SwapID)
	} else {
		dup = dup.Where("swap_id IS NULL")
	}

	var existing models.Feedback
	err := dup.First(&existing).Error
	if err == nil {
		return nil, apperror.New(apperror.CodeDuplicateFeedback,
			"You have already submitted feedback for this swap.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	feedback := models.Feedback{
		ID:      xid.New().String(),
		FromID:  fromID,
		ToID:    toID,
		SwapID:  req.SwapID,
		Rating:  int(req.Rating),
		Comment: req.Comment,
	}

	if err := s.db.Create(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

// ListForUser returns all feedback left about the user, newest-first.
// An empty list is a valid result.
func (s *FeedbackService) ListForUser(toID uuid.UUID) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := s.db.Where("to_id = ?", toID).
		Order("created_at DESC, id DESC").Find(&feedbacks).Error
	return feedbacks, err
}

// AverageRating recomputes the arithmetic mean of all ratings about the
// user on every call; it is never cached or stored. 0 means no feedback.
func (s *FeedbackService) AverageRating(userID uuid.UUID) (float64, error) {
	var avg float64
	err := s.db.Model(&models.Feedback{}).
		Where("to_id = ?", userID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}
