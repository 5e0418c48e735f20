package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/ksrami99/SkillSwap/internal/apperror"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/models"
	"github.com/rs/xid"
	"gorm.io/gorm"
)

// SwapService owns the swap-request lifecycle: creation against a reachable
// recipient, the single pending -> accepted/rejected transition, and
// withdrawal of pending requests by their requester.
type SwapService struct {
	db *gorm.DB
}

func NewSwapService(db *gorm.DB) *SwapService {
	return &SwapService{db: db}
}

// Create persists a new pending request from requester to recipient.
//
// The duplicate-pending lookup is a best-effort guard, not a uniqueness
// constraint: two near-simultaneous creates for the same pair can both pass
// it. That matches the upstream behavior and is an accepted race.
func (s *SwapService) Create(requesterID, recipientID uuid.UUID, req *dto.CreateSwapRequest) (*models.SwapRequest, error) {
	if requesterID == recipientID {
		return nil, apperror.New(apperror.CodeSelfReference, "You cannot send a swap request to yourself.")
	}

	var recipient models.User
	if err := s.db.First(&recipient, "id = ?", recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeTargetNotFound,
				"The user you're trying to contact doesn't exist or has deleted their account.")
		}
		return nil, err
	}

	if recipient.Visibility == models.VisibilityPrivate {
		return nil, apperror.New(apperror.CodeTargetUnreachable,
			"This user's profile is private and cannot receive swap requests.")
	}

	var existing models.SwapRequest
	err := s.db.Where("requester_id = ? AND recipient_id = ? AND status = ?",
		requesterID, recipientID, models.SwapStatusPending).First(&existing).Error
	if err == nil {
		return nil, apperror.New(apperror.CodeDuplicatePending,
			"You already have a pending swap request with this user. Please wait for their response.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request := models.SwapRequest{
		ID:             xid.New().String(),
		RequesterID:    requesterID,
		RecipientID:    recipientID,
		OfferedSkill:   req.OfferedSkill,
		RequestedSkill: req.RequestedSkill,
		Message:        req.Message,
		Status:         models.SwapStatusPending,
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// Transition moves a pending request to accepted or rejected. Only the
// recipient may decide, and only once: the write is conditional on the row
// still being pending, so of two racing transitions exactly one commits and
// the loser sees AlreadyProcessed.
func (s *SwapService) Transition(requestID string, actorID uuid.UUID, newStatus models.SwapStatus) (*models.SwapRequest, error) {
	if newStatus != models.SwapStatusAccepted && newStatus != models.SwapStatusRejected {
		return nil, apperror.ValidationFailed("status", "status must be one of: accepted, rejected")
	}

	request, err := s.find(requestID)
	if err != nil {
		return nil, err
	}

	if request.RecipientID != actorID {
		return nil, apperror.New(apperror.CodeForbidden, "You can only respond to swap requests sent to you.")
	}
	if request.Status != models.SwapStatusPending {
		return nil, apperror.New(apperror.CodeAlreadyProcessed,
			"This request has already been processed and cannot be modified.")
	}

	res := s.db.Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", requestID, models.SwapStatusPending).
		Update("status", newStatus)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race against a concurrent decision.
		return nil, apperror.New(apperror.CodeAlreadyProcessed,
			"This request has already been processed and cannot be modified.")
	}

	request.Status = newStatus
	return request, nil
}

// Delete withdraws a pending request. Only the requester may withdraw, and
// terminal requests are permanent records.
func (s *SwapService) Delete(requestID string, actorID uuid.UUID) error {
	request, err := s.find(requestID)
	if err != nil {
		return err
	}

	if request.RequesterID != actorID {
		return apperror.New(apperror.CodeForbidden, "You can only delete swap requests that you sent.")
	}
	if request.Status != models.SwapStatusPending {
		return apperror.New(apperror.CodeAlreadyProcessed,
			"Only pending requests can be deleted. This request has already been processed.")
	}

	res := s.db.Where("id = ? AND status = ?", requestID, models.SwapStatusPending).
		Delete(&models.SwapRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.New(apperror.CodeAlreadyProcessed,
			"Only pending requests can be deleted. This request has already been processed.")
	}
	return nil
}

// ListForUser returns the caller's sent and received requests as two
// disjoint lists, each newest-first. The id is the tie-break for equal
// timestamps: xids sort by creation, so pagination stays deterministic.
func (s *SwapService) ListForUser(userID uuid.UUID) (*dto.SwapListResponse, error) {
	var sent []models.SwapRequest
	if err := s.db.Where("requester_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&sent).Error; err != nil {
		return nil, err
	}

	var received []models.SwapRequest
	if err := s.db.Where("recipient_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&received).Error; err != nil {
		return nil, err
	}

	return &dto.SwapListResponse{Sent: sent, Received: received}, nil
}

func (s *SwapService) find(requestID string) (*models.SwapRequest, error) {
	var request models.SwapRequest
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound,
				"Swap request not found. It may have been deleted or doesn't exist.")
		}
		return nil, err
	}
	return &request, nil
}
