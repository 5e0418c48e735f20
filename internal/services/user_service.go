package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ksrami99/SkillSwap/internal/apperror"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/models"
	"gorm.io/gorm"
)

// UserService is the profile directory: public browsing, visibility checks
// and owner-only mutations.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FindPublic lists public profiles, optionally filtered by availability
// (exact) and by a case-insensitive substring match against any offered
// skill. The skill filter runs in-process over the decoded label slice so
// it behaves identically on every database. An empty result is not an
// error.
func (s *UserService) FindPublic(skill, availability string) ([]models.User, error) {
	query := s.db.Where("visibility = ?", models.VisibilityPublic)
	if availability != "" {
		query = query.Where("availability = ?", availability)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	if skill == "" {
		return users, nil
	}

	needle := strings.ToLower(skill)
	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		for _, offered := range u.SkillsOffered {
			if strings.Contains(strings.ToLower(offered), needle) {
				matched = append(matched, u)
				break
			}
		}
	}
	return matched, nil
}

// FindByID returns the user when it is reachable by the viewer: public
// profiles are reachable by anyone, private ones only by their owner.
// Private profiles are reported exactly like missing ones.
func (s *UserService) FindByID(id, viewerID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeTargetNotFound,
				"User profile not found. The user may have deleted their account or made their profile private.")
		}
		return nil, err
	}

	if user.Visibility == models.VisibilityPrivate && viewerID != user.ID {
		return nil, apperror.New(apperror.CodeTargetUnreachable,
			"User profile not found. The user may have deleted their account or made their profile private.")
	}

	return &user, nil
}

// UpdateOwn applies a partial patch to the caller's own record. Only the
// fields present in the request change; disallowed fields never reach this
// point (the DTO does not carry them).
func (s *UserService) UpdateOwn(id uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "User account not found. Please log in again.")
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = *req.ProfilePhoto
	}
	if req.SkillsOffered != nil {
		user.SkillsOffered = *req.SkillsOffered
	}
	if req.SkillsWanted != nil {
		user.SkillsWanted = *req.SkillsWanted
	}
	if req.Availability != nil {
		user.Availability = models.Availability(*req.Availability)
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ToggleVisibility flips public/private and returns the updated record.
func (s *UserService) ToggleVisibility(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "User account not found. Please log in again.")
		}
		return nil, err
	}

	if user.Visibility == models.VisibilityPublic {
		user.Visibility = models.VisibilityPrivate
	} else {
		user.Visibility = models.VisibilityPublic
	}

	if err := s.db.Model(&user).Update("visibility", user.Visibility).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteOwn removes the account and its refresh tokens. Swap requests and
// feedback that reference the user are left in place: they are weak
// references and readers tolerate the orphans.
func (s *UserService) DeleteOwn(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
