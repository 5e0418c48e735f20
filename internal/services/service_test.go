package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ksrami99/SkillSwap/internal/config"
	"github.com/ksrami99/SkillSwap/internal/database"
	"github.com/ksrami99/SkillSwap/internal/models"
	"github.com/rs/xid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a private in-memory SQLite database and migrates the full
// schema. Each test gets its own database name so state never leaks across
// tests.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", xid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test_jwt_secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, name string, visibility models.Visibility) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        fmt.Sprintf("%s-%s@example.com", name, xid.New().String()),
		Password:     string(hash),
		Availability: models.AvailabilityAnytime,
		Visibility:   visibility,
		Role:         models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createSwap(t *testing.T, db *gorm.DB, requester, recipient uuid.UUID, status models.SwapStatus) *models.SwapRequest {
	t.Helper()

	request := &models.SwapRequest{
		ID:             xid.New().String(),
		RequesterID:    requester,
		RecipientID:    recipient,
		OfferedSkill:   "Guitar",
		RequestedSkill: "French",
		Status:         status,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}
