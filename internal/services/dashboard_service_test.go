package services_test

import (
	"testing"

	"github.com/ksrami99/SkillSwap/internal/models"
	"github.com/ksrami99/SkillSwap/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := setupDB(t)
	feedbackSvc := services.NewFeedbackService(db)
	svc := services.NewDashboardService(db, feedbackSvc)

	alice := createUser(t, db, "alice", models.VisibilityPublic)
	bob := createUser(t, db, "bob", models.VisibilityPublic)
	carol := createUser(t, db, "carol", models.VisibilityPublic)

	// Fresh account: all zeros.
	stats, err := svc.Stats(alice.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRequests)
	assert.Zero(t, stats.PendingRequests)
	assert.Zero(t, stats.CompletedSwaps)
	assert.Zero(t, stats.AverageRating)

	// Requests count in both directions; unrelated ones do not.
	createSwap(t, db, alice.ID, bob.ID, models.SwapStatusPending)
	createSwap(t, db, carol.ID, alice.ID, models.SwapStatusAccepted)
	createSwap(t, db, alice.ID, carol.ID, models.SwapStatusRejected)
	createSwap(t, db, bob.ID, carol.ID, models.SwapStatusPending)

	_, err = feedbackSvc.Submit(bob.ID, alice.ID, feedbackReq(4))
	require.NoError(t, err)

	stats, err = svc.Stats(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalRequests)
	assert.EqualValues(t, 1, stats.PendingRequests)
	assert.EqualValues(t, 1, stats.CompletedSwaps)
	assert.InDelta(t, 4.0, stats.AverageRating, 1e-9)
}

func TestDashboardRecentRequests(t *testing.T) {
	db := setupDB(t)
	svc := services.NewDashboardService(db, services.NewFeedbackService(db))

	alice := createUser(t, db, "alice", models.VisibilityPublic)
	bob := createUser(t, db, "bob", models.VisibilityPublic)

	var last string
	for i := 0; i < 7; i++ {
		last = createSwap(t, db, alice.ID, bob.ID, models.SwapStatusRejected).ID
	}

	// Default limit is 5 and the newest request comes first.
	recent, err := svc.RecentRequests(alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, last, recent[0].ID)

	recent, err = svc.RecentRequests(alice.ID, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}
