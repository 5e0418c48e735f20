package services_test

import (
	"fmt"
	"testing"

	"github.com/ksrami99/SkillSwap/internal/apperror"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/models"
	"github.com/ksrami99/SkillSwap/internal/services"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedbackReq(rating float64) *dto.SubmitFeedbackRequest {
	return &dto.SubmitFeedbackRequest{Rating: rating, Comment: "great teacher"}
}

func TestFeedbackSubmit(t *testing.T) {
	db := setupDB(t)
	svc := services.NewFeedbackService(db)

	alice := createUser(t, db, "alice", models.VisibilityPublic)
	bob := createUser(t, db, "bob", models.VisibilityPublic)

	feedback, err := svc.Submit(alice.ID, bob.ID, feedbackReq(4))
	require.NoError(t, err)
	assert.Equal(t, 4, feedback.Rating)
	assert.Equal(t, alice.ID, feedback.FromID)
	assert.Equal(t, bob.ID, feedback.ToID)
	assert.Nil(t, feedback.SwapID)
}

func TestFeedbackSubmitSelfReference(t *testing.T) {
	db := setupDB(t)
	svc := services.NewFeedbackService(db)

	alice := createUser(t, db, "alice", models.VisibilityPublic)

	_, err := svc.Submit(alice.ID, alice.ID, feedbackReq(5))
	require.Error(t, err)
	assert.Equal(t, apperror.CodeSelfReference, apperror.CodeOf(err))
}

func TestFeedbackSubmitRatingBounds(t *testing.T) {
	db := setupDB(t)
	svc := services.NewFeedbackService(db)

	alice := createUser(t, db, "alice", models.VisibilityPublic)
	bob := createUser(t, db, "bob", models.VisibilityPublic)

	for _, rating := range []float64{0, 6, -1, 3.5, 4.01} {
		t.Run(fmt.Sprintf("rating=%v", rating), func(t *testing.T) {
			_, err := svc.Submit(alice.ID, bob.ID, feedbackReq(rating))
			require.Error(t, err)
			assert.Equal(t, apperror.CodeInvalidRating, apperror.CodeOf(err))
		})
	}

	for _, rating := range []float64{1, 5} {
		carol := createUser(t, db, "carol", models.VisibilityPublic)
		_, err := svc.Submit(alice.ID, carol.ID, feedbackReq(rating))
		assert.NoError(t, err, "rating %v should be accepted", rating)
	}
}

func TestFeedbackSubmitSwapGating(t *testing.T) {
	db := setupDB(t)
	svc := services.NewFeedbackService(db)

	alice := createUser(t, db, "alice", models.VisibilityPublic)
	bob := createUser(t, db, "bob", models.VisibilityPublic)
	mallory := createUser(t, db, "mallory", models.VisibilityPublic)

	missing := xid.New().String()
	req := feedbackReq(5)
	req.SwapID = &missing
	_, err := svc.Submit(alice.ID, bob.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeSwapNotFound, apperror.CodeOf(err))

	pending := createSwap(t, db, alice.ID, bob.ID, models.SwapStatusPending)
	req = feedbackReq(5)
	req.SwapID = &pending.ID
	_, err = svc.Submit(alice.ID, bob.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeSwapNotAccepted, apperror.CodeOf(err))

	accepted := createSwap(t, db, alice.ID, bob.ID, models.SwapStatusAccepted)
	req = feedbackReq(5)
	req.SwapID = &accepted.ID
	_, err = svc.Submit(mallory.ID, bob.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotParticipant, apperror.CodeOf(err))

	req = feedbackReq(5)
	req.SwapID = &accepted.ID
	feedback, err := svc.Submit(alice.ID, bob.ID, req)
	require.NoError(t, err)
	require.NotNil(t, feedback.SwapID)
	assert.Equal(t, accepted.ID, *feedback.SwapID)
}

func TestFeedbackSubmitDuplicate(t *testing.T) {
	db := setupDB(t)
	svc := services.NewFeedbackService(db)

	alice := createUser(t, db, "alice", models.VisibilityPublic)
	bob := createUser(t, db, "bob", models.VisibilityPublic)

	_, err := svc.Submit(alice.ID, bob.ID, feedbackReq(4))
	require.NoError(t, err)

	// Same unscoped pair again.
	_, err = svc.Submit(alice.ID, bob.ID, feedbackReq(2))
	require.Error(t, err)
	assert.Equal(t, apperror.CodeDuplicateFeedback, apperror.CodeOf(err))

	// A swap-scoped submission is a different grouping key and goes through.
	swap := createSwap(t, db, alice.ID, bob.ID, models.SwapStatusAccepted)
	req := feedbackReq(5)
	req.SwapID = &swap.ID
	_, err = svc.Submit(alice.ID, bob.ID, req)
	require.NoError(t, err)

	// But repeating it for the same swap does not.
	req = feedbackReq(3)
	req.SwapID = &swap.ID
	_, err = svc.Submit(alice.ID, bob.ID, req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeDuplicateFeedback, apperror.CodeOf(err))

	// The reverse direction is independent.
	_, err = svc.Submit(bob.ID, alice.ID, feedbackReq(4))
	assert.NoError(t, err)
}

func TestFeedbackAverageRating(t *testing.T) {
	db := setupDB(t)
	svc := services.NewFeedbackService(db)

	bob := createUser(t, db, "bob", models.VisibilityPublic)

	avg, err := svc.AverageRating(bob.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)

	for _, rating := range []float64{5, 4, 3} {
		rater := createUser(t, db, "rater", models.VisibilityPublic)
		_, err := svc.Submit(rater.ID, bob.ID, feedbackReq(rating))
		require.NoError(t, err)
	}

	avg, err = svc.AverageRating(bob.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)

	// Feedback left by bob about others never counts toward his average.
	other := createUser(t, db, "other", models.VisibilityPublic)
	_, err = svc.Submit(bob.ID, other.ID, feedbackReq(1))
	require.NoError(t, err)

	avg, err = svc.AverageRating(bob.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestFeedbackListForUser(t *testing.T) {
	db := setupDB(t)
	svc := services.NewFeedbackService(db)

	alice := createUser(t, db, "alice", models.VisibilityPublic)
	bob := createUser(t, db, "bob", models.VisibilityPublic)
	carol := createUser(t, db, "carol", models.VisibilityPublic)

	list, err := svc.ListForUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Submit(alice.ID, bob.ID, feedbackReq(5))
	require.NoError(t, err)
	_, err = svc.Submit(carol.ID, bob.ID, feedbackReq(2))
	require.NoError(t, err)
	_, err = svc.Submit(alice.ID, carol.ID, feedbackReq(3))
	require.NoError(t, err)

	list, err = svc.ListForUser(bob.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, f := range list {
		assert.Equal(t, bob.ID, f.ToID)
	}
}
