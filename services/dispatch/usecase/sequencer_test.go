package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/dispatch"
	"github.com/velora/dispatch/services/dispatch/mocks"
)

func pendingOffer(tripID uuid.UUID) *models.TripOffer {
	return &models.TripOffer{
		ID:        uuid.New(),
		TripID:    tripID,
		DriverID:  uuid.New(),
		Status:    models.OfferStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestSendNextOffer_UndeliverableOfferSkipsToNextCandidate(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	unreachable := pendingOffer(trip.ID)
	reachable := pendingOffer(trip.ID)

	gomock.InOrder(
		mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).Return(unreachable, nil),
		mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).Return(reachable, nil),
	)
	mockRepo.EXPECT().MarkOfferSent(gomock.Any(), unreachable.ID, gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkOfferSent(gomock.Any(), reachable.ID, gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkDriverOffered(gomock.Any(), trip.ID, gomock.Any()).Return(nil).Times(2)
	mockRepo.EXPECT().IncrementOffersReceived(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// First push fails; the offer is retired and the round moves on
	mockGW.EXPECT().PublishOfferPushed(gomock.Any(), gomock.Any()).Return(errors.New("driver channel closed"))
	mockRepo.EXPECT().TransitionOfferStatus(gomock.Any(), unreachable.ID,
		models.OfferStatusPending, models.OfferStatusExpired).Return(nil)
	mockGW.EXPECT().PublishOfferPushed(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	sent, err := uc.sendNextOffer(context.Background(), trip)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, reachable.ID, sent.ID)
}

func TestSendNextOffer_ConcurrentlyResolvedOfferSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	stale := pendingOffer(trip.ID)
	fresh := pendingOffer(trip.ID)

	gomock.InOrder(
		mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).Return(stale, nil),
		mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).Return(fresh, nil),
	)
	// The stale offer was resolved between the read and the sent marker
	mockRepo.EXPECT().MarkOfferSent(gomock.Any(), stale.ID, gomock.Any(), gomock.Any()).
		Return(dispatch.ErrOfferConflict)
	mockRepo.EXPECT().MarkOfferSent(gomock.Any(), fresh.ID, gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkDriverOffered(gomock.Any(), trip.ID, fresh.DriverID).Return(nil)
	mockRepo.EXPECT().IncrementOffersReceived(gomock.Any(), fresh.DriverID).Return(nil)
	mockGW.EXPECT().PublishOfferPushed(gomock.Any(), gomock.Any()).Return(nil)

	sent, err := uc.sendNextOffer(context.Background(), trip)

	assert.NoError(t, err)
	assert.Equal(t, fresh.ID, sent.ID)
}

func TestSendNextOffer_ExhaustedRoundNotifiesRider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()

	mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).Return(nil, sql.ErrNoRows)
	mockGW.EXPECT().NotifyNoDrivers(gomock.Any(), gomock.Any()).Return(nil)

	sent, err := uc.sendNextOffer(context.Background(), trip)

	assert.Nil(t, sent)
	assert.ErrorIs(t, err, dispatch.ErrNoCandidates)
}

func TestExpireOffer_AdvancesRoundForWaitingTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	expired := pendingOffer(trip.ID)
	next := pendingOffer(trip.ID)

	mockRepo.EXPECT().TransitionOfferStatus(gomock.Any(), expired.ID,
		models.OfferStatusPending, models.OfferStatusExpired).Return(nil)
	mockRepo.EXPECT().GetOffer(gomock.Any(), expired.ID).Return(expired, nil)
	mockGW.EXPECT().PublishOfferExpired(gomock.Any(), expired).Return(nil)

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).Return(next, nil)
	mockRepo.EXPECT().MarkOfferSent(gomock.Any(), next.ID, gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkDriverOffered(gomock.Any(), trip.ID, next.DriverID).Return(nil)
	mockRepo.EXPECT().IncrementOffersReceived(gomock.Any(), next.DriverID).Return(nil)
	mockGW.EXPECT().PublishOfferPushed(gomock.Any(), gomock.Any()).Return(nil)

	uc.expireOffer(context.Background(), expired.ID, trip.ID)
}

func TestExpireOffer_AlreadyResolvedOfferLeftAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	offerID := uuid.New()
	tripID := uuid.New()

	mockRepo.EXPECT().TransitionOfferStatus(gomock.Any(), offerID,
		models.OfferStatusPending, models.OfferStatusExpired).Return(dispatch.ErrOfferConflict)

	uc.expireOffer(context.Background(), offerID, tripID)
}

func TestExpireOffer_AcceptedTripEndsRoundQuietly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	trip.Status = models.TripStatusAccepted
	expired := pendingOffer(trip.ID)

	mockRepo.EXPECT().TransitionOfferStatus(gomock.Any(), expired.ID,
		models.OfferStatusPending, models.OfferStatusExpired).Return(nil)
	mockRepo.EXPECT().GetOffer(gomock.Any(), expired.ID).Return(expired, nil)
	mockGW.EXPECT().PublishOfferExpired(gomock.Any(), expired).Return(nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	uc.expireOffer(context.Background(), expired.ID, trip.ID)
}

func TestRunExpirySweeper_ResolvesOverdueOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	trip.Status = models.TripStatusCancelled
	overdue := pendingOffer(trip.ID)

	ctx, cancel := context.WithCancel(context.Background())

	mockRepo.EXPECT().ListExpiredSentOffers(gomock.Any(), expiredSweepBatch).
		DoAndReturn(func(_ context.Context, _ int) ([]*models.TripOffer, error) {
			return []*models.TripOffer{overdue}, nil
		}).MinTimes(1)
	mockRepo.EXPECT().TransitionOfferStatus(gomock.Any(), overdue.ID,
		models.OfferStatusPending, models.OfferStatusExpired).Return(nil).MinTimes(1)
	mockRepo.EXPECT().GetOffer(gomock.Any(), overdue.ID).Return(overdue, nil).MinTimes(1)
	mockGW.EXPECT().PublishOfferExpired(gomock.Any(), overdue).Return(nil).MinTimes(1)
	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*models.Trip, error) {
			cancel()
			return trip, nil
		}).MinTimes(1)

	done := make(chan struct{})
	go func() {
		uc.RunExpirySweeper(ctx, 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
