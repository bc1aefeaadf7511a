package usecase

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/dispatch"
	"github.com/velora/dispatch/services/dispatch/mocks"
)

func activeOffer(trip *models.Trip) *models.TripOffer {
	sentAt := time.Now().Add(-5 * time.Second)
	expiresAt := sentAt.Add(time.Minute)
	return &models.TripOffer{
		ID:        uuid.New(),
		TripID:    trip.ID,
		DriverID:  uuid.New(),
		Status:    models.OfferStatusPending,
		SentAt:    &sentAt,
		ExpiresAt: &expiresAt,
		CreatedAt: sentAt,
	}
}

func TestAcceptOffer_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	cfg := dispatchTestConfig()
	uc := NewDispatchUC(cfg, mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	offer := activeOffer(trip)
	commission := models.CommissionFor(trip.Fare, cfg.Dispatch.CommissionRate)

	settlement := &models.AcceptanceSettlement{
		TripID:           trip.ID.String(),
		DriverID:         offer.DriverID.String(),
		Commission:       commission,
		RemainingCredits: 45000,
	}

	mockRepo.EXPECT().GetActiveOffer(gomock.Any(), trip.ID).Return(offer, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().AcceptOffer(gomock.Any(), offer, trip, commission).Return(settlement, nil)
	mockRepo.EXPECT().RemoveDriverAvailability(gomock.Any(), offer.DriverID).Return(nil)
	mockGW.EXPECT().PublishOfferAccepted(gomock.Any(), *settlement).Return(nil)

	// Act
	got, err := uc.AcceptOffer(context.Background(), trip.ID, offer.DriverID)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, settlement, got)
}

func TestAcceptOffer_WrongDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	offer := activeOffer(trip)

	mockRepo.EXPECT().GetActiveOffer(gomock.Any(), trip.ID).Return(offer, nil)

	got, err := uc.AcceptOffer(context.Background(), trip.ID, uuid.New())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, dispatch.ErrNotOfferedDriver)
}

func TestAcceptOffer_WindowAlreadyClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	offer := activeOffer(trip)
	past := time.Now().Add(-time.Second)
	offer.ExpiresAt = &past

	mockRepo.EXPECT().GetActiveOffer(gomock.Any(), trip.ID).Return(offer, nil)

	got, err := uc.AcceptOffer(context.Background(), trip.ID, offer.DriverID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, dispatch.ErrOfferNotActive)
}

func TestAcceptOffer_InsufficientCreditsRetiresOfferAndAdvances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	cfg := dispatchTestConfig()
	uc := NewDispatchUC(cfg, mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	offer := activeOffer(trip)
	commission := models.CommissionFor(trip.Fare, cfg.Dispatch.CommissionRate)

	insufficient := &models.InsufficientCreditsError{
		Required:  commission,
		Available: 100,
		Fare:      trip.Fare,
	}

	mockRepo.EXPECT().GetActiveOffer(gomock.Any(), trip.ID).Return(offer, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().AcceptOffer(gomock.Any(), offer, trip, commission).Return(nil, insufficient)

	// The unfundable offer is cancelled and the round advances; with no
	// remaining candidates the rider is notified.
	mockRepo.EXPECT().TransitionOfferStatus(gomock.Any(), offer.ID,
		models.OfferStatusPending, models.OfferStatusCancelled).Return(nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).Return(nil, sql.ErrNoRows)
	mockGW.EXPECT().NotifyNoDrivers(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.AcceptOffer(context.Background(), trip.ID, offer.DriverID)

	assert.Nil(t, got)
	var credErr *models.InsufficientCreditsError
	assert.ErrorAs(t, err, &credErr)
	assert.Equal(t, commission, credErr.Required)
	assert.Equal(t, int64(100), credErr.Available)
}

func TestAcceptOffer_TripAlreadyAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	trip.Status = models.TripStatusAccepted
	offer := activeOffer(trip)

	mockRepo.EXPECT().GetActiveOffer(gomock.Any(), trip.ID).Return(offer, nil)
	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	got, err := uc.AcceptOffer(context.Background(), trip.ID, offer.DriverID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, dispatch.ErrTripNotDispatchable)
}

func TestRejectOffer_AdvancesToNextCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	offer := activeOffer(trip)
	next := pendingOffer(trip.ID)

	mockRepo.EXPECT().GetActiveOffer(gomock.Any(), trip.ID).Return(offer, nil)
	mockRepo.EXPECT().TransitionOfferStatus(gomock.Any(), offer.ID,
		models.OfferStatusPending, models.OfferStatusRejected).Return(nil)

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).Return(next, nil)
	mockRepo.EXPECT().MarkOfferSent(gomock.Any(), next.ID, gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkDriverOffered(gomock.Any(), trip.ID, next.DriverID).Return(nil)
	mockRepo.EXPECT().IncrementOffersReceived(gomock.Any(), next.DriverID).Return(nil)
	mockGW.EXPECT().PublishOfferPushed(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.RejectOffer(context.Background(), trip.ID, offer.DriverID)

	assert.NoError(t, err)
}

func TestRejectOffer_AlreadyResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	offer := activeOffer(trip)

	mockRepo.EXPECT().GetActiveOffer(gomock.Any(), trip.ID).Return(offer, nil)
	mockRepo.EXPECT().TransitionOfferStatus(gomock.Any(), offer.ID,
		models.OfferStatusPending, models.OfferStatusRejected).Return(dispatch.ErrOfferConflict)

	err := uc.RejectOffer(context.Background(), trip.ID, offer.DriverID)

	assert.ErrorIs(t, err, dispatch.ErrOfferNotActive)
}
