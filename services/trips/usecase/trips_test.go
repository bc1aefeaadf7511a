package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/trips"
	"github.com/velora/dispatch/services/trips/mocks"
)

func tripTestConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			CommissionRate: 0.05,
		},
	}
}

func tripInState(status models.TripStatus) *models.Trip {
	trip := &models.Trip{
		ID:          uuid.New(),
		RiderID:     uuid.New(),
		ServiceType: "economy",
		Fare:        100000,
		Status:      status,
		RequestedAt: time.Now(),
	}
	if status != models.TripStatusRequested {
		driverID := uuid.New()
		commission := int64(5000)
		trip.DriverID = &driverID
		trip.PlatformCommission = &commission
	}
	return trip
}

func TestTransitionTrip_DriverMarksArrived(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusAccepted)
	actor := models.Actor{ID: *trip.DriverID, Role: models.ActorDriver}

	arrived := *trip
	arrived.Status = models.TripStatusArrived

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().TransitionTrip(gomock.Any(), trip.ID,
		models.TripStatusAccepted, models.TripStatusArrived).Return(&arrived, nil)
	mockGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.TripEvent) error {
			assert.Equal(t, models.TripStatusArrived, event.Status)
			assert.Equal(t, trip.ID.String(), event.TripID)
			return nil
		})

	// Act
	updated, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusArrived)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusArrived, updated.Status)
}

func TestTransitionTrip_CompletionSettlesInOneUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusInProgress)
	actor := models.Actor{ID: *trip.DriverID, Role: models.ActorDriver}

	result := &models.SettlementResult{
		TripID:         trip.ID.String(),
		Fare:           trip.Fare,
		Commission:     *trip.PlatformCommission,
		DriverEarnings: trip.Fare - *trip.PlatformCommission,
	}

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	// Commission fixed at acceptance; earnings derived as fare minus commission
	mockRepo.EXPECT().CompleteSettlement(gomock.Any(), trip,
		*trip.PlatformCommission, trip.Fare-*trip.PlatformCommission).Return(result, nil)
	mockGW.EXPECT().PublishSettlement(gomock.Any(), *result).Return(nil)
	mockGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusCompleted)

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, updated.Status)
	assert.Equal(t, result.Fare, result.Commission+result.DriverEarnings)
}

func TestTransitionTrip_RiderCancelsBeforeArrivalGetsCommissionRefunded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusAccepted)
	actor := models.Actor{ID: trip.RiderID, Role: models.ActorRider}

	cancelled := *trip
	cancelled.Status = models.TripStatusCancelled

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().CancelTrip(gomock.Any(), trip, *trip.PlatformCommission).Return(&cancelled, nil)
	mockGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusCancelled)

	assert.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, updated.Status)
}

func TestTransitionTrip_CancellationAfterArrivalKeepsCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusArrived)
	actor := models.Actor{ID: trip.RiderID, Role: models.ActorRider}

	cancelled := *trip
	cancelled.Status = models.TripStatusCancelled

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().CancelTrip(gomock.Any(), trip, int64(0)).Return(&cancelled, nil)
	mockGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusCancelled)

	assert.NoError(t, err)
}

func TestTransitionTrip_BareAcceptedRequestRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusRequested)
	actor := models.Actor{Role: models.ActorSystem}

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	updated, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusAccepted)

	assert.Nil(t, updated)
	var invalid *trips.InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
}

func TestTransitionTrip_IllegalTransitionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusRequested)
	actor := models.Actor{Role: models.ActorSystem}

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	updated, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusCompleted)

	assert.Nil(t, updated)
	var invalid *trips.InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.TripStatusRequested, invalid.From)
	assert.Equal(t, models.TripStatusCompleted, invalid.To)
}

func TestTransitionTrip_UnrelatedRiderForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusRequested)
	actor := models.Actor{ID: uuid.New(), Role: models.ActorRider}

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	updated, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusCancelled)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, trips.ErrForbidden)
}

func TestTransitionTrip_RiderMayOnlyCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusAccepted)
	actor := models.Actor{ID: trip.RiderID, Role: models.ActorRider}

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	updated, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusArrived)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, trips.ErrForbidden)
}

func TestTransitionTrip_WrongDriverForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusAccepted)
	actor := models.Actor{ID: uuid.New(), Role: models.ActorDriver}

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	updated, err := uc.TransitionTrip(context.Background(), trip.ID, actor, models.TripStatusArrived)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, trips.ErrForbidden)
}

func TestCompleteSettlement_RequiresInProgressTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	uc := NewTripUC(tripTestConfig(), mockRepo, mockGW)

	trip := tripInState(models.TripStatusAccepted)

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	result, err := uc.CompleteSettlement(context.Background(), trip.ID)

	assert.Nil(t, result)
	var invalid *trips.InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
}

func TestCompleteSettlement_FallsBackToConfiguredRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	mockGW := mocks.NewMockTripGW(ctrl)
	cfg := tripTestConfig()
	uc := NewTripUC(cfg, mockRepo, mockGW)

	trip := tripInState(models.TripStatusInProgress)
	trip.PlatformCommission = nil

	commission := models.CommissionFor(trip.Fare, cfg.Dispatch.CommissionRate)
	result := &models.SettlementResult{
		TripID:         trip.ID.String(),
		Fare:           trip.Fare,
		Commission:     commission,
		DriverEarnings: trip.Fare - commission,
	}

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().CompleteSettlement(gomock.Any(), trip, commission, trip.Fare-commission).Return(result, nil)
	mockGW.EXPECT().PublishSettlement(gomock.Any(), *result).Return(nil)
	mockGW.EXPECT().PublishTripEvent(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.CompleteSettlement(context.Background(), trip.ID)

	assert.NoError(t, err)
	assert.Equal(t, result, got)
}
