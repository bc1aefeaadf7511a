package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/velora/dispatch/internal/pkg/matrix"
	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/dispatch"
	"github.com/velora/dispatch/services/dispatch/mocks"
)

// stubMatrix returns canned estimates without calling any provider.
type stubMatrix struct {
	estimates []matrix.Estimate
	err       error
}

func (s *stubMatrix) Estimates(_ context.Context, origins []models.Location, _ models.Location) ([]matrix.Estimate, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.estimates != nil {
		return s.estimates, nil
	}
	return make([]matrix.Estimate, len(origins)), nil
}

func dispatchTestConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			WeightEta:        0.5,
			WeightRating:     0.3,
			WeightAcceptance: 0.2,
			ServiceBonus:     0.1,
			EtaCapSeconds:    600,
			// Long enough that expiry timers armed during tests never fire
			OfferTimeout:   time.Hour,
			MaxOffers:      10,
			SearchRadiusKm: 5.0,
			CommissionRate: 0.05,
		},
		Location: models.LocationConfig{
			AnomalySpeedKmh: 150,
			AnomalyCap:      3,
		},
	}
}

func requestedTrip() *models.Trip {
	return &models.Trip{
		ID:               uuid.New(),
		RiderID:          uuid.New(),
		PickupLatitude:   -6.175392,
		PickupLongitude:  106.827153,
		DropoffLatitude:  -6.121435,
		DropoffLongitude: 106.774124,
		ServiceType:      "economy",
		Fare:             100000,
		Status:           models.TripStatusRequested,
		RequestedAt:      time.Now(),
	}
}

func TestStartDispatch_SendsTopRankedOffer(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	cfg := dispatchTestConfig()

	trip := requestedTrip()
	strongID := uuid.New()
	weakID := uuid.New()

	nearby := []*models.NearbyDriver{
		{ID: weakID, DistanceKm: 1.2},
		{ID: strongID, DistanceKm: 0.8},
	}
	drivers := []*models.Driver{
		{ID: weakID, Status: models.DriverStatusOnline, Rating: 3.0, CreditBalance: 50000},
		{ID: strongID, Status: models.DriverStatusOnline, Rating: 5.0, CreditBalance: 50000},
	}

	uc := NewDispatchUC(cfg, mockRepo, mockGW, &stubMatrix{
		estimates: []matrix.Estimate{{EtaSeconds: 240}, {EtaSeconds: 120}},
	})

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().FindNearbyDrivers(gomock.Any(), trip.Pickup(), cfg.Dispatch.SearchRadiusKm).Return(nearby, nil)
	mockRepo.EXPECT().WasDriverOffered(gomock.Any(), trip.ID, weakID).Return(false, nil)
	mockRepo.EXPECT().WasDriverOffered(gomock.Any(), trip.ID, strongID).Return(false, nil)
	mockRepo.EXPECT().GetEligibleDrivers(gomock.Any(), gomock.Any(), cfg.Location.AnomalyCap).Return(drivers, nil)
	mockRepo.EXPECT().GetAcceptanceStats(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]models.AcceptanceStats{}, nil)

	var created []*models.TripOffer
	mockRepo.EXPECT().CreateOffers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, offers []*models.TripOffer) error {
			created = offers
			return nil
		})

	// The sequencer picks up the round's best pending offer
	mockRepo.EXPECT().GetNextPendingOffer(gomock.Any(), trip.ID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*models.TripOffer, error) {
			return created[0], nil
		})
	mockRepo.EXPECT().MarkOfferSent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkDriverOffered(gomock.Any(), trip.ID, strongID).Return(nil)
	mockRepo.EXPECT().IncrementOffersReceived(gomock.Any(), strongID).Return(nil)
	mockGW.EXPECT().PublishOfferPushed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.OfferEvent) error {
			assert.Equal(t, trip.ID.String(), event.TripID)
			assert.Equal(t, strongID.String(), event.DriverID)
			assert.Equal(t, trip.Fare, event.Fare)
			return nil
		})

	// Act
	offer, err := uc.StartDispatch(context.Background(), trip.ID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, strongID, created[0].DriverID)
	assert.Equal(t, weakID, created[1].DriverID)
	assert.Equal(t, strongID, offer.DriverID)
	assert.Equal(t, models.OfferStatusPending, offer.Status)
	assert.NotNil(t, offer.SentAt)
	assert.NotNil(t, offer.ExpiresAt)
}

func TestStartDispatch_TripNotDispatchable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	uc := NewDispatchUC(dispatchTestConfig(), mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	trip.Status = models.TripStatusAccepted

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)

	offer, err := uc.StartDispatch(context.Background(), trip.ID)

	assert.Nil(t, offer)
	assert.ErrorIs(t, err, dispatch.ErrTripNotDispatchable)
}

func TestStartDispatch_NoDriversInRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	cfg := dispatchTestConfig()
	uc := NewDispatchUC(cfg, mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().FindNearbyDrivers(gomock.Any(), trip.Pickup(), cfg.Dispatch.SearchRadiusKm).
		Return([]*models.NearbyDriver{}, nil)
	mockGW.EXPECT().NotifyNoDrivers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.NoDriversEvent) error {
			assert.Equal(t, trip.ID.String(), event.TripID)
			assert.Equal(t, trip.RiderID.String(), event.RiderID)
			return nil
		})

	offer, err := uc.StartDispatch(context.Background(), trip.ID)

	assert.Nil(t, offer)
	assert.ErrorIs(t, err, dispatch.ErrNoCandidates)
}

func TestStartDispatch_AlreadyOfferedDriversExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDispatchRepo(ctrl)
	mockGW := mocks.NewMockDispatchGW(ctrl)
	cfg := dispatchTestConfig()
	uc := NewDispatchUC(cfg, mockRepo, mockGW, &stubMatrix{})

	trip := requestedTrip()
	offeredID := uuid.New()

	mockRepo.EXPECT().GetTrip(gomock.Any(), trip.ID).Return(trip, nil)
	mockRepo.EXPECT().FindNearbyDrivers(gomock.Any(), trip.Pickup(), cfg.Dispatch.SearchRadiusKm).
		Return([]*models.NearbyDriver{{ID: offeredID, DistanceKm: 0.5}}, nil)
	mockRepo.EXPECT().WasDriverOffered(gomock.Any(), trip.ID, offeredID).Return(true, nil)
	mockGW.EXPECT().NotifyNoDrivers(gomock.Any(), gomock.Any()).Return(nil)

	offer, err := uc.StartDispatch(context.Background(), trip.ID)

	assert.Nil(t, offer)
	assert.ErrorIs(t, err, dispatch.ErrNoCandidates)
}
