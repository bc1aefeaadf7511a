package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/velora/dispatch/internal/pkg/models"
	"github.com/velora/dispatch/services/trips"
	"github.com/velora/dispatch/services/trips/mocks"
)

func newTripContext(t *testing.T, method, body string, tripID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	request := httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.SetParamNames("tripID")
	c.SetParamValues(tripID)
	return c, recorder
}

func TestGetTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	tripID := uuid.New()
	trip := &models.Trip{ID: tripID, Status: models.TripStatusRequested}

	mockUC.EXPECT().GetTrip(gomock.Any(), tripID).Return(trip, nil)

	c, recorder := newTripContext(t, http.MethodGet, "", tripID.String())

	err := handler.GetTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), tripID.String())
}

func TestGetTrip_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	tripID := uuid.New()

	mockUC.EXPECT().GetTrip(gomock.Any(), tripID).Return(nil, trips.ErrTripNotFound)

	c, recorder := newTripContext(t, http.MethodGet, "", tripID.String())

	err := handler.GetTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTransitionTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	tripID := uuid.New()
	driverID := uuid.New()
	actor := models.Actor{ID: driverID, Role: models.ActorDriver}
	arrived := &models.Trip{ID: tripID, DriverID: &driverID, Status: models.TripStatusArrived}

	mockUC.EXPECT().TransitionTrip(gomock.Any(), tripID, actor, models.TripStatusArrived).
		Return(arrived, nil)

	body, _ := json.Marshal(TransitionRequest{
		ActorID:   driverID.String(),
		ActorRole: models.ActorDriver,
		Status:    models.TripStatusArrived,
	})
	c, recorder := newTripContext(t, http.MethodPost, string(body), tripID.String())

	err := handler.TransitionTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestTransitionTrip_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	body, _ := json.Marshal(TransitionRequest{
		ActorID:   uuid.New().String(),
		ActorRole: "operator",
		Status:    models.TripStatusArrived,
	})
	c, recorder := newTripContext(t, http.MethodPost, string(body), uuid.New().String())

	err := handler.TransitionTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTransitionTrip_IllegalTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	tripID := uuid.New()
	riderID := uuid.New()

	mockUC.EXPECT().TransitionTrip(gomock.Any(), tripID, gomock.Any(), models.TripStatusCompleted).
		Return(nil, &trips.InvalidTransitionError{
			From: models.TripStatusRequested,
			To:   models.TripStatusCompleted,
		})

	body, _ := json.Marshal(TransitionRequest{
		ActorID:   riderID.String(),
		ActorRole: models.ActorSystem,
		Status:    models.TripStatusCompleted,
	})
	c, recorder := newTripContext(t, http.MethodPost, string(body), tripID.String())

	err := handler.TransitionTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid trip transition")
}

func TestTransitionTrip_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	tripID := uuid.New()

	mockUC.EXPECT().TransitionTrip(gomock.Any(), tripID, gomock.Any(), models.TripStatusCancelled).
		Return(nil, trips.ErrForbidden)

	body, _ := json.Marshal(TransitionRequest{
		ActorID:   uuid.New().String(),
		ActorRole: models.ActorRider,
		Status:    models.TripStatusCancelled,
	})
	c, recorder := newTripContext(t, http.MethodPost, string(body), tripID.String())

	err := handler.TransitionTrip(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCompleteSettlement_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	tripID := uuid.New()
	result := &models.SettlementResult{
		TripID:         tripID.String(),
		Fare:           100000,
		Commission:     5000,
		DriverEarnings: 95000,
	}

	mockUC.EXPECT().CompleteSettlement(gomock.Any(), tripID).Return(result, nil)

	c, recorder := newTripContext(t, http.MethodPost, "", tripID.String())

	err := handler.CompleteSettlement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "95000")
}

func TestCompleteSettlement_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripHandler(mockUC)

	tripID := uuid.New()

	mockUC.EXPECT().CompleteSettlement(gomock.Any(), tripID).
		Return(nil, trips.ErrTransitionConflict)

	c, recorder := newTripContext(t, http.MethodPost, "", tripID.String())

	err := handler.CompleteSettlement(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}
