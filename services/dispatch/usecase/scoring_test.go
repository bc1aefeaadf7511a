package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/velora/dispatch/internal/pkg/matrix"
	"github.com/velora/dispatch/internal/pkg/models"
)

func scoringConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			WeightEta:        0.5,
			WeightRating:     0.3,
			WeightAcceptance: 0.2,
			ServiceBonus:     0.1,
			EtaCapSeconds:    600,
			MaxOffers:        10,
		},
	}
}

func TestScoreDriver_CombinesWeightedComponents(t *testing.T) {
	uc := NewDispatchUC(scoringConfig(), nil, nil, nil)

	driver := &models.Driver{
		ID:          uuid.New(),
		Rating:      4.0,
		VehicleType: "economy",
	}
	estimate := matrix.Estimate{EtaSeconds: 300}
	stats := models.AcceptanceStats{OffersReceived: 10, OffersAccepted: 8}

	score := uc.scoreDriver(driver, estimate, stats, "premium")

	// 0.5*(1-300/600) + 0.3*(4/5) + 0.2*0.8, no service bonus
	assert.InDelta(t, 0.65, score, 1e-9)
}

func TestScoreDriver_ServiceBonusOnVehicleMatch(t *testing.T) {
	uc := NewDispatchUC(scoringConfig(), nil, nil, nil)

	driver := &models.Driver{ID: uuid.New(), Rating: 4.0, VehicleType: "premium"}
	estimate := matrix.Estimate{EtaSeconds: 300}
	stats := models.AcceptanceStats{OffersReceived: 10, OffersAccepted: 8}

	without := uc.scoreDriver(driver, estimate, stats, "economy")
	with := uc.scoreDriver(driver, estimate, stats, "premium")

	assert.InDelta(t, 0.1, with-without, 1e-9)
}

func TestScoreDriver_EtaCappedAtZeroContribution(t *testing.T) {
	uc := NewDispatchUC(scoringConfig(), nil, nil, nil)

	driver := &models.Driver{ID: uuid.New(), Rating: 5.0}
	stats := models.AcceptanceStats{}

	atCap := uc.scoreDriver(driver, matrix.Estimate{EtaSeconds: 600}, stats, "")
	beyondCap := uc.scoreDriver(driver, matrix.Estimate{EtaSeconds: 3600}, stats, "")

	assert.Equal(t, atCap, beyondCap)
}

func TestScoreDriver_NoHistoryDefaultsToHalfRate(t *testing.T) {
	uc := NewDispatchUC(scoringConfig(), nil, nil, nil)

	driver := &models.Driver{ID: uuid.New(), Rating: 0}
	estimate := matrix.Estimate{EtaSeconds: 600}

	score := uc.scoreDriver(driver, estimate, models.AcceptanceStats{}, "")

	// Only the acceptance term contributes: 0.2 * 0.5
	assert.InDelta(t, 0.1, score, 1e-9)
}

func TestRankCandidates_OrdersByScoreThenEtaThenID(t *testing.T) {
	uc := NewDispatchUC(scoringConfig(), nil, nil, nil)

	trip := &models.Trip{ID: uuid.New(), ServiceType: "economy"}

	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	highRated := uuid.New()

	// Two identical drivers with identical estimates tie on score; the
	// third outranks both on rating.
	drivers := []*models.Driver{
		{ID: idB, Rating: 3.0},
		{ID: idA, Rating: 3.0},
		{ID: highRated, Rating: 5.0},
	}
	estimates := []matrix.Estimate{
		{EtaSeconds: 120},
		{EtaSeconds: 120},
		{EtaSeconds: 120},
	}

	ranked := uc.rankCandidates(trip, drivers, estimates, map[uuid.UUID]models.AcceptanceStats{})

	assert.Len(t, ranked, 3)
	assert.Equal(t, highRated, ranked[0].driver.ID)
	assert.Equal(t, idA, ranked[1].driver.ID)
	assert.Equal(t, idB, ranked[2].driver.ID)
}

func TestRankCandidates_TieBrokenByLowerEta(t *testing.T) {
	uc := NewDispatchUC(scoringConfig(), nil, nil, nil)
	// ETA weight off so both drivers score identically despite different ETAs
	uc.cfg.Dispatch.WeightEta = 0

	trip := &models.Trip{ID: uuid.New()}
	near := uuid.New()
	far := uuid.New()

	drivers := []*models.Driver{
		{ID: far, Rating: 4.0},
		{ID: near, Rating: 4.0},
	}
	estimates := []matrix.Estimate{
		{EtaSeconds: 400},
		{EtaSeconds: 100},
	}

	ranked := uc.rankCandidates(trip, drivers, estimates, map[uuid.UUID]models.AcceptanceStats{})

	assert.Equal(t, near, ranked[0].driver.ID)
	assert.Equal(t, far, ranked[1].driver.ID)
}

func TestRankCandidates_TruncatesToMaxOffers(t *testing.T) {
	uc := NewDispatchUC(scoringConfig(), nil, nil, nil)
	uc.cfg.Dispatch.MaxOffers = 2

	trip := &models.Trip{ID: uuid.New()}

	drivers := make([]*models.Driver, 5)
	estimates := make([]matrix.Estimate, 5)
	for i := range drivers {
		drivers[i] = &models.Driver{ID: uuid.New(), Rating: float64(i)}
		estimates[i] = matrix.Estimate{EtaSeconds: 100}
	}

	ranked := uc.rankCandidates(trip, drivers, estimates, map[uuid.UUID]models.AcceptanceStats{})

	assert.Len(t, ranked, 2)
	assert.GreaterOrEqual(t, ranked[0].score, ranked[1].score)
}
