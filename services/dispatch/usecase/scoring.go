package usecase

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/velora/dispatch/internal/pkg/matrix"
	"github.com/velora/dispatch/internal/pkg/models"
)

// scoredCandidate pairs a driver with the estimate and score computed for
// one dispatch round.
type scoredCandidate struct {
	driver   *models.Driver
	estimate matrix.Estimate
	score    float64
}

// scoreDriver combines normalized ETA, rating and historical acceptance
// rate under the configured weights, plus a flat bonus when the driver's
// vehicle type matches the requested service type.
func (uc *DispatchUC) scoreDriver(driver *models.Driver, estimate matrix.Estimate, stats models.AcceptanceStats, serviceType string) float64 {
	d := uc.cfg.Dispatch

	etaRatio := estimate.EtaSeconds / d.EtaCapSeconds
	if etaRatio > 1 {
		etaRatio = 1
	}
	etaNorm := 1 - etaRatio
	ratingNorm := driver.Rating / 5.0

	score := d.WeightEta*etaNorm + d.WeightRating*ratingNorm + d.WeightAcceptance*stats.Rate()
	if driver.VehicleType == serviceType {
		score += d.ServiceBonus
	}
	return score
}

// rankCandidates scores every driver against the trip and returns them in
// offer order: highest score first, ties broken by lower ETA and then by
// driver ID so two rounds over the same pool rank identically.
func (uc *DispatchUC) rankCandidates(
	trip *models.Trip,
	drivers []*models.Driver,
	estimates []matrix.Estimate,
	stats map[uuid.UUID]models.AcceptanceStats,
) []scoredCandidate {
	candidates := make([]scoredCandidate, 0, len(drivers))
	for i, driver := range drivers {
		candidates = append(candidates, scoredCandidate{
			driver:   driver,
			estimate: estimates[i],
			score:    uc.scoreDriver(driver, estimates[i], stats[driver.ID], trip.ServiceType),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].estimate.EtaSeconds != candidates[j].estimate.EtaSeconds {
			return candidates[i].estimate.EtaSeconds < candidates[j].estimate.EtaSeconds
		}
		return strings.Compare(candidates[i].driver.ID.String(), candidates[j].driver.ID.String()) < 0
	})

	if len(candidates) > uc.cfg.Dispatch.MaxOffers {
		candidates = candidates[:uc.cfg.Dispatch.MaxOffers]
	}
	return candidates
}
