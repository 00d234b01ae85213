package strategy

import "github.com/mireval/rampart/internal/models"

// EstimateRisks scores every candidate launch coordinate, returning one risk
// per candidate in input order. A candidate's risk is the sum, over every
// tile of its route to the opposing edge, of the number of enemy stationary
// threats able to strike that tile multiplied by the representative threat's
// per-hit damage. There is no decay, discounting or cap: long routes are
// intentionally overweighted, favoring caution. An unreachable candidate
// (empty route) scores zero.
//
// Scores are computed fresh on every call and must not be cached across
// turns.
func EstimateRisks(g Game, cfg *models.GameConfig, candidates []models.Coordinate) []float64 {
	perHit := cfg.Unit(models.UnitTurret).Damage

	risks := make([]float64, len(candidates))
	for i, at := range candidates {
		var risk float64
		for _, tile := range g.FindPathToEdge(at) {
			risk += float64(g.GetAttackers(tile, models.OwnerOpponent)) * perHit
		}
		risks[i] = risk
	}
	return risks
}
