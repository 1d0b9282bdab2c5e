package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/portal-lift/constants"
)

// Rating computes the cosmetic end-of-round score
// Average of four factors, each monotonic: faster rounds, more clicks,
// shorter tick intervals and smaller increments all rate higher
func Rating(elapsed time.Duration, clicks int, cfg Config) int {
	if elapsed < constants.RatingMinElapsed {
		elapsed = constants.RatingMinElapsed
	}

	timeFactor := constants.RatingTimeNumerator / elapsed.Seconds()
	clickFactor := constants.RatingClickMultiplier * float64(clicks)
	difficultyFactor := constants.RatingDifficultyNumerator / float64(cfg.TickIntervalMs)
	scoreValueFactor := constants.RatingScoreValueNumerator / cfg.PointsPerClick

	return int(math.Floor((timeFactor + clickFactor + difficultyFactor + scoreValueFactor) / 4))
}
