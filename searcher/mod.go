package searcher

import (
	"math"

	"pandemic/game"
)

const C_SQUARED = 2.0

const WIN = 1.0
const LOSS = 0.0

// Evaluates a game to a score between LOSS and WIN indicating how close the
// players are to curing every disease. Only a won game scores WIN.
type Evaluate func(*game.Game) float64

// EvaluateProgress weighs cures against the remaining outbreak and cube margins.
// A lost game keeps half its score so playouts that fail late still rank above
// those that fail early.
func EvaluateProgress(g *game.Game) float64 {
	if g.Won {
		return WIN
	}

	cured := float64(len(g.CuredDiseases)) / game.NumColors
	outbreaks := 1 - float64(g.Outbreaks)/(game.MaxOutbreaks+1)
	supply := 1.0
	for _, color := range game.AllColors {
		supply = math.Min(supply, float64(g.CubeSupply[color])/game.CubesPerColor)
	}

	score := 0.9 * (0.6*cured + 0.2*outbreaks + 0.2*supply)
	if g.Lost {
		score /= 2
	}
	return score
}

func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored moves
	if visits == 0 {
		return math.Inf(1)
	}

	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}
