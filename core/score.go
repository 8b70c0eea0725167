package core

import "fmt"

// Number of times the winner's goals are redrawn before giving up.
// The winner range always contains a value above any loser value so
// this is never reached in practice.
const maxWinnerRedraws = 10_000

// Relative weights of scoring 0, 1, 2, 3, 4 and 5 goals in a game
var goalWeights = [...]int{19, 22, 11, 7, 2, 1}

// Every possible goal count repeated by its weight.
// Drawing a uniform index from this table draws from the
// weighted distribution.
var goalTable = expandWeights(goalWeights[:])

var (
	// Index of the first entry that is not zero goals
	winnerGoalsStart = goalWeights[0]
	// The loser never scores the highest goal count
	loserGoalsEnd = len(goalTable) - goalWeights[len(goalWeights)-1]
)

func expandWeights(weights []int) []int {
	total := 0
	for _, w := range weights {
		total += w
	}

	table := make([]int, 0, total)
	for value, w := range weights {
		for range w {
			table = append(table, value)
		}
	}
	return table
}

// Draws goals from goalTable[start:end]
func drawGoals(rng Rand, start, end int) int {
	return goalTable[start+rng.Intn(end-start)]
}

// Synthesizes the goals of one game.
//
// For a draw both returned values are the same draw from the full
// distribution. For a decisive game the loser's goals are drawn without
// the highest value and the winner's goals are drawn without zero
// until they exceed the loser's.
func SynthesizeScore(rng Rand, decisive bool) (winnerGoals, loserGoals int) {
	if !decisive {
		goals := drawGoals(rng, 0, len(goalTable))
		return goals, goals
	}

	loserGoals = drawGoals(rng, 0, loserGoalsEnd)
	winnerGoals = drawGoals(rng, winnerGoalsStart, len(goalTable))

	for redraws := 0; winnerGoals <= loserGoals; redraws += 1 {
		if redraws == maxWinnerRedraws {
			panic(fmt.Sprintf("could not draw winner goals above %v", loserGoals))
		}
		winnerGoals = drawGoals(rng, winnerGoalsStart, len(goalTable))
	}

	return winnerGoals, loserGoals
}
