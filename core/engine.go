package core

// A MatchEngine resolves regular season fixtures.
type MatchEngine struct {
	Rand       Rand
	Randomness Randomness
	// Roster size used to normalize seed differences
	NumTeams int
}

// Plays one league game between a and b.
//
// The result is appended to both teams and their league records
// are updated. a is recorded as the home team.
func (e *MatchEngine) Play(a, b *Team) *MatchResult {
	favorite, underdog := a, b
	if b.Seed < a.Seed {
		favorite, underdog = b, a
	}

	difference := WeightedSeedDifference(a.Seed, b.Seed, e.NumTeams)
	winCeiling, drawCeiling := Ceilings(e.Randomness, difference)

	// Stays nil for a draw
	var winner *Team
	roll := rollPercent(e.Rand)
	switch {
	case roll <= winCeiling:
		winner = favorite
	case roll <= drawCeiling:
	default:
		winner = underdog
	}

	var result *MatchResult
	if winner == nil {
		goals, _ := SynthesizeScore(e.Rand, false)
		result = newMatchResult(a.Name, b.Name, goals, goals)
	} else {
		winnerGoals, loserGoals := SynthesizeScore(e.Rand, true)
		result = resultOf(a, b, winner, winnerGoals, loserGoals)
	}

	a.recordLeagueResult(result)
	b.recordLeagueResult(result)

	return result
}

// A KnockoutEngine resolves the ties of an elimination bracket.
// It never produces a draw.
type KnockoutEngine struct {
	Rand       Rand
	Randomness Randomness
	// Number of teams in the bracket used to normalize
	// playoff seed differences
	BracketSize int
}

// Decides which of the two teams advances from a tie
func (e *KnockoutEngine) decide(home, away *Team) (winner, loser *Team) {
	if e.Randomness == TossUp {
		if e.Rand.Intn(2) == 0 {
			return away, home
		}
		return home, away
	}

	favorite, underdog := home, away
	if away.PlayoffSeed < home.PlayoffSeed {
		favorite, underdog = away, home
	}

	difference := WeightedSeedDifference(home.PlayoffSeed, away.PlayoffSeed, e.BracketSize)
	sf := ScaleFactor(e.Randomness, difference, e.BracketSize)

	if rollPercent(e.Rand) <= sf {
		return favorite, underdog
	}
	return underdog, favorite
}

// Plays one knockout game between home and away.
//
// The result is appended to both teams and their playoff records
// are updated.
func (e *KnockoutEngine) Play(home, away *Team) (winner, loser *Team, result *MatchResult) {
	winner, loser = e.decide(home, away)

	winnerGoals, loserGoals := SynthesizeScore(e.Rand, true)
	result = resultOf(home, away, winner, winnerGoals, loserGoals)

	home.recordPlayoffResult(result)
	away.recordPlayoffResult(result)

	return winner, loser, result
}

// Builds the decisive result of home vs. away
func resultOf(home, away, winner *Team, winnerGoals, loserGoals int) *MatchResult {
	if winner == home {
		return newMatchResult(home.Name, away.Name, winnerGoals, loserGoals)
	}
	return newMatchResult(home.Name, away.Name, loserGoals, winnerGoals)
}
