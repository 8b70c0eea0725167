package core

import "testing"

func TestMatchEngineFavoriteWins(t *testing.T) {
	teams := TeamSlice(2)
	favorite, underdog := teams[0], teams[1]

	// Roll 1 wins for the favorite, then 0 - 1
	rng := &scriptedRand{draws: []int{0, 0, 0}}
	engine := &MatchEngine{Rand: rng, Randomness: HeavyFavorites, NumTeams: 2}

	result := engine.Play(underdog, favorite)

	if result.Home != underdog.Name || result.Away != favorite.Name {
		t.Fatal("the first team was not recorded as the home team")
	}
	if result.Winner() != favorite.Name || result.HomeGoals != 0 || result.AwayGoals != 1 {
		t.Fatalf("expected a 0 - 1 favorite win, got %v", result)
	}
	if favorite.League.Wins != 1 || underdog.League.Losses != 1 {
		t.Fatal("the win and loss counters were not updated")
	}
	if favorite.League.GoalsFor != 1 || underdog.League.GoalsAgainst != 1 {
		t.Fatal("the goal aggregates were not updated")
	}
	if favorite.Results()[0] != result || underdog.Results()[0] != result {
		t.Fatal("the result was not appended to both teams")
	}
}

func TestMatchEngineDrawAndUpset(t *testing.T) {
	teams := TeamSlice(2)
	favorite, underdog := teams[0], teams[1]

	// A seed difference of 0.5 on the heavy level gives the ceilings 70/85.
	// Roll 80 is a draw with 1 goal each.
	// Roll 100 is an upset with a 2 - 0 score.
	rng := &scriptedRand{draws: []int{79, 19, 99, 0, 22}}
	engine := &MatchEngine{Rand: rng, Randomness: HeavyFavorites, NumTeams: 2}

	draw := engine.Play(favorite, underdog)
	if !draw.IsDraw() || draw.HomeGoals != 1 || draw.AwayGoals != 1 {
		t.Fatalf("expected a 1 - 1 draw, got %v", draw)
	}
	if favorite.League.Draws != 1 || underdog.League.Draws != 1 {
		t.Fatal("the draw was not counted for both teams")
	}

	upset := engine.Play(favorite, underdog)
	if upset.Winner() != underdog.Name || upset.HomeGoals != 0 || upset.AwayGoals != 2 {
		t.Fatalf("expected a 0 - 2 upset, got %v", upset)
	}
	if underdog.Points() != 4 || favorite.Points() != 1 {
		t.Fatal("the points do not reflect a draw and an upset")
	}
}

func TestKnockoutEngine(t *testing.T) {
	teams := TeamSlice(4)
	top, bottom := teams[0], teams[3]
	top.PlayoffSeed = 1
	bottom.PlayoffSeed = 4

	// Seeds 1 and 4 of 4 have a difference of 0.75 which makes
	// the scale factor 99 - 5 = 94 on the heavy level
	rng := &scriptedRand{draws: []int{93, 0, 0, 94, 0, 0}}
	engine := &KnockoutEngine{Rand: rng, Randomness: HeavyFavorites, BracketSize: 4}

	winner, loser, result := engine.Play(bottom, top)
	if winner != top || loser != bottom {
		t.Fatal("roll 94 did not advance the favorite")
	}
	if result.Home != bottom.Name || result.Winner() != top.Name {
		t.Fatal("the knockout result does not match the tie")
	}

	winner, _, _ = engine.Play(bottom, top)
	if winner != bottom {
		t.Fatal("roll 95 did not advance the underdog")
	}

	if top.Playoffs.Wins != 1 || top.Playoffs.Losses != 1 || bottom.Playoffs.Wins != 1 {
		t.Fatal("the playoff records were not updated")
	}
	if top.Played() != 0 || top.League.Wins != 0 {
		t.Fatal("knockout games changed the league record")
	}
	if len(top.PlayoffResults()) != 2 {
		t.Fatal("the knockout results were not appended")
	}
}

func TestKnockoutEngineTossUp(t *testing.T) {
	teams := TeamSlice(2)
	home, away := teams[0], teams[1]
	home.PlayoffSeed = 1
	away.PlayoffSeed = 2

	rng := &scriptedRand{draws: []int{0, 0, 0, 1, 0, 0}}
	engine := &KnockoutEngine{Rand: rng, Randomness: TossUp, BracketSize: 2}

	winner, _, _ := engine.Play(home, away)
	if winner != away {
		t.Fatal("the first coin side did not eliminate the home team")
	}
	winner, _, _ = engine.Play(home, away)
	if winner != home {
		t.Fatal("the second coin side did not eliminate the away team")
	}
}

func TestKnockoutNeverDraws(t *testing.T) {
	teams := TeamSlice(2)
	teams[0].PlayoffSeed = 1
	teams[1].PlayoffSeed = 2

	engine := &KnockoutEngine{Rand: NewRand(3), Randomness: SlightFavorites, BracketSize: 2}
	for range 500 {
		winner, _, result := engine.Play(teams[0], teams[1])
		if result.IsDraw() {
			t.Fatal("a knockout game ended in a draw")
		}
		if result.Winner() != winner.Name {
			t.Fatal("the result winner is not the advancing team")
		}
		if result.GoalsFor(winner.Name) <= result.GoalsAgainst(winner.Name) {
			t.Fatal("the winner did not score more goals")
		}
	}

	if teams[0].Playoffs.Wins+teams[1].Playoffs.Wins != 500 {
		t.Fatal("not every knockout game produced exactly one winner")
	}
}
