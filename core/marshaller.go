package core

import "encoding/json"

func marshalResult(result *MatchResult) map[string]any {
	return map[string]any{
		"home":      result.Home,
		"away":      result.Away,
		"homeGoals": result.HomeGoals,
		"awayGoals": result.AwayGoals,
		"winner":    result.Winner(),
	}
}

func marshalResults(results []*MatchResult) []map[string]any {
	marshalled := make([]map[string]any, len(results))
	for i, r := range results {
		marshalled[i] = marshalResult(r)
	}
	return marshalled
}

func marshalTeam(team *Team, position int) map[string]any {
	result := map[string]any{
		"position": position,
		"name":     team.Name,
		"seed":     team.Seed,
		"played":   team.Played(),
		"wins":     team.League.Wins,
		"draws":    team.League.Draws,
		"losses":   team.League.Losses,
		"gf":       team.League.GoalsFor,
		"ga":       team.League.GoalsAgainst,
		"gd":       team.GoalDifference(),
		"points":   team.Points(),
		"results":  marshalResults(team.results),
	}

	if team.MadePlayoffs() {
		result["playoffs"] = map[string]any{
			"seed":    team.PlayoffSeed,
			"wins":    team.Playoffs.Wins,
			"losses":  team.Playoffs.Losses,
			"gf":      team.Playoffs.GoalsFor,
			"ga":      team.Playoffs.GoalsAgainst,
			"gd":      team.PlayoffGoalDifference(),
			"results": marshalResults(team.playoffResults),
		}
	}

	return result
}

func marshalStandings(standings *Standings) []map[string]any {
	table := make([]map[string]any, len(standings.Ranks))
	for i, t := range standings.Ranks {
		table[i] = marshalTeam(t, i+1)
	}
	return table
}

func marshalTie(tie *Tie) map[string]any {
	slot := func(t *Team) any {
		if t == nil {
			return nil
		}
		return map[string]any{"seed": t.PlayoffSeed, "name": t.Name}
	}

	result := map[string]any{
		"home": slot(tie.Home),
		"away": slot(tie.Away),
	}
	if tie.Result != nil {
		result["result"] = marshalResult(tie.Result)
		result["winner"] = tie.Winner.Name
	}
	return result
}

func marshalBracket(bracket *Bracket) map[string]any {
	rounds := make([]map[string]any, len(bracket.Rounds))
	for i, r := range bracket.Rounds {
		ties := make([]map[string]any, len(r.Ties))
		for j, tie := range r.Ties {
			ties[j] = marshalTie(tie)
		}
		rounds[i] = map[string]any{
			"name": bracket.RoundName(i),
			"ties": ties,
		}
	}

	result := map[string]any{
		"size":   bracket.Size,
		"rounds": rounds,
	}
	if champion := bracket.Champion(); champion != nil {
		result["champion"] = champion.Name
		result["runnerUp"] = bracket.RunnerUp().Name
	}
	return result
}

func marshalSeason(season *Season) map[string]any {
	result := map[string]any{
		"id":         season.ID.String(),
		"rounds":     season.Settings.Rounds,
		"randomness": int(season.Settings.Randomness),
	}

	if season.Standings != nil {
		result["standings"] = marshalStandings(season.Standings)
	}
	if season.Bracket != nil {
		result["bracket"] = marshalBracket(season.Bracket)
	}

	return result
}

// Encodes the season as an indented JSON document
func MarshalSeason(season *Season) ([]byte, error) {
	anymap := marshalSeason(season)
	return json.MarshalIndent(anymap, "", "  ")
}

func (s *Season) MarshalJSON() ([]byte, error) {
	anymap := marshalSeason(s)
	return json.Marshal(anymap)
}

func (b *Bracket) MarshalJSON() ([]byte, error) {
	anymap := marshalBracket(b)
	return json.Marshal(anymap)
}
