package core

import (
	"fmt"
	"math/bits"
)

// A Round is a list of ties that are decided before any tie
// of the next round.
type Round struct {
	Ties []*Tie
}

// Returns the teams that are still in the bracket at the
// start of this round in slot order
func (r *Round) Teams() []*Team {
	teams := make([]*Team, 0, 2*len(r.Ties))
	for _, t := range r.Ties {
		teams = append(teams, t.Home, t.Away)
	}
	return teams
}

// A Bracket is a seeded single elimination tournament.
type Bracket struct {
	Size   int
	Rounds []*Round

	EliminationGraph *EliminationGraph

	// The first round teams in slot order
	slots []*Team

	champion *Team
	runnerUp *Team
}

// Checks that size is a power of two in [2, numTeams]
func ValidateBracketSize(size, numTeams int) error {
	if size < 2 || bits.OnesCount(uint(size)) != 1 {
		return &ConfigError{Field: "bracket size", Value: size, Err: ErrBracketSize}
	}
	if size > numTeams {
		return &ConfigError{Field: "bracket size", Value: size, Err: ErrBracketTooLarge}
	}
	return nil
}

// Creates a bracket for the best size teams of the ranked list.
//
// The team ranked r gets playoff seed r. The first round pairs the
// seeds in the order given by SeedSlots so the top seeds can only
// meet in the late rounds.
func NewBracket(ranked []*Team, size int) (*Bracket, error) {
	if err := ValidateBracketSize(size, len(ranked)); err != nil {
		return nil, err
	}

	seedSlots := SeedSlots(size)
	slots := make([]*Team, 0, size)
	for _, seed := range seedSlots {
		team := ranked[seed-1]
		team.PlayoffSeed = seed
		slots = append(slots, team)
	}

	numRounds := getNumRounds(size)
	eliminationGraph := NewEliminationGraph()

	rounds := make([]*Round, 0, numRounds)
	for i := range numRounds {
		var round *Round
		if i == 0 {
			round = createPairedRound(slots, i)
		} else {
			round = createEmptyRound(size>>(i+1), i)
			linkTies(rounds[i-1].Ties, round.Ties, eliminationGraph)
		}
		rounds = append(rounds, round)
	}
	if numRounds == 1 {
		eliminationGraph.addTie(rounds[0].Ties[0])
	}

	bracket := &Bracket{
		Size:             size,
		Rounds:           rounds,
		EliminationGraph: eliminationGraph,
		slots:            slots,
	}

	return bracket, nil
}

// Returns the seed slot order of a bracket of the given size.
//
// Starting from [1, 2] the order is doubled until it has size
// entries. Each seed v of a list of length k is followed by its
// opponent 2k+1-v, so [1, 2] becomes [1, 4, 2, 3] and then
// [1, 8, 4, 5, 2, 7, 3, 6].
//
// More info: https://en.wikipedia.org/wiki/Single-elimination_tournament#Seeding
func SeedSlots(size int) []int {
	slots := []int{1, 2}

	for len(slots) < size {
		k := len(slots)
		next := make([]int, 2*k)
		for i, v := range slots {
			next[2*i] = v
			next[2*i+1] = 2*k + 1 - v
		}
		slots = next
	}

	return slots
}

// Creates a round with ties taken pair-wise from the teams
func createPairedRound(teams []*Team, roundIndex int) *Round {
	ties := make([]*Tie, 0, len(teams)/2)
	for i := 0; i < len(teams); i += 2 {
		ties = append(ties, newTie(teams[i], teams[i+1], roundIndex))
	}
	return &Round{Ties: ties}
}

// Creates a round of ties whose teams are not yet known
func createEmptyRound(numTies, roundIndex int) *Round {
	ties := make([]*Tie, 0, numTies)
	for range numTies {
		ties = append(ties, newTie(nil, nil, roundIndex))
	}
	return &Round{Ties: ties}
}

// Ties 2i and 2i+1 of a round both lead into tie i of the next round
func linkTies(round, followingRound []*Tie, eliminationGraph *EliminationGraph) {
	for i, followingTie := range followingRound {
		eliminationGraph.link(round[2*i], followingTie)
		eliminationGraph.link(round[2*i+1], followingTie)
	}
}

func getNumRounds(numSlots int) int {
	rounds := 0
	for numSlots > 1 {
		numSlots >>= 1
		rounds += 1
	}
	return rounds
}

// Plays every round of the bracket until one team remains.
//
// The winner of a tie moves into the tie that the elimination
// graph links it to. Ties are played in slot order so the winner
// of the upper feeding tie takes the upper slot.
func (b *Bracket) Play(rng Rand, level Randomness) error {
	if err := level.Validate(); err != nil {
		return err
	}
	if b.champion != nil {
		return ErrPlayedOff
	}

	engine := &KnockoutEngine{Rand: rng, Randomness: level, BracketSize: b.Size}

	for i, round := range b.Rounds {
		for j, tie := range round.Ties {
			if tie.Home == nil || tie.Away == nil {
				panic(fmt.Sprintf("tie %v of round %v has an empty slot", j, i))
			}

			tie.Winner, tie.Loser, tie.Result = engine.Play(tie.Home, tie.Away)

			next := b.NextTie(tie)
			if next == nil {
				b.champion, b.runnerUp = tie.Winner, tie.Loser
				continue
			}

			if next.Home == nil {
				next.Home = tie.Winner
			} else {
				next.Away = tie.Winner
			}
		}
	}

	return nil
}

// Returns nil until the bracket is played
func (b *Bracket) Champion() *Team {
	return b.champion
}

// Returns nil until the bracket is played
func (b *Bracket) RunnerUp() *Team {
	return b.runnerUp
}

// Returns the final tie
func (b *Bracket) Final() *Tie {
	return b.Rounds[len(b.Rounds)-1].Ties[0]
}

// The first round teams in slot order
func (b *Bracket) Slots() []*Team {
	return b.slots
}

// Returns the tie that the winner of the given tie advances to
// or nil for the final.
func (b *Bracket) NextTie(tie *Tie) *Tie {
	return b.EliminationGraph.Next(tie)
}

// Returns the ties that the team played in round order.
// Empty when the team is not in the bracket.
func (b *Bracket) Path(team *Team) []*Tie {
	var first *Tie
	for _, t := range b.Rounds[0].Ties {
		if t.Contains(team) {
			first = t
			break
		}
	}
	if first == nil {
		return nil
	}

	path := make([]*Tie, 0, len(b.Rounds))
	for tie := range b.EliminationGraph.Walk(first) {
		if !tie.Contains(team) {
			break
		}
		path = append(path, tie)
	}

	return path
}

// Returns the display name of the ith round
func (b *Bracket) RoundName(i int) string {
	numTeams := b.Size >> i
	switch {
	case numTeams >= 16:
		return fmt.Sprintf("ROUND OF %v", numTeams)
	case numTeams == 8:
		return "QUARTERFINALS"
	case numTeams == 4:
		return "SEMIFINALS"
	}
	return "CHAMPIONSHIP"
}
