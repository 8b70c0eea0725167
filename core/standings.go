package core

import (
	"cmp"
	"slices"
	"strings"
)

// A metric that the standings are ordered by. Higher is better.
type metric func(t *Team) int

// The ranking key followed by the tie-break chain.
// Each metric only orders the ties left by the ones before it.
var standingsChain = []metric{
	(*Team).Points,
	(*Team).GoalDifference,
	func(t *Team) int { return t.League.GoalsFor },
	func(t *Team) int { return -t.League.GoalsAgainst },
}

// Standings rank the teams of a league by points.
//
// Teams level on points are ordered by goal difference, then
// by goals scored and then by fewest goals conceded. Teams that
// are level on all of these keep their roster order.
type Standings struct {
	Ranks     []*Team
	tiedRanks [][]*Team
}

func NewStandings(teams []*Team) *Standings {
	s := &Standings{}
	s.Update(teams)
	return s
}

// Recomputes the ranks from the teams' current records
func (s *Standings) Update(teams []*Team) {
	s.tiedRanks = breakTie(teams, standingsChain)
	s.Ranks = flattenTiedRanks(s.tiedRanks)
}

// Returns a slice of slices of teams.
//
// A slice with multiple teams in it means the rank
// is tied on every key of the chain.
func (s *Standings) TiedRanks() [][]*Team {
	return s.tiedRanks
}

// Returns the team in the ith place (0-indexed) or nil
// if out of bounds.
func (s *Standings) At(i int) *Team {
	if i >= len(s.Ranks) || i < 0 {
		return nil
	}
	return s.Ranks[i]
}

// Returns the 1-indexed table position of the named team
// or 0 if it is not in the standings.
func (s *Standings) Position(name string) int {
	i := slices.IndexFunc(s.Ranks, func(t *Team) bool { return t.Name == name })
	return i + 1
}

// Returns the best n teams
func (s *Standings) Top(n int) []*Team {
	return s.Ranks[:min(n, len(s.Ranks))]
}

// Orders the tie by the first metric of the chain and recursively
// breaks the emerged sub-ties with the rest of the chain.
//
// The returned list is descending in rank and each nested list is a
// rank of teams. More than one team in a rank means the tie could not
// be broken by any metric.
func breakTie(tie []*Team, chain []metric) [][]*Team {
	if len(tie) == 1 || len(chain) == 0 {
		return [][]*Team{tie}
	}

	broken := make([][]*Team, 0, len(tie))
	for _, subTie := range sortByMetric(tie, chain[0]) {
		broken = append(broken, breakTie(subTie, chain[1:])...)
	}
	return broken
}

// Sorts the teams in descending buckets of the metric.
// Teams in a bucket keep their relative order.
func sortByMetric(teams []*Team, m metric) [][]*Team {
	buckets := make(map[int][]*Team)

	for _, t := range teams {
		value := m(t)
		buckets[value] = append(buckets[value], t)
	}

	sortedMetrics := make([]int, 0, len(buckets))
	for k := range buckets {
		sortedMetrics = append(sortedMetrics, k)
	}
	slices.SortFunc(sortedMetrics, func(a, b int) int { return cmp.Compare(b, a) })

	sortedTeams := make([][]*Team, 0, len(sortedMetrics))
	for _, v := range sortedMetrics {
		sortedTeams = append(sortedTeams, buckets[v])
	}

	return sortedTeams
}

func flattenTiedRanks(tiedRanks [][]*Team) []*Team {
	numRanks := 0
	for _, t := range tiedRanks {
		numRanks += len(t)
	}

	ranks := make([]*Team, 0, numRanks)
	for _, t := range tiedRanks {
		ranks = append(ranks, t...)
	}

	return ranks
}

func (s *Standings) String() string {
	var sb strings.Builder

	for _, rank := range s.TiedRanks() {
		for _, t := range rank {
			sb.WriteString(t.Name)
			sb.WriteRune('\n')
		}
		sb.WriteString("---")
		sb.WriteRune('\n')
	}

	return sb.String()
}
