package core

// The share of the seed range that separates two seeds.
// Lies in [0, 1) for seeds in 1..n.
func WeightedSeedDifference(seedA, seedB, n int) float64 {
	diff := seedA - seedB
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) / float64(n)
}

// Percent ceilings for a league game
type ceilings struct {
	win, draw int
}

// League ceilings per randomness level for the seed difference
// bands [>=0.6, >=0.2, rest]
var leagueCeilings = map[Randomness][3]ceilings{
	HeavyFavorites:    {{80, 90}, {70, 85}, {60, 75}},
	ModerateFavorites: {{70, 85}, {55, 75}, {45, 75}},
	SlightFavorites:   {{60, 75}, {45, 70}, {38, 70}},
}

var tossUpCeilings = ceilings{33, 67}

// Returns the percent ceilings of a league game.
//
// A roll in [1, win] is a win of the favorite, a roll in
// (win, draw] is a draw and everything above is an upset.
func Ceilings(level Randomness, difference float64) (win, draw int) {
	bands, ok := leagueCeilings[level]
	if !ok {
		return tossUpCeilings.win, tossUpCeilings.draw
	}

	var c ceilings
	switch {
	case difference >= 0.6:
		c = bands[0]
	case difference >= 0.2:
		c = bands[1]
	default:
		c = bands[2]
	}

	return c.win, c.draw
}

// Knockout scale factors per randomness level for the seed
// difference bands [>=0.75, >=0.5, >=0.25, rest]
var knockoutScaleFactors = map[Randomness][4]int{
	HeavyFavorites:    {99, 90, 82, 75},
	ModerateFavorites: {88, 80, 72, 68},
	SlightFavorites:   {80, 70, 55, 50},
}

// Returns the percent chance of the better seed advancing
// from a knockout tie in a bracket of the given size.
//
// Brackets of 32 and more get +10 so the top seeds keep their edge
// in a bigger field. Brackets of 8 or less get -5 on the two most
// seed-driven levels. The toss up level always returns 50.
func ScaleFactor(level Randomness, difference float64, bracketSize int) int {
	bands, ok := knockoutScaleFactors[level]
	if !ok {
		return 50
	}

	var sf int
	switch {
	case difference >= 0.75:
		sf = bands[0]
	case difference >= 0.5:
		sf = bands[1]
	case difference >= 0.25:
		sf = bands[2]
	default:
		sf = bands[3]
	}

	if bracketSize >= 32 {
		sf += 10
	} else if bracketSize <= 8 && (level == HeavyFavorites || level == ModerateFavorites) {
		sf -= 5
	}

	return min(sf, 100)
}
