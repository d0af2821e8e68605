package poker

import (
	"fmt"
	"sort"
)

// HandCategory is ordered from weakest (HighCard) to strongest (FlushFive).
type HandCategory int

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

func (h HandCategory) String() string {
	switch h {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	case FlushHouse:
		return "Flush House"
	case FlushFive:
		return "Flush Five"
	default:
		return "?"
	}
}

func (h HandCategory) MarshalText() ([]byte, error) {
	if h < HighCard || h > FlushFive {
		return nil, fmt.Errorf("unknown hand category %d", int(h))
	}
	return []byte(h.String()), nil
}

func (h *HandCategory) UnmarshalText(text []byte) error {
	for c := HighCard; c <= FlushFive; c++ {
		if c.String() == string(text) {
			*h = c
			return nil
		}
	}
	return fmt.Errorf("unknown hand category %q", string(text))
}

// Multiplier is the base (chips, mult) pair of a category.
type Multiplier struct {
	Chips float64
	Mult  float64
}

var TypeMap = map[HandCategory]Multiplier{
	FlushFive:     {160, 16},
	FlushHouse:    {140, 14},
	FiveOfAKind:   {120, 12},
	StraightFlush: {100, 8},
	FourOfAKind:   {60, 7},
	FullHouse:     {40, 4},
	Flush:         {35, 4},
	Straight:      {30, 4},
	ThreeOfAKind:  {30, 3},
	TwoPair:       {20, 2},
	Pair:          {10, 2},
	HighCard:      {5, 1},
}

// BaseValue returns the category's fixed base chips and mult.
func (h HandCategory) BaseValue() (float64, float64) {
	m := TypeMap[h]
	return m.Chips, m.Mult
}

// Classification is computed once per round from the played cards.
type Classification struct {
	Category HandCategory
	// Scoring is the subset of played cards taking part in per-card scoring.
	Scoring []Card
	// Counts is the ascending multiset of rank-group sizes of the played cards.
	Counts []int
	// Flush reports the flush rule over the played cards.
	Flush bool
}

// MaxGroup is the size of the largest rank group, 0 for no cards.
func (c Classification) MaxGroup() int {
	if len(c.Counts) == 0 {
		return 0
	}
	return c.Counts[len(c.Counts)-1]
}

type rankGroups struct {
	order  []Rank // first-seen order
	byRank map[Rank][]Card
}

func groupByRank(cards []Card) rankGroups {
	g := rankGroups{byRank: make(map[Rank][]Card)}
	for _, c := range cards {
		if _, ok := g.byRank[c.Rank]; !ok {
			g.order = append(g.order, c.Rank)
		}
		g.byRank[c.Rank] = append(g.byRank[c.Rank], c)
	}
	return g
}

func (g rankGroups) counts() []int {
	counts := make([]int, 0, len(g.order))
	for _, r := range g.order {
		counts = append(counts, len(g.byRank[r]))
	}
	sort.Ints(counts)
	return counts
}

// ofSize returns, in played order, every card belonging to a group of exactly n.
func ofSize(cards []Card, g rankGroups, n int) []Card {
	var out []Card
	for _, c := range cards {
		if len(g.byRank[c.Rank]) == n {
			out = append(out, c)
		}
	}
	return out
}

func groupsOfSize(g rankGroups, n int) int {
	total := 0
	for _, r := range g.order {
		if len(g.byRank[r]) == n {
			total++
		}
	}
	return total
}

func countsEqual(counts []int, want ...int) bool {
	if len(counts) != len(want) {
		return false
	}
	for i := range counts {
		if counts[i] != want[i] {
			return false
		}
	}
	return true
}

// IsFlush applies the flush rule: five cards whose non-wild members share one suit.
// Five wild cards are vacuously a flush.
func IsFlush(cards []Card) bool {
	if len(cards) != 5 {
		return false
	}
	var suit Suit
	for _, c := range cards {
		if c.IsWild() {
			continue
		}
		if suit == 0 {
			suit = c.Suit
			continue
		}
		if c.Suit != suit {
			return false
		}
	}
	return true
}

// IsStraight needs five distinct ranks forming a run; A-2-3-4-5 counts with the Ace low.
func IsStraight(cards []Card) bool {
	if len(cards) != 5 {
		return false
	}
	seen := make(map[int]bool, 5)
	values := make([]int, 0, 5)
	for _, c := range cards {
		v := c.Rank.Value()
		if seen[v] {
			return false
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Ints(values)

	if values[4]-values[0] == 4 {
		return true
	}
	wheel := []int{2, 3, 4, 5, 14}
	for i := range values {
		if values[i] != wheel[i] {
			return false
		}
	}
	return true
}

func allSameRank(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Rank != cards[0].Rank {
			return false
		}
	}
	return true
}

func highestCard(cards []Card) []Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return []Card{best}
}

// Classify checks from the strongest category down and returns the first match.
// It never fails: anything that matches nothing else is a HighCard.
func Classify(played []Card) Classification {
	groups := groupByRank(played)
	result := Classification{
		Counts: groups.counts(),
		Flush:  IsFlush(played),
	}
	if len(played) == 0 {
		result.Category = HighCard
		return result
	}

	all := make([]Card, len(played))
	copy(all, played)

	straight := IsStraight(played)

	switch {
	case result.Flush && allSameRank(played):
		result.Category, result.Scoring = FlushFive, all
	case result.Flush && countsEqual(result.Counts, 2, 3):
		result.Category, result.Scoring = FlushHouse, all
	case len(played) == 5 && allSameRank(played):
		result.Category, result.Scoring = FiveOfAKind, all
	case result.Flush && straight:
		result.Category, result.Scoring = StraightFlush, all
	case groupsOfSize(groups, 4) > 0:
		result.Category, result.Scoring = FourOfAKind, ofSize(played, groups, 4)
	case len(played) == 5 && countsEqual(result.Counts, 2, 3):
		result.Category, result.Scoring = FullHouse, all
	case result.Flush:
		result.Category, result.Scoring = Flush, all
	case straight:
		result.Category, result.Scoring = Straight, all
	case result.MaxGroup() == 3:
		result.Category, result.Scoring = ThreeOfAKind, ofSize(played, groups, 3)
	case groupsOfSize(groups, 2) == 2:
		result.Category, result.Scoring = TwoPair, ofSize(played, groups, 2)
	case groupsOfSize(groups, 2) == 1:
		result.Category, result.Scoring = Pair, ofSize(played, groups, 2)
	default:
		result.Category, result.Scoring = HighCard, highestCard(played)
	}
	return result
}
