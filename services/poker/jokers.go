package poker

import (
	"fmt"
	"strings"
)

type JokerKind int

const (
	Joker JokerKind = iota + 1
	JollyJoker
	ZanyJoker
	MadJoker
	CrazyJoker
	DrollJoker
	SlyJoker
	WilyJoker
	CleverJoker
	DeviousJoker
	CraftyJoker
	AbstractJoker
	RaisedFist
	Blackboard
	FlowerPot
	Baron
	GreedyJoker
	LustyJoker
	WrathfulJoker
	GluttonousJoker
	Fibonacci
	EvenSteven
	OddTodd
	ScaryFace
	SmileyFace
	Photograph
)

// MaxJokers is the number of joker slots a round may carry.
const MaxJokers = 10

var jokerNames = map[JokerKind]string{
	Joker:           "Joker",
	JollyJoker:      "Jolly Joker",
	ZanyJoker:       "Zany Joker",
	MadJoker:        "Mad Joker",
	CrazyJoker:      "Crazy Joker",
	DrollJoker:      "Droll Joker",
	SlyJoker:        "Sly Joker",
	WilyJoker:       "Wily Joker",
	CleverJoker:     "Clever Joker",
	DeviousJoker:    "Devious Joker",
	CraftyJoker:     "Crafty Joker",
	AbstractJoker:   "Abstract Joker",
	RaisedFist:      "Raised Fist",
	Blackboard:      "Blackboard",
	FlowerPot:       "Flower Pot",
	Baron:           "Baron",
	GreedyJoker:     "Greedy Joker",
	LustyJoker:      "Lusty Joker",
	WrathfulJoker:   "Wrathful Joker",
	GluttonousJoker: "Gluttonous Joker",
	Fibonacci:       "Fibonacci",
	EvenSteven:      "Even Steven",
	OddTodd:         "Odd Todd",
	ScaryFace:       "Scary Face",
	SmileyFace:      "Smiley Face",
	Photograph:      "Photograph",
}

func (k JokerKind) Valid() bool {
	_, ok := jokerNames[k]
	return ok
}

func (k JokerKind) String() string {
	if name, ok := jokerNames[k]; ok {
		return name
	}
	return "?"
}

func ParseJokerKind(s string) (JokerKind, error) {
	for kind, name := range jokerNames {
		if strings.EqualFold(name, s) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown joker %q", s)
}

// suitJokers add +3 mult per scoring card of their suit.
var suitJokers = map[JokerKind]Suit{
	GreedyJoker:     Diamonds,
	LustyJoker:      Hearts,
	WrathfulJoker:   Spades,
	GluttonousJoker: Clubs,
}

// JokerCard is an owned joker. Ownership order is the order jokers fire in.
type JokerCard struct {
	Kind    JokerKind
	Edition Edition
}

func (j JokerCard) String() string {
	if j.Edition == NoEdition {
		return j.Kind.String()
	}
	return j.Kind.String() + " " + j.Edition.String()
}

func (j JokerCard) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

func (j *JokerCard) UnmarshalText(text []byte) error {
	parsed, err := ParseJokerCard(string(text))
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}

// ParseJokerCard reads "<joker name>[ <edition>]", e.g. "Greedy Joker Foil".
func ParseJokerCard(s string) (JokerCard, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return JokerCard{}, fmt.Errorf("invalid joker %q", s)
	}
	if len(fields) > 1 {
		if ed, err := ParseEdition(fields[len(fields)-1]); err == nil {
			kind, err := ParseJokerKind(strings.Join(fields[:len(fields)-1], " "))
			if err != nil {
				return JokerCard{}, err
			}
			return JokerCard{Kind: kind, Edition: ed}, nil
		}
	}
	kind, err := ParseJokerKind(strings.Join(fields, " "))
	if err != nil {
		return JokerCard{}, err
	}
	return JokerCard{Kind: kind}, nil
}

// isEligible answers whether a joker is considered at all for this hand shape.
// Jokers without a hand-shape precondition are always eligible; their own
// per-card or per-round conditions are checked while accumulating.
func isEligible(kind JokerKind, category HandCategory, counts []int, flush bool) bool {
	maxGroup := 0
	if len(counts) > 0 {
		maxGroup = counts[len(counts)-1]
	}

	switch kind {
	case Joker, AbstractJoker:
		return true
	case JollyJoker, SlyJoker:
		return maxGroup >= 2 && maxGroup <= 5
	case ZanyJoker, WilyJoker:
		return maxGroup >= 3 && maxGroup <= 5
	case MadJoker, CleverJoker:
		return countsEqual(counts, 2, 2) || countsEqual(counts, 1, 2, 2)
	case CrazyJoker, DeviousJoker:
		return category == Straight || category == StraightFlush
	case DrollJoker, CraftyJoker:
		return flush
	case RaisedFist, Blackboard, FlowerPot, Baron,
		GreedyJoker, LustyJoker, WrathfulJoker, GluttonousJoker,
		Fibonacci, EvenSteven, OddTodd, ScaryFace, SmileyFace, Photograph:
		return true
	default:
		return false
	}
}

// FilterActiveJokers keeps, in ownership order, the jokers eligible for this hand.
func FilterActiveJokers(category HandCategory, counts []int, flush bool, owned []JokerCard) []JokerCard {
	active := make([]JokerCard, 0, len(owned))
	for _, j := range owned {
		if isEligible(j.Kind, category, counts, flush) {
			active = append(active, j)
		}
	}
	return active
}

// ActiveJokers is FilterActiveJokers over a Classification.
func (c Classification) ActiveJokers(owned []JokerCard) []JokerCard {
	return FilterActiveJokers(c.Category, c.Counts, c.Flush, owned)
}
