package poker

import (
	"fmt"
	"math"
)

// Pass identifies one of the ordered accumulation passes.
type Pass int

const (
	PassBase Pass = iota
	PassScoringCards
	PassHeldCards
	PassJokerCounts
	PassJokerFlat
	PassJokerEditions
)

func (p Pass) String() string {
	switch p {
	case PassBase:
		return "base"
	case PassScoringCards:
		return "scoring cards"
	case PassHeldCards:
		return "held cards"
	case PassJokerCounts:
		return "joker counts"
	case PassJokerFlat:
		return "jokers"
	case PassJokerEditions:
		return "joker editions"
	default:
		return "?"
	}
}

// Step records one chips/mult mutation and the totals right after it.
type Step struct {
	Pass   Pass    `json:"pass"`
	Source string  `json:"source"`
	Effect string  `json:"effect"`
	Chips  float64 `json:"chips"`
	Mult   float64 `json:"mult"`
}

func (p Pass) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ScoreState is owned by a single accumulation; never share it across rounds.
type ScoreState struct {
	Chips float64
	Mult  float64

	trace   []Step
	tracing bool
}

func (s *ScoreState) record(pass Pass, source, effect string) {
	if !s.tracing {
		return
	}
	s.trace = append(s.trace, Step{Pass: pass, Source: source, Effect: effect, Chips: s.Chips, Mult: s.Mult})
}

func (s *ScoreState) addChips(pass Pass, source string, v float64) {
	s.Chips += v
	s.record(pass, source, fmt.Sprintf("+%g chips", v))
}

func (s *ScoreState) addMult(pass Pass, source string, v float64) {
	s.Mult += v
	s.record(pass, source, fmt.Sprintf("+%g mult", v))
}

func (s *ScoreState) timesMult(pass Pass, source string, v float64) {
	s.Mult *= v
	s.record(pass, source, fmt.Sprintf("x%g mult", v))
}

func (s *ScoreState) applyEdition(pass Pass, source string, ed Edition) {
	switch ed {
	case Foil:
		s.addChips(pass, source, 50)
	case Holographic:
		s.addMult(pass, source, 10)
	case Polychrome:
		s.timesMult(pass, source, 1.5)
	case NoEdition:
	}
}

// AccumulateScore runs the scoring passes and returns the final chips and mult.
func AccumulateScore(category HandCategory, scoring, held []Card, active []JokerCard, totalJokers int) (float64, float64) {
	state := accumulate(category, scoring, held, active, totalJokers, false)
	return state.Chips, state.Mult
}

// AccumulateScoreTrace is AccumulateScore plus the ordered list of mutations.
func AccumulateScoreTrace(category HandCategory, scoring, held []Card, active []JokerCard, totalJokers int) (float64, float64, []Step) {
	state := accumulate(category, scoring, held, active, totalJokers, true)
	return state.Chips, state.Mult, state.trace
}

// FinalScore floors the product; chips and mult are never rounded on their own.
func FinalScore(chips, mult float64) int64 {
	return int64(math.Floor(chips * mult))
}

func accumulate(category HandCategory, scoring, held []Card, active []JokerCard, totalJokers int, tracing bool) *ScoreState {
	chips, mult := category.BaseValue()
	s := &ScoreState{Chips: chips, Mult: mult, tracing: tracing}
	s.record(PassBase, category.String(), fmt.Sprintf("%g chips x %g mult", chips, mult))

	scoreCards(s, scoring, active)
	scoreHeld(s, held)
	scoreJokerCounts(s, held, active)
	scoreJokerFlat(s, scoring, held, active, totalJokers)
	scoreJokerEditions(s, active)
	return s
}

// Pass 1.
func scoreCards(s *ScoreState, scoring []Card, active []JokerCard) {
	// Photograph fires on the first face card of the round only.
	photographReady := true

	for _, card := range scoring {
		name := card.String()
		rankValue := float64(card.Rank.Value())

		switch card.Enhancement {
		case Bonus:
			s.addChips(PassScoringCards, name, rankValue+30)
		case Mult:
			s.addChips(PassScoringCards, name, rankValue)
			s.addMult(PassScoringCards, name, 4)
		case Glass:
			s.addChips(PassScoringCards, name, rankValue)
			s.timesMult(PassScoringCards, name, 2)
		default:
			// plain, Wild and Steel cards score their rank only
			s.addChips(PassScoringCards, name, rankValue)
		}

		s.applyEdition(PassScoringCards, name, card.Edition)

		for _, j := range active {
			source := j.Kind.String() + " on " + name
			switch j.Kind {
			case GreedyJoker, LustyJoker, WrathfulJoker, GluttonousJoker:
				if card.Suit == suitJokers[j.Kind] {
					s.addMult(PassScoringCards, source, 3)
				}
			case Fibonacci:
				switch card.Rank.Value() {
				case 2, 3, 5, 8, 11:
					s.addMult(PassScoringCards, source, 8)
				}
			case EvenSteven:
				switch card.Rank.Value() {
				case 2, 4, 6, 8, 10:
					s.addMult(PassScoringCards, source, 4)
				}
			case OddTodd:
				switch card.Rank.Value() {
				case 3, 5, 7, 9, 11:
					s.addMult(PassScoringCards, source, 4)
				}
			case ScaryFace:
				if card.Rank.IsFace() {
					s.addChips(PassScoringCards, source, 30)
				}
			case SmileyFace:
				if card.Rank.IsFace() {
					s.addMult(PassScoringCards, source, 5)
				}
			case Photograph:
				if card.Rank.IsFace() && photographReady {
					s.timesMult(PassScoringCards, source, 2)
					photographReady = false
				}
			}
		}
	}
}

// Pass 2.
func scoreHeld(s *ScoreState, held []Card) {
	for _, card := range held {
		if card.Enhancement == Steel {
			s.timesMult(PassHeldCards, card.String()+" (held)", 1.5)
		}
	}
}

// Pass 3.
func scoreJokerCounts(s *ScoreState, held []Card, active []JokerCard) {
	for _, j := range active {
		if j.Kind != Baron {
			continue
		}
		kings := 0
		for _, card := range held {
			if card.Rank == King {
				kings++
			}
		}
		if kings > 0 {
			s.timesMult(PassJokerCounts, j.Kind.String(), math.Pow(1.5, float64(kings)))
		}
	}
}

// Pass 4.
func scoreJokerFlat(s *ScoreState, scoring, held []Card, active []JokerCard, totalJokers int) {
	for _, j := range active {
		name := j.Kind.String()
		switch j.Kind {
		case Joker:
			s.addMult(PassJokerFlat, name, 4)
		case JollyJoker:
			s.addMult(PassJokerFlat, name, 8)
		case ZanyJoker:
			s.addMult(PassJokerFlat, name, 12)
		case MadJoker:
			s.addMult(PassJokerFlat, name, 10)
		case CrazyJoker:
			s.addMult(PassJokerFlat, name, 12)
		case DrollJoker:
			s.addMult(PassJokerFlat, name, 10)
		case SlyJoker:
			s.addChips(PassJokerFlat, name, 50)
		case WilyJoker:
			s.addChips(PassJokerFlat, name, 100)
		case CleverJoker:
			s.addChips(PassJokerFlat, name, 80)
		case DeviousJoker:
			s.addChips(PassJokerFlat, name, 100)
		case CraftyJoker:
			s.addChips(PassJokerFlat, name, 80)
		case AbstractJoker:
			s.addMult(PassJokerFlat, name, 3*float64(totalJokers))
		case RaisedFist:
			if len(held) > 0 {
				s.addMult(PassJokerFlat, name, 2*float64(held[len(held)-1].Rank.Value()))
			}
		case Blackboard:
			if allBlack(held) {
				s.timesMult(PassJokerFlat, name, 3)
			}
		case FlowerPot:
			if coversAllSuits(scoring) {
				s.timesMult(PassJokerFlat, name, 3)
			}
		}
	}
}

// Pass 5.
func scoreJokerEditions(s *ScoreState, active []JokerCard) {
	for _, j := range active {
		s.applyEdition(PassJokerEditions, j.String(), j.Edition)
	}
}

func allBlack(cards []Card) bool {
	for _, c := range cards {
		if !c.Suit.IsBlack() {
			return false
		}
	}
	return true
}

// coversAllSuits counts wild cards toward whichever suits are missing.
func coversAllSuits(cards []Card) bool {
	fixed := make(map[Suit]bool, len(AllSuits))
	wild := 0
	for _, c := range cards {
		if c.IsWild() {
			wild++
			continue
		}
		fixed[c.Suit] = true
	}
	return wild >= len(AllSuits)-len(fixed)
}
