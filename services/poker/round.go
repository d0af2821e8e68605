package poker

import (
	"errors"
	"fmt"
)

const (
	MaxPlayedCards = 5
	MaxHeldCards   = 52
)

// ErrInvalidRound wraps every structural problem found by Round.Validate.
var ErrInvalidRound = errors.New("invalid round")

// Round is the decoded input of one scoring call.
type Round struct {
	CardsPlayed     []Card      `json:"cards_played" yaml:"cards_played"`
	CardsHeldInHand []Card      `json:"cards_held_in_hand" yaml:"cards_held_in_hand"`
	Jokers          []JokerCard `json:"jokers" yaml:"jokers"`
}

// Validate checks the structural preconditions the scorer relies on.
func (r Round) Validate() error {
	if len(r.CardsPlayed) == 0 {
		return fmt.Errorf("%w: no cards played", ErrInvalidRound)
	}
	if len(r.CardsPlayed) > MaxPlayedCards {
		return fmt.Errorf("%w: %d cards played, at most %d allowed", ErrInvalidRound, len(r.CardsPlayed), MaxPlayedCards)
	}
	if len(r.CardsHeldInHand) > MaxHeldCards {
		return fmt.Errorf("%w: %d cards held, at most %d allowed", ErrInvalidRound, len(r.CardsHeldInHand), MaxHeldCards)
	}
	if len(r.Jokers) > MaxJokers {
		return fmt.Errorf("%w: %d jokers, at most %d allowed", ErrInvalidRound, len(r.Jokers), MaxJokers)
	}
	for i, c := range r.CardsPlayed {
		if !c.Valid() {
			return fmt.Errorf("%w: played card %d is not a valid card", ErrInvalidRound, i)
		}
	}
	for i, c := range r.CardsHeldInHand {
		if !c.Valid() {
			return fmt.Errorf("%w: held card %d is not a valid card", ErrInvalidRound, i)
		}
	}
	for i, j := range r.Jokers {
		if !j.Kind.Valid() || j.Edition > Polychrome {
			return fmt.Errorf("%w: joker %d is not a valid joker", ErrInvalidRound, i)
		}
	}
	return nil
}

// Result of scoring a round.
type Result struct {
	Category     HandCategory `json:"category"`
	ScoringCards []Card       `json:"scoring_cards"`
	ActiveJokers []JokerCard  `json:"active_jokers"`
	Chips        float64      `json:"chips"`
	Mult         float64      `json:"mult"`
	Score        int64        `json:"score"`
	Steps        []Step       `json:"steps,omitempty"`
}

// Score validates the round, then classifies it, filters the jokers and accumulates,
// in that order and each exactly once.
func Score(r Round) (*Result, error) {
	return score(r, false)
}

// Explain is Score with the per-pass trace filled in.
func Explain(r Round) (*Result, error) {
	return score(r, true)
}

func score(r Round, explain bool) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	hand := Classify(r.CardsPlayed)
	active := hand.ActiveJokers(r.Jokers)

	result := &Result{
		Category:     hand.Category,
		ScoringCards: hand.Scoring,
		ActiveJokers: active,
	}
	if explain {
		result.Chips, result.Mult, result.Steps = AccumulateScoreTrace(hand.Category, hand.Scoring, r.CardsHeldInHand, active, len(r.Jokers))
	} else {
		result.Chips, result.Mult = AccumulateScore(hand.Category, hand.Scoring, r.CardsHeldInHand, active, len(r.Jokers))
	}
	result.Score = FinalScore(result.Chips, result.Mult)
	return result, nil
}
