package poker

import (
	"fmt"
	"strings"
)

// Rank of a card. The numeric value doubles as straight position and chip value.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Value returns 2..14 (Ace high).
func (r Rank) Value() int {
	return int(r)
}

func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return fmt.Sprintf("%d", int(r))
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}

// Suit s (spades), c (clubs), d (diamonds), h (hearts)
type Suit uint8

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// AllSuits in catalog order.
var AllSuits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) IsBlack() bool {
	return s == Clubs || s == Spades
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "♣", "c", "clubs":
		return Clubs, nil
	case "♦", "d", "diamonds":
		return Diamonds, nil
	case "♥", "h", "hearts":
		return Hearts, nil
	case "♠", "s", "spades":
		return Spades, nil
	}
	return 0, fmt.Errorf("unknown suit %q", s)
}

// Enhancement is an optional per-card modifier. NoEnhancement is the zero value.
type Enhancement uint8

const (
	NoEnhancement Enhancement = iota
	Bonus
	Mult
	Wild
	Glass
	Steel
)

func (e Enhancement) String() string {
	switch e {
	case NoEnhancement:
		return ""
	case Bonus:
		return "Bonus"
	case Mult:
		return "Mult"
	case Wild:
		return "Wild"
	case Glass:
		return "Glass"
	case Steel:
		return "Steel"
	default:
		return "?"
	}
}

func ParseEnhancement(s string) (Enhancement, error) {
	switch s {
	case "Bonus":
		return Bonus, nil
	case "Mult":
		return Mult, nil
	case "Wild":
		return Wild, nil
	case "Glass":
		return Glass, nil
	case "Steel":
		return Steel, nil
	}
	return NoEnhancement, fmt.Errorf("unknown enhancement %q", s)
}

// Edition is shared by cards and joker cards. NoEdition is the zero value.
type Edition uint8

const (
	NoEdition Edition = iota
	Foil
	Holographic
	Polychrome
)

func (e Edition) String() string {
	switch e {
	case NoEdition:
		return ""
	case Foil:
		return "Foil"
	case Holographic:
		return "Holographic"
	case Polychrome:
		return "Polychrome"
	default:
		return "?"
	}
}

func ParseEdition(s string) (Edition, error) {
	switch s {
	case "Foil":
		return Foil, nil
	case "Holographic":
		return Holographic, nil
	case "Polychrome":
		return Polychrome, nil
	}
	return NoEdition, fmt.Errorf("unknown edition %q", s)
}

// Card is a value type; scoring only ever reads it.
type Card struct {
	Rank        Rank
	Suit        Suit
	Enhancement Enhancement
	Edition     Edition
}

// NewCard creates a plain card, rejecting ranks and suits outside the catalog.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func (c Card) IsWild() bool {
	return c.Enhancement == Wild
}

func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid() && c.Enhancement <= Steel && c.Edition <= Polychrome
}

// String renders the text form, e.g. "A♥ Bonus Foil".
func (c Card) String() string {
	parts := []string{c.Rank.String() + c.Suit.String()}
	if c.Enhancement != NoEnhancement {
		parts = append(parts, c.Enhancement.String())
	}
	if c.Edition != NoEdition {
		parts = append(parts, c.Edition.String())
	}
	return strings.Join(parts, " ")
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard reads "<rank><suit>[ <enhancement>][ <edition>]".
func ParseCard(s string) (Card, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 3 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rank, suit, err := splitRankSuit(fields[0])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	card := Card{Rank: rank, Suit: suit}

	for _, field := range fields[1:] {
		if enh, err := ParseEnhancement(field); err == nil && card.Enhancement == NoEnhancement && card.Edition == NoEdition {
			card.Enhancement = enh
			continue
		}
		if ed, err := ParseEdition(field); err == nil && card.Edition == NoEdition {
			card.Edition = ed
			continue
		}
		return Card{}, fmt.Errorf("invalid card %q: unexpected %q", s, field)
	}
	return card, nil
}

// splitRankSuit separates "10♥" / "Kd" style tokens; the suit is the last rune.
func splitRankSuit(token string) (Rank, Suit, error) {
	runes := []rune(token)
	if len(runes) < 2 {
		return 0, 0, fmt.Errorf("token %q too short", token)
	}
	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return 0, 0, err
	}
	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return 0, 0, err
	}
	return rank, suit, nil
}
