package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		played  []string
		want    HandCategory
		scoring []string
	}{
		{"flush five", []string{"Q♥", "Q♥", "Q♥", "Q♥", "Q♥"}, FlushFive, []string{"Q♥", "Q♥", "Q♥", "Q♥", "Q♥"}},
		{"flush house", []string{"Q♥", "3♥", "Q♥", "3♥", "Q♥"}, FlushHouse, []string{"Q♥", "3♥", "Q♥", "3♥", "Q♥"}},
		{"five of a kind", []string{"7♠", "7♥", "7♦", "7♣", "7♠"}, FiveOfAKind, []string{"7♠", "7♥", "7♦", "7♣", "7♠"}},
		{"straight flush", []string{"9♣", "K♣", "10♣", "Q♣", "J♣"}, StraightFlush, []string{"9♣", "K♣", "10♣", "Q♣", "J♣"}},
		{"four of a kind with kicker", []string{"K♠", "K♥", "2♠", "K♦", "K♣"}, FourOfAKind, []string{"K♠", "K♥", "K♦", "K♣"}},
		{"four of a kind alone", []string{"5♠", "5♥", "5♦", "5♣"}, FourOfAKind, []string{"5♠", "5♥", "5♦", "5♣"}},
		{"full house", []string{"3♠", "9♦", "3♥", "9♣", "9♠"}, FullHouse, []string{"3♠", "9♦", "3♥", "9♣", "9♠"}},
		{"flush", []string{"2♦", "5♦", "9♦", "J♦", "K♦"}, Flush, []string{"2♦", "5♦", "9♦", "J♦", "K♦"}},
		{"straight", []string{"10♠", "J♥", "Q♦", "K♣", "A♠"}, Straight, []string{"10♠", "J♥", "Q♦", "K♣", "A♠"}},
		{"three of a kind", []string{"8♠", "2♣", "8♥", "8♦"}, ThreeOfAKind, []string{"8♠", "8♥", "8♦"}},
		{"two pair", []string{"4♠", "J♦", "9♠", "4♥", "J♣"}, TwoPair, []string{"4♠", "J♦", "4♥", "J♣"}},
		{"pair", []string{"6♠", "A♦", "6♥"}, Pair, []string{"6♠", "6♥"}},
		{"high card", []string{"2♠", "9♥", "K♦", "5♣"}, HighCard, []string{"K♦"}},
		{"single card", []string{"A♠ Bonus"}, HighCard, []string{"A♠ Bonus"}},
		{"four suited cards are no flush", []string{"2♥", "7♥", "9♥", "J♥"}, HighCard, []string{"J♥"}},
		{"ace cannot wrap", []string{"K♠", "A♥", "2♦", "3♣", "4♠"}, HighCard, []string{"A♥"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(cards(t, tt.played...))
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, cards(t, tt.scoring...), got.Scoring)
		})
	}
}

func TestClassifyWheel(t *testing.T) {
	got := Classify(cards(t, "A♠", "2♥", "3♦", "4♣", "5♠"))
	assert.Equal(t, Straight, got.Category)

	got = Classify(cards(t, "3♠", "A♠", "5♠", "2♠", "4♠"))
	assert.Equal(t, StraightFlush, got.Category)
}

func TestClassifyWildFlush(t *testing.T) {
	got := Classify(cards(t, "2♥", "7♥", "9♥", "J♠ Wild", "K♥"))
	assert.Equal(t, Flush, got.Category)
	assert.True(t, got.Flush)

	// every card wild: vacuously a flush
	got = Classify(cards(t, "2♠ Wild", "7♥ Wild", "9♦ Wild", "J♣ Wild", "K♥ Wild"))
	assert.Equal(t, Flush, got.Category)

	got = Classify(cards(t, "2♥", "7♥", "9♦", "J♠ Wild", "K♥"))
	assert.Equal(t, HighCard, got.Category)
	assert.False(t, got.Flush)
}

func TestClassifyPrecedence(t *testing.T) {
	// five suited queens are also a flush and a five of a kind
	got := Classify(cards(t, "Q♥", "Q♥", "Q♥", "Q♥", "Q♥"))
	assert.Equal(t, FlushFive, got.Category)

	// a suited full house is also a flush
	got = Classify(cards(t, "Q♥", "Q♥", "Q♥", "3♥", "3♥"))
	assert.Equal(t, FlushHouse, got.Category)

	// four suited nines and a suited kicker are still four of a kind
	got = Classify(cards(t, "9♥", "9♥ Wild", "9♥", "9♥", "2♥"))
	assert.Equal(t, FourOfAKind, got.Category)
}

func TestClassifyCounts(t *testing.T) {
	assert.Equal(t, []int{1, 2, 2}, Classify(cards(t, "4♠", "J♦", "9♠", "4♥", "J♣")).Counts)
	assert.Equal(t, []int{2, 2}, Classify(cards(t, "4♠", "J♦", "4♥", "J♣")).Counts)
	assert.Equal(t, []int{1, 4}, Classify(cards(t, "K♠", "K♥", "2♠", "K♦", "K♣")).Counts)
	assert.Equal(t, 4, Classify(cards(t, "K♠", "K♥", "2♠", "K♦", "K♣")).MaxGroup())
}

func TestClassifyIsIdempotent(t *testing.T) {
	played := cards(t, "4♠", "J♦", "9♠", "4♥", "J♣")
	before := append([]Card(nil), played...)

	first := Classify(played)
	second := Classify(played)

	assert.Equal(t, first, second)
	assert.Equal(t, before, played, "played cards must not be reordered")
}

func TestClassifyScoringDrawnFromPlayed(t *testing.T) {
	hands := [][]string{
		{"A♠"},
		{"2♠", "2♥"},
		{"K♠", "K♥", "2♠", "K♦", "K♣"},
		{"3♠", "A♠", "5♠", "2♠", "4♠"},
		{"2♠", "9♥", "K♦", "5♣", "7♦"},
		{"8♠", "2♣", "8♥", "8♦", "J♠"},
	}
	for _, hand := range hands {
		played := cards(t, hand...)
		got := Classify(played)
		assert.NotEmpty(t, got.Scoring)
		for _, c := range got.Scoring {
			assert.Contains(t, played, c)
		}
	}
}

func TestClassifyNoCards(t *testing.T) {
	got := Classify(nil)
	assert.Equal(t, HighCard, got.Category)
	assert.Empty(t, got.Scoring)
}

func TestHandCategoryText(t *testing.T) {
	for c := HighCard; c <= FlushFive; c++ {
		text, err := c.MarshalText()
		assert.NoError(t, err)

		var back HandCategory
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)

		_, ok := TypeMap[c]
		assert.True(t, ok, c.String())
	}
	var h HandCategory
	assert.Error(t, h.UnmarshalText([]byte("Royal Flush")))
}
