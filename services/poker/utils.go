package poker

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// ParseRound decodes a round description. YAML is a superset of JSON, so both work.
func ParseRound(data []byte) (Round, error) {
	var round Round
	if err := yaml.Unmarshal(data, &round); err != nil {
		return Round{}, fmt.Errorf("error parsing round: %w", err)
	}
	return round, nil
}

// Marshal the round for storage. Missing lists encode as [] so that an omitted
// and an empty list produce the same document.
func (r Round) ToJSON() json.RawMessage {
	if r.CardsPlayed == nil {
		r.CardsPlayed = []Card{}
	}
	if r.CardsHeldInHand == nil {
		r.CardsHeldInHand = []Card{}
	}
	if r.Jokers == nil {
		r.Jokers = []JokerCard{}
	}
	data, _ := json.Marshal(r)
	return data
}

// RoundKey identifies a round by the hash of its canonical JSON form. Two rounds with
// the same cards and jokers in the same order share a key.
func RoundKey(r Round) string {
	sum := blake2b.Sum256(r.ToJSON())
	return hex.EncodeToString(sum[:])
}
