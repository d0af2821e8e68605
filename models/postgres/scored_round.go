package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'ScoredRound' is one scored round kept for the history endpoints.
 * Round holds the submitted round as JSON, RoundKey its hash.
 */
type ScoredRound struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	RoundKey  string         `gorm:"size:64;not null;index:idx_scored_rounds_key" json:"round_key"`
	Round     datatypes.JSON `json:"round" swaggertype:"object"`
	Category  string         `gorm:"size:32;not null" json:"category"`
	Chips     float64        `json:"chips"`
	Mult      float64        `json:"mult"`
	Score     int64          `gorm:"index:idx_scored_rounds_score" json:"score"`
	CreatedAt time.Time      `json:"created_at"`
}
