package utils

import (
	"Jokerscore/models/postgres"
	"Jokerscore/services/poker"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrRoundNotFound = errors.New("scored round not found")

// SaveScoredRound persists a round and its result
func SaveScoredRound(db *gorm.DB, round poker.Round, result *poker.Result) (*postgres.ScoredRound, error) {
	row := postgres.ScoredRound{
		RoundKey: poker.RoundKey(round),
		Round:    datatypes.JSON(round.ToJSON()),
		Category: result.Category.String(),
		Chips:    result.Chips,
		Mult:     result.Mult,
		Score:    result.Score,
	}
	if err := db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("error saving scored round: %w", err)
	}
	return &row, nil
}

// GetScoredRound returns ErrRoundNotFound when no row has the id
func GetScoredRound(db *gorm.DB, id uint) (*postgres.ScoredRound, error) {
	var row postgres.ScoredRound
	result := db.Where("id = ?", id).First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("error getting scored round %d: %w", id, result.Error)
	}
	return &row, nil
}

// ListScoredRounds returns the most recent rounds first
func ListScoredRounds(db *gorm.DB, limit int) ([]postgres.ScoredRound, error) {
	var rows []postgres.ScoredRound
	err := db.Order("created_at desc").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("error listing scored rounds: %w", err)
	}
	return rows, nil
}
