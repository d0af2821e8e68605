package handlers

import (
	"Jokerscore/services/poker"
	"Jokerscore/services/redis"
	"Jokerscore/utils"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// Emitter is the part of *socket.Socket the handlers need.
type Emitter interface {
	Emit(ev string, args ...any) error
}

// DecodeRound turns the generic object received from socket.io into a Round.
func DecodeRound(arg any) (poker.Round, error) {
	var round poker.Round
	data, err := json.Marshal(arg)
	if err != nil {
		return round, fmt.Errorf("error converting round to JSON: %w", err)
	}
	if err := json.Unmarshal(data, &round); err != nil {
		return round, fmt.Errorf("error parsing round: %w", err)
	}
	return round, nil
}

// PlayHand scores the first argument and emits played_hand, or error on failure.
func PlayHand(client Emitter, db *gorm.DB, redisClient *redis.RedisClient, args ...any) {
	if len(args) < 1 {
		log.Printf("[HAND-ERROR] Missing round argument")
		client.Emit("error", gin.H{"error": "Missing round to play"})
		return
	}

	round, err := DecodeRound(args[0])
	if err != nil {
		log.Printf("[HAND-ERROR] %v", err)
		client.Emit("error", gin.H{"error": "Error processing round"})
		return
	}

	result, _, err := utils.ScoreRound(db, redisClient, round, false)
	if err != nil {
		if errors.Is(err, poker.ErrInvalidRound) {
			client.Emit("error", gin.H{"error": err.Error()})
			return
		}
		client.Emit("error", gin.H{"error": "Error scoring round"})
		return
	}

	client.Emit("played_hand", gin.H{
		"category": result.Category.String(),
		"chips":    result.Chips,
		"mult":     result.Mult,
		"score":    result.Score,
	})
}

// HandlePlayHand binds PlayHand to a connected client.
func HandlePlayHand(redisClient *redis.RedisClient, client *socket.Socket, db *gorm.DB) func(args ...any) {
	return func(args ...any) {
		log.Printf("[HAND] play_hand - Socket ID: %s, Args: %v", client.Id(), args)
		PlayHand(client, db, redisClient, args...)
	}
}
