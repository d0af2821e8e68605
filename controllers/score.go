package controllers

import (
	game_constants "Jokerscore/constants/game"
	"Jokerscore/services/poker"
	"Jokerscore/services/redis"
	"Jokerscore/utils"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ScoreResponse is a scored round plus whether it came from the cache
type ScoreResponse struct {
	*poker.Result
	Cached bool `json:"cached"`
}

// @Summary Scores a round
// @Description Classifies the played cards, filters the jokers and runs the scoring passes.
// @Description Cards use their text form, e.g. "K♠", "A♥ Bonus Foil"; jokers e.g. "Greedy Joker Polychrome".
// @Tags score
// @Accept json
// @Produce json
// @Param round body poker.Round true "Round to score"
// @Param explain query bool false "Include the per-pass trace"
// @Success 200 {object} ScoreResponse
// @Failure 400 {object} object{error=string}
// @Router /score [post]
func ScoreRound(db *gorm.DB, redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var round poker.Round
		if err := c.ShouldBindJSON(&round); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round: " + err.Error()})
			return
		}
		explain := c.Query("explain") == "true"

		result, cached, err := utils.ScoreRound(db, redisClient, round, explain)
		if err != nil {
			if errors.Is(err, poker.ErrInvalidRound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error scoring round"})
			return
		}

		rememberLastScore(c, result)

		c.JSON(http.StatusOK, ScoreResponse{Result: result, Cached: cached})
	}
}

// The session keeps the trace-free result as JSON, cookies are small.
func rememberLastScore(c *gin.Context, result *poker.Result) {
	stored := *result
	stored.Steps = nil
	data, err := json.Marshal(&stored)
	if err != nil {
		log.Printf("[SESSION-ERROR] Error marshaling last score: %v", err)
		return
	}

	session := sessions.Default(c)
	session.Set(game_constants.SESSION_LAST_SCORE_KEY, string(data))
	if err := session.Save(); err != nil {
		log.Printf("[SESSION-ERROR] Error saving session: %v", err)
	}
}

// @Summary Last round scored by this client
// @Description Returns the last result stored in the session cookie
// @Tags score
// @Produce json
// @Success 200 {object} poker.Result
// @Failure 404 {object} object{error=string}
// @Router /last [get]
func LastScore(c *gin.Context) {
	session := sessions.Default(c)
	data, ok := session.Get(game_constants.SESSION_LAST_SCORE_KEY).(string)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No round scored yet"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(data))
}
