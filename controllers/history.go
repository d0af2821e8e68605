package controllers

import (
	game_constants "Jokerscore/constants/game"
	"Jokerscore/utils"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Lists the most recently scored rounds
// @Tags history
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param limit query int false "Maximum number of rounds (default 20, max 100)"
// @Success 200 {array} postgres.ScoredRound
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Failure 503 {object} object{error=string}
// @Router /auth/rounds [get]
// @Security ApiKeyAuth
func ListRounds(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not configured"})
			return
		}

		limit := game_constants.DEFAULT_HISTORY_LIMIT
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = min(n, game_constants.MAX_HISTORY_LIMIT)
		}

		rounds, err := utils.ListScoredRounds(db, limit)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing rounds"})
			return
		}
		c.JSON(http.StatusOK, rounds)
	}
}

// @Summary Gives a scored round by id
// @Tags history
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param id path int true "Round id"
// @Success 200 {object} postgres.ScoredRound
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Failure 503 {object} object{error=string}
// @Router /auth/rounds/{id} [get]
// @Security ApiKeyAuth
func GetRound(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not configured"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round id"})
			return
		}

		round, err := utils.GetScoredRound(db, uint(id))
		if err != nil {
			if errors.Is(err, utils.ErrRoundNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Round not found"})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting round"})
			return
		}
		c.JSON(http.StatusOK, round)
	}
}
