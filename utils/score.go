package utils

import (
	"Jokerscore/services/poker"
	"Jokerscore/services/redis"
	"log"

	"gorm.io/gorm"
)

// ScoreRound scores a round, going through the Redis cache when rc is set and
// recording the result in the history when db is set. The bool reports a cache hit.
// Explain requests skip the cache lookup since cached results carry no trace.
func ScoreRound(db *gorm.DB, rc *redis.RedisClient, round poker.Round, explain bool) (*poker.Result, bool, error) {
	key := poker.RoundKey(round)

	var result *poker.Result
	cached := false

	if rc != nil && !explain {
		hit, err := rc.GetRoundScore(key)
		if err != nil {
			log.Printf("[CACHE-ERROR] Error reading cached score %s: %v", key, err)
			if err := rc.DeleteRoundScore(key); err != nil {
				log.Printf("[CACHE-ERROR] Error dropping cached score %s: %v", key, err)
			}
		}
		if hit != nil {
			result, cached = hit, true
		}
	}

	if result == nil {
		var err error
		if explain {
			result, err = poker.Explain(round)
		} else {
			result, err = poker.Score(round)
		}
		if err != nil {
			log.Printf("[SCORE-ERROR] %v", err)
			return nil, false, err
		}

		if rc != nil {
			if err := rc.SaveRoundScore(key, result); err != nil {
				log.Printf("[CACHE-ERROR] Error caching score %s: %v", key, err)
			}
		}
	}

	if db != nil {
		if _, err := SaveScoredRound(db, round, result); err != nil {
			log.Printf("[SCORE-ERROR] %v", err)
		}
	}

	log.Printf("[SCORE] %s scored %d (%g x %g), cached: %v",
		result.Category, result.Score, result.Chips, result.Mult, cached)
	return result, cached, nil
}
