package game_constants

import "time"

// History
const DEFAULT_HISTORY_LIMIT = 20
const MAX_HISTORY_LIMIT = 100

// Score cache
const DEFAULT_SCORE_CACHE_TTL = 24 * time.Hour

// Session
const SESSION_NAME = "jokerscore_session"
const SESSION_LAST_SCORE_KEY = "last_score"

// Context key set by the JWT middleware
const CONTEXT_SUBJECT_KEY = "subject"
