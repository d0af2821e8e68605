package utils

import (
	"Jokerscore/services/poker"
	"Jokerscore/services/redis"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var scoredRoundColumns = []string{"id", "round_key", "round", "category", "chips", "mult", "score", "created_at"}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func newRedis(t *testing.T) (*redis.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc, err := redis.InitRedis(mr.Addr(), 0, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { redis.CloseRedis(rc) })
	return rc, mr
}

func fourKings(t *testing.T) poker.Round {
	t.Helper()
	round, err := poker.ParseRound([]byte(`cards_played: ["K♠", "K♥", "K♦", "K♣", "2♠"]`))
	require.NoError(t, err)
	return round
}

func expectInsert(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "scored_rounds"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectCommit()
}

func TestSaveScoredRound(t *testing.T) {
	db, mock := newMockDB(t)
	round := fourKings(t)
	result, err := poker.Score(round)
	require.NoError(t, err)

	expectInsert(mock, 7)

	row, err := SaveScoredRound(db, round, result)
	require.NoError(t, err)
	assert.Equal(t, uint(7), row.ID)
	assert.Equal(t, "Four of a Kind", row.Category)
	assert.Equal(t, int64(784), row.Score)
	assert.Equal(t, poker.RoundKey(round), row.RoundKey)
	assert.JSONEq(t, string(round.ToJSON()), string(row.Round))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveScoredRoundError(t *testing.T) {
	db, mock := newMockDB(t)
	round := fourKings(t)
	result, err := poker.Score(round)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "scored_rounds"`)).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err = SaveScoredRound(db, round, result)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScoredRound(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "scored_rounds"`)).
		WillReturnRows(sqlmock.NewRows(scoredRoundColumns).
			AddRow(3, "abc", `{"cards_played":["A♠"]}`, "High Card", 19.0, 1.0, 19, now))

	row, err := GetScoredRound(db, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), row.ID)
	assert.Equal(t, "High Card", row.Category)
	assert.Equal(t, int64(19), row.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetScoredRoundNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "scored_rounds"`)).
		WillReturnRows(sqlmock.NewRows(scoredRoundColumns))

	_, err := GetScoredRound(db, 42)
	assert.ErrorIs(t, err, ErrRoundNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScoredRounds(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "scored_rounds" ORDER BY created_at desc`)).
		WillReturnRows(sqlmock.NewRows(scoredRoundColumns).
			AddRow(2, "b", `{}`, "Pair", 32.0, 2.0, 64, now).
			AddRow(1, "a", `{}`, "High Card", 19.0, 1.0, 19, now.Add(-time.Minute)))

	rows, err := ListScoredRounds(db, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(2), rows[0].ID)
	assert.Equal(t, uint(1), rows[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreRoundUsesCache(t *testing.T) {
	rc, _ := newRedis(t)
	round := fourKings(t)

	first, cached, err := ScoreRound(nil, rc, round, false)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, int64(784), first.Score)

	second, cached, err := ScoreRound(nil, rc, round, false)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first, second)

	explained, cached, err := ScoreRound(nil, rc, round, true)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.NotEmpty(t, explained.Steps)
}

func TestScoreRoundRecordsHistory(t *testing.T) {
	db, mock := newMockDB(t)
	expectInsert(mock, 1)

	result, cached, err := ScoreRound(db, nil, fourKings(t), false)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, int64(784), result.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreRoundInvalid(t *testing.T) {
	rc, mr := newRedis(t)

	_, _, err := ScoreRound(nil, rc, poker.Round{}, false)
	assert.ErrorIs(t, err, poker.ErrInvalidRound)
	assert.Empty(t, mr.Keys())
}

func TestScoreRoundDropsCorruptCacheEntry(t *testing.T) {
	rc, mr := newRedis(t)
	round := fourKings(t)
	require.NoError(t, mr.Set("score:"+poker.RoundKey(round), "{not json"))

	result, cached, err := ScoreRound(nil, rc, round, false)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, int64(784), result.Score)

	again, cached, err := ScoreRound(nil, rc, round, false)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, result.Score, again.Score)
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(), ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("boom"))
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
