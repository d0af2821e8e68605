package handlers

import (
	"Jokerscore/services/redis"
	socketio_types "Jokerscore/services/socket_io/types"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emitted struct {
	event string
	args  []any
}

type recorder struct {
	events []emitted
}

func (r *recorder) Emit(ev string, args ...any) error {
	r.events = append(r.events, emitted{event: ev, args: args})
	return nil
}

// socket.io hands us decoded JSON, so the round arrives as a generic map
func roundArg(played ...any) map[string]any {
	return map[string]any{
		"cards_played":       played,
		"cards_held_in_hand": []any{"K♠ Steel"},
		"jokers":             []any{"Crazy Joker", "Baron Holographic"},
	}
}

func TestDecodeRound(t *testing.T) {
	round, err := DecodeRound(roundArg("10♥", "J♥", "Q♥", "K♥", "A♥ Foil"))
	require.NoError(t, err)
	assert.Len(t, round.CardsPlayed, 5)
	assert.Len(t, round.CardsHeldInHand, 1)
	assert.Len(t, round.Jokers, 2)

	_, err = DecodeRound(roundArg("1♥"))
	assert.Error(t, err)

	_, err = DecodeRound(func() {})
	assert.Error(t, err)
}

func TestPlayHand(t *testing.T) {
	client := &recorder{}

	PlayHand(client, nil, nil, roundArg("10♥", "J♥", "Q♥", "K♥", "A♥ Foil"))

	require.Len(t, client.events, 1)
	assert.Equal(t, "played_hand", client.events[0].event)
	assert.Equal(t, gin.H{
		"category": "Straight Flush",
		"chips":    210.0,
		"mult":     40.0,
		"score":    int64(8400),
	}, client.events[0].args[0])
}

func TestPlayHandCached(t *testing.T) {
	mr := miniredis.RunT(t)
	rc, err := redis.InitRedis(mr.Addr(), 0, time.Hour)
	require.NoError(t, err)
	defer redis.CloseRedis(rc)

	client := &recorder{}
	PlayHand(client, nil, rc, roundArg("10♥", "J♥", "Q♥", "K♥", "A♥ Foil"))
	PlayHand(client, nil, rc, roundArg("10♥", "J♥", "Q♥", "K♥", "A♥ Foil"))

	require.Len(t, client.events, 2)
	assert.Equal(t, client.events[0], client.events[1])
	assert.Len(t, mr.Keys(), 1)
}

func TestPlayHandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{"no arguments", nil},
		{"bad card", []any{roundArg("Z♥")}},
		{"no cards", []any{roundArg()}},
		{"not an object", []any{"royal flush"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &recorder{}
			PlayHand(client, nil, nil, tt.args...)

			require.Len(t, client.events, 1)
			assert.Equal(t, "error", client.events[0].event)
			assert.Contains(t, client.events[0].args[0], "error")
		})
	}
}

func TestHandleDisconnecting(t *testing.T) {
	sio := socketio_types.NewSocketServer()
	sio.AddConnection("abc", nil)

	HandleDisconnecting("abc", sio)()

	assert.Equal(t, 0, sio.ConnectionCount())
}
