package socket_io

import (
	"Jokerscore/services/redis"
	"Jokerscore/services/socket_io/handlers"
	socketio_types "Jokerscore/services/socket_io/types"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	eio_log "github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on /socket.io/ of the router.
func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient, debug bool) {
	eio_log.DEBUG = debug
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: init the map, nil maps panic on write
	sio.Connections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		id := string(client.Id())

		(*socketio_types.SocketServer)(sio).AddConnection(id, client)
		log.Printf("[SOCKET] Socket %s connected, %d connections", id, (*socketio_types.SocketServer)(sio).ConnectionCount())

		// Score a round and receive the type of hand and the points scored
		client.On("play_hand", handlers.HandlePlayHand(redisClient, client, db))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(id, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	log.Println("[SOCKET] Socket server started")
}

// Stop closes the socket.io server.
func (sio *MySocketServer) Stop() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
