package handlers

import (
	socketio_types "Jokerscore/services/socket_io/types"
	"log"
)

// HandleDisconnecting removes the socket from the connection map
func HandleDisconnecting(id string, sio *socketio_types.SocketServer) func(args ...any) {
	return func(args ...any) {
		sio.RemoveConnection(id)
		log.Printf("[DISCONNECT] Socket %s left, %d connections remain", id, sio.ConnectionCount())
	}
}
