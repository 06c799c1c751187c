package services

import (
	"encoding/json"
	"net/http"

	"github.com/sudokulive/sudoku-backend/game"
	"github.com/sudokulive/sudoku-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// roomMsg is an inbound frame on the room-mode endpoint.
type roomMsg struct {
	Action string `json:"action"`
	Name   string `json:"name"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Value  int    `json:"value"`
	Score  int    `json:"score"`
}

// RoomWebSocket upgrades the connection and dispatches room-mode
// actions into the coordinator. The pin comes from the path; the
// connection ID is an opaque fresh handle.
func RoomWebSocket(hub *Hub, rooms *game.RoomCoordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		pin := c.Param("pin")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warnf("[ws] upgrade error: %v", err)
			return
		}

		client := &Client{
			id:           uuid.NewString(),
			conn:         conn,
			hub:          hub,
			send:         make(chan []byte, 32),
			onDisconnect: rooms.HandleDisconnect,
		}
		client.onMessage = func(cl *Client, msg []byte) {
			dispatchRoomMsg(rooms, pin, cl.id, msg)
		}

		logger.Infof("[ws] room client %s connected to %s", client.id, pin)
		hub.addClient(client)
	}
}

func dispatchRoomMsg(rooms *game.RoomCoordinator, pin, connID string, msg []byte) {
	var m roomMsg
	if err := json.Unmarshal(msg, &m); err != nil {
		logger.Warnf("[client %s] invalid message: %v", connID, err)
		return
	}

	switch m.Action {
	case "join":
		rooms.JoinRoom(pin, m.Name, connID)
	case "leave":
		rooms.LeaveRoom(pin, connID)
	case "start":
		rooms.StartGame(pin, connID)
	case "update_cell":
		rooms.UpdateCell(pin, connID, m.Row, m.Col, m.Value)
	case "update_score":
		rooms.UpdateScore(pin, connID, m.Score)
	case "check_status":
		rooms.CheckGameStatus(pin, connID)
	case "request_board":
		rooms.RequestBoard(pin, connID)
	default:
		logger.Warnf("[client %s] unknown action: %q", connID, m.Action)
	}
}
