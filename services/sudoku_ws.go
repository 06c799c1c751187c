package services

import (
	"encoding/json"

	"github.com/sudokulive/sudoku-backend/game"
	"github.com/sudokulive/sudoku-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sudokuMsg is an inbound frame on the shared-board endpoint.
type sudokuMsg struct {
	Action string `json:"action"`
	Name   string `json:"name"`
	Board  []int  `json:"board"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Value  int    `json:"value"`
	Score  int    `json:"score"`
}

// SudokuWebSocket upgrades the connection and dispatches shared-board
// actions into the coordinator.
func SudokuWebSocket(hub *Hub, sudoku *game.SudokuCoordinator) gin.HandlerFunc {
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
			onDisconnect: sudoku.HandleDisconnect,
		}
		client.onMessage = func(cl *Client, msg []byte) {
			dispatchSudokuMsg(sudoku, pin, cl.id, msg)
		}

		logger.Infof("[ws] sudoku client %s connected to %s", client.id, pin)
		hub.addClient(client)
	}
}

func dispatchSudokuMsg(sudoku *game.SudokuCoordinator, pin, connID string, msg []byte) {
	var m sudokuMsg
	if err := json.Unmarshal(msg, &m); err != nil {
		logger.Warnf("[client %s] invalid message: %v", connID, err)
		return
	}

	switch m.Action {
	case "join":
		sudoku.JoinGame(pin, m.Name, connID)
	case "leave":
		sudoku.LeaveGame(pin, connID)
	case "new_game":
		if len(m.Board) != game.BoardCells {
			logger.Warnf("[client %s] new_game board has %d cells", connID, len(m.Board))
			return
		}
		sudoku.NewGame(pin, game.Board(m.Board))
	case "update_cell":
		sudoku.UpdateCell(pin, m.Name, m.Row, m.Col, m.Value)
	case "update_score":
		sudoku.UpdateScore(pin, m.Name, m.Score)
	case "request_state":
		sudoku.RequestGameState(pin, connID)
	case "request_scores":
		sudoku.RequestAllScores(pin, connID)
	case "completed":
		sudoku.PlayerCompletedGame(pin, m.Name)
	default:
		logger.Warnf("[client %s] unknown action: %q", connID, m.Action)
	}
}
