package services

import (
	"sync"

	"github.com/sudokulive/sudoku-backend/utils/logger"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection. Outbound traffic goes through the
// buffered send channel so a slow reader never blocks a broadcast.
type Client struct {
	id   string
	conn *websocket.Conn
	hub  *Hub
	send chan []byte
	once sync.Once

	// onMessage handles one inbound frame; onDisconnect is the
	// coordinator's disconnect hook, fired exactly once when the read
	// pump exits.
	onMessage    func(c *Client, msg []byte)
	onDisconnect func(connID string)
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

// --------------------
// Client read/write pumps
// --------------------
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c.id)
		if c.onDisconnect != nil {
			c.onDisconnect(c.id)
		}
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Infof("[client %s] disconnected normally", c.id)
			} else {
				logger.Warnf("[client %s] read error: %v", c.id, err)
			}
			return
		}

		func(msg []byte) {
			defer func() {
				if r := recover(); r != nil {
					logger.Errorf("[client %s] recovered from panic: %v", c.id, r)
				}
			}()
			c.onMessage(c, msg)
		}(message)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Warnf("[client %s] write error: %v", c.id, err)
			return
		}
	}
}
