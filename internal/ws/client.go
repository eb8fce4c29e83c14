package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	// sendQueue bounds per-client backlog; a client that cannot keep up is
	// disconnected rather than stalling the broadcast loop.
	sendQueue = 32
)

// client is one connected websocket participant. All writes to the
// connection go through the send channel so there is a single writer.
type client struct {
	name string
	conn *websocket.Conn
	send chan string
}

// writePump serializes outbound messages onto the connection. It exits when
// the send channel is closed, closing the connection with it.
func (c *client) writePump() {
	defer func() { _ = c.conn.Close() }()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
