package websocket

import (
	"sync"
	"time"

	"github.com/dafibh/tripfund/tripfund-backend/internal/service"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	// writeWait is time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// pongWait is time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// pingPeriod is the interval for sending pings (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize is maximum message size allowed from peer
	maxMessageSize = 1024

	// messageRate and messageBurst bound how many calculator messages a client may send
	messageRate  = 10 // per second
	messageBurst = 20
)

// Client represents a single WebSocket connection and the calculator session it owns
type Client struct {
	id        string
	conn      *websocket.Conn
	hub       *Hub
	session   *service.CalculatorSession
	limiter   *rate.Limiter
	send      chan []byte
	closed    bool
	mu        sync.RWMutex
	closeOnce sync.Once
}

// NewClient creates a new WebSocket client with a fresh calculator session
func NewClient(conn *websocket.Conn, hub *Hub, session *service.CalculatorSession) *Client {
	return &Client{
		id:      uuid.New().String(),
		conn:    conn,
		hub:     hub,
		session: session,
		limiter: rate.NewLimiter(rate.Limit(messageRate), messageBurst),
		send:    make(chan []byte, 64),
	}
}

// ID returns the client's unique identifier
func (c *Client) ID() string {
	return c.id
}

// Send queues a message to be sent to the client
func (c *Client) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer is full, client is too slow
		return ErrClientClosed
	}
}

// SendEvent serializes and queues an event
func (c *Client) SendEvent(event Event) error {
	data, err := event.ToJSON()
	if err != nil {
		return err
	}
	return c.Send(data)
}

// Close closes the client connection
// Safe to call multiple times from different goroutines
func (c *Client) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()

		closeErr = c.conn.Close()
	})
	return closeErr
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// ReadPump reads calculator messages from the connection and replies to each one.
// It is the only goroutine touching the session.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Msg("WebSocket unexpected close")
			}
			break
		}

		event := c.handle(data)
		if err := c.SendEvent(event); err != nil {
			log.Warn().
				Err(err).
				Str("client_id", c.id).
				Str("event_type", event.Type).
				Msg("Failed to queue reply")
			break
		}
	}
}

// handle dispatches one message unless the client is over its message budget
func (c *Client) handle(data []byte) Event {
	if !c.limiter.Allow() {
		log.Debug().Str("client_id", c.id).Msg("WebSocket message rate exceeded")
		return SessionError(ErrMessageRateExceeded.Error())
	}
	return Dispatch(c.session, data)
}

// WritePump pumps queued messages to the WebSocket connection
// This should be run in a goroutine
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed, hub closed this client
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Msg("WebSocket write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
