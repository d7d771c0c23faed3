package live

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/dom/rift-companion/internal/service"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	tickInterval   = 1 * time.Second
	requestTimeout = 5 * time.Second
)

// Client is one live assistant session bound to a WebSocket connection
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	sessionID uuid.UUID
	limiter   *rate.Limiter
	timers    *TimerBoard
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 64),
		done:      make(chan struct{}),
		sessionID: uuid.New(),
		limiter:   rate.NewLimiter(rate.Limit(hub.updateRate), hub.updateBurst),
		timers:    NewTimerBoard(),
	}
}

func (c *Client) SessionID() uuid.UUID {
	return c.sessionID
}

// Close stops the write pump and the timer loop. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
		c.conn.Close()
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
				log.Printf("WARN [live] session=%s: read error: %v", c.sessionID, err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError(ErrCodeInvalidPayload, "Message is not valid JSON")
			continue
		}

		c.handleMessage(&msg)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// RunTimers pushes COOLDOWN_TICK every second while any timer is running and
// COOLDOWN_READY as each one expires
func (c *Client) RunTimers() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case now := <-ticker.C:
			if c.timers.Len() == 0 {
				continue
			}
			c.pushTimers(now, false)
		}
	}
}

// pushTimers sends expirations and then the running timers. With force set a
// tick is sent even when nothing is running, so the client can clear its view.
func (c *Client) pushTimers(now time.Time, force bool) {
	active, ready := c.timers.Tick(now)
	for _, state := range ready {
		c.sendMessage(MessageTypeCooldownReady, state)
	}
	if len(active) > 0 || force {
		if active == nil {
			active = []TimerState{}
		}
		c.sendMessage(MessageTypeCooldownTick, CooldownTickPayload{Timers: active})
	}
}

func (c *Client) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeUpdateContext:
		if !c.limiter.Allow() {
			c.sendError(ErrCodeRateLimited, "Too many context updates, slow down")
			return
		}
		var req service.BuildRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			c.sendError(ErrCodeInvalidPayload, "Invalid context payload")
			return
		}
		c.recommend(req)

	case MessageTypeStartCooldown:
		var payload CooldownPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError(ErrCodeInvalidPayload, "Invalid cooldown payload")
			return
		}
		if _, err := c.timers.StartSpell(payload.Lane, payload.Spell, time.Now()); err != nil {
			c.sendError(ErrCodeBadRequest, err.Error())
			return
		}
		c.pushTimers(time.Now(), false)

	case MessageTypeCancelCooldown:
		var payload CooldownPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError(ErrCodeInvalidPayload, "Invalid cooldown payload")
			return
		}
		if !c.timers.CancelSpell(payload.Lane, payload.Spell) {
			c.sendError(ErrCodeNotFound, "No cooldown running for that lane and spell")
			return
		}
		c.pushTimers(time.Now(), true)

	case MessageTypeStartObjective:
		var payload ObjectivePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError(ErrCodeInvalidPayload, "Invalid objective payload")
			return
		}
		if _, err := c.timers.StartObjective(payload.Objective, time.Now()); err != nil {
			c.sendError(ErrCodeBadRequest, err.Error())
			return
		}
		c.pushTimers(time.Now(), false)

	default:
		c.sendError(ErrCodeUnknownType, "Unknown message type "+string(msg.Type))
	}
}

func (c *Client) recommend(req service.BuildRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	result, err := c.hub.advisor.RecommendBuild(ctx, req)
	if err != nil {
		switch {
		case service.ValidationError(err):
			c.sendError(ErrCodeBadRequest, err.Error())
		case service.NotFoundError(err):
			c.sendError(ErrCodeNotFound, err.Error())
		default:
			log.Printf("ERROR [live.recommend] session=%s champion=%s: %v", c.sessionID, req.ChampionID, err)
			c.sendError(ErrCodeInternal, "Failed to compute recommendations")
		}
		return
	}

	c.sendMessage(MessageTypeRecommendations, result)
}

func (c *Client) sendError(code, message string) {
	c.sendMessage(MessageTypeError, ErrorPayload{
		Code:    code,
		Message: message,
	})
}

func (c *Client) sendMessage(msgType MessageType, payload interface{}) {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		log.Printf("ERROR [live] session=%s: failed to build %s message: %v", c.sessionID, msgType, err)
		return
	}
	c.Send(msg)
}

func (c *Client) Send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("ERROR [live] session=%s: failed to marshal message: %v", c.sessionID, err)
		return
	}
	select {
	case c.send <- data:
	case <-c.done:
	}
}
