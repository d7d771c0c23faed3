package live

import (
	"encoding/json"
	"time"

	"github.com/dom/rift-companion/internal/domain"
)

type MessageType string

const (
	// Client to Server
	MessageTypeUpdateContext  MessageType = "UPDATE_CONTEXT"
	MessageTypeStartCooldown  MessageType = "START_COOLDOWN"
	MessageTypeCancelCooldown MessageType = "CANCEL_COOLDOWN"
	MessageTypeStartObjective MessageType = "START_OBJECTIVE"

	// Server to Client
	MessageTypeSession         MessageType = "SESSION"
	MessageTypeRecommendations MessageType = "RECOMMENDATIONS"
	MessageTypeCooldownTick    MessageType = "COOLDOWN_TICK"
	MessageTypeCooldownReady   MessageType = "COOLDOWN_READY"
	MessageTypeError           MessageType = "ERROR"
)

// Error codes
const (
	ErrCodeInvalidPayload = "INVALID_PAYLOAD"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInternal       = "INTERNAL"
	ErrCodeUnknownType    = "UNKNOWN_TYPE"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// Client to Server payloads. UPDATE_CONTEXT carries a service.BuildRequest.

type CooldownPayload struct {
	Lane  domain.Role `json:"lane"`
	Spell Spell       `json:"spell"`
}

type ObjectivePayload struct {
	Objective Objective `json:"objective"`
}

// Server to Client payloads. RECOMMENDATIONS carries a service.BuildResult.

type SessionPayload struct {
	SessionID string `json:"sessionId"`
}

type CooldownTickPayload struct {
	Timers []TimerState `json:"timers"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
