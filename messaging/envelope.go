package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps every message on the refresh topic.
type Envelope struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	ClientID string          `json:"client_id"`
	SentAt   string          `json:"sent_at"`
	Payload  json.RawMessage `json:"payload"`
}

// Refresh announces that the ETL pipeline wrote a new dataset file.
type Refresh struct {
	Path string `json:"path"`
}

func NewEnvelope(msgType, clientID string, payload any) *Envelope {
	data, _ := json.Marshal(payload)
	return &Envelope{
		ID:       uuid.New().String(),
		Type:     msgType,
		ClientID: clientID,
		SentAt:   time.Now().Format(time.RFC3339),
		Payload:  data,
	}
}

func (e *Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("envelope missing type")
	}
	return &env, nil
}
