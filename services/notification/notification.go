package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// NoopService drops messages; used when no websocket hub is wired.
type NoopService struct{}

func (NoopService) SendMessage(string) error { return nil }

// AttendanceEvent is pushed to the live feed after every committed transition.
type AttendanceEvent struct {
	Type    string    `json:"type"`
	UserID  uint      `json:"userId"`
	Name    string    `json:"name"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type MessageBuilder struct {
	event AttendanceEvent
}

func NewMessageBuilder(action string, userID uint) *MessageBuilder {
	return &MessageBuilder{event: AttendanceEvent{Type: action, UserID: userID}}
}

func (b *MessageBuilder) WithUser(name, status string) *MessageBuilder {
	b.event.Name = name
	b.event.Status = status
	return b
}

func (b *MessageBuilder) WithMessage(message string, at time.Time) *MessageBuilder {
	b.event.Message = message
	b.event.At = at
	return b
}

func (b *MessageBuilder) Build() (string, error) {
	data, err := json.Marshal(b.event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
