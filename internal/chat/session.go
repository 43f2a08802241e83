package chat

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jwulff/glucodash/internal/health"
)

// ErrEmptyMessage is returned when a blank question is asked.
var ErrEmptyMessage = errors.New("chat: empty message")

// Session is one conversation about one patient. Messages only grow; the
// conversation is discarded with the session.
type Session struct {
	matcher  *Matcher
	ctx      Context
	entropy  io.Reader
	messages []health.ChatMessage
}

// NewSession starts a conversation with a greeting naming the patient.
func NewSession(matcher *Matcher, ctx Context, now time.Time) (*Session, error) {
	if matcher == nil {
		matcher = NewMatcher()
	}
	s := &Session{
		matcher: matcher,
		ctx:     ctx,
		entropy: rand.New(rand.NewSource(now.UnixNano())),
	}

	greeting := fmt.Sprintf(
		"Hello! I'm here to help you analyze %s's diabetes data. You can ask me about their A1C trends, glucose patterns, medication compliance, recent appointments, weight changes, or any alerts. What would you like to know?",
		ctx.Patient.Name,
	)
	if _, err := s.append(health.ChatAssistant, greeting, now); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) newID(at time.Time) (string, error) {
	id, err := ulid.New(ulid.Timestamp(at), s.entropy)
	if err != nil {
		return "", fmt.Errorf("generate message id: %w", err)
	}
	return id.String(), nil
}

func (s *Session) append(role health.ChatRole, text string, at time.Time) (health.ChatMessage, error) {
	id, err := s.newID(at)
	if err != nil {
		return health.ChatMessage{}, err
	}
	msg := health.ChatMessage{ID: id, Role: role, Text: text, Timestamp: at}
	s.messages = append(s.messages, msg)
	return msg, nil
}

// Ask records the user's question and the assistant's answer, returning the
// answer.
func (s *Session) Ask(question string, now time.Time) (health.ChatMessage, error) {
	if strings.TrimSpace(question) == "" {
		return health.ChatMessage{}, ErrEmptyMessage
	}
	if _, err := s.append(health.ChatUser, question, now); err != nil {
		return health.ChatMessage{}, err
	}
	return s.append(health.ChatAssistant, s.matcher.Respond(question, s.ctx), now)
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []health.ChatMessage {
	out := make([]health.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}
