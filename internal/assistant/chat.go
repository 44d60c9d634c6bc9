package assistant

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/raitocraft/craft-service/internal/metrics"
)

// ErrProviderNotConfigured is returned when chat is requested but no
// provider was wired (assistant disabled).
var ErrProviderNotConfigured = errors.New("assistant provider not configured")

// ErrTooManyFunctionCalls is returned when the provider keeps requesting
// capabilities past the configured cap, which usually means it is stuck
// in a loop.
var ErrTooManyFunctionCalls = errors.New("assistant exceeded the function call limit")

const (
	defaultMaxFunctionCalls = 5
	defaultSessionTTL       = 30 * time.Minute
	maxSessionMessages      = 60
)

// ChatService runs the conversational loop: user message in, capability
// calls dispatched as the provider requests them, final text out.
type ChatService interface {
	Chat(ctx context.Context, sessionID, message string) (ChatResult, error)
}

// ChatResult is the outcome of one chat turn.
type ChatResult struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	// FunctionCalls lists the capabilities dispatched during this turn.
	FunctionCalls []string `json:"function_calls,omitempty"`
}

// chatSession holds one conversation's history.
type chatSession struct {
	messages []Message
	lastUsed time.Time
}

// chatService implements ChatService with an in-memory session store.
type chatService struct {
	provider         Provider
	registry         *Registry
	maxFunctionCalls int

	mu         sync.Mutex
	sessions   map[string]*chatSession
	sessionTTL time.Duration
}

// ChatOption configures a chatService.
type ChatOption func(*chatService)

// WithMaxFunctionCalls caps the number of capability dispatches per turn.
func WithMaxFunctionCalls(n int) ChatOption {
	return func(s *chatService) {
		if n > 0 {
			s.maxFunctionCalls = n
		}
	}
}

// WithSessionTTL sets how long an idle conversation is kept.
func WithSessionTTL(ttl time.Duration) ChatOption {
	return func(s *chatService) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// NewChatService creates a chat service over the given provider and registry.
// A nil provider yields a service that rejects chats with ErrProviderNotConfigured.
func NewChatService(provider Provider, registry *Registry, opts ...ChatOption) ChatService {
	s := &chatService{
		provider:         provider,
		registry:         registry,
		maxFunctionCalls: defaultMaxFunctionCalls,
		sessions:         make(map[string]*chatSession),
		sessionTTL:       defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Chat appends the user message to the session, runs the provider loop
// until it stops requesting capabilities, and returns the final text.
func (s *chatService) Chat(ctx context.Context, sessionID, message string) (ChatResult, error) {
	if s.provider == nil {
		return ChatResult{}, ErrProviderNotConfigured
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history := s.loadSession(sessionID)
	messages := append(history, Message{Role: RoleUser, Text: message})

	declarations := s.registry.Declarations()
	var dispatched []string

	reply, err := s.provider.Generate(ctx, messages, declarations)
	if err != nil {
		return ChatResult{}, err
	}

	for reply.FunctionCall != nil {
		if len(dispatched) >= s.maxFunctionCalls {
			return ChatResult{}, ErrTooManyFunctionCalls
		}

		call := reply.FunctionCall
		dispatched = append(dispatched, call.Name)
		log.Debug().Str("capability", call.Name).Str("session_id", sessionID).Msg("Assistant requested capability")

		result := FunctionResult{Name: call.Name, Success: true}
		start := time.Now()
		data, dispatchErr := s.registry.Dispatch(ctx, call.Name, call.Args)
		metrics.RecordAssistantCapability(call.Name, dispatchErr == nil, time.Since(start).Seconds())
		if dispatchErr != nil {
			// Capability failures flow back to the model as data so it can
			// explain the problem to the user.
			result.Success = false
			result.Error = dispatchErr.Error()
		} else {
			result.Data = data
		}

		messages = append(messages,
			Message{Role: RoleModel, FunctionCall: call},
			Message{Role: RoleFunction, FunctionResult: &result},
		)

		reply, err = s.provider.Generate(ctx, messages, declarations)
		if err != nil {
			return ChatResult{}, err
		}
	}

	text := reply.Text
	if text == "" {
		text = "I could not process your request right now."
	}

	messages = append(messages, Message{Role: RoleModel, Text: text})
	s.storeSession(sessionID, messages)

	return ChatResult{
		SessionID:     sessionID,
		Reply:         text,
		FunctionCalls: dispatched,
	}, nil
}

// loadSession returns a copy of the session history, evicting expired
// sessions along the way.
func (s *chatService) loadSession(sessionID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.sessionTTL)
	for id, session := range s.sessions {
		if session.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
		}
	}

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	history := make([]Message, len(session.messages))
	copy(history, session.messages)
	return history
}

// storeSession saves the conversation, trimming the oldest turns when
// it grows past the cap.
func (s *chatService) storeSession(sessionID string, messages []Message) {
	if len(messages) > maxSessionMessages {
		messages = messages[len(messages)-maxSessionMessages:]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &chatSession{
		messages: messages,
		lastUsed: time.Now(),
	}
}
