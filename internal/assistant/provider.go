package assistant

import (
	"context"
	"encoding/json"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser     Role = "user"
	RoleModel    Role = "model"
	RoleFunction Role = "function"
)

// FunctionCall is a provider request to run one capability.
type FunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// FunctionResult carries a capability's outcome back to the provider in
// the shape the original assistant protocol uses: either data or an
// error string, flagged by Success.
type FunctionResult struct {
	Name    string      `json:"name"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Message is one turn of a conversation. Exactly one of Text,
// FunctionCall or FunctionResult is set, depending on the role.
type Message struct {
	Role           Role            `json:"role"`
	Text           string          `json:"text,omitempty"`
	FunctionCall   *FunctionCall   `json:"function_call,omitempty"`
	FunctionResult *FunctionResult `json:"function_result,omitempty"`
}

// Reply is one provider response: either free text or a request to call
// a capability (possibly both, in which case the call takes precedence).
type Reply struct {
	Text         string
	FunctionCall *FunctionCall
}

// Provider abstracts the LLM backend. Implementations receive the full
// conversation so far plus the capability declarations and return the
// model's next turn.
type Provider interface {
	Generate(ctx context.Context, messages []Message, declarations []Declaration) (Reply, error)
}
