// Package assistant implements the crafting assistant: a set of
// structured query capabilities over the recipe registry, exposed both
// directly over HTTP and as function declarations for an LLM provider.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// HandlerFunc executes one capability. Arguments arrive as the raw JSON
// object produced by the caller (HTTP client or LLM function call).
type HandlerFunc func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Capability is one named query the assistant can run.
type Capability struct {
	// Name is the function-call identifier.
	Name string `json:"name"`
	// Description tells the model (and API consumers) what the query does.
	Description string `json:"description"`
	// Parameters is a JSON-schema object describing the arguments.
	Parameters map[string]interface{} `json:"parameters"`

	Handler HandlerFunc `json:"-"`
}

// Declaration is the provider-facing view of a capability, without the handler.
type Declaration struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// ErrUnknownCapability is returned when dispatching a name that was never registered.
type ErrUnknownCapability struct {
	Name string
}

func (e *ErrUnknownCapability) Error() string {
	return fmt.Sprintf("unknown capability %q", e.Name)
}

// Registry holds the capability dispatch table. Registration happens at
// startup; dispatch is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	capabilities map[string]Capability
}

// NewRegistry creates an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{
		capabilities: make(map[string]Capability),
	}
}

// Register adds a capability. Re-registering a name replaces the previous entry.
func (r *Registry) Register(c Capability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.capabilities[c.Name] = c
}

// Dispatch runs the named capability with the given raw arguments.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	r.mu.RLock()
	capability, ok := r.capabilities[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &ErrUnknownCapability{Name: name}
	}

	result, err := capability.Handler(ctx, args)
	if err != nil {
		log.Warn().Err(err).Str("capability", name).Msg("Capability dispatch failed")
		return nil, err
	}
	return result, nil
}

// Declarations returns the provider-facing declarations sorted by name.
func (r *Registry) Declarations() []Declaration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	declarations := make([]Declaration, 0, len(r.capabilities))
	for _, c := range r.capabilities {
		declarations = append(declarations, Declaration{
			Name:        c.Name,
			Description: c.Description,
			Parameters:  c.Parameters,
		})
	}
	sort.Slice(declarations, func(i, j int) bool {
		return declarations[i].Name < declarations[j].Name
	})
	return declarations
}
