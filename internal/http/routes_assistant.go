package http

import (
	"github.com/gin-gonic/gin"

	"github.com/raitocraft/craft-service/internal/assistant"
)

// AssistantRoutes handles assistant route registration.
type AssistantRoutes struct {
	handler *AssistantHandler
}

// NewAssistantRoutes creates a new AssistantRoutes instance.
func NewAssistantRoutes(chatService assistant.ChatService, registry *assistant.Registry) *AssistantRoutes {
	return &AssistantRoutes{
		handler: NewAssistantHandler(chatService, registry),
	}
}

func (r *AssistantRoutes) register(rg *gin.RouterGroup) {
	rg.POST("/assistant/chat", r.handler.Chat)
	rg.GET("/assistant/capabilities", r.handler.ListCapabilities)
	rg.POST("/assistant/capabilities/:name", r.handler.InvokeCapability)
}

// RegisterPublicRoutes registers assistant routes (when auth is disabled).
func (r *AssistantRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg)
}

// RegisterProtectedRoutes registers assistant routes (when auth is enabled).
func (r *AssistantRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	r.register(protected)
}
