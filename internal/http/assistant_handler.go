package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raitocraft/craft-service/internal/assistant"
	"github.com/raitocraft/craft-service/internal/domain/dto"
	"github.com/raitocraft/craft-service/internal/i18n"
)

// AssistantHandler provides HTTP handlers for the assistant routes.
type AssistantHandler struct {
	chatService assistant.ChatService
	registry    *assistant.Registry
}

// NewAssistantHandler creates a new AssistantHandler instance.
func NewAssistantHandler(chatService assistant.ChatService, registry *assistant.Registry) *AssistantHandler {
	return &AssistantHandler{
		chatService: chatService,
		registry:    registry,
	}
}

// Chat handles POST /api/assistant/chat requests.
//
// @Summary      Chat with the crafting assistant
// @Description  Sends a user message to the LLM-backed assistant. The assistant may invoke recipe query capabilities before answering. Pass the returned session_id on follow-up messages to keep the conversation.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request body dto.ChatRequest true "User message and optional session id"
// @Success      200 {object} dto.SuccessResponse "Assistant reply"
// @Failure      400 {object} dto.ErrorResponse "Bad request - empty message"
// @Failure      503 {object} dto.ErrorResponse "Assistant unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	result, err := h.chatService.Chat(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, assistant.ErrProviderNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyAssistantUnavailable, err)
			return
		}
		builder.Error(http.StatusBadGateway, i18n.ErrKeyAssistantUnavailable, err)
		return
	}

	builder.SuccessOK(result)
}

// ListCapabilities handles GET /api/assistant/capabilities requests.
//
// @Summary      List assistant capabilities
// @Description  Returns the declarations of every query the assistant can run, in the same shape handed to the LLM provider.
// @Tags         Assistant
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Capability declarations"
// @Security     BearerAuth
// @Router       /api/assistant/capabilities [get]
func (h *AssistantHandler) ListCapabilities(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.registry.Declarations())
}

// InvokeCapability handles POST /api/assistant/capabilities/:name requests.
// It dispatches one capability directly, without going through the LLM,
// so clients and tests can exercise the query layer on its own.
//
// @Summary      Invoke one assistant capability directly
// @Description  Runs a single named capability with the JSON body as its arguments and returns the raw result, bypassing the LLM loop.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        name path string true "Capability name"
// @Param        request body object false "Capability arguments"
// @Success      200 {object} dto.SuccessResponse "Capability result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid arguments"
// @Failure      404 {object} dto.ErrorResponse "Unknown capability"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/assistant/capabilities/{name} [post]
func (h *AssistantHandler) InvokeCapability(c *gin.Context) {
	builder := NewResponseBuilder(c)

	args, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), c.Param("name"), args)
	if err != nil {
		var unknown *assistant.ErrUnknownCapability
		if errors.As(err, &unknown) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyUnknownCapability, err)
			return
		}
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	builder.SuccessOK(result)
}
