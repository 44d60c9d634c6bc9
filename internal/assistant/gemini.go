package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-1.5-flash-latest"

	// systemPrompt sets the assistant's behavior: present capability data
	// directly, call out empty results, and surface capability errors
	// instead of asking the user to fetch data themselves.
	systemPrompt = "You are the crafting assistant for a game-economy profit calculator. " +
		"Answer questions about item recipes, materials, and crafting profitability using " +
		"the available functions. If a function returns no results, tell the user explicitly " +
		"that nothing matched. If a function fails, report the specific error instead of " +
		"asking the user for the data. When a call succeeds, present the returned data " +
		"directly, clearly and concisely."
)

// GeminiProvider implements Provider over the Gemini REST API.
type GeminiProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// GeminiOption configures a GeminiProvider.
type GeminiOption func(*GeminiProvider)

// WithGeminiBaseURL overrides the API base URL (used in tests).
func WithGeminiBaseURL(baseURL string) GeminiOption {
	return func(p *GeminiProvider) {
		if baseURL != "" {
			p.baseURL = baseURL
		}
	}
}

// WithGeminiModel overrides the model name.
func WithGeminiModel(model string) GeminiOption {
	return func(p *GeminiProvider) {
		if model != "" {
			p.model = model
		}
	}
}

// WithGeminiHTTPClient injects a custom HTTP client.
func WithGeminiHTTPClient(client *http.Client) GeminiOption {
	return func(p *GeminiProvider) {
		if client != nil {
			p.httpClient = client
		}
	}
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(apiKey string, opts ...GeminiOption) *GeminiProvider {
	p := &GeminiProvider{
		apiKey:  apiKey,
		baseURL: defaultGeminiBaseURL,
		model:   defaultGeminiModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// geminiPart mirrors the API's content part union.
type geminiPart struct {
	Text             string                  `json:"text,omitempty"`
	FunctionCall     *geminiFunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *geminiFunctionResponse `json:"functionResponse,omitempty"`
}

type geminiFunctionCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

type geminiFunctionResponse struct {
	Name     string      `json:"name"`
	Response interface{} `json:"response"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	Tools             []geminiTools   `json:"tools,omitempty"`
}

type geminiTools struct {
	FunctionDeclarations []Declaration `json:"functionDeclarations"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the conversation to the Gemini API and returns the
// model's next turn.
func (p *GeminiProvider) Generate(ctx context.Context, messages []Message, declarations []Declaration) (Reply, error) {
	request := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: toGeminiContents(messages),
	}
	if len(declarations) > 0 {
		request.Tools = []geminiTools{{FunctionDeclarations: declarations}}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to encode provider request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Reply{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return Reply{}, fmt.Errorf("provider request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return Reply{}, fmt.Errorf("failed to read provider response: %w", err)
	}

	var decoded geminiResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return Reply{}, fmt.Errorf("invalid provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := resp.Status
		if decoded.Error != nil {
			message = decoded.Error.Message
		}
		log.Warn().Int("status", resp.StatusCode).Str("error", message).Msg("Provider returned an error")
		return Reply{}, fmt.Errorf("provider error (%d): %s", resp.StatusCode, message)
	}

	if len(decoded.Candidates) == 0 {
		return Reply{}, fmt.Errorf("provider returned no candidates")
	}

	var reply Reply
	for _, part := range decoded.Candidates[0].Content.Parts {
		if part.FunctionCall != nil && reply.FunctionCall == nil {
			reply.FunctionCall = &FunctionCall{
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			}
		}
		if part.Text != "" {
			reply.Text += part.Text
		}
	}
	return reply, nil
}

// toGeminiContents converts the neutral conversation into the API shape.
func toGeminiContents(messages []Message) []geminiContent {
	contents := make([]geminiContent, 0, len(messages))
	for _, msg := range messages {
		switch {
		case msg.FunctionResult != nil:
			contents = append(contents, geminiContent{
				Role: "function",
				Parts: []geminiPart{{
					FunctionResponse: &geminiFunctionResponse{
						Name:     msg.FunctionResult.Name,
						Response: msg.FunctionResult,
					},
				}},
			})
		case msg.FunctionCall != nil:
			contents = append(contents, geminiContent{
				Role: "model",
				Parts: []geminiPart{{
					FunctionCall: &geminiFunctionCall{
						Name: msg.FunctionCall.Name,
						Args: msg.FunctionCall.Args,
					},
				}},
			})
		default:
			role := "user"
			if msg.Role == RoleModel {
				role = "model"
			}
			contents = append(contents, geminiContent{
				Role:  role,
				Parts: []geminiPart{{Text: msg.Text}},
			})
		}
	}
	return contents
}
