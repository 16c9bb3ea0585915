package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/quicksell-labs/martbot/internal/store"
	"go.uber.org/zap"
)

// maxToolRounds bounds how many tool-call turns a single reply may take.
const maxToolRounds = 4

// historyWindow caps how many prior turns are sent upstream.
const historyWindow = 10

// Options configures the chat-completions client.
type Options struct {
	BaseURL string
	Model   string
	APIKey  string
}

// Client is an OpenAI-compatible chat-completions Generator.
type Client struct {
	opts   Options
	tools  Toolset
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a generator client. The Toolset may be nil, in
// which case no tools are offered upstream.
func NewClient(opts Options, tools Toolset, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{opts: opts, tools: tools, http: httpClient, logger: logger}
}

type chatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []toolCall `json:"tool_calls,omitempty"`
}

type toolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Tools    []toolSpec    `json:"tools,omitempty"`
}

type toolSpec struct {
	Type     string `json:"type"`
	Function struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	} `json:"function"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate produces a reply, running tool calls against the Toolset
// until the model answers in plain text or the round budget runs out.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	msgs := c.buildMessages(req)

	for round := 0; round <= maxToolRounds; round++ {
		resp, err := c.complete(ctx, msgs)
		if err != nil {
			return "", err
		}
		if len(resp.ToolCalls) == 0 {
			text := strings.TrimSpace(resp.Content)
			if text == "" {
				return "", fmt.Errorf("empty completion")
			}
			return text, nil
		}

		msgs = append(msgs, *resp)
		for _, call := range resp.ToolCalls {
			result := c.runTool(ctx, call)
			msgs = append(msgs, chatMessage{
				Role:       "tool",
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}
	return "", fmt.Errorf("tool-call budget exceeded after %d rounds", maxToolRounds)
}

func (c *Client) buildMessages(req Request) []chatMessage {
	name := req.UserName
	if name == "" {
		name = "the customer"
	}
	system := fmt.Sprintf(
		"You are a friendly WhatsApp shopping assistant. You are chatting with %s. "+
			"Keep replies short and conversational, suitable for WhatsApp. "+
			"Use the available tools to look up products, categories, deals and store details "+
			"instead of inventing them.",
		name)

	msgs := []chatMessage{{Role: "system", Content: system}}

	history := req.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		role := "assistant"
		if turn.FromUser {
			role = "user"
		}
		msgs = append(msgs, chatMessage{Role: role, Content: turn.Body})
	}

	body := req.Message
	if req.MediaType != "" {
		body = fmt.Sprintf("[%s attachment] %s", req.MediaType, body)
	}
	return append(msgs, chatMessage{Role: "user", Content: body})
}

func (c *Client) complete(ctx context.Context, msgs []chatMessage) (*chatMessage, error) {
	payload := chatRequest{Model: c.opts.Model, Messages: msgs}
	if c.tools != nil {
		payload.Tools = toolSpecs()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(c.opts.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.opts.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode completion: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("completion error: %s", resp.Error.Message)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion status %d", httpResp.StatusCode)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}
	return &resp.Choices[0].Message, nil
}

// runTool executes one call against the Toolset. Tool errors become
// error strings in the transcript rather than failing the reply.
func (c *Client) runTool(ctx context.Context, call toolCall) string {
	var args struct {
		Query string `json:"query"`
	}
	if call.Function.Arguments != "" {
		_ = json.Unmarshal([]byte(call.Function.Arguments), &args)
	}

	var (
		result any
		err    error
	)
	switch call.Function.Name {
	case "search_products":
		result, err = c.tools.Search(ctx, args.Query)
	case "list_categories":
		result, err = c.tools.ListCategories(ctx)
	case "hot_deals":
		result, err = c.tools.HotDeals(ctx)
	case "store_details":
		result, err = c.tools.StoreDetails(ctx)
	default:
		err = fmt.Errorf("unknown tool %q", call.Function.Name)
	}
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("tool call failed",
				zap.String("tool", call.Function.Name), zap.Error(err))
		}
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}

	encoded, err := json.Marshal(toolPayload(result))
	if err != nil {
		return `{"error": "encode failure"}`
	}
	return string(encoded)
}

// toolPayload trims product rows to what the model needs.
func toolPayload(result any) any {
	products, ok := result.([]store.Product)
	if !ok {
		return result
	}
	type slim struct {
		Title    string `json:"title"`
		Desc     string `json:"description,omitempty"`
		Category string `json:"category,omitempty"`
		Price    string `json:"price"`
	}
	out := make([]slim, 0, len(products))
	for _, p := range products {
		out = append(out, slim{
			Title:    p.Title,
			Desc:     p.Description,
			Category: p.Category,
			Price:    fmt.Sprintf("%.2f", float64(p.PriceCents)/100),
		})
	}
	return out
}

func toolSpecs() []toolSpec {
	queryParams := json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"}},"required":["query"]}`)
	noParams := json.RawMessage(`{"type":"object","properties":{}}`)

	specs := []struct {
		name, desc string
		params     json.RawMessage
	}{
		{"search_products", "Search the product catalog by keyword.", queryParams},
		{"list_categories", "List the product categories in the catalog.", noParams},
		{"hot_deals", "List products currently on promotion.", noParams},
		{"store_details", "Get the store's name, phone, address and website.", noParams},
	}

	out := make([]toolSpec, 0, len(specs))
	for _, s := range specs {
		var ts toolSpec
		ts.Type = "function"
		ts.Function.Name = s.name
		ts.Function.Description = s.desc
		ts.Function.Parameters = s.params
		out = append(out, ts)
	}
	return out
}
