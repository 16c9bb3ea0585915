// Package genai produces conversational replies. The pipeline only
// depends on the Generator interface; the concrete client speaks the
// OpenAI-compatible chat-completions protocol and may call back into an
// injected Toolset for catalog lookups.
package genai

import (
	"context"

	"github.com/quicksell-labs/martbot/internal/store"
)

// Turn is one prior exchange in the conversation history.
type Turn struct {
	Body     string
	FromUser bool
}

// Request carries everything the generator needs for one reply.
type Request struct {
	UserName  string
	History   []Turn
	Message   string
	MediaType string // empty for plain text
}

// Generator turns a conversation into a reply.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Toolset is the capability surface the generator may call while
// composing a reply. Implementations decide what each capability means;
// the generator never dispatches on string-matched function names
// outside this interface.
type Toolset interface {
	Search(ctx context.Context, query string) ([]store.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	HotDeals(ctx context.Context) ([]store.Product, error)
	StoreDetails(ctx context.Context) (StoreInfo, error)
}

// StoreInfo describes the shop the bot answers for.
type StoreInfo struct {
	Name    string
	Phone   string
	URL     string
	Address string
}

// Fallback is sent when generation fails, so the user gets a reply
// rather than silence.
const Fallback = "Sorry, I'm having a little trouble answering right now. Please try again in a moment!"
