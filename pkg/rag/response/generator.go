package response

import (
	"context"
	"io"

	"github.com/Balamathias/glafrica/internal/pkg/logger"
	"github.com/Balamathias/glafrica/pkg/llm"
)

// FallbackMessage is returned verbatim whenever the model cannot be reached.
// The chat surface never propagates a provider error to the buyer.
const FallbackMessage = "I apologize, but I'm having trouble connecting to my brain right now. Please try again in a moment."

// Generator turns an assembled message list into the assistant's reply,
// either as one string or as a chunk stream.
type Generator struct {
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewGenerator(provider llm.LLMProvider, log logger.ILogger) *Generator {
	return &Generator{provider: provider, log: log}
}

// Generate runs a synchronous completion. Provider failures are logged and
// swallowed into the fallback message.
func (g *Generator) Generate(ctx context.Context, messages []llm.Message, opts ...llm.Option) string {
	reply, err := g.provider.Chat(ctx, messages, opts...)
	if err != nil {
		g.logError("completion failed", err)
		return FallbackMessage
	}
	return reply
}

// GenerateStream runs a streaming completion and forwards chunks on the
// returned channel. The channel is closed when the model finishes, the
// context is cancelled, or an error occurs; on error the fallback message is
// sent as the final chunk so the buyer still sees a reply.
func (g *Generator) GenerateStream(ctx context.Context, messages []llm.Message, opts ...llm.Option) (<-chan string, error) {
	stream, err := g.provider.ChatStream(ctx, messages, opts...)
	if err != nil {
		g.logError("stream open failed", err)
		ch := make(chan string, 1)
		ch <- FallbackMessage
		close(ch)
		return ch, nil
	}

	ch := make(chan string)
	go func() {
		defer close(ch)
		defer stream.Close()

		for {
			chunk, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				g.logError("stream receive failed", err)
				select {
				case ch <- FallbackMessage:
				case <-ctx.Done():
				}
				return
			}
			if chunk == "" {
				continue
			}
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func (g *Generator) logError(message string, err error) {
	if g.log == nil {
		return
	}
	g.log.Error("response", message, map[string]interface{}{
		"error": err.Error(),
	})
}
