package factory

import (
	"fmt"
	"time"

	"github.com/Balamathias/glafrica/pkg/llm"
	"github.com/Balamathias/glafrica/pkg/llm/ollama"
	"github.com/Balamathias/glafrica/pkg/llm/openai"
)

// NewLLMProvider builds the configured provider. requestTimeout bounds a
// single call, streaming included; a hung upstream fails the turn instead of
// holding it open forever.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string, requestTimeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		return openai.NewOpenAIProvider(apiKey, modelName, baseURL, requestTimeout), nil
	case "huggingface":
		// The HF router speaks the OpenAI wire format.
		if baseURL == "" {
			baseURL = "https://router.huggingface.co/v1"
		}
		return openai.NewOpenAIProvider(apiKey, modelName, baseURL, requestTimeout), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName, requestTimeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
