package ollama

import (
	"testing"
	"time"
)

func TestProviderTimeoutConfigured(t *testing.T) {
	p := NewOllamaProvider("http://localhost:11434", "llama3", 30*time.Second)

	if p.Client.Timeout != 30*time.Second {
		t.Errorf("Client.Timeout = %v, want 30s", p.Client.Timeout)
	}
}

func TestProviderTimeoutDefaulted(t *testing.T) {
	p := NewOllamaProvider("http://localhost:11434", "llama3", 0)

	if p.Client.Timeout != defaultTimeout {
		t.Errorf("Client.Timeout = %v, want %v", p.Client.Timeout, defaultTimeout)
	}
}
