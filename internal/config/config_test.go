package config

import (
	"testing"
	"time"
)

func TestLoadRequestTimeout(t *testing.T) {
	t.Setenv("LLM_REQUEST_TIMEOUT", "30s")

	cfg := Load()
	if cfg.Ai.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.Ai.RequestTimeout)
	}
}

func TestLoadRequestTimeoutDefaults(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "unset", value: ""},
		{name: "unparseable", value: "soon"},
		{name: "non-positive", value: "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LLM_REQUEST_TIMEOUT", tt.value)

			cfg := Load()
			if cfg.Ai.RequestTimeout != 120*time.Second {
				t.Errorf("RequestTimeout = %v, want default 120s", cfg.Ai.RequestTimeout)
			}
		})
	}
}
