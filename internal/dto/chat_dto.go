package dto

// ChatTurn is one prior exchange replayed by the client. Role is "user" or
// "assistant"; anything else is rejected up front.
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Message string     `json:"message" validate:"required,min=1,max=2000"`
	History []ChatTurn `json:"history,omitempty" validate:"omitempty,max=100,dive"`
}

type ChatResponse struct {
	Response     string `json:"response"`
	ContextCount int    `json:"context_count"`
}

// ChatStreamEvent is one websocket frame of a streamed reply. Type is
// "chunk" while text is flowing, then a single "done" frame with the
// context count, or "error" if the request was rejected.
type ChatStreamEvent struct {
	Type         string `json:"type"`
	Content      string `json:"content,omitempty"`
	ContextCount int    `json:"context_count,omitempty"`
	Message      string `json:"message,omitempty"`
}
