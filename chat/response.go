package chat

import "encoding/json"

// Response is the body of a successful POST /chat/completions.
type Response struct {
	ID                string   `json:"id"`
	Object            string   `json:"object"`
	Created           int64    `json:"created"`
	Model             string   `json:"model"`
	SystemFingerprint string   `json:"system_fingerprint,omitempty"`
	Choices           []Choice `json:"choices"`
	Usage             Usage    `json:"usage"`
}

// Choice is a single completion choice.
type Choice struct {
	Index int `json:"index"`

	// FinishReason is a free-form string from the remote service
	// ("stop", "tool_calls", "length", or provider-specific values).
	// It is passed through opaquely, never validated against a closed
	// set.
	FinishReason string `json:"finish_reason"`

	Message  Message         `json:"message"`
	Logprobs json.RawMessage `json:"logprobs,omitempty"`
}

// Usage is the token accounting for a request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Content returns the text content of the first choice's message, or ""
// when there are no choices or the content is unset.
func (r *Response) Content() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Text()
}

// ToolCalls returns the tool calls of the first choice's message, or nil.
func (r *Response) ToolCalls() []ToolCall {
	if len(r.Choices) == 0 {
		return nil
	}
	return r.Choices[0].Message.ToolCalls
}
