package chat

import "encoding/json"

// Request is the body for POST /chat/completions.
//
// Build one with NewRequest; Build validates the request and copies the
// message and tool slices, so later mutation of the slices passed to the
// builder does not leak into a built request. Unset optional parameters
// are omitted from the serialized body entirely, never emitted as null.
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`

	Temperature      *float64        `json:"temperature,omitempty"`
	TopP             *float64        `json:"top_p,omitempty"`
	N                *int            `json:"n,omitempty"`
	Stop             []string        `json:"stop,omitempty"`
	MaxTokens        *int            `json:"max_tokens,omitempty"`
	PresencePenalty  *float64        `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64        `json:"frequency_penalty,omitempty"`
	LogitBias        map[string]int  `json:"logit_bias,omitempty"`
	User             string          `json:"user,omitempty"`
	Logprobs         *bool           `json:"logprobs,omitempty"`
	TopLogprobs      *int            `json:"top_logprobs,omitempty"`
	ResponseFormat   *ResponseFormat `json:"response_format,omitempty"`
	Seed             *int            `json:"seed,omitempty"`

	Tools []ToolDef `json:"tools,omitempty"`
	// ToolChoice is "none", "auto", "required", or a named-tool object.
	ToolChoice        any   `json:"tool_choice,omitempty"`
	ParallelToolCalls *bool `json:"parallel_tool_calls,omitempty"`

	// Thinking is a provider-specific extension for extended-reasoning
	// budgets; the gateway forwards it to providers that support it.
	Thinking *Thinking `json:"thinking,omitempty"`
}

// ToolDef defines a tool the model may call.
type ToolDef struct {
	Type     string      `json:"type"`
	Function FunctionDef `json:"function"`
}

// FunctionDef describes a callable function and its parameter schema.
type FunctionDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// ResponseFormat directs the output format of the model.
type ResponseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *JSONSchemaSpec `json:"json_schema,omitempty"`
}

// JSONSchemaSpec names a JSON schema for structured output.
type JSONSchemaSpec struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict,omitempty"`
	Schema json.RawMessage `json:"schema"`
}

// Thinking is an extended-reasoning directive.
type Thinking struct {
	Type         string `json:"type,omitempty"`
	BudgetTokens int    `json:"budget_tokens,omitempty"`
}

// Builder accumulates chat completion parameters.
type Builder struct {
	req      Request
	messages []Message
}

// NewRequest starts a request builder for the given model.
func NewRequest(model string) *Builder {
	b := &Builder{}
	b.req.Model = model
	return b
}

// Model sets the model identifier.
func (b *Builder) Model(model string) *Builder { b.req.Model = model; return b }

// AddMessage appends a message to the conversation. Message order is
// preserved exactly as supplied.
func (b *Builder) AddMessage(msg Message) *Builder {
	b.messages = append(b.messages, msg)
	return b
}

// AddMessages appends several messages in order.
func (b *Builder) AddMessages(msgs ...Message) *Builder {
	b.messages = append(b.messages, msgs...)
	return b
}

// Temperature sets the sampling temperature.
func (b *Builder) Temperature(t float64) *Builder { b.req.Temperature = &t; return b }

// TopP sets the nucleus sampling probability mass.
func (b *Builder) TopP(p float64) *Builder { b.req.TopP = &p; return b }

// N sets the number of completions to generate.
func (b *Builder) N(n int) *Builder { b.req.N = &n; return b }

// Stop sets the stop sequences.
func (b *Builder) Stop(sequences ...string) *Builder { b.req.Stop = sequences; return b }

// MaxTokens caps the completion length.
func (b *Builder) MaxTokens(max int) *Builder { b.req.MaxTokens = &max; return b }

// PresencePenalty sets the presence penalty.
func (b *Builder) PresencePenalty(p float64) *Builder { b.req.PresencePenalty = &p; return b }

// FrequencyPenalty sets the frequency penalty.
func (b *Builder) FrequencyPenalty(f float64) *Builder { b.req.FrequencyPenalty = &f; return b }

// LogitBias adjusts token likelihoods.
func (b *Builder) LogitBias(bias map[string]int) *Builder { b.req.LogitBias = bias; return b }

// User sets the end-user identifier.
func (b *Builder) User(user string) *Builder { b.req.User = user; return b }

// Logprobs toggles log-probability output.
func (b *Builder) Logprobs(lp bool) *Builder { b.req.Logprobs = &lp; return b }

// TopLogprobs sets how many top log-probabilities to return per token.
func (b *Builder) TopLogprobs(n int) *Builder { b.req.TopLogprobs = &n; return b }

// ResponseFormat sets the response format directive.
func (b *Builder) ResponseFormat(f ResponseFormat) *Builder { b.req.ResponseFormat = &f; return b }

// Seed requests deterministic sampling.
func (b *Builder) Seed(seed int) *Builder { b.req.Seed = &seed; return b }

// Tools sets the tool definitions the model may call.
func (b *Builder) Tools(tools ...ToolDef) *Builder { b.req.Tools = tools; return b }

// ToolChoice sets the tool-choice strategy.
func (b *Builder) ToolChoice(choice any) *Builder { b.req.ToolChoice = choice; return b }

// ParallelToolCalls toggles parallel tool calling.
func (b *Builder) ParallelToolCalls(p bool) *Builder { b.req.ParallelToolCalls = &p; return b }

// Thinking sets an extended-reasoning budget.
func (b *Builder) Thinking(t Thinking) *Builder { b.req.Thinking = &t; return b }

// Build validates the request and returns it. The message and tool
// slices are copied so the builder's inputs can be reused or mutated
// afterwards without affecting the built request. Build fails before any
// network interaction when the model is empty or no messages were added.
func (b *Builder) Build() (*Request, error) {
	if b.req.Model == "" {
		return nil, ErrModelRequired
	}
	if len(b.messages) == 0 {
		return nil, ErrNoMessages
	}

	req := b.req
	req.Messages = make([]Message, len(b.messages))
	copy(req.Messages, b.messages)
	if b.req.Tools != nil {
		req.Tools = make([]ToolDef, len(b.req.Tools))
		copy(req.Tools, b.req.Tools)
	}
	if b.req.Stop != nil {
		req.Stop = make([]string, len(b.req.Stop))
		copy(req.Stop, b.req.Stop)
	}
	return &req, nil
}
