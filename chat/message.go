package chat

// Role identifies the message sender.
type Role string

// Role constants.
const (
	RoleSystem    Role = "system"
	RoleDeveloper Role = "developer"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single message in a chat conversation.
//
// Content is nil only for assistant turns that carry tool calls and no
// text; it serializes as JSON null in that case, which is the wire
// convention for an unset content field. Messages are value objects:
// construct them through the factories and derive variants with WithName
// rather than mutating in place.
type Message struct {
	Role    Role            `json:"role"`
	Content *MessageContent `json:"content"`

	// Name disambiguates participants that share a role.
	Name string `json:"name,omitempty"`

	// ToolCalls is set on assistant messages requesting function calls.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`

	// ToolCallID links a tool-role message to the originating call.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// SystemMessage creates a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: TextContent(content)}
}

// DeveloperMessage creates a developer message.
func DeveloperMessage(content string) Message {
	return Message{Role: RoleDeveloper, Content: TextContent(content)}
}

// UserMessage creates a user message with plain text content.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: TextContent(content)}
}

// UserMessageParts creates a user message with multimodal content parts.
//
//	chat.UserMessageParts(
//	    chat.Text("Describe this image"),
//	    chat.ImageWithDetail("https://example.com/photo.jpg", chat.DetailHigh),
//	)
func UserMessageParts(parts ...ContentPart) Message {
	return Message{Role: RoleUser, Content: PartsContent(parts...)}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: TextContent(content)}
}

// AssistantMessageWithToolCalls creates an assistant message carrying
// tool calls. With empty content and at least one call the content field
// is left unset (JSON null), the wire form of a tool-request-only turn.
func AssistantMessageWithToolCalls(content string, toolCalls []ToolCall) Message {
	msg := Message{Role: RoleAssistant, ToolCalls: toolCalls}
	if content != "" || len(toolCalls) == 0 {
		msg.Content = TextContent(content)
	}
	return msg
}

// ToolMessage creates a tool result message linked to the originating
// call.
func ToolMessage(toolCallID, content string) Message {
	return Message{Role: RoleTool, Content: TextContent(content), ToolCallID: toolCallID}
}

// WithName returns a copy of the message with the participant name set.
// The receiver is unchanged.
func (m Message) WithName(name string) Message {
	m.Name = name
	return m
}

// Text returns the plain text content, or "" when the content is unset
// or consists of parts.
func (m Message) Text() string {
	if m.Content == nil || m.Content.IsParts() {
		return ""
	}
	return m.Content.Text
}

// Parts returns the multimodal content parts, or nil when the content is
// plain text or unset.
func (m Message) Parts() []ContentPart {
	if m.Content == nil {
		return nil
	}
	return m.Content.Parts
}

// ToolCall is a function call requested by the model.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall is the function name and its JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewToolCall creates a function tool call.
func NewToolCall(id, name, arguments string) ToolCall {
	return ToolCall{
		ID:   id,
		Type: "function",
		Function: FunctionCall{
			Name:      name,
			Arguments: arguments,
		},
	}
}
