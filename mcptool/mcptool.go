// Package mcptool bridges Model Context Protocol servers and the chat
// completions API: MCP server tools become chat tool definitions, and
// tool calls returned by the model are dispatched back to the MCP
// session. The dispatch loop itself belongs to the caller or an
// orchestration framework; this package only delegates single calls.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skyway-ai/skyway-go/chat"
)

// Client wraps an MCP client session.
type Client struct {
	mcpClient *mcp.Client
	session   *mcp.ClientSession
	timeout   time.Duration
}

// Option configures the MCP client.
type Option func(*clientConfig)

type clientConfig struct {
	timeout time.Duration
}

// WithTimeout sets the per-call timeout for tool execution.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// NewStdioClient starts an MCP server subprocess and connects to it over
// stdio.
//
//	client, err := mcptool.NewStdioClient(ctx, "./my-mcp-server", nil)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	defs, err := client.ToolDefs(ctx)
func NewStdioClient(ctx context.Context, command string, args []string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	mcpClient := mcp.NewClient(&mcp.Implementation{
		Name:    "skyway-go",
		Version: "0.1.0",
	}, nil)

	cmd := exec.Command(command, args...)
	transport := &mcp.CommandTransport{
		Command: cmd,
	}

	session, err := mcpClient.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to MCP server: %w", err)
	}

	return &Client{
		mcpClient: mcpClient,
		session:   session,
		timeout:   cfg.timeout,
	}, nil
}

// ToolDefs lists the server's tools as chat tool definitions, ready for
// chat.Builder.Tools.
func (c *Client) ToolDefs(ctx context.Context) ([]chat.ToolDef, error) {
	result, err := c.session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, fmt.Errorf("listing MCP tools: %w", err)
	}

	defs := make([]chat.ToolDef, 0, len(result.Tools))
	for _, tool := range result.Tools {
		defs = append(defs, chat.ToolDef{
			Type: "function",
			Function: chat.FunctionDef{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  inputSchema(tool),
			},
		})
	}

	return defs, nil
}

// CallTool executes one model-requested tool call against the MCP
// session and wraps the result as a tool-role message linked to the
// call's ID.
func (c *Client) CallTool(ctx context.Context, call chat.ToolCall) (chat.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var arguments map[string]any
	if err := json.Unmarshal([]byte(call.Function.Arguments), &arguments); err != nil {
		return chat.Message{}, fmt.Errorf("parsing arguments for %s: %w", call.Function.Name, err)
	}

	result, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      call.Function.Name,
		Arguments: arguments,
	})
	if err != nil {
		return chat.Message{}, fmt.Errorf("calling MCP tool %s: %w", call.Function.Name, err)
	}

	combined := renderContent(result.Content)
	if result.IsError {
		return chat.Message{}, fmt.Errorf("MCP tool %s: %s", call.Function.Name, combined)
	}

	return chat.ToolMessage(call.ID, combined), nil
}

// CallTools executes each call in order, turning individual failures
// into error-content tool messages so the conversation can continue.
func (c *Client) CallTools(ctx context.Context, calls []chat.ToolCall) ([]chat.Message, error) {
	if len(calls) == 0 {
		return nil, nil
	}

	messages := make([]chat.Message, 0, len(calls))
	for _, call := range calls {
		msg, err := c.CallTool(ctx, call)
		if err != nil {
			msg = chat.ToolMessage(call.ID, fmt.Sprintf("Error: %v", err))
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Close closes the MCP session.
func (c *Client) Close() error {
	return c.session.Close()
}

// inputSchema marshals the MCP input schema for the tool definition,
// falling back to an open object schema.
func inputSchema(tool *mcp.Tool) json.RawMessage {
	if tool.InputSchema == nil {
		return json.RawMessage(`{"type":"object"}`)
	}

	raw, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return json.RawMessage(`{"type":"object"}`)
	}
	return raw
}

// renderContent flattens MCP tool result content into text. Multiple
// items are joined with newlines; non-text content (images, resources)
// is represented as descriptive text.
func renderContent(content []mcp.Content) string {
	var parts []string
	for _, c := range content {
		switch item := c.(type) {
		case *mcp.TextContent:
			parts = append(parts, item.Text)
		case *mcp.ImageContent:
			parts = append(parts, fmt.Sprintf("[Image: %s, %d bytes]", item.MIMEType, len(item.Data)))
		case *mcp.EmbeddedResource:
			if item.Resource != nil {
				parts = append(parts, fmt.Sprintf("[Resource: %s]", item.Resource.URI))
			} else {
				parts = append(parts, "[Resource: embedded]")
			}
		}
	}
	return strings.Join(parts, "\n")
}
