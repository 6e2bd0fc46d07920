package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textResponseFixture = `{
	"id": "chatcmpl-123",
	"object": "chat.completion",
	"created": 1719900000,
	"model": "gpt-4o",
	"system_fingerprint": "fp_44709d6fcb",
	"choices": [
		{
			"index": 0,
			"message": {"role": "assistant", "content": "Hello there!"},
			"finish_reason": "stop"
		}
	],
	"usage": {"prompt_tokens": 9, "completion_tokens": 4, "total_tokens": 13}
}`

func TestResponseUnmarshal(t *testing.T) {
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(textResponseFixture), &resp))

	assert.Equal(t, "chatcmpl-123", resp.ID)
	assert.Equal(t, "chat.completion", resp.Object)
	assert.Equal(t, int64(1719900000), resp.Created)
	assert.Equal(t, "gpt-4o", resp.Model)
	assert.Equal(t, "fp_44709d6fcb", resp.SystemFingerprint)

	require.Len(t, resp.Choices, 1)
	assert.Equal(t, 0, resp.Choices[0].Index)
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	assert.Equal(t, RoleAssistant, resp.Choices[0].Message.Role)

	assert.Equal(t, 9, resp.Usage.PromptTokens)
	assert.Equal(t, 4, resp.Usage.CompletionTokens)
	assert.Equal(t, 13, resp.Usage.TotalTokens)

	assert.Equal(t, "Hello there!", resp.Content())
	assert.Nil(t, resp.ToolCalls())
}

func TestResponseToolCalls(t *testing.T) {
	fixture := `{
		"id": "chatcmpl-456",
		"object": "chat.completion",
		"created": 1719900001,
		"model": "gpt-4o",
		"choices": [
			{
				"index": 0,
				"message": {
					"role": "assistant",
					"content": null,
					"tool_calls": [
						{
							"id": "call_w1",
							"type": "function",
							"function": {"name": "get_weather", "arguments": "{\"city\":\"Tokyo\"}"}
						}
					]
				},
				"finish_reason": "tool_calls"
			}
		],
		"usage": {"prompt_tokens": 20, "completion_tokens": 12, "total_tokens": 32}
	}`

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(fixture), &resp))

	assert.Empty(t, resp.Content())
	require.Len(t, resp.ToolCalls(), 1)
	assert.Equal(t, "call_w1", resp.ToolCalls()[0].ID)
	assert.Equal(t, "get_weather", resp.ToolCalls()[0].Function.Name)
	assert.Equal(t, `{"city":"Tokyo"}`, resp.ToolCalls()[0].Function.Arguments)
}

func TestResponseMultimodalEcho(t *testing.T) {
	// Some gateways echo request messages back; parsing a response whose
	// message content is a parts array must work.
	fixture := `{
		"id": "chatcmpl-789",
		"object": "chat.completion",
		"created": 1719900002,
		"model": "gpt-4o",
		"choices": [
			{
				"index": 0,
				"message": {
					"role": "assistant",
					"content": [
						{"type": "text", "text": "A tabby cat."}
					]
				},
				"finish_reason": "stop"
			}
		],
		"usage": {"prompt_tokens": 100, "completion_tokens": 5, "total_tokens": 105}
	}`

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(fixture), &resp))

	parts := resp.Choices[0].Message.Parts()
	require.Len(t, parts, 1)
	assert.Equal(t, Text("A tabby cat."), parts[0])
	assert.Empty(t, resp.Content(), "parts content is not flattened to text")
}

func TestFinishReasonOpaque(t *testing.T) {
	fixture := `{
		"id": "x",
		"object": "chat.completion",
		"created": 1,
		"model": "some-model",
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": "partial"},
				"finish_reason": "provider_specific_cutoff"
			}
		],
		"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
	}`

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(fixture), &resp))
	assert.Equal(t, "provider_specific_cutoff", resp.Choices[0].FinishReason)
}

func TestResponseEmptyChoices(t *testing.T) {
	resp := Response{}
	assert.Empty(t, resp.Content())
	assert.Nil(t, resp.ToolCalls())
}
