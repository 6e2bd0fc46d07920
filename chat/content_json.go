package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The wire format for a content part carries a "type" discriminator next
// to the variant payload:
//
//	{"type":"text","text":"..."}
//	{"type":"image_url","image_url":{"url":"...","detail":"high"}}
//	{"type":"file","file":{"mime_type":"...","file_data":"..."}}
//
// Marshaling injects the discriminator; unmarshaling reads it first and
// then decodes the element against the matching variant. Generic
// reflection-based decoding cannot recover the variant from the array
// element on its own, so the dispatch is explicit.

// MarshalJSON emits the part with its "text" discriminator.
func (p TextPart) MarshalJSON() ([]byte, error) {
	type textPart TextPart
	return json.Marshal(struct {
		Type string `json:"type"`
		textPart
	}{Type: p.Type(), textPart: textPart(p)})
}

// MarshalJSON emits the part with its "image_url" discriminator.
func (p ImagePart) MarshalJSON() ([]byte, error) {
	type imagePart ImagePart
	return json.Marshal(struct {
		Type string `json:"type"`
		imagePart
	}{Type: p.Type(), imagePart: imagePart(p)})
}

// MarshalJSON emits the part with its "file" discriminator.
func (p FilePart) MarshalJSON() ([]byte, error) {
	type filePart FilePart
	return json.Marshal(struct {
		Type string `json:"type"`
		filePart
	}{Type: p.Type(), filePart: filePart(p)})
}

// DecodeContentPart decodes a single content part object, resolving the
// concrete variant from its "type" discriminator. A missing discriminator
// or an unrecognized value is an error, never a silently substituted
// default.
func DecodeContentPart(data []byte) (ContentPart, error) {
	var probe struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding content part: %w", err)
	}
	if probe.Type == nil {
		return nil, ErrMissingContentType
	}

	switch *probe.Type {
	case "text":
		var p TextPart
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding text part: %w", err)
		}
		return p, nil
	case "image_url":
		var p ImagePart
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding image_url part: %w", err)
		}
		return p, nil
	case "file":
		var p FilePart
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decoding file part: %w", err)
		}
		return p, nil
	default:
		return nil, &UnknownContentTypeError{Type: *probe.Type}
	}
}

// MessageContent is a message's polymorphic content field: either plain
// text or an ordered sequence of content parts, never both. A nil
// *MessageContent on a Message stands for JSON null (tool-call-only
// assistant turns).
type MessageContent struct {
	Text  string
	Parts []ContentPart
}

// TextContent wraps plain text as message content.
func TextContent(text string) *MessageContent {
	return &MessageContent{Text: text}
}

// PartsContent wraps a sequence of content parts as message content.
func PartsContent(parts ...ContentPart) *MessageContent {
	return &MessageContent{Parts: parts}
}

// IsParts reports whether the content is a sequence of parts rather than
// plain text.
func (c *MessageContent) IsParts() bool {
	return c != nil && c.Parts != nil
}

// MarshalJSON emits either the plain string or the parts array.
func (c MessageContent) MarshalJSON() ([]byte, error) {
	if c.Parts != nil {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

// UnmarshalJSON inspects the JSON shape: a string scalar stays a string,
// an array is decoded element-by-element through the discriminator
// dispatch, and anything else is an error.
func (c *MessageContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrContentShape
	}

	switch trimmed[0] {
	case '"':
		c.Parts = nil
		return json.Unmarshal(trimmed, &c.Text)
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return fmt.Errorf("decoding content array: %w", err)
		}
		parts := make([]ContentPart, 0, len(elems))
		for _, elem := range elems {
			part, err := DecodeContentPart(elem)
			if err != nil {
				return err
			}
			parts = append(parts, part)
		}
		c.Text = ""
		c.Parts = parts
		return nil
	case 'n':
		// JSON null. encoding/json normally short-circuits null for
		// pointer fields; kept for direct unmarshaling into a value.
		*c = MessageContent{}
		return nil
	default:
		return ErrContentShape
	}
}
