// Package chat defines the request and response types for the Skyway AI
// Gateway chat completions API, including the polymorphic multimodal
// content model.
package chat

import "encoding/base64"

// ContentPart is one item of multimodal message content.
// The set of implementations is closed: TextPart, ImagePart and FilePart.
// Construct parts through the factory functions (Text, Image, ImageBase64,
// File, FileBytes, ...) so the wire discriminator always matches the
// variant.
type ContentPart interface {
	// Type returns the wire discriminator ("text", "image_url" or "file").
	Type() string

	isContentPart()
}

// Detail is the image resolution level requested from the model.
type Detail string

const (
	// DetailAuto lets the model pick the resolution.
	DetailAuto Detail = "auto"
	// DetailLow uses fewer tokens for faster processing.
	DetailLow Detail = "low"
	// DetailHigh uses more tokens for detailed analysis.
	DetailHigh Detail = "high"
)

// TextPart is a text content part.
type TextPart struct {
	Text string `json:"text"`
}

// Type returns the wire discriminator for TextPart.
func (TextPart) Type() string { return "text" }

func (TextPart) isContentPart() {}

// ImagePart is an image content part, referenced by URL or embedded as a
// base64 data URI.
type ImagePart struct {
	ImageURL ImageURL `json:"image_url"`
}

// ImageURL holds the image location and the requested detail level.
type ImageURL struct {
	// URL is an https URL or a data URI (data:image/png;base64,...).
	URL string `json:"url"`
	// Detail is omitted from the wire format when unset.
	Detail Detail `json:"detail,omitempty"`
}

// Type returns the wire discriminator for ImagePart.
func (ImagePart) Type() string { return "image_url" }

func (ImagePart) isContentPart() {}

// FilePart is a document content part (PDF, text, CSV, ...).
type FilePart struct {
	File FileData `json:"file"`
}

// FileData holds the file MIME type and payload.
type FileData struct {
	MIMEType string `json:"mime_type"`
	// Data is base64-encoded for binary MIME types and raw text for
	// text/* types. The library does not validate this; it is the
	// caller's contract with the remote provider.
	Data string `json:"file_data"`
}

// Type returns the wire discriminator for FilePart.
func (FilePart) Type() string { return "file" }

func (FilePart) isContentPart() {}

// Text creates a text content part.
func Text(text string) TextPart {
	return TextPart{Text: text}
}

// Image creates an image content part from a URL. The URL is passed
// through verbatim.
func Image(url string) ImagePart {
	return ImagePart{ImageURL: ImageURL{URL: url}}
}

// ImageWithDetail creates an image content part from a URL with a detail
// level.
func ImageWithDetail(url string, detail Detail) ImagePart {
	return ImagePart{ImageURL: ImageURL{URL: url, Detail: detail}}
}

// ImageBase64 creates an image content part from base64-encoded data.
// The URL is synthesized as a data URI:
//
//	chat.ImageBase64("image/png", base64Data)
//	// produces: "data:image/png;base64,..."
//
// base64Data is not validated here; malformed data fails at the remote
// service, not in this factory.
func ImageBase64(mediaType, base64Data string) ImagePart {
	return Image("data:" + mediaType + ";base64," + base64Data)
}

// ImageBase64WithDetail creates an image content part from base64-encoded
// data with a detail level.
func ImageBase64WithDetail(mediaType, base64Data string, detail Detail) ImagePart {
	return ImageWithDetail("data:"+mediaType+";base64,"+base64Data, detail)
}

// File creates a file content part.
//
//	// PDF
//	chat.File("application/pdf", base64PDFData)
//
//	// Plain text
//	chat.File("text/plain", "This is a plain text file")
//
// fileData must be base64-encoded for binary MIME types and raw text for
// text/* types.
func File(mimeType, fileData string) FilePart {
	return FilePart{File: FileData{MIMEType: mimeType, Data: fileData}}
}

// PDF creates a PDF file content part from base64-encoded data.
func PDF(base64Data string) FilePart {
	return File("application/pdf", base64Data)
}

// FileBytes creates a file content part from raw bytes, base64-encoding
// them.
func FileBytes(mimeType string, data []byte) FilePart {
	return File(mimeType, base64.StdEncoding.EncodeToString(data))
}
