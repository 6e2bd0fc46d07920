// Package schema generates JSON Schemas for chat tool definitions from
// Go types.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/skyway-ai/skyway-go/chat"
)

// Reflector is configured for tool parameter schemas.
// DoNotReference inlines all definitions to avoid $ref, which chat
// completion APIs do not resolve.
var Reflector = &jsonschema.Reflector{
	DoNotReference: true,
}

// Generate creates a JSON Schema from a Go type.
// The type should be a struct with json and jsonschema tags.
//
//	type WeatherQuery struct {
//	    City string `json:"city" jsonschema:"required,description=City name"`
//	    Unit string `json:"unit,omitempty" jsonschema:"enum=celsius,enum=fahrenheit"`
//	}
//
//	params, err := schema.Generate[WeatherQuery]()
func Generate[T any]() (json.RawMessage, error) {
	var zero T
	s := Reflector.Reflect(&zero)
	return json.Marshal(s)
}

// GenerateFromValue creates a JSON Schema from a value.
// Useful when the type is not known at compile time.
func GenerateFromValue(v any) (json.RawMessage, error) {
	s := Reflector.Reflect(v)
	return json.Marshal(s)
}

// MustGenerate is like Generate but panics on error.
// Useful for package-level schema definitions.
func MustGenerate[T any]() json.RawMessage {
	s, err := Generate[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// ToolDef builds a chat tool definition whose parameter schema is
// reflected from the Go type T.
//
//	def, err := schema.ToolDef[WeatherQuery]("get_weather", "Get weather for a city")
//	req, err := chat.NewRequest("gpt-4o").
//	    AddMessage(chat.UserMessage("Weather in Tokyo?")).
//	    Tools(def).
//	    Build()
func ToolDef[T any](name, description string) (chat.ToolDef, error) {
	params, err := Generate[T]()
	if err != nil {
		return chat.ToolDef{}, err
	}

	return chat.ToolDef{
		Type: "function",
		Function: chat.FunctionDef{
			Name:        name,
			Description: description,
			Parameters:  params,
		},
	}, nil
}

// MustToolDef is like ToolDef but panics on error.
// Useful for package-level tool definitions.
func MustToolDef[T any](name, description string) chat.ToolDef {
	def, err := ToolDef[T](name, description)
	if err != nil {
		panic(err)
	}
	return def
}
