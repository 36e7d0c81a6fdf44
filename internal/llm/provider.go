// Package llm wraps the chat model backends used to interpret goals,
// break topics into weekly roadmaps and answer study questions.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Provider is implemented by every backend and by the decorators that
// wrap them.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the
	// response Content holds a JSON object validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string

	// Name returns the backend name, e.g. "openai" or "ollama".
	Name() string
}

// Request describes a single chat completion.
type Request struct {
	System   string
	Messages []Message

	// Schema asks for a JSON object. Nil means free text.
	Schema *Schema

	MaxTokens int

	// Temperature in the range 0.0 - 1.0. Zero leaves the backend default.
	Temperature float64
}

// Prompt builds a single-turn request.
func Prompt(system, user string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: user}},
	}
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the response object must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "goal-interpretation".
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds one model reply.
type Response struct {
	// Text is the raw reply as returned by the model.
	Text string

	// Content is the extracted and validated JSON object. Nil for
	// free-text requests.
	Content json.RawMessage

	Usage Usage
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Decode unmarshals the structured content into v.
func (r *Response) Decode(v any) error {
	if len(r.Content) == 0 {
		return &ErrInvalidResponse{Err: fmt.Errorf("response has no JSON content")}
	}
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: err}
	}
	return nil
}

var errNoObject = errors.New("no JSON object in reply")

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish turns raw model text into a Response for req. Structured
// requests get their JSON object extracted and validated; a reply cut
// off by the token limit is reported as ErrMaxTokensExceeded.
func finish(req Request, text, model, stop string, usage Usage) (*Response, error) {
	resp := &Response{
		Text:       text,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}
	if req.Schema == nil {
		return resp, nil
	}

	obj, ok := ExtractJSONObject(text)
	if !ok {
		if stop == "max_tokens" {
			return nil, &ErrMaxTokensExceeded{Content: json.RawMessage(text)}
		}
		return nil, &ErrInvalidResponse{Content: json.RawMessage(text), Err: errNoObject}
	}
	if err := validateResponse(req.Schema, obj); err != nil {
		return nil, err
	}
	resp.Content = obj
	return resp, nil
}
