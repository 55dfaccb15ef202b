package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"chatbot_mcp/internal/model"
	"chatbot_mcp/internal/utils"
)

// emptySchema is advertised for tools that take no arguments
const emptySchema = `{"type":"object","properties":{}}`

var argValidator = utils.NewValidator()

// NoArgs is the argument type of tools that take none. Extra fields are ignored.
type NoArgs struct{}

// HandlerFunc runs a tool with decoded, validated arguments and the caller's identity
type HandlerFunc[A any] func(ctx context.Context, args A, auth model.AuthInfo) (any, error)

// ArgumentError reports arguments that failed to decode or validate
type ArgumentError struct {
	Fields map[string][]string
}

func (e *ArgumentError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, field+" "+strings.Join(msgs, ", "))
	}
	sort.Strings(parts)
	return "invalid arguments: " + strings.Join(parts, "; ")
}

// Tool is a named, typed operation exposed through tools/call
type Tool struct {
	Name        string
	Title       string
	Description string
	InputSchema json.RawMessage

	call func(ctx context.Context, raw json.RawMessage, auth model.AuthInfo) (any, error)
}

// NewTool binds a handler to its argument type A. Arguments are decoded from
// JSON into A and checked against its validate tags before fn runs.
// An empty schema advertises an argument-less object.
func NewTool[A any](name, title, description, schema string, fn HandlerFunc[A]) Tool {
	if schema == "" {
		schema = emptySchema
	}
	return Tool{
		Name:        name,
		Title:       title,
		Description: description,
		InputSchema: json.RawMessage(schema),
		call: func(ctx context.Context, raw json.RawMessage, auth model.AuthInfo) (any, error) {
			args, err := decodeArgs[A](raw)
			if err != nil {
				return nil, err
			}
			return fn(ctx, args, auth)
		},
	}
}

func decodeArgs[A any](raw json.RawMessage) (A, error) {
	var args A

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}
	if trimmed[0] != '{' {
		return args, &ArgumentError{Fields: map[string][]string{"arguments": {"must be an object"}}}
	}

	if err := json.Unmarshal(trimmed, &args); err != nil {
		if fields, ok := utils.FieldErrors(err); ok {
			return args, &ArgumentError{Fields: fields}
		}
		return args, &ArgumentError{Fields: map[string][]string{"arguments": {"must be valid JSON"}}}
	}

	if err := argValidator.Struct(args); err != nil {
		fields, ok := utils.FieldErrors(err)
		if !ok {
			return args, fmt.Errorf("validate arguments: %w", err)
		}
		return args, &ArgumentError{Fields: fields}
	}
	return args, nil
}

// Call decodes raw into the tool's arguments and runs it
func (t Tool) Call(ctx context.Context, raw json.RawMessage, auth model.AuthInfo) (any, error) {
	if t.call == nil {
		return nil, fmt.Errorf("tool %q has no handler", t.Name)
	}
	return t.call(ctx, raw, auth)
}

// Registry is an immutable, ordered set of tools
type Registry struct {
	tools  []Tool
	byName map[string]int
}

// NewRegistry builds a registry in the given order. Names must be unique.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools:  make([]Tool, 0, len(tools)),
		byName: make(map[string]int, len(tools)),
	}
	for _, t := range tools {
		if t.Name == "" {
			return nil, errors.New("tool name is required")
		}
		if t.call == nil {
			return nil, fmt.Errorf("tool %q has no handler", t.Name)
		}
		if _, dup := r.byName[t.Name]; dup {
			return nil, fmt.Errorf("duplicate tool %q", t.Name)
		}
		r.byName[t.Name] = len(r.tools)
		r.tools = append(r.tools, t)
	}
	return r, nil
}

// Lookup returns the tool registered under name
func (r *Registry) Lookup(name string) (Tool, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Names lists tool names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name
	}
	return names
}

// Tools returns the tool descriptions in registration order
func (r *Registry) Tools() []ToolInfo {
	infos := make([]ToolInfo, len(r.tools))
	for i, t := range r.tools {
		infos[i] = ToolInfo{
			Name:        t.Name,
			Title:       t.Title,
			Description: t.Description,
			InputSchema: t.InputSchema,
		}
	}
	return infos
}
