// Package agent exposes the demo dataset as callable grounding tools, in the
// shape agent frameworks expect: a name, a description, a JSON Schema for the
// arguments, and an invoke function.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool defines a callable function that can be exposed to an LLM agent.
type Tool interface {
	// Name returns the function name as exposed to the model.
	Name() string

	// Description returns a human-readable description for the model.
	Description() string

	// Parameters returns the JSON Schema describing the function's input.
	Parameters() json.RawMessage

	// Invoke calls the function with the given JSON arguments.
	Invoke(ctx context.Context, args json.RawMessage) (interface{}, error)
}

// FunctionTool is a Tool backed by a Go function.
type FunctionTool struct {
	name        string
	description string
	parameters  json.RawMessage
	fn          func(ctx context.Context, args json.RawMessage) (interface{}, error)
}

func NewTool(name, description string, parameters json.RawMessage, fn func(ctx context.Context, args json.RawMessage) (interface{}, error)) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		parameters:  parameters,
		fn:          fn,
	}
}

func (t *FunctionTool) Name() string                { return t.name }
func (t *FunctionTool) Description() string         { return t.description }
func (t *FunctionTool) Parameters() json.RawMessage { return t.parameters }

func (t *FunctionTool) Invoke(ctx context.Context, args json.RawMessage) (interface{}, error) {
	if t.fn == nil {
		return nil, fmt.Errorf("tool %s has no backing function", t.name)
	}

	return t.fn(ctx, args)
}

// Registry holds the tools available to an agent, preserving registration
// order for the catalog listing.
type Registry struct {
	tools map[string]Tool
	order []string
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{
		tools: make(map[string]Tool),
	}

	for _, tool := range tools {
		r.Register(tool)
	}

	return r
}

func (r *Registry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.order = append(r.order, tool.Name())
	}

	r.tools[tool.Name()] = tool
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]

	return tool, ok
}

func (r *Registry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))

	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}

	return tools
}

// ToolDescriptor is the catalog entry served for one tool.
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

func (r *Registry) Descriptors() []*ToolDescriptor {
	descriptors := make([]*ToolDescriptor, 0, len(r.order))

	for _, tool := range r.List() {
		descriptors = append(descriptors, &ToolDescriptor{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}

	return descriptors
}
