package tripmate

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
)

// Descriptor is the model-facing description of one registered capability.
type Descriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
}

// Registry holds the fixed set of capabilities available to an agent. It is
// populated at startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	capabilities map[string]Capability
	order        []string
}

// NewRegistry builds a registry from the given capabilities, registering
// them in order.
func NewRegistry(capabilities ...Capability) (*Registry, error) {
	r := &Registry{capabilities: make(map[string]Capability)}
	for _, c := range capabilities {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds one capability. Names must be unique within a registry.
func (r *Registry) Register(c Capability) error {
	name := c.Name()
	if name == "" {
		return fmt.Errorf("capability name is empty")
	}
	if _, exists := r.capabilities[name]; exists {
		return fmt.Errorf("capability %q: %w", name, ErrDuplicateCapability)
	}
	r.capabilities[name] = c
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the capability registered under name.
func (r *Registry) Lookup(name string) (Capability, bool) {
	c, ok := r.capabilities[name]
	return c, ok
}

// DescribeAll returns one descriptor per registered capability, in
// registration order. The agent renders these into its instructions.
func (r *Registry) DescribeAll() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		c := r.capabilities[name]
		descriptors = append(descriptors, Descriptor{
			Name:        c.Name(),
			Description: c.Description(),
			Parameters:  c.Parameters(),
		})
	}
	return descriptors
}

// Tools renders every registered capability as an OpenAI function tool, in
// registration order.
func (r *Registry) Tools() []openai.ChatCompletionToolParam {
	tools := make([]openai.ChatCompletionToolParam, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.capabilities[name].OpenAI())
	}
	return tools
}

// Invoke runs the named capability. An unknown name is a configuration
// fault and returns ErrUnknownCapability without touching any provider;
// every runtime fault is already folded into the InvocationResult.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) (InvocationResult, error) {
	c, ok := r.capabilities[name]
	if !ok {
		return InvocationResult{}, fmt.Errorf("capability %q: %w", name, ErrUnknownCapability)
	}
	return c.Invoke(ctx, args), nil
}
