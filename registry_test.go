package tripmate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
)

// fakeCapability is a scripted capability for registry and agent tests.
type fakeCapability struct {
	name        string
	description string
	result      InvocationResult
	invocations []map[string]interface{}
	invokeLog   *[]string
}

func (f *fakeCapability) Name() string {
	return f.name
}

func (f *fakeCapability) Description() string {
	return f.description
}

func (f *fakeCapability) Parameters() []Parameter {
	return []Parameter{
		{Name: "city", Type: "string", Description: "The city to look up"},
	}
}

func (f *fakeCapability) OpenAI() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        f.name,
			Description: openai.String(f.description),
			Parameters:  FunctionSchema[cityArgs](),
		},
	}
}

func (f *fakeCapability) Invoke(ctx context.Context, args map[string]interface{}) InvocationResult {
	f.invocations = append(f.invocations, args)
	if f.invokeLog != nil {
		*f.invokeLog = append(*f.invokeLog, f.name)
	}
	return f.result
}

func TestRegistryDescribeAllOrder(t *testing.T) {
	names := []string{"get_weather", "get_time", "get_currency"}
	capabilities := make([]Capability, 0, len(names))
	for _, name := range names {
		capabilities = append(capabilities, &fakeCapability{name: name, description: "does " + name})
	}

	registry, err := NewRegistry(capabilities...)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	descriptors := registry.DescribeAll()
	if len(descriptors) != len(names) {
		t.Fatalf("expected %d descriptors, got %d", len(names), len(descriptors))
	}
	for i, name := range names {
		if descriptors[i].Name != name {
			t.Errorf("descriptor %d: expected %q, got %q", i, name, descriptors[i].Name)
		}
		if descriptors[i].Description != "does "+name {
			t.Errorf("descriptor %d: unexpected description %q", i, descriptors[i].Description)
		}
		if len(descriptors[i].Parameters) != 1 || descriptors[i].Parameters[0].Name != "city" {
			t.Errorf("descriptor %d: unexpected parameters %+v", i, descriptors[i].Parameters)
		}
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	registry, err := NewRegistry(&fakeCapability{name: "get_weather"})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	err = registry.Register(&fakeCapability{name: "get_weather"})
	if !errors.Is(err, ErrDuplicateCapability) {
		t.Fatalf("expected ErrDuplicateCapability, got %v", err)
	}
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	registry, _ := NewRegistry()
	if err := registry.Register(&fakeCapability{}); err == nil {
		t.Fatal("expected an error for an empty capability name")
	}
}

func TestRegistryInvokeDelegates(t *testing.T) {
	capability := &fakeCapability{
		name:   "get_weather",
		result: InvocationResult{Text: "[Tool Used: WeatherPlugin]\nSunny."},
	}
	registry, _ := NewRegistry(capability)

	result, err := registry.Invoke(context.Background(), "get_weather", map[string]interface{}{"city": "Lisbon"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if !result.Success() {
		t.Fatalf("expected success, got cause %v", result.Cause)
	}
	if result.Text != capability.result.Text {
		t.Errorf("unexpected result text %q", result.Text)
	}
	if len(capability.invocations) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(capability.invocations))
	}
	if capability.invocations[0]["city"] != "Lisbon" {
		t.Errorf("unexpected args %+v", capability.invocations[0])
	}
}

func TestRegistryInvokeUnknownCallsNoProvider(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	api := NewWeatherAPIWithBaseURL("test-key", server.URL)
	registry, _ := NewRegistry(NewWeatherCapability(api))

	_, err := registry.Invoke(context.Background(), "get_flights", map[string]interface{}{"city": "Lisbon"})
	if !errors.Is(err, ErrUnknownCapability) {
		t.Fatalf("expected ErrUnknownCapability, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no provider calls, got %d", calls)
	}
}

func TestRegistryInvokeWeatherEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current": {"condition": {"text": "Sunny"}, "temp_f": 70, "feelslike_f": 68, "humidity": 50, "wind_mph": 5}}`))
	}))
	defer server.Close()

	api := NewWeatherAPIWithBaseURL("test-key", server.URL)
	registry, _ := NewRegistry(NewWeatherCapability(api), NewTimeCapability(api))

	result, err := registry.Invoke(context.Background(), "get_weather", map[string]interface{}{"city": "San Francisco"})
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	want := "[Tool Used: WeatherPlugin]\nThe weather in San Francisco is Sunny with a temperature of 70°F (feels like 68°F). Humidity is 50% with winds at 5 mph."
	if result.Text != want {
		t.Errorf("unexpected text:\n got: %q\nwant: %q", result.Text, want)
	}
}

func TestRegistryLookup(t *testing.T) {
	capability := &fakeCapability{name: "get_time"}
	registry, _ := NewRegistry(capability)

	if got, ok := registry.Lookup("get_time"); !ok || got != Capability(capability) {
		t.Fatalf("expected to find get_time, got %v %v", got, ok)
	}
	if _, ok := registry.Lookup("get_weather"); ok {
		t.Fatal("expected lookup miss for get_weather")
	}
}
