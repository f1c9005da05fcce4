package tripmate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
)

// TimeCapability reports the local date and time in a city. It reads the
// location block of the same WeatherAPI.com current-conditions endpoint the
// weather capability uses.
type TimeCapability struct {
	api    *WeatherAPI
	logger *slog.Logger
}

func NewTimeCapability(api *WeatherAPI) *TimeCapability {
	return &TimeCapability{api: api, logger: slog.Default()}
}

func (c *TimeCapability) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

func (c *TimeCapability) Name() string {
	return "get_time"
}

func (c *TimeCapability) Description() string {
	return "Gets the local date and time in a city"
}

func (c *TimeCapability) Parameters() []Parameter {
	return []Parameter{
		{Name: "city", Type: "string", Description: "The city to get time for"},
	}
}

func (c *TimeCapability) OpenAI() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        c.Name(),
			Description: openai.String(c.Description()),
			Parameters:  FunctionSchema[cityArgs](),
		},
	}
}

func (c *TimeCapability) Invoke(ctx context.Context, args map[string]interface{}) InvocationResult {
	city, _ := args["city"].(string)

	doc, err := c.api.Current(ctx, city)
	if err != nil {
		return c.failure(city, err)
	}

	for _, field := range []string{"location.localtime", "location.tz_id"} {
		if !doc.Get(field).Exists() {
			return c.failure(city, &ParseError{Field: field})
		}
	}

	text := fmt.Sprintf(
		"[Tool Used: TimePlugin]\nThe local time in %s is %s (%s).",
		city,
		doc.Get("location.localtime").String(),
		doc.Get("location.tz_id").String(),
	)
	return InvocationResult{Text: text}
}

func (c *TimeCapability) failure(city string, cause error) InvocationResult {
	c.logger.Error("time lookup failed", "city", city, "error", cause)
	return InvocationResult{
		Text:  fmt.Sprintf("[Tool Used: TimePlugin]\nSorry, I couldn't fetch the time for %s.", city),
		Cause: cause,
	}
}
