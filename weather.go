package tripmate

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/openai/openai-go"
	"github.com/tidwall/gjson"
)

// cityArgs is the argument payload shared by the weather and time
// capabilities. The model fills it in when it issues a tool call.
type cityArgs struct {
	City string `json:"city" jsonschema_description:"The city to get information for"`
}

// WeatherCapability reports current conditions in a city via WeatherAPI.com.
type WeatherCapability struct {
	api    *WeatherAPI
	logger *slog.Logger
}

func NewWeatherCapability(api *WeatherAPI) *WeatherCapability {
	return &WeatherCapability{api: api, logger: slog.Default()}
}

func (c *WeatherCapability) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

func (c *WeatherCapability) Name() string {
	return "get_weather"
}

func (c *WeatherCapability) Description() string {
	return "Gets the current weather in a city"
}

func (c *WeatherCapability) Parameters() []Parameter {
	return []Parameter{
		{Name: "city", Type: "string", Description: "The city to get weather for"},
	}
}

func (c *WeatherCapability) OpenAI() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        c.Name(),
			Description: openai.String(c.Description()),
			Parameters:  FunctionSchema[cityArgs](),
		},
	}
}

// Invoke fetches current conditions and renders them as a single sentence.
// Every fault ends up as an apologetic Failure naming the city; the cause
// is logged here and goes no further.
func (c *WeatherCapability) Invoke(ctx context.Context, args map[string]interface{}) InvocationResult {
	city, _ := args["city"].(string)

	doc, err := c.api.Current(ctx, city)
	if err != nil {
		return c.failure(city, err)
	}

	fields := []string{
		"current.condition.text",
		"current.temp_f",
		"current.feelslike_f",
		"current.humidity",
		"current.wind_mph",
	}
	for _, field := range fields {
		if !doc.Get(field).Exists() {
			return c.failure(city, &ParseError{Field: field})
		}
	}

	text := fmt.Sprintf(
		"[Tool Used: WeatherPlugin]\nThe weather in %s is %s with a temperature of %s°F (feels like %s°F). Humidity is %s%% with winds at %s mph.",
		city,
		doc.Get("current.condition.text").String(),
		formatNumber(doc.Get("current.temp_f")),
		formatNumber(doc.Get("current.feelslike_f")),
		formatNumber(doc.Get("current.humidity")),
		formatNumber(doc.Get("current.wind_mph")),
	)
	return InvocationResult{Text: text}
}

func (c *WeatherCapability) failure(city string, cause error) InvocationResult {
	c.logger.Error("weather lookup failed", "city", city, "error", cause)
	return InvocationResult{
		Text:  fmt.Sprintf("[Tool Used: WeatherPlugin]\nSorry, I couldn't fetch the weather for %s.", city),
		Cause: cause,
	}
}

// formatNumber renders a JSON number without a trailing ".0" so whole
// values read the way the provider sent them.
func formatNumber(v gjson.Result) string {
	return strconv.FormatFloat(v.Float(), 'f', -1, 64)
}
