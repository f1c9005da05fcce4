package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/helmsman-ai/tripmate"
	"github.com/joho/godotenv"
)

// userInputs scripts the demo conversation. Each entry is one full turn,
// completed before the next begins.
var userInputs = []string{
	"Hi there!",
	"What's the weather and time in San Francisco?",
	"How about Lisbon?",
	"Thanks!",
}

const instructions = "You're a helpful travel assistant that uses tools to provide real-time information. " +
	"Provide helpful packing advice based on weather and time as well."

const defaultModel = "gpt-4o"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, falling back to environment variables")
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}
	weatherKey := os.Getenv("WEATHER_API_KEY")
	if weatherKey == "" {
		log.Fatal("WEATHER_API_KEY is not set")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	api := tripmate.NewWeatherAPI(weatherKey)
	registry, err := tripmate.NewRegistry(
		tripmate.NewWeatherCapability(api),
		tripmate.NewTimeCapability(api),
	)
	if err != nil {
		log.Fatalf("Failed to build capability registry: %v", err)
	}

	agent := tripmate.NewAgent("TravelBot", instructions, registry)
	llm := tripmate.NewLLM(openAIKey, os.Getenv("OPENAI_BASE_URL"))

	session, err := tripmate.NewSession(agent, llm, model)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	ctx := context.Background()
	for _, userInput := range userInputs {
		fmt.Printf("# User: %s\n", userInput)
		reply, err := session.Ask(ctx, userInput)
		if err != nil {
			log.Fatalf("Turn failed: %v", err)
		}
		fmt.Printf("# %s: %s\n", agent.Name(), reply)
	}
}
