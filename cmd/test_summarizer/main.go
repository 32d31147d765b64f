package main

import (
	"fmt"
	"log"
	"os"

	"repo-insight/internal/api"
	"repo-insight/internal/config"
	"repo-insight/internal/tree"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/test_summarizer/main.go <PROJECT_PATH> [--call]")
		fmt.Println("Example: go run cmd/test_summarizer/main.go .")
		fmt.Println("Example (with model call): go run cmd/test_summarizer/main.go . --call")
		os.Exit(1)
	}

	projectPath := os.Args[1]
	callModel := len(os.Args) >= 3 && os.Args[2] == "--call"

	structure, err := tree.Render(projectPath)
	if err != nil {
		log.Fatalf("Failed to render %s: %v", projectPath, err)
	}

	fmt.Println("=== Directory Structure ===")
	fmt.Print(structure)

	if !callModel {
		return
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		log.Fatalf("Failed to load config.json: %v", err)
	}
	ollamaURL := cfg.Ollama.URL
	if ollamaURL == "" {
		ollamaURL = config.DefaultOllamaURL
	}
	model := cfg.Ollama.Model
	if model == "" {
		model = config.DefaultOllamaModel
	}

	fmt.Printf("\nCalling %s at %s ...\n", model, ollamaURL)
	summary, err := api.CallOllama(ollamaURL, model, api.BuildSummaryPrompt(structure))
	if err != nil {
		log.Fatalf("Ollama call failed: %v", err)
	}

	fmt.Println("\n=== Summary ===")
	fmt.Println(summary)
}
