package main

import (
	"context"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oindrieel/purulia/internal/app"
	"github.com/oindrieel/purulia/internal/config"
	"github.com/oindrieel/purulia/internal/tui"
)

func main() {
	log.Println("⏳ Initializing Purulia AI Assistant...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	brain, err := app.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer brain.Close()

	// Pipeline logs would tear the alt screen
	log.SetOutput(io.Discard)

	if _, err := tea.NewProgram(tui.New(brain.Router), tea.WithAltScreen()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Chat UI failed: %v", err)
	}
	log.SetOutput(os.Stderr)
	log.Println("🤖 Enjoy your trip to Purulia! Goodbye!")
}
