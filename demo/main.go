package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vaultfeed/demo/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	apiURL := flag.String("url", "http://localhost:8080", "VaultFeed API URL")
	feed := flag.String("feed", "", "Feed URL or preset name (server default when empty)")
	limit := flag.Int("limit", 20, "Number of feed items to fetch")
	flag.Parse()

	// Create TUI model
	m := tui.NewModel(*apiURL, *feed, *limit)

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
