package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	var url string
	var interval time.Duration
	flag.StringVar(&url, "url", "http://localhost:8080", "Backend base URL")
	flag.DurationVar(&interval, "interval", 5*time.Second, "Poll interval")
	flag.Parse()

	p := tea.NewProgram(initialModel(url, interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}
