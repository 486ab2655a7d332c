package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- MAIN --------------------

func main() {
	m := newModel()
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	if m.bridge != nil {
		m.bridge.Close()
	}
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
