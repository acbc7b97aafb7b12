// Package tui provides the Bubble Tea integration for the cave game.
// It handles the terminal UI loop, input mapping, audio cues and the SSH
// server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragoncave/internal/levels"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// CatalogMsg carries a reloaded level catalog.
type CatalogMsg levels.Catalog

// CatalogErrMsg carries a failed catalog reload.
type CatalogErrMsg struct{ Err error }

// watchCmd waits for the next watcher result. It returns nil once the
// watcher is closed.
func watchCmd(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case c, ok := <-w.Catalogs:
			if !ok {
				return nil
			}
			return CatalogMsg(c)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return CatalogErrMsg{Err: err}
		}
	}
}
