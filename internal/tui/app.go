// Package tui renders a live progress view while a listing runs.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/list-files/internal/listing"
	"github.com/joe/list-files/internal/tui/shared"
)

// Run lists with engine while showing the progress view, handing every entry
// to visit. It returns once the listing has stopped. Quitting the view
// cancels the listing, which then reports listing.ErrListCancelled.
func Run(ctx context.Context, engine *listing.Engine, visit func(listing.Entry) error, opts ...tea.ProgramOption) (*listing.Result, error) {
	bridge := shared.NewEventBridge()
	defer bridge.Close()

	previous := engine.GetEventEmitter()
	engine.SetEventEmitter(bridge)

	defer engine.SetEventEmitter(previous)

	model := NewListModel(engine.Root, engine.Dirs, bridge, engine.Cancel)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	var (
		result *listing.Result
		runErr error
	)

	done := make(chan struct{})

	go func() {
		defer close(done)

		result, runErr = engine.Run(ctx, visit)
		program.Send(ListDoneMsg{Result: result, Err: runErr})
	}()

	_, viewErr := program.Run()

	// The view may exit first (user quit, context done); stop the walk and wait for it.
	engine.Cancel()
	<-done

	if runErr != nil {
		return result, runErr
	}

	if viewErr != nil {
		return result, fmt.Errorf("progress view failed: %w", viewErr)
	}

	return result, nil
}
