package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/list-files/internal/listing"
	"github.com/joe/list-files/internal/tui/shared"
)

// ListDoneMsg is sent when the engine's Run returns.
type ListDoneMsg struct {
	Result *listing.Result
	Err    error
}

// ListModel shows a spinner, the running entry count and the last path found
// while a listing runs, then a one-line summary.
type ListModel struct {
	root      string
	dirs      bool
	bridge    *shared.EventBridge
	cancel    func()
	spinner   spinner.Model
	count     int
	skipped   int
	lastPath  string
	width     int
	result    *listing.Result
	err       error
	done      bool
	cancelled bool
}

// NewListModel creates the progress model. cancel is called when the user quits early.
func NewListModel(root string, dirs bool, bridge *shared.EventBridge, cancel func()) ListModel {
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(shared.SpinnerStyle()),
	)

	return ListModel{
		root:    root,
		dirs:    dirs,
		bridge:  bridge,
		cancel:  cancel,
		spinner: spin,
	}
}

// Cancelled reports whether the user stopped the listing.
func (m ListModel) Cancelled() bool {
	return m.cancelled
}

// Count returns the number of entries seen so far.
func (m ListModel) Count() int {
	return m.count
}

// Done reports whether the listing has finished.
func (m ListModel) Done() bool {
	return m.done
}

// Init implements tea.Model
func (m ListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.bridge.ListenCmd())
}

// Update implements tea.Model
func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case shared.KeyCtrlC, shared.KeyEsc, shared.KeyQuit:
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}

			return m, tea.Quit
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case shared.EngineEventMsg:
		m.handleEvent(msg.Event)
		return m, m.bridge.ListenCmd()

	case ListDoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err

		if msg.Result != nil {
			m.count = msg.Result.Count
			m.skipped = msg.Result.Skipped
		}

		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m ListModel) View() string {
	if m.done {
		return m.summary() + "\n"
	}

	var builder strings.Builder

	builder.WriteString(m.spinner.View())
	builder.WriteString(" ")
	builder.WriteString(shared.RenderLabel("Listing " + m.root))
	builder.WriteString("  ")
	builder.WriteString(shared.FormatCount(m.count, m.dirs))

	if m.skipped > 0 {
		builder.WriteString("  ")
		builder.WriteString(shared.RenderWarning(fmt.Sprintf("%d skipped", m.skipped)))
	}

	if m.lastPath != "" {
		builder.WriteString("\n  ")
		builder.WriteString(shared.RenderDim(shared.TruncatePath(m.lastPath, m.pathWidth())))
	}

	builder.WriteString("\n")

	return builder.String()
}

func (m *ListModel) handleEvent(event listing.Event) {
	switch event := event.(type) {
	case listing.ListStarted:
		m.root = event.Root
		m.dirs = event.Dirs
	case listing.EntryFound:
		m.count = event.Count
		m.lastPath = event.Entry.Path
	case listing.EntrySkipped:
		m.skipped++
	}
}

func (m ListModel) pathWidth() int {
	if m.width == 0 {
		return shared.DefaultPathWidth
	}

	return max(m.width-shared.PathWidthMargin, shared.MinPathWidth)
}

func (m ListModel) summary() string {
	if m.err != nil {
		return shared.RenderError("✗ Listing failed after " + shared.FormatCount(m.count, m.dirs))
	}

	line := "✓ " + shared.FormatCount(m.count, m.dirs)
	if m.result != nil {
		if !m.dirs {
			line += ", " + shared.FormatBytes(m.result.Bytes)
		}

		line += " in " + shared.FormatDuration(m.result.Duration)
	}

	out := shared.RenderSuccess(line)
	if m.skipped > 0 {
		out += "  " + shared.RenderWarning(fmt.Sprintf("%d unreadable skipped", m.skipped))
	}

	return out
}
