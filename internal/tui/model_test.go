//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package tui_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/list-files/internal/listing"
	"github.com/joe/list-files/internal/tui"
	"github.com/joe/list-files/internal/tui/shared"
	"github.com/joe/list-files/pkg/filesystem"
)

func TestListModel_InitListensAndSpins(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	model := tui.NewListModel("/proj", false, bridge, nil)
	g.Expect(model.Init()).NotTo(BeNil())
}

func TestListModel_CountsFoundEntries(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	var model tea.Model = tui.NewListModel("/proj", false, bridge, nil)

	model, cmd := model.Update(shared.EngineEventMsg{Event: listing.EntryFound{
		Entry: listing.Entry{Path: "/proj/src/a.go"},
		Count: 1,
	}})
	g.Expect(cmd).NotTo(BeNil(), "keeps listening for events")

	model, _ = model.Update(shared.EngineEventMsg{Event: listing.EntryFound{
		Entry: listing.Entry{Path: "/proj/src/b.go"},
		Count: 2,
	}})

	g.Expect(model.(tui.ListModel).Count()).To(Equal(2))

	view := model.View()
	g.Expect(view).To(ContainSubstring("Listing /proj"))
	g.Expect(view).To(ContainSubstring("2 files"))
	g.Expect(view).To(ContainSubstring("/proj/src/b.go"))
}

func TestListModel_ShowsSkipped(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	var model tea.Model = tui.NewListModel("/proj", false, bridge, nil)

	model, _ = model.Update(shared.EngineEventMsg{Event: listing.EntrySkipped{Path: "/proj/locked"}})
	g.Expect(model.View()).To(ContainSubstring("1 skipped"))
}

func TestListModel_StartedEventSetsRootAndMode(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	var model tea.Model = tui.NewListModel("", false, bridge, nil)

	model, _ = model.Update(shared.EngineEventMsg{Event: listing.ListStarted{Root: "/srv", Dirs: true}})
	g.Expect(model.View()).To(ContainSubstring("Listing /srv"))
	g.Expect(model.View()).To(ContainSubstring("0 directories"))
}

func TestListModel_DoneQuitsWithSummary(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	var model tea.Model = tui.NewListModel("/proj", false, bridge, nil)

	model, cmd := model.Update(tui.ListDoneMsg{Result: &listing.Result{
		Count:    3,
		Skipped:  1,
		Bytes:    2048,
		Duration: 2 * time.Second,
	}})
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(cmd()).To(Equal(tea.Quit()))

	g.Expect(model.(tui.ListModel).Done()).To(BeTrue())

	view := model.View()
	g.Expect(view).To(ContainSubstring("3 files, 2.0 KiB in 2s"))
	g.Expect(view).To(ContainSubstring("1 unreadable skipped"))
}

func TestListModel_DoneWithError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	var model tea.Model = tui.NewListModel("/proj", false, bridge, nil)

	model, _ = model.Update(tui.ListDoneMsg{Result: &listing.Result{Count: 1}, Err: errors.New("boom")})
	g.Expect(model.View()).To(ContainSubstring("Listing failed after 1 file"))
}

func TestListModel_QuitKeyCancels(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		t.Run(key.String(), func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			bridge := shared.NewEventBridge()
			defer bridge.Close()

			cancelled := false

			var model tea.Model = tui.NewListModel("/proj", false, bridge, func() { cancelled = true })

			model, cmd := model.Update(key)
			g.Expect(cancelled).To(BeTrue())
			g.Expect(model.(tui.ListModel).Cancelled()).To(BeTrue())
			g.Expect(cmd()).To(Equal(tea.Quit()))
		})
	}
}

func TestListModel_OtherKeysIgnored(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	var model tea.Model = tui.NewListModel("/proj", false, bridge, func() { t.Fatal("unexpected cancel") })

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	g.Expect(cmd).To(BeNil())
	g.Expect(model.(tui.ListModel).Cancelled()).To(BeFalse())
}

func TestListModel_NarrowWindowTruncatesPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	var model tea.Model = tui.NewListModel("/proj", false, bridge, nil)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 24, Height: 10})
	model, _ = model.Update(shared.EngineEventMsg{Event: listing.EntryFound{
		Entry: listing.Entry{Path: "/proj/a/very/deep/directory/tree/file.go"},
		Count: 1,
	}})

	g.Expect(model.View()).To(ContainSubstring("...tory/tree/file.go"))
}

func TestRun_ListsWithProgressView(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	src := filesystem.NewMockSource()
	src.AddFile("/proj/a.go", []byte("package a"))
	src.AddFile("/proj/sub/b.go", []byte("package b"))

	engine := listing.NewEngineWithSource("/proj", []string{"**/*.go"}, src)

	var paths []string

	var out bytes.Buffer

	result, err := tui.Run(context.Background(), engine, func(entry listing.Entry) error {
		paths = append(paths, entry.Path)
		return nil
	}, tea.WithInput(nil), tea.WithOutput(&out), tea.WithoutSignalHandler())
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.Count).To(Equal(2))
	g.Expect(paths).To(Equal([]string{"/proj/a.go", "/proj/sub/b.go"}))

	// The engine's emitter is restored afterwards.
	g.Expect(engine.GetEventEmitter()).To(BeNil())
}
