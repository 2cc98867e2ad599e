package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/setsubun/internal/assets"
	"github.com/vovakirdan/setsubun/internal/config"
	"github.com/vovakirdan/setsubun/internal/core"
	"github.com/vovakirdan/setsubun/internal/session"
)

func newTestModel(t *testing.T, countdown int) (Model, *session.Lifecycle) {
	t.Helper()
	cfg := config.DefaultSetsubunConfig()
	cfg.Countdown = countdown

	screen := core.NewScreen(48, 16, cfg.Arena.Width, cfg.Arena.Height)
	loop := &session.FrameLoop{}
	prompt := &Prompter{}
	lc := session.NewLifecycle(session.Host{
		Canvas:    screen,
		Scheduler: loop,
		Prompter:  prompt,
		Loader:    assets.NewFSLoader(assets.Embedded()),
	}, cfg, 3, 60, log.New(io.Discard))
	if err := lc.Start(context.Background()); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return NewModel(lc, loop, screen, prompt, 60), lc
}

func TestTickFiresFrameAndRearms(t *testing.T) {
	m, lc := newTestModel(t, 1000)

	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick chain stopped while the round is running")
	}
	if got := lc.Current().Ticks(); got != 1 {
		t.Errorf("ticks = %d, expected 1", got)
	}
}

func TestHeaderShowsGameTitleAndRound(t *testing.T) {
	m, lc := newTestModel(t, 1000)

	want := lc.Current().Game().Title() + "  round 1"
	if !strings.Contains(m.View(), want) {
		t.Errorf("header missing %q:\n%s", want, m.View())
	}
}

func TestMouseMotionMovesPointer(t *testing.T) {
	m, lc := newTestModel(t, 1000)

	m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})

	x, y := lc.Current().Pointer()
	if x != 105 || y != 110 {
		t.Errorf("pointer = (%d, %d), expected the centre of cell (10, 5) at (105, 110)", x, y)
	}
}

func TestGameOverWaitsForConfirm(t *testing.T) {
	m, lc := newTestModel(t, 1)

	next, cmd := m.Update(TickMsg{})
	if cmd != nil {
		t.Error("tick chain should stop at game over")
	}
	m = next.(Model)
	if !m.prompt.Active() || !strings.Contains(m.View(), "GAME OVER!") {
		t.Fatalf("game over prompt not shown:\n%s", m.View())
	}

	// Stray ticks do nothing while the prompt is up.
	m.Update(TickMsg{})
	if lc.Current().Ticks() != 1 {
		t.Error("a tick ran while waiting for the player")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("confirm should restart the tick chain")
	}
	if lc.Rounds() != 2 || m.prompt.Active() {
		t.Errorf("rounds = %d, prompt active = %v", lc.Rounds(), m.prompt.Active())
	}
}

func TestConfirmWithoutPromptIsIgnored(t *testing.T) {
	m, lc := newTestModel(t, 1000)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || lc.Rounds() != 1 {
		t.Error("confirm outside of a prompt must not restart")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(t, 1000)
			next, cmd := m.Update(tc.msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("command is not tea.Quit")
			}
			if next.(Model).View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 4, 200, 40)
	s.FillText("Hi", 10, 20, "16px sans-serif", core.ColorBlack)

	out := RenderScreen(s)
	if !strings.Contains(out, "Hi") {
		t.Errorf("rendered screen lost the text:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("got %d line breaks, expected 3", got)
	}
}

func TestWindowResizeKeepsArena(t *testing.T) {
	m, lc := newTestModel(t, 1000)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 96, Height: 34})
	m = next.(Model)

	if m.screen.Width() != 96 || m.screen.Height() != 34-headerRows-footerRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if w, h := lc.Current().Game().Circle().X, lc.Current().Game().Circle().Y; w != 240 || h != 160 {
		t.Errorf("circle moved to (%d, %d) after resize", w, h)
	}
}
