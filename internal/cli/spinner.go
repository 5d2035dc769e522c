package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerTickMsg time.Time

type spinnerDoneMsg struct{}

// spinnerModel is a minimal bubbletea program that animates a braille
// spinner alongside a label until the caller signals completion on done.
type spinnerModel struct {
	label string
	frame int
	done  <-chan struct{}
}

func newSpinnerModel(label string, done <-chan struct{}) spinnerModel {
	return spinnerModel{label: label, done: done}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(tickSpinner(), waitForDone(m.done))
}

func tickSpinner() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return spinnerTickMsg(t) })
}

func waitForDone(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return spinnerDoneMsg{}
	}
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case spinnerDoneMsg:
		return m, tea.Quit
	case spinnerTickMsg:
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, tea.Batch(tickSpinner(), waitForDone(m.done))
	}
	return m, nil
}

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

func (m spinnerModel) View() string {
	return spinnerStyle.Render(spinnerFrames[m.frame]) + " " + m.label + "\n"
}

// runWithSpinner runs work in the background, showing an animated spinner
// with label until it completes. Used by `solve` and `scramble` in
// interactive, non-headless mode.
func runWithSpinner(label string, work func()) {
	done := make(chan struct{})
	go func() {
		work()
		close(done)
	}()
	p := tea.NewProgram(newSpinnerModel(label, done))
	_, _ = p.Run()
}
