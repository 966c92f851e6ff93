// Package ui hosts the Bubble Tea viewer behind `glint view`.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"glint/internal/engine"
	"glint/internal/highlight"
	"glint/internal/sched"
	"glint/internal/textmodel"
)

// pumpInterval paces scheduler pumping. Each tick grants the engine idle time
// so the document converges to fully tokenized while the user watches.
const pumpInterval = 50 * time.Millisecond

type tickMsg time.Time

// reloadMsg arrives from the file watcher with fresh file content.
type reloadMsg struct {
	content string
}

// ViewerModel renders one buffer with live tokenization state.
type ViewerModel struct {
	path     string
	language string
	buffer   *textmodel.Buffer
	eng      *engine.Engine
	queue    *sched.Queue
	theme    *highlight.Theme
	view     viewport.Model
	reloads  <-chan string
	width    int
	ready    bool
}

// NewViewerModel wires a viewer around an already-constructed buffer and
// engine. reloads may be nil when watching is disabled.
func NewViewerModel(path, language string, buffer *textmodel.Buffer, eng *engine.Engine, queue *sched.Queue, reloads <-chan string) *ViewerModel {
	return &ViewerModel{
		path:     path,
		language: language,
		buffer:   buffer,
		eng:      eng,
		queue:    queue,
		theme:    highlight.DefaultTheme(),
		reloads:  reloads,
		width:    80,
	}
}

func (m *ViewerModel) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.listenForReload())
}

func (m *ViewerModel) tick() tea.Cmd {
	return tea.Tick(pumpInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *ViewerModel) listenForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	return func() tea.Msg {
		content, ok := <-m.reloads
		if !ok {
			return nil
		}
		return reloadMsg{content: content}
	}
}

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - 2 // status bar
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.view = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = height
		}
		m.refresh()
		return m, nil

	case tickMsg:
		// Grant the engine idle time, then make the visible range correct
		// right now regardless of how far the background pass got.
		m.queue.RunUntilIdle()
		m.tokenizeVisible()
		m.refresh()
		return m, m.tick()

	case reloadMsg:
		m.buffer.Replace(textmodel.Range{
			StartLine: 1, StartColumn: 1,
			EndLine:   m.buffer.LineCount(),
			EndColumn: len(m.buffer.LineContent(m.buffer.LineCount())) + 1,
		}, msg.content)
		m.refresh()
		return m, m.listenForReload()
	}

	if m.ready {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		m.tokenizeVisible()
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m *ViewerModel) tokenizeVisible() {
	if !m.ready {
		return
	}
	start := m.view.YOffset + 1
	end := m.view.YOffset + m.view.Height
	m.eng.TokenizeViewport(start, end)
}

func (m *ViewerModel) refresh() {
	if !m.ready {
		return
	}
	lines := make([]string, m.buffer.LineCount())
	for i := range lines {
		text := m.buffer.LineContent(i + 1)
		lines[i] = m.theme.Render(text, m.buffer.LineTokens(i+1))
	}
	m.view.SetContent(strings.Join(lines, "\n"))
}

func (m *ViewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.view.View() + "\n" + m.statusBar()
}

func (m *ViewerModel) statusBar() string {
	done, total := m.eng.Progress()
	state := fmt.Sprintf("%d/%d lines tokenized", done, total)
	if done >= total {
		state = "fully tokenized"
	}
	left := fmt.Sprintf(" %s [%s] ", m.path, m.language)
	right := fmt.Sprintf(" %s ", state)

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7"))
	pad := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 0 {
		left = runewidth.Truncate(left, m.width-runewidth.StringWidth(right), "…")
		pad = 0
	}
	return barStyle.Render(left + strings.Repeat(" ", pad) + right)
}
