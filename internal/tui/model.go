// Package tui provides the Bubble Tea calculator interface.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/driizzyy/deskcalc/internal/baseconv"
	"github.com/driizzyy/deskcalc/internal/engine"
	"github.com/driizzyy/deskcalc/internal/graph"
	"github.com/driizzyy/deskcalc/internal/memory"
	"github.com/driizzyy/deskcalc/internal/model"
	"github.com/driizzyy/deskcalc/internal/plot"
	statsPkg "github.com/driizzyy/deskcalc/internal/stats"
	"github.com/driizzyy/deskcalc/internal/store"
)

// Model implements the Bubble Tea calculator UI.
type Model struct {
	calc     *engine.Context
	store    *store.Store
	theme    Theme
	settings model.Settings

	input textinput.Model
	body  viewport.Model

	width  int
	height int

	preview string
	errMsg  string
	// output holds rendered plot or statistics text for the body pane.
	output string

	graphRange graph.Range
}

// NewModel constructs a calculator TUI model. The store may be shared
// with CLI subcommands; the model persists committed calculations and
// memory slots through it.
func NewModel(calc *engine.Context, st *store.Store, theme Theme, settings model.Settings) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	m := &Model{
		calc:       calc,
		store:      st,
		theme:      theme,
		settings:   settings,
		input:      input,
		body:       viewport.New(0, 0),
		graphRange: graph.Range{Min: -10, Max: 10},
	}
	m.loadSlots()
	m.refreshBody()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.input.Focus())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshBody()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.saveSlots()
			return m, tea.Quit
		case "tab":
			m.cycleMode(1)
			return m, tea.ClearScreen
		case "shift+tab":
			m.cycleMode(-1)
			return m, tea.ClearScreen
		case "f1":
			m.calc.ToggleAngleUnit()
			return m, nil
		case "f2":
			m.memoryStore()
			return m, nil
		case "f3":
			m.memoryRecall()
			return m, nil
		case "f4":
			m.memoryAdd(1)
			return m, nil
		case "f5":
			m.memoryAdd(-1)
			return m, nil
		case "f6":
			m.memoryClear()
			return m, nil
		case "f7":
			m.cycleBase()
			return m, nil
		case "f8":
			m.cycleWordSize()
			return m, nil
		case "ctrl+l":
			m.calc.ClearHistory()
			m.output = ""
			m.refreshBody()
			return m, nil
		case "enter":
			m.handleEnter()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.body, cmd = m.body.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updatePreview()
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	sections := []string{
		m.renderTabs(),
		m.renderStatus(),
		m.theme.Frame.Render(m.renderDisplay()),
		m.input.View(),
		m.body.View(),
	}
	if keypad := renderKeypad(m.theme, m.calc.Mode()); keypad != "" {
		sections = append(sections, keypad)
	}
	sections = append(sections, m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.input.Width = maxInt(10, m.width-lipgloss.Width(m.input.Prompt)-2)
	keypadHeight := len(keypadLayouts[m.calc.Mode()])
	// tabs, status, framed display (3), input, keypad, help.
	chrome := 1 + 1 + 3 + 1 + keypadHeight + 1
	bodyHeight := m.height - chrome
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.body.Width = m.width
	m.body.Height = bodyHeight
}

func (m *Model) cycleMode(delta int) {
	next := (int(m.calc.Mode()) + delta + len(model.Modes)) % len(model.Modes)
	m.calc.SwitchMode(model.Mode(next))
	m.input.SetValue("")
	m.preview = ""
	m.errMsg = ""
	m.output = ""
	m.updateLayout()
	m.refreshBody()
}

func (m *Model) cycleBase() {
	if m.calc.Mode() != model.ModeProgrammer {
		return
	}
	for i, base := range baseconv.Bases {
		if base == m.calc.Base() {
			if err := m.calc.SetBase(baseconv.Bases[(i+1)%len(baseconv.Bases)]); err != nil {
				m.errMsg = err.Error()
			}
			return
		}
	}
}

func (m *Model) cycleWordSize() {
	if m.calc.Mode() != model.ModeProgrammer {
		return
	}
	for i, bits := range baseconv.WordSizes {
		if bits == m.calc.WordSize() {
			if err := m.calc.SetWordSize(baseconv.WordSizes[(i+1)%len(baseconv.WordSizes)]); err != nil {
				m.errMsg = err.Error()
			}
			return
		}
	}
}

func (m *Model) handleEnter() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	m.errMsg = ""
	switch m.calc.Mode() {
	case model.ModeGraphing:
		m.plotExpressions(text)
	case model.ModeStatistics:
		m.summarizeDataset(text)
	default:
		m.commitExpression(text)
	}
	m.refreshBody()
}

func (m *Model) commitExpression(text string) {
	if _, err := m.calc.Evaluate(text); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.input.SetValue("")
	m.preview = ""
	history := m.calc.History()
	if m.store != nil && len(history) > 0 {
		if _, err := m.store.InsertEntry(context.Background(), history[len(history)-1]); err != nil {
			logErrf("failed to save history entry: %v\n", err)
		}
	}
}

func (m *Model) plotExpressions(text string) {
	exprs := splitExpressions(text)
	series, err := graph.SampleAll(exprs, m.graphRange, m.settings.PlotSamples, m.calc.AngleUnit())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	var buf bytes.Buffer
	width := plot.WidthFor(m.width)
	if err := plot.Render(&buf, "", series, m.graphRange.Min, m.graphRange.Max, width, m.settings.PlotHeight); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.output = strings.TrimRight(buf.String(), "\n")
}

func (m *Model) summarizeDataset(text string) {
	data, err := statsPkg.ParseDataset(text)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	summary, err := statsPkg.Summarize(data)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	var buf bytes.Buffer
	if err := statsPkg.RenderSummary(&buf, summary); err != nil {
		m.errMsg = err.Error()
		return
	}
	if buckets, err := statsPkg.Histogram(data, 0); err == nil {
		if err := statsPkg.RenderHistogram(&buf, buckets, 0); err != nil {
			m.errMsg = err.Error()
			return
		}
	}
	m.output = strings.TrimRight(buf.String(), "\n")
}

// updatePreview recomputes the as-you-type result. Inputs that end
// mid-operator stay quiet instead of flashing an error.
func (m *Model) updatePreview() {
	text := strings.TrimSpace(m.input.Value())
	m.preview = ""
	m.errMsg = ""
	if text == "" || !isPreviewable(text) {
		return
	}
	switch m.calc.Mode() {
	case model.ModeGraphing, model.ModeStatistics:
		return
	}
	res, err := m.calc.Preview(text)
	if err != nil {
		return
	}
	m.preview = res.Display
}

func isPreviewable(text string) bool {
	last := text[len(text)-1]
	switch last {
	case '+', '-', '*', '/', '%', '^', '(', '.', '&', '|', '~', '<', '>', ',':
		return false
	}
	return true
}

func (m *Model) memoryStore() {
	if err := m.calc.Memory.Store(memory.DefaultSlot, m.calc.CurrentFloat()); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.saveSlots()
}

func (m *Model) memoryRecall() {
	v, err := m.calc.Memory.Recall(memory.DefaultSlot)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.input.SetValue(m.input.Value() + engine.FormatFloat(v, m.settings.Precision))
	m.input.CursorEnd()
	m.updatePreview()
}

func (m *Model) memoryAdd(sign float64) {
	if err := m.calc.Memory.Add(memory.DefaultSlot, sign*m.calc.CurrentFloat()); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.saveSlots()
}

func (m *Model) memoryClear() {
	if err := m.calc.Memory.Clear(memory.DefaultSlot); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.saveSlots()
}

func (m *Model) loadSlots() {
	if m.store == nil {
		return
	}
	slots, err := m.store.LoadSlots(context.Background())
	if err != nil {
		logErrf("failed to load memory slots: %v\n", err)
		return
	}
	m.calc.Memory.Restore(slots)
}

func (m *Model) saveSlots() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveSlots(context.Background(), m.calc.Memory.Snapshot()); err != nil {
		logErrf("failed to save memory slots: %v\n", err)
	}
}

func (m *Model) refreshBody() {
	switch m.calc.Mode() {
	case model.ModeGraphing, model.ModeStatistics:
		if m.output != "" {
			m.body.SetContent(m.output)
		} else if m.calc.Mode() == model.ModeGraphing {
			m.body.SetContent(m.theme.Help.Render(fmt.Sprintf(
				"Enter expressions in x, separated by ';' (range %g..%g).", m.graphRange.Min, m.graphRange.Max)))
		} else {
			m.body.SetContent(m.theme.Help.Render("Enter samples separated by commas or spaces."))
		}
	default:
		m.body.SetContent(m.renderHistory())
	}
	m.body.GotoBottom()
}

func (m *Model) renderHistory() string {
	history := m.calc.History()
	if len(history) == 0 {
		return m.theme.Help.Render("No calculations yet.")
	}
	lines := make([]string, 0, len(history))
	for _, entry := range history {
		lines = append(lines, m.theme.History.Render(fmt.Sprintf("%s = %s", entry.Expression, entry.Result)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(model.Modes))
	for _, mode := range model.Modes {
		label := mode.Title()
		if mode == m.calc.Mode() {
			parts = append(parts, m.theme.Accent.Render("["+label+"]"))
		} else {
			parts = append(parts, m.theme.Status.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderStatus() string {
	segments := []string{fmt.Sprintf("Theme %s", m.theme.Name)}
	switch m.calc.Mode() {
	case model.ModeProgrammer:
		segments = append(segments,
			fmt.Sprintf("Base %d", m.calc.Base()),
			fmt.Sprintf("Word %d-bit", m.calc.WordSize()))
	case model.ModeGraphing:
		segments = append(segments,
			m.calc.AngleUnit().String(),
			fmt.Sprintf("Samples %d", m.settings.PlotSamples))
	case model.ModeStatistics:
	default:
		segments = append(segments, m.calc.AngleUnit().String())
	}
	if v, err := m.calc.Memory.Recall(memory.DefaultSlot); err == nil && v != 0 {
		segments = append(segments, "M")
	}
	return m.theme.Status.Render(strings.Join(segments, "  "))
}

func (m *Model) renderDisplay() string {
	if m.errMsg != "" {
		return m.theme.Error.Render(m.errMsg)
	}
	if m.preview != "" {
		return m.theme.Display.Render(m.calc.Current()) + "  " + m.theme.Preview.Render("= "+m.preview)
	}
	return m.theme.Display.Render(m.calc.Current())
}

func (m *Model) renderHelp() string {
	help := "Tab: mode  F1: angle  F2-F6: memory  Ctrl+L: clear  Esc: quit"
	if m.calc.Mode() == model.ModeProgrammer {
		help = "Tab: mode  F7: base  F8: word size  F2-F6: memory  Ctrl+L: clear  Esc: quit"
	}
	return m.theme.Help.Render(help)
}

func splitExpressions(text string) []string {
	parts := strings.Split(text, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
