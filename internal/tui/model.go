package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/casekit/utils/namecase"
	"github.com/msto63/casekit/utils/stringx"
)

// AutoSource splits free-form input instead of a registered style
const AutoSource = "auto"

// Config configures the preview
type Config struct {
	Registry *namecase.Registry
	Initial  string // initial input
	Source   string // initial source style, AutoSource when empty
}

// Row is one converted line of the preview
type Row struct {
	Style string
	Value string
	Err   error
}

// Model is the live preview: the input is converted into every registered
// style while typing
type Model struct {
	registry *namecase.Registry
	sources  []string
	source   int
	input    textinput.Model
	width    int
}

// New creates a preview model
func New(cfg Config) Model {
	registry := cfg.Registry
	if registry == nil {
		registry = namecase.NewRegistry()
	}

	ti := textinput.New()
	ti.Placeholder = "type a name, e.g. parseHTTPRequest"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.SetValue(cfg.Initial)
	ti.Focus()

	sources := append([]string{AutoSource}, registry.Names()...)
	source := 0
	for i, name := range sources {
		if name == namecase.NormalizeName(cfg.Source) {
			source = i
		}
	}

	return Model{
		registry: registry,
		sources:  sources,
		source:   source,
		input:    ti,
		width:    80,
	}
}

// Source returns the selected source style
func (m Model) Source() string {
	return m.sources[m.source]
}

// Value returns the current input
func (m Model) Value() string {
	return m.input.Value()
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.source = (m.source + 1) % len(m.sources)
			return m, nil
		case "shift+tab":
			m.source = (m.source - 1 + len(m.sources)) % len(m.sources)
			return m, nil
		case "ctrl+l":
			m.input.Reset()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(10, msg.Width-8)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Rows converts the input into every registered style
func (m Model) Rows() []Row {
	name := m.input.Value()
	names := m.registry.Names()
	rows := make([]Row, 0, len(names))

	var src namecase.NamingCase
	if m.Source() != AutoSource {
		var err error
		if src, err = m.registry.Get(m.Source()); err != nil {
			return []Row{{Style: m.Source(), Err: err}}
		}
	}

	for _, style := range names {
		dst, err := m.registry.Get(style)
		if err != nil {
			rows = append(rows, Row{Style: style, Err: err})
			continue
		}
		if src == nil {
			rows = append(rows, Row{Style: style, Value: stringx.ToStyle(name, dst)})
			continue
		}
		value, err := namecase.Convert(name, src, dst)
		rows = append(rows, Row{Style: style, Value: value, Err: err})
	}
	return rows
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(RenderTitle("casekit preview"))
	s.WriteString("\n")
	s.WriteString(m.renderSources())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Width(max(20, m.width-4)).Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderWords())
	s.WriteString("\n\n")

	rows := m.Rows()
	var table strings.Builder
	for i, row := range rows {
		if i > 0 {
			table.WriteString("\n")
		}
		table.WriteString(StyleNameStyle.Render(row.Style))
		if row.Err != nil {
			table.WriteString(RenderError(row.Err.Error()))
		} else {
			table.WriteString(ValueStyle.Render(row.Value))
		}
	}
	s.WriteString(BoxStyle.Render(table.String()))
	s.WriteString("\n")
	s.WriteString(StatusBarStyle.Render(m.Status(rows)))
	s.WriteString("\n")
	s.WriteString(RenderHelp("Tab/Shift+Tab: source style • Ctrl+L: clear • Esc: quit"))

	return s.String()
}

// Status summarises rows for the status bar
func (m Model) Status(rows []Row) string {
	failed := 0
	for _, row := range rows {
		if row.Err != nil {
			failed++
		}
	}
	status := fmt.Sprintf("source %s | %d styles", m.Source(), len(rows))
	if failed > 0 {
		status += fmt.Sprintf(" | %d failed", failed)
	}
	return status
}

func (m Model) renderSources() string {
	tabs := make([]string, 0, len(m.sources))
	for i, name := range m.sources {
		if i == m.source {
			tabs = append(tabs, ActiveTabStyle.Render(name))
		} else {
			tabs = append(tabs, TabStyle.Render(name))
		}
	}
	return lipgloss.NewStyle().Width(max(20, m.width)).Render(strings.Join(tabs, ""))
}

// renderWords shows how the source style splits the input
func (m Model) renderWords() string {
	name := m.input.Value()
	if name == "" {
		return SubtitleStyle.Render("words: -")
	}

	if m.Source() == AutoSource {
		words := stringx.Words(name)
		rendered := make([]string, len(words))
		for i, w := range words {
			rendered[i] = RenderWord(i, w)
		}
		return SubtitleStyle.Render("words: ") + strings.Join(rendered, SeparatorStyle.Render(" · "))
	}

	src, err := m.registry.Get(m.Source())
	if err != nil {
		return RenderError(err.Error())
	}
	spans, err := namecase.Spans(src, name)
	if err != nil {
		return RenderError(err.Error())
	}
	return SubtitleStyle.Render("words: ") + HighlightSpans(name, spans)
}

// HighlightSpans renders name with alternating word colours, text between
// words (separators) is muted
func HighlightSpans(name string, spans []namecase.Word) string {
	var b strings.Builder
	pos := 0
	for i, span := range spans {
		if span.Start > pos {
			b.WriteString(SeparatorStyle.Render(name[pos:span.Start]))
		}
		b.WriteString(RenderWord(i, span.String()))
		pos = span.End
	}
	if pos < len(name) {
		b.WriteString(SeparatorStyle.Render(name[pos:]))
	}
	return b.String()
}

// Run starts the preview TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
