package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/texel"
	"github.com/msto63/texel/ast"
	"github.com/msto63/texel/core/log"
	"github.com/msto63/texel/registry"
)

// Model is the interactive token stream explorer. Each entered line is
// tokenized against a shared registry, so macro definitions persist
// across inputs within one session.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	reg      registry.Interface
	logger   *log.Logger

	content string
	width   int
	height  int
	ready   bool
	lineNo  int
}

// NewModel creates the explorer model over a shared registry
func NewModel(reg registry.Interface, logger *log.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = `markup, e.g. \emph{hello} or {group}`
	ti.Prompt = "texel> "
	ti.PromptStyle = PromptStyle
	ti.Focus()

	return Model{
		input:  ti,
		reg:    reg,
		logger: logger,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		footerHeight := 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.content)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			source := m.input.Value()
			if strings.TrimSpace(source) != "" {
				m.appendRun(source)
				m.input.SetValue("")
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	title := TitleStyle.Render("texel token explorer")
	input := InputStyle.Width(m.width - 4).Render(m.input.View())
	help := HelpStyle.Render("enter: tokenize · esc: quit · definitions persist per session")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.viewport.View(),
		input,
		help,
	)
}

// appendRun tokenizes one input line and appends the rendered stream to
// the viewport
func (m *Model) appendRun(source string) {
	m.lineNo++

	results, err := texel.TokenizeString(source, texel.Options{
		Registry: m.reg,
		Logger:   m.logger,
	})
	if err != nil {
		m.content += ErrorStyle.Render(fmt.Sprintf("engine error: %v", err)) + "\n"
		m.viewport.SetContent(m.content)
		m.viewport.GotoBottom()
		return
	}

	var sb strings.Builder
	sb.WriteString(PromptStyle.Render(fmt.Sprintf("[%d] ", m.lineNo)))
	sb.WriteString(TextTokenStyle.Render(source))
	sb.WriteByte('\n')
	for _, r := range results {
		sb.WriteString(renderResult(r))
	}

	m.content += sb.String()
	m.viewport.SetContent(m.content)
	m.viewport.GotoBottom()
}

// renderResult renders one stream element with per-kind colors
func renderResult(r ast.Result) string {
	if r.IsError() {
		return "  " + ErrorStyle.Render(r.Err.Error()) + "\n"
	}

	loc := LocationStyle.Render(r.Token.Location().String())
	var body string
	switch tok := r.Token.(type) {
	case ast.ParsedText:
		body = TextTokenStyle.Render(fmt.Sprintf("text %q", tok.Text))
	case ast.RawText:
		body = RawTokenStyle.Render(fmt.Sprintf("raw %q", tok.Text))
	case ast.Math:
		body = RawTokenStyle.Render(fmt.Sprintf("math %q", tok.Content))
	case ast.Bgroup:
		body = GroupStyle.Render("bgroup")
	case ast.Egroup:
		body = GroupStyle.Render("egroup")
	case ast.Command:
		body = CommandStyle.Render("\\"+tok.Def.Name) +
			LocationStyle.Render(fmt.Sprintf(" (%d args)", len(tok.Args)))
	case ast.Environment:
		body = CommandStyle.Render("\\begin{"+tok.Def.Name+"}") +
			LocationStyle.Render(fmt.Sprintf(" (%d body tokens)", len(tok.Body)))
	default:
		body = TextTokenStyle.Render(string(r.Token.Kind()))
	}

	return "  " + loc + " " + body + "\n"
}
