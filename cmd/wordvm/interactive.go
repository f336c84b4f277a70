package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/wordvm/inspect"
	"github.com/wippyai/wordvm/machine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	usedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	freeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// hexLineChars is the number of hex digits shown per line of the dump.
const hexLineChars = 128

const maxHistory = 8

type historyLine struct {
	text  string
	isErr bool
}

type consoleModel struct {
	mctx    *machine.Context
	dumper  *inspect.Dumper
	history []historyLine
	input   textinput.Model
}

func runInteractive(mctx *machine.Context, dumper *inspect.Dumper) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newConsoleModel(mctx, dumper), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newConsoleModel(mctx *machine.Context, dumper *inspect.Dumper) *consoleModel {
	ti := textinput.New()
	ti.Placeholder = "push16:300 push8:-5 pop8"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	return &consoleModel{
		mctx:   mctx,
		dumper: dumper,
		input:  ti,
	}
}

func (m *consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute applies a line of ops and records its output.
func (m *consoleModel) execute(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.record(historyLine{text: "> " + line})

	ops, err := parseOps(line)
	if err != nil {
		m.record(historyLine{text: err.Error(), isErr: true})
		return
	}

	var out bytes.Buffer
	err = applyOps(&out, m.mctx, m.dumper, ops)
	for _, l := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		if l != "" {
			m.record(historyLine{text: l})
		}
	}
	if err != nil {
		m.record(historyLine{text: err.Error(), isErr: true})
	}
}

func (m *consoleModel) record(l historyLine) {
	m.history = append(m.history, l)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m *consoleModel) View() string {
	var b strings.Builder
	st := m.mctx.Stack()

	b.WriteString(titleStyle.Render("wordvm stack console"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %d/%d bytes (%d words)   %s %d   %s %d+%d\n\n",
		labelStyle.Render("Stack:"), st.Cursor(), st.Cap(), st.Len(),
		labelStyle.Render("Jump:"), m.mctx.JumpPtr(),
		labelStyle.Render("Return:"), m.mctx.ReturnOffset(), m.mctx.ReturnLength())

	b.WriteString(m.renderRows())
	b.WriteString("\n")

	for _, l := range m.history {
		if l.isErr {
			b.WriteString(errorStyle.Render(l.text))
		} else {
			b.WriteString(resultStyle.Render(l.text))
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ops: push:<hex> pop push8:<n> push16:<n> pop8 pop16 peek:<i> swap:<i> words reset • esc quit"))
	return b.String()
}

// renderRows renders the dump rows, highlighting bytes below the cursor.
func (m *consoleModel) renderRows() string {
	var b strings.Builder
	cursorChars := m.mctx.Stack().Cursor() * 2
	rowChars := m.dumper.RowBytes * 2

	for i, row := range m.dumper.HexRows(m.mctx) {
		used := min(max(cursorChars-i*rowChars, 0), len(row))
		for off := 0; off < len(row); off += hexLineChars {
			end := min(off+hexLineChars, len(row))
			split := min(max(used, off), end)
			b.WriteString(usedStyle.Render(row[off:split]))
			b.WriteString(freeStyle.Render(row[split:end]))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
