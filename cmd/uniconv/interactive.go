package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/uniconv/convert"
	"github.com/wippyai/uniconv/width"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	ti     textinput.Model
	policy convert.Policy
	cols   int
}

func newInspectModel() *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "type or paste text"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &inspectModel{ti: ti, policy: convert.ReplaceInvalid, cols: 80}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+p":
			m.policy = (m.policy + 1) % 3
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("uniconv inspector"))
	b.WriteString("\n\n")
	b.WriteString(m.ti.View())
	b.WriteString("\n\n")

	text := m.ti.Value()
	u32, valid := convert.UTF8ToUTF32([]byte(text), m.policy)

	w, err := width.Measure(text)
	switch {
	case err != nil:
		b.WriteString(labelStyle.Render("columns: "))
		b.WriteString(warnStyle.Render(err.Error()))
	default:
		b.WriteString(labelStyle.Render("columns: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d", w)))
	}
	b.WriteString(labelStyle.Render("   codepoints: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", len(u32))))
	if !valid {
		b.WriteString("   ")
		b.WriteString(warnStyle.Render("malformed input"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderCodepoints(u32))
	b.WriteString(m.renderForms(u32))

	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"policy: %s (ctrl+p cycles) • esc quits", m.policy)))
	b.WriteString("\n")
	return b.String()
}

func (m *inspectModel) renderCodepoints(u32 []rune) string {
	if len(u32) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("codepoints"))
	b.WriteString("\n")

	shown := u32
	const maxShown = 16
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	for _, r := range shown {
		b.WriteString(fmt.Sprintf("  U+%04X width=%2d\n", r, width.Rune(r)))
	}
	if len(u32) > maxShown {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  … %d more\n", len(u32)-maxShown)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *inspectModel) renderForms(u32 []rune) string {
	if len(u32) == 0 {
		return ""
	}
	var b strings.Builder

	u8, _ := convert.UTF32ToUTF8(u32, m.policy)
	u16, _ := convert.UTF32ToUTF16(u32, m.policy)

	b.WriteString(labelStyle.Render("utf-8   "))
	b.WriteString(hexClip(fmt.Sprintf("% X", u8), m.cols-12))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("utf-16  "))
	b.WriteString(hexClip(fmt.Sprintf("%04X", u16), m.cols-12))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("utf-32  "))
	b.WriteString(hexClip(fmt.Sprintf("%08X", u32), m.cols-12))
	b.WriteString("\n\n")
	return b.String()
}

func hexClip(s string, max int) string {
	if max < 8 {
		max = 8
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func runInteractive() error {
	p := tea.NewProgram(newInspectModel())
	_, err := p.Run()
	return err
}
