// Package tui hosts the interactive brief wizard behind the init command.
// The wizard walks through the brief fields step by step and yields a
// config.Brief ready to be written to disk.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atelierlabs/atelier/internal/config"
	"github.com/atelierlabs/atelier/internal/model"
)

type step int

const (
	stepName step = iota
	stepIdea
	stepUsers
	stepTraits
	stepPlatforms
	stepColor
	stepDarkMode
	stepDone
)

var (
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// choice is one selectable entry in a multi-select step.
type choice struct {
	value    string
	selected bool
}

// Model is the bubbletea model for the brief wizard.
type Model struct {
	step      step
	input     textinput.Model
	users     []choice
	traits    []choice
	platforms []choice
	cursor    int

	name         string
	idea         string
	primaryColor string
	darkMode     bool

	errMsg   string
	quitting bool
}

// New builds a wizard positioned at the first step.
func New() Model {
	input := textinput.New()
	input.Placeholder = "my-design-system"
	input.Focus()
	input.CharLimit = 100

	return Model{
		step:      stepName,
		input:     input,
		users:     choices(model.TargetUsers),
		traits:    choices(model.BrandTraits),
		platforms: choices(model.Platforms),
	}
}

func choices[T ~string](values []T) []choice {
	out := make([]choice, len(values))
	for i, v := range values {
		out[i] = choice{value: string(v)}
	}
	return out
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.advance()
	}

	switch m.step {
	case stepUsers, stepTraits, stepPlatforms:
		return m.updateList(keyMsg), nil
	case stepDarkMode:
		switch keyMsg.String() {
		case "y", "Y":
			m.darkMode = true
			return m.advance()
		case "n", "N":
			m.darkMode = false
			return m.advance()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateList(msg tea.KeyMsg) Model {
	list := m.currentList()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case " ", "x":
		list[m.cursor].selected = !list[m.cursor].selected
		m.errMsg = ""
	}
	return m
}

func (m *Model) currentList() []choice {
	switch m.step {
	case stepUsers:
		return m.users
	case stepTraits:
		return m.traits
	case stepPlatforms:
		return m.platforms
	}
	return nil
}

// advance validates the current step and moves to the next one.
func (m Model) advance() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepName:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.errMsg = "a name is required"
			return m, nil
		}
		m.name = name
		m.input.SetValue("")
		m.input.Placeholder = "A scheduling tool for veterinary clinics"
		m.input.CharLimit = 500
	case stepIdea:
		idea := strings.TrimSpace(m.input.Value())
		if idea == "" {
			m.errMsg = "a product idea is required"
			return m, nil
		}
		m.idea = idea
		m.input.SetValue("")
	case stepUsers:
		if countSelected(m.users) == 0 {
			m.errMsg = "select at least one target user"
			return m, nil
		}
	case stepPlatforms:
		if countSelected(m.platforms) == 0 {
			m.errMsg = "select at least one platform"
			return m, nil
		}
		m.input.SetValue("")
		m.input.Placeholder = "#2563eb (leave empty to derive)"
		m.input.CharLimit = 7
	case stepColor:
		value := strings.TrimSpace(m.input.Value())
		if value != "" && !validHexInput(value) {
			m.errMsg = "expected a hex color like #2563eb"
			return m, nil
		}
		m.primaryColor = value
	case stepDone:
		return m, tea.Quit
	}

	m.errMsg = ""
	m.cursor = 0
	m.step++
	if m.step == stepDone {
		return m, tea.Quit
	}
	return m, nil
}

func validHexInput(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func countSelected(list []choice) int {
	n := 0
	for _, c := range list {
		if c.selected {
			n++
		}
	}
	return n
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.step == stepDone {
		return ""
	}

	var b strings.Builder

	switch m.step {
	case stepName:
		b.WriteString(promptStyle.Render("Design system name"))
		b.WriteString("\n\n" + m.input.View() + "\n")
	case stepIdea:
		b.WriteString(promptStyle.Render("What does the product do?"))
		b.WriteString("\n\n" + m.input.View() + "\n")
	case stepUsers:
		m.renderList(&b, "Who are the target users?", m.users)
	case stepTraits:
		m.renderList(&b, "Which brand traits apply?", m.traits)
	case stepPlatforms:
		m.renderList(&b, "Which platforms are you targeting?", m.platforms)
	case stepColor:
		b.WriteString(promptStyle.Render("Primary brand color (optional)"))
		b.WriteString("\n\n" + m.input.View() + "\n")
	case stepDarkMode:
		b.WriteString(promptStyle.Render("Generate a dark mode palette? (y/n)"))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("enter: continue • space: toggle • esc: quit") + "\n")
	return b.String()
}

func (m Model) renderList(b *strings.Builder, prompt string, list []choice) {
	b.WriteString(promptStyle.Render(prompt))
	b.WriteString("\n\n")
	for i, c := range list {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		label := c.value
		if c.selected {
			mark = selectedStyle.Render("[x]")
			label = selectedStyle.Render(label)
		}
		fmt.Fprintf(b, "%s%s %s\n", cursor, mark, label)
	}
}

// Done reports whether the wizard collected a complete brief.
func (m Model) Done() bool {
	return m.step == stepDone && !m.quitting
}

// Cancelled reports whether the user quit before finishing.
func (m Model) Cancelled() bool {
	return m.quitting
}

// Brief returns the collected document. Valid only when Done reports true.
func (m Model) Brief() config.Brief {
	return config.Brief{
		Version:     "1.0",
		Name:        m.name,
		ProductIdea: m.idea,
		TargetUsers: selectedValues(m.users),
		BrandTraits: selectedValues(m.traits),
		Platforms:   selectedValues(m.platforms),
		Settings: config.Settings{
			PrimaryColor: m.primaryColor,
			DarkMode:     m.darkMode,
		},
	}
}

func selectedValues(list []choice) []string {
	var out []string
	for _, c := range list {
		if c.selected {
			out = append(out, c.value)
		}
	}
	return out
}
