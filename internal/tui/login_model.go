package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginStep is the current field in the login wizard.
type loginStep int

const (
	stepUserID loginStep = iota
	stepPassword
)

// LoginModel is a two-field wizard collecting the user id and password.
// It only gathers input; the caller performs the actual login call.
type LoginModel struct {
	step   loginStep
	inputs []textinput.Model
	width  int
	height int

	userID   string
	password string

	completed     bool
	cancelled     bool
	validationErr string
}

// NewLoginModel creates the login wizard.
func NewLoginModel(prefilledUser string) LoginModel {
	inputs := make([]textinput.Model, 2)

	user := textinput.New()
	user.Placeholder = "employee id or code"
	user.CharLimit = 64
	user.SetValue(prefilledUser)
	user.Focus()
	inputs[stepUserID] = user

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	inputs[stepPassword] = pass

	m := LoginModel{inputs: inputs}
	if prefilledUser != "" {
		m.step = stepPassword
		m.inputs[stepUserID].Blur()
		m.inputs[stepPassword].Focus()
	}
	return m
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			m.validationErr = ""
			switch m.step {
			case stepUserID:
				if strings.TrimSpace(m.inputs[stepUserID].Value()) == "" {
					m.validationErr = "user id is required"
					return m, nil
				}
				m.step = stepPassword
				m.inputs[stepUserID].Blur()
				m.inputs[stepPassword].Focus()
				return m, nil
			case stepPassword:
				if m.inputs[stepPassword].Value() == "" {
					m.validationErr = "password is required"
					return m, nil
				}
				m.userID = strings.TrimSpace(m.inputs[stepUserID].Value())
				m.password = m.inputs[stepPassword].Value()
				m.completed = true
				return m, tea.Quit
			}

		case "tab", "shift+tab":
			// Toggle between the two fields.
			if m.step == stepUserID {
				m.step = stepPassword
				m.inputs[stepUserID].Blur()
				m.inputs[stepPassword].Focus()
			} else {
				m.step = stepUserID
				m.inputs[stepPassword].Blur()
				m.inputs[stepUserID].Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.step], cmd = m.inputs[m.step].Update(msg)
	return m, cmd
}

func (m LoginModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(titleStyle.Render("hrtrack login"))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	b.WriteString(labelStyle.Render("User"))
	b.WriteString("\n")
	b.WriteString(m.inputs[stepUserID].View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.inputs[stepPassword].View())
	b.WriteString("\n")

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.validationErr))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter next/submit · tab switch field · esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// RunLoginTUI collects credentials interactively. ok is false when the user
// cancelled.
func RunLoginTUI(prefilledUser string) (userID, password string, ok bool, err error) {
	model := NewLoginModel(prefilledUser)

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return "", "", false, err
	}

	m, _ := finalModel.(LoginModel)
	if !m.completed {
		return "", "", false, nil
	}
	return m.userID, m.password, true, nil
}
