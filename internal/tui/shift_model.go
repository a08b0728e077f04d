package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hrtrack/internal/models"
	"hrtrack/internal/tracker"
)

// ShiftModel is the live shift view: a countdown to shift end fed from the
// tracker, re-synced against the server whenever the terminal regains focus.
type ShiftModel struct {
	width  int
	height int

	tracker *tracker.Tracker
	user    models.AuthUser
	session tracker.Session

	// Animation state
	clockAnimation int

	exiting bool
}

// refreshMsg is sent every second to re-read tracker state.
type refreshMsg struct{}

// animationTickMsg drives the header animation.
type animationTickMsg struct{}

// syncDoneMsg reports that a background reconciliation finished.
type syncDoneMsg struct{}

// NewShiftModel creates the live shift TUI model.
func NewShiftModel(tr *tracker.Tracker, user models.AuthUser) ShiftModel {
	return ShiftModel{
		tracker: tr,
		user:    user,
		session: tr.Session(),
	}
}

func refreshTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func animationTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

func (m ShiftModel) syncCmd() tea.Cmd {
	tr := m.tracker
	return func() tea.Msg {
		tr.Sync(context.Background())
		return syncDoneMsg{}
	}
}

// Init starts the refresh and animation tickers and an initial sync.
func (m ShiftModel) Init() tea.Cmd {
	return tea.Batch(refreshTick(), animationTick(), m.syncCmd())
}

// Update handles messages
func (m ShiftModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.session = m.tracker.Session()
		if !m.exiting {
			return m, refreshTick()
		}
		return m, nil

	case animationTickMsg:
		m.clockAnimation = (m.clockAnimation + 1) % 4
		if !m.exiting {
			return m, animationTick()
		}
		return m, nil

	case syncDoneMsg:
		m.session = m.tracker.Session()
		return m, nil

	case tea.FocusMsg:
		// Terminal back in the foreground: reconcile with the server.
		return m, m.syncCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", "S":
			return m, m.syncCmd()
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the shift TUI
func (m ShiftModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	helpBarHeight := 1
	contentHeight := m.height - helpBarHeight - 1

	// Narrow terminals get the countdown panel only.
	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderCountdownPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCountdownPanel(leftWidth, contentHeight),
		"  ",
		m.renderSessionPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		helpBar,
	)
}

// renderCountdownPanel renders the left countdown panel
func (m ShiftModel) renderCountdownPanel(width, height int) string {
	var components []string

	headerText, headerColor := m.headerLine()
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(headerColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render(headerText))

	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, nameStyle.Render(m.user.EmployeeName))

	if m.session.Status == tracker.CheckedIn {
		clockDisplay := m.renderBigClock()
		clockContent := ""
		for _, line := range strings.Split(clockDisplay, "\n") {
			centeredLine := lipgloss.NewStyle().
				Align(lipgloss.Center).
				Width(width).
				Render(line)
			clockContent += centeredLine + "\n"
		}
		components = append(components, strings.TrimRight(clockContent, "\n"))

		label := "until shift end"
		if m.session.RemainingSeconds == 0 {
			label = "shift is over, remember to check out"
		}
		labelStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, labelStyle.Render(label))
	} else {
		idleStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, idleStyle.Render("No active shift. Use 'hrtrack checkin' to start one."))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// headerLine picks the animated header for the current state.
func (m ShiftModel) headerLine() (string, string) {
	animChars := []string{"⏱", "⏲", "⏱", "⏲"}
	animChar := animChars[m.clockAnimation]

	switch m.session.Status {
	case tracker.CheckedIn:
		if m.session.RemainingSeconds == 0 {
			return fmt.Sprintf("%s  SHIFT OVER  %s", animChar, animChar), ColorWarning
		}
		return fmt.Sprintf("%s  ON SHIFT  %s", animChar, animChar), ColorAccentBright
	case tracker.CheckedOut:
		return "✅  CHECKED OUT", ColorSuccess
	default:
		return "○  NOT CHECKED IN", ColorSecondaryText
	}
}

// renderBigClock renders the remaining time as an ASCII art clock
func (m ShiftModel) renderBigClock() string {
	remaining := m.session.RemainingSeconds
	hours := remaining / 3600
	minutes := (remaining % 3600) / 60
	seconds := remaining % 60

	// ASCII art for digits (5x5 characters each)
	digits := map[rune][][]string{
		'0': {
			{" ███ "},
			{"█   █"},
			{"█   █"},
			{"█   █"},
			{" ███ "},
		},
		'1': {
			{"  █  "},
			{" ██  "},
			{"  █  "},
			{"  █  "},
			{"█████"},
		},
		'2': {
			{" ███ "},
			{"█   █"},
			{"   █ "},
			{"  █  "},
			{"█████"},
		},
		'3': {
			{" ███ "},
			{"█   █"},
			{"  ██ "},
			{"█   █"},
			{" ███ "},
		},
		'4': {
			{"█   █"},
			{"█   █"},
			{"█████"},
			{"    █"},
			{"    █"},
		},
		'5': {
			{"█████"},
			{"█    "},
			{"████ "},
			{"    █"},
			{"████ "},
		},
		'6': {
			{" ███ "},
			{"█    "},
			{"████ "},
			{"█   █"},
			{" ███ "},
		},
		'7': {
			{"█████"},
			{"    █"},
			{"   █ "},
			{"  █  "},
			{" █   "},
		},
		'8': {
			{" ███ "},
			{"█   █"},
			{" ███ "},
			{"█   █"},
			{" ███ "},
		},
		'9': {
			{" ███ "},
			{"█   █"},
			{" ████"},
			{"    █"},
			{" ███ "},
		},
		':': {
			{"     "},
			{"  █  "},
			{"     "},
			{"  █  "},
			{"     "},
		},
	}

	timeStr := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i][0])
				lines[i].WriteString(" ")
			}
		}
	}

	clockColor := ColorAccentBright
	if remaining == 0 {
		clockColor = ColorWarning
	}
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(clockColor)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// renderSessionPanel renders the right panel with session details
func (m ShiftModel) renderSessionPanel(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 12).
		Padding(0, 1)
	b.WriteString(titleStyle.Render("Today's Session"))
	b.WriteString("\n\n")

	lineStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)

	statusColor := ColorSecondaryText
	switch m.session.Status {
	case tracker.CheckedIn:
		statusColor = ColorSuccess
	case tracker.CheckedOut:
		statusColor = ColorAccentMain
	}
	statusLine := fmt.Sprintf("Status: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Bold(true).Render(m.session.Status.String()))
	b.WriteString(lineStyle.Render(statusLine))
	b.WriteString("\n")

	b.WriteString(lineStyle.Render(detailLine("Checked in", formatTime(m.session.CheckInTime))))
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(detailLine("Shift ends", formatTime(m.session.ShiftEndTime))))
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(detailLine("Employee", m.user.EmployeeCode)))
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(detailLine("Role", m.user.Role)))
	b.WriteString("\n")

	if m.session.Loading {
		syncStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true).
			Align(lipgloss.Center).
			Width(width - 8)
		b.WriteString("\n")
		b.WriteString(syncStyle.Render("syncing with server..."))
	}

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(b.String())
}

func detailLine(label, value string) string {
	if value == "" {
		value = "—"
	}
	return fmt.Sprintf("%s: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(label),
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render(value))
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04:05")
}

// renderHelpBar renders the help bar at the bottom
func (m ShiftModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("s sync now · esc/q exit · ctrl+c force quit")
}

// RunShiftTUI runs the live shift view. The countdown keeps running in the
// tracker; exiting the view does not touch the session.
func RunShiftTUI(tr *tracker.Tracker, user models.AuthUser) error {
	model := NewShiftModel(tr, user)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
