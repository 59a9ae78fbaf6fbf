package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/klemjul/oracle/internal/api"
)

const (
	HEADER_CHECKING    = "○ checking backend..."
	HEADER_UNREACHABLE = "● unreachable"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)
)

// HealthMsg carries the outcome of a backend health check.
type HealthMsg struct {
	Health *api.HealthResponse
	Err    error
}

type Header struct {
	title   string
	baseURL string
	width   int
	health  *HealthMsg

	checkHealth func() tea.Cmd
}

func NewHeader(title string, baseURL string, checkHealth func() tea.Cmd) Header {
	return Header{
		title:       title,
		baseURL:     baseURL,
		checkHealth: checkHealth,
	}
}

func (h Header) Init() tea.Cmd {
	if h.checkHealth == nil {
		return nil
	}
	return h.checkHealth()
}

func (h Header) Update(msg tea.Msg) (Header, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
	case HealthMsg:
		h.health = &msg
	}
	return h, nil
}

func (h Header) status() string {
	switch {
	case h.health == nil:
		return mutedStyle.Render(HEADER_CHECKING)
	case h.health.Err != nil:
		return downStyle.Render(fmt.Sprintf("%s: %v", HEADER_UNREACHABLE, h.health.Err))
	case h.health.Health == nil:
		return okStyle.Render("● reachable")
	default:
		return okStyle.Render(fmt.Sprintf("● %s · %s", h.health.Health.Status, h.health.Health.Service))
	}
}

func (h Header) View() string {
	return headerStyle.Width(h.width).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(h.title),
		lipgloss.JoinHorizontal(lipgloss.Top, mutedStyle.Render(h.baseURL+"  "), h.status()),
	))
}
