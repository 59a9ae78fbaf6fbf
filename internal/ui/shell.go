package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/klemjul/oracle/internal/api"
)

const DEFAULT_TITLE = "Backend Oracle"

// Shell is the root model: one Header above one ChatInterface.
type Shell struct {
	header Header
	chat   ChatInterface
}

type InitialModelOptions struct {
	Title       string
	BaseURL     string
	CheckHealth func() tea.Cmd
	SendMessage func(message string) tea.Cmd
	Messages    []api.ChatMessage
}

func InitialModel(opts InitialModelOptions) Shell {
	title := opts.Title
	if title == "" {
		title = DEFAULT_TITLE
	}
	return Shell{
		header: NewHeader(title, opts.BaseURL, opts.CheckHealth),
		chat:   NewChatInterface(opts.SendMessage, opts.Messages),
	}
}

func (m Shell) Init() tea.Cmd {
	return tea.Batch(m.header.Init(), m.chat.Init())
}

func (m Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var headerCmd, chatCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.header, headerCmd = m.header.Update(msg)
		headerHeight := lipgloss.Height(m.header.View())
		m.chat, chatCmd = m.chat.Update(tea.WindowSizeMsg{
			Width:  msg.Width,
			Height: max(msg.Height-headerHeight, 0),
		})
	case HealthMsg:
		m.header, headerCmd = m.header.Update(msg)
	default:
		m.chat, chatCmd = m.chat.Update(msg)
	}

	return m, tea.Batch(headerCmd, chatCmd)
}

func (m Shell) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.chat.View(),
	)
}
