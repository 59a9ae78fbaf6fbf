package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/klemjul/oracle/internal/api"
	"github.com/klemjul/oracle/internal/format"
)

type ChatInterface struct {
	textInput textinput.Model
	viewport  viewport.Model
	messages  []api.ChatMessage
	waiting   bool

	sendMessage func(message string) tea.Cmd
}

const (
	CHAT_INPUT_PLACEHOLDER = "Ask the oracle..."
	CHAT_WAITING_RESPONSE  = "> ⏳ Waiting for response..."
	CHAT_EMPTY_RESPONSE    = "(empty response)"
	CHAT_INPUT_HEIGHT      = 2
)

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	botStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true)
)

func NewChatInterface(sendMessage func(message string) tea.Cmd, messages []api.ChatMessage) ChatInterface {
	ti := textinput.New()
	ti.Placeholder = CHAT_INPUT_PLACEHOLDER
	ti.Focus()

	return ChatInterface{
		textInput:   ti,
		viewport:    viewport.New(0, 0),
		messages:    messages,
		sendMessage: sendMessage,
	}
}

func (m ChatInterface) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.EnableMouseCellMotion,
	)
}

func (m ChatInterface) Update(msg tea.Msg) (ChatInterface, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport = viewport.New(msg.Width, max(msg.Height-CHAT_INPUT_HEIGHT, 0))
		m.updateViewport()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.viewport.ScrollUp(1)
			case tea.MouseButtonWheelDown:
				m.viewport.ScrollDown(1)
			}
		}

	case api.ChatMessage:
		m.waiting = false
		m.messages = append(m.messages, msg)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			cmd = tea.Quit
		case tea.KeyEnter:
			if m.textInput.Value() != "" && !m.waiting {
				text := m.textInput.Value()
				m.messages = append(m.messages, api.ChatMessage{
					Role:    api.User,
					Content: text,
				})
				m.textInput.SetValue("")
				m.updateViewport()

				// Only the latest text is sent, the backend is single turn.
				if m.sendMessage != nil {
					m.waiting = true
					cmd = m.sendMessage(text)
				}
			}
		}
	}

	m.textInput, _ = m.textInput.Update(msg)

	if m.waiting {
		m.textInput.Blur()
	} else {
		m.textInput.Focus()
	}

	return m, cmd
}

func (m *ChatInterface) updateViewport() {
	displayedMessages := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		switch msg.Role {
		case api.Assistant:
			if strings.TrimSpace(msg.Content) == "" {
				displayedMessages = append(displayedMessages, emptyStyle.Render(CHAT_EMPTY_RESPONSE))
				continue
			}
			out, err := format.FormatMarkdownWidth(msg.Content, m.viewport.Width)
			if err != nil {
				out = msg.Content
			}
			displayedMessages = append(displayedMessages, botStyle.Render(strings.TrimSpace(out)))
		case api.User:
			displayedMessages = append(displayedMessages, userStyle.Render(fmt.Sprintf("> %s", msg.Content)))
		}
	}

	m.viewport.SetContent(strings.Join(displayedMessages, "\n\n"))
	m.viewport.GotoBottom()
}

func (m ChatInterface) View() string {
	input := m.textInput.View()

	if m.waiting {
		input = CHAT_WAITING_RESPONSE
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		inputStyle.Width(m.viewport.Width).Render(input),
	)
}
