package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/klemjul/oracle/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell() Shell {
	return InitialModel(InitialModelOptions{
		BaseURL:     "http://localhost:8000/api/v1",
		CheckHealth: mockCheckHealth,
		SendMessage: mockSendMessage,
	})
}

func TestInitialModel(t *testing.T) {
	tests := []struct {
		name          string
		opts          InitialModelOptions
		expectedTitle string
	}{
		{
			name:          "default title",
			opts:          InitialModelOptions{BaseURL: "http://localhost:8000/api/v1"},
			expectedTitle: DEFAULT_TITLE,
		},
		{
			name:          "custom title with history",
			opts:          InitialModelOptions{Title: "My Oracle", Messages: []api.ChatMessage{{Role: api.User, Content: "Hi"}}},
			expectedTitle: "My Oracle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := InitialModel(tt.opts)

			assert.Equal(t, tt.expectedTitle, m.header.title)
			assert.Equal(t, tt.opts.BaseURL, m.header.baseURL)
			assert.Len(t, m.chat.messages, len(tt.opts.Messages))
			assert.False(t, m.chat.waiting)
		})
	}
}

func TestShellView_HeaderThenChat(t *testing.T) {
	m := newTestShell()

	view := m.View()

	assert.Equal(t, lipgloss.JoinVertical(lipgloss.Left, m.header.View(), m.chat.View()), view)
	assert.Equal(t, 1, strings.Count(view, DEFAULT_TITLE), "exactly one header")
	assert.Equal(t, 1, strings.Count(view, m.chat.textInput.Prompt), "exactly one chat interface")
	assert.Less(t, strings.Index(view, DEFAULT_TITLE), strings.Index(view, m.chat.textInput.Prompt))
	assert.Equal(t, lipgloss.Height(m.header.View())+lipgloss.Height(m.chat.View()), lipgloss.Height(view))
}

func TestShellInit_ChecksHealth(t *testing.T) {
	m := newTestShell()

	cmd := m.Init()
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	var health []HealthMsg
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(HealthMsg); ok {
			health = append(health, msg)
		}
	}
	require.Len(t, health, 1)
	assert.Equal(t, "Backend Oracle API", health[0].Health.Service)
}

func TestShellUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestShell()

	updatedModel, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated := updatedModel.(Shell)

	assert.Nil(t, cmd)
	assert.Equal(t, 80, updated.header.width)
	assert.Equal(t, 3, lipgloss.Height(updated.header.View()))
	assert.Equal(t, 80, updated.chat.viewport.Width)
	assert.Equal(t, 24-3-CHAT_INPUT_HEIGHT, updated.chat.viewport.Height)
}

func TestShellUpdate_HealthMsgGoesToHeader(t *testing.T) {
	m := newTestShell()

	updatedModel, cmd := m.Update(HealthMsg{Health: &api.HealthResponse{Status: "healthy", Service: "svc"}})
	updated := updatedModel.(Shell)

	assert.Nil(t, cmd)
	require.NotNil(t, updated.header.health)
	assert.Equal(t, "svc", updated.header.health.Health.Service)
	assert.Empty(t, updated.chat.messages)
}

func TestShellUpdate_KeysGoToChat(t *testing.T) {
	m := newTestShell()
	m.chat.textInput.SetValue("What is FastAPI?")

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated := updatedModel.(Shell)

	require.NotNil(t, cmd)
	assert.Equal(t, api.ChatMessage{Role: api.Assistant, Content: "Mock reply to What is FastAPI?"}, cmd())
	assert.True(t, updated.chat.waiting)
	assert.Equal(t, []api.ChatMessage{{Role: api.User, Content: "What is FastAPI?"}}, updated.chat.messages)
	assert.Nil(t, updated.header.health)
}

func TestShellUpdate_ReplyGoesToChat(t *testing.T) {
	m := newTestShell()
	m.chat.waiting = true

	updatedModel, _ := m.Update(api.ChatMessage{Role: api.Assistant, Content: "Use CORSMiddleware."})
	updated := updatedModel.(Shell)

	assert.False(t, updated.chat.waiting)
	assert.Len(t, updated.chat.messages, 1)
}

func TestShellUpdate_NoCallbacks(t *testing.T) {
	m := InitialModel(InitialModelOptions{BaseURL: "http://localhost:8000/api/v1"})
	m.chat.textInput.SetValue("hello")

	assert.Nil(t, m.header.Init())
	assert.NotPanics(t, func() {
		updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Nil(t, cmd)
		assert.Len(t, updatedModel.(Shell).chat.messages, 1)
	})
}
