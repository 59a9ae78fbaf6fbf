package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klemjul/oracle/internal/api"
	"github.com/klemjul/oracle/internal/format"
	"github.com/klemjul/oracle/internal/logging"
	"github.com/klemjul/oracle/internal/ui"
)

type APIService interface {
	NewClient(baseURL string) api.Client
}

type TUIService interface {
	InitialModel(opts ui.InitialModelOptions) ui.Shell
	Run(model ui.Shell) (returnModel tea.Model, returnErr error)
}

type TextFormatService interface {
	FormatMarkdown(text string) (string, error)
}

type LoggingService interface {
	Init(opts logging.Options) error
}

type App interface {
	API() APIService
	TUI() TUIService
	Format() TextFormatService
	Logging() LoggingService
}

type DefaultAPIService struct{}

type DefaultTUIService struct{}

type DefaultTextFormatService struct{}

type DefaultLoggingService struct{}

type DefaultApp struct {
	api     APIService
	tui     TUIService
	format  TextFormatService
	logging LoggingService
}

func (a *DefaultApp) API() APIService           { return a.api }
func (a *DefaultApp) TUI() TUIService           { return a.tui }
func (a *DefaultApp) Format() TextFormatService { return a.format }
func (a *DefaultApp) Logging() LoggingService   { return a.logging }

func (s *DefaultAPIService) NewClient(baseURL string) api.Client {
	return api.NewClient(baseURL)
}

func (c *DefaultTUIService) InitialModel(opts ui.InitialModelOptions) ui.Shell {
	return ui.InitialModel(opts)
}
func (c *DefaultTUIService) Run(model ui.Shell) (returnModel tea.Model, returnErr error) {
	return tea.NewProgram(model, tea.WithAltScreen()).Run()
}

func (l *DefaultTextFormatService) FormatMarkdown(text string) (string, error) {
	return format.FormatMarkdown(text)
}

func (l *DefaultLoggingService) Init(opts logging.Options) error {
	_, err := logging.Init(opts)
	return err
}

func NewDefaultApp() App {
	return &DefaultApp{
		api:     &DefaultAPIService{},
		tui:     &DefaultTUIService{},
		format:  &DefaultTextFormatService{},
		logging: &DefaultLoggingService{},
	}
}
