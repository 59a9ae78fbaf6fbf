package cmd

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/klemjul/oracle/internal/api"
	"github.com/klemjul/oracle/internal/app"
	"github.com/klemjul/oracle/internal/config"
	"github.com/klemjul/oracle/internal/logging"
	"github.com/klemjul/oracle/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RootCommand(app app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oracle [message]",
		Short: "Chat with the Backend Oracle assistant from the command line.",
		Args:  cobra.RangeArgs(0, 1),
		Example: `
oracle   # Open the chat interface
oracle "How do I add CORS to FastAPI?"   # Ask a single question
oracle health   # Check that the backend is up
	`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, app)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(app)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().SortFlags = false

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", config.DEFAULT_API_URL,
		fmt.Sprintf("Base URL of the chat API. (env: %s)", config.GetEnvWithPrefix(config.ENV_API_URL)))
	flags.String("log-level", config.DEFAULT_LOG_LEVEL,
		fmt.Sprintf("Log level: debug, info, warn or error. (env: %s)", config.GetEnvWithPrefix(config.ENV_LOG_LEVEL)))
	flags.String("log-file", "",
		fmt.Sprintf("Log file path, defaults to %s. (env: %s)", logging.DefaultLogPath(), config.GetEnvWithPrefix(config.ENV_LOG_FILE)))
	flags.String("log-format", config.DEFAULT_LOG_FORMAT,
		fmt.Sprintf("Log format: text or json. (env: %s)", config.GetEnvWithPrefix(config.ENV_LOG_FORMAT)))

	viper.BindPFlag(config.ENV_API_URL, flags.Lookup("api-url"))
	viper.BindPFlag(config.ENV_LOG_LEVEL, flags.Lookup("log-level"))
	viper.BindPFlag(config.ENV_LOG_FILE, flags.Lookup("log-file"))
	viper.BindPFlag(config.ENV_LOG_FORMAT, flags.Lookup("log-format"))

	viper.SetEnvPrefix(config.ENV_PREFIX)
	viper.AutomaticEnv()

	rootCmd.AddCommand(healthCommand(app))

	return rootCmd
}

func healthCommand(app app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the health of the chat API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := app.API().NewClient(viper.GetString(config.ENV_API_URL))
			health, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nservice: %s\n", health.Status, health.Service)
			return nil
		},
	}
}

func setup(app app.App) error {
	baseURL := viper.GetString(config.ENV_API_URL)
	if err := config.ValidateBaseURL(baseURL); err != nil {
		return err
	}

	err := app.Logging().Init(logging.Options{
		Level:  viper.GetString(config.ENV_LOG_LEVEL),
		Format: viper.GetString(config.ENV_LOG_FORMAT),
		File:   viper.GetString(config.ENV_LOG_FILE),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	slog.Debug("configuration resolved", "api_url", baseURL)
	return nil
}

func run(cmd *cobra.Command, args []string, app app.App) error {
	baseURL := viper.GetString(config.ENV_API_URL)
	client := app.API().NewClient(baseURL)

	if len(args) == 1 {
		reply, err := client.Chat(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to generate response: %w", err)
		}
		formattedRes, err := app.Format().FormatMarkdown(reply)
		if err != nil {
			return fmt.Errorf("failed to format response: %w", err)
		}
		cmd.OutOrStdout().Write([]byte(formattedRes))
		return nil
	}

	TUIModel := app.TUI().InitialModel(ui.InitialModelOptions{
		Title:       ui.DEFAULT_TITLE,
		BaseURL:     baseURL,
		CheckHealth: makeHealthChecker(client, cmd.Context()),
		SendMessage: makeChatResponder(client, cmd.Context()),
	})
	if _, err := app.TUI().Run(TUIModel); err != nil {
		return fmt.Errorf("error running interactive mode: %w", err)
	}
	return nil
}

func makeChatResponder(client api.Client, ctx context.Context) func(string) tea.Cmd {
	return func(message string) tea.Cmd {
		return func() tea.Msg {
			reply, err := client.Chat(ctx, message)

			if err != nil {
				slog.Error("chat request failed", "error", err)
				return api.ChatMessage{
					Role:    api.Assistant,
					Content: fmt.Sprintf("Failed to generate response: %v", err.Error()),
				}
			}

			return api.ChatMessage{
				Role:    api.Assistant,
				Content: reply,
			}
		}
	}
}

func makeHealthChecker(client api.Client, ctx context.Context) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			health, err := client.Health(ctx)
			if err != nil {
				slog.Warn("health check failed", "error", err)
			}
			return ui.HealthMsg{Health: health, Err: err}
		}
	}
}
