// Package cli wires the cobra command tree around the restore engine.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Commands-com/claude-stacks/internal/config"
	"github.com/Commands-com/claude-stacks/internal/deps"
	"github.com/Commands-com/claude-stacks/internal/fsio"
	"github.com/Commands-com/claude-stacks/internal/logging"
	"github.com/Commands-com/claude-stacks/internal/paths"
	"github.com/Commands-com/claude-stacks/internal/registryapi"
	"github.com/Commands-com/claude-stacks/internal/restore"
	"github.com/Commands-com/claude-stacks/internal/ui"
)

// App is the dependency container for all CLI commands.
type App struct {
	rootCmd *cobra.Command
	version string
	commit  string
	date    string

	output *ui.Output
	log    *logging.Logger
	config *config.Config

	projectDir  string
	registryURL string
	token       string
	debug       bool
}

// NewApp creates the root command and registers all subcommands.
func NewApp(version, commit, date string) *App {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		output:  ui.NewOutput(),
	}

	root := &cobra.Command{
		Use:   "claude-stacks",
		Short: "Share and restore Claude Code configuration stacks",
		Long:  "Restores exported stacks of commands, agents, MCP servers, settings and CLAUDE.md files into your global and project configuration.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if envURL := os.Getenv("CLAUDE_STACKS_REGISTRY"); envURL != "" && app.registryURL == "" {
				app.registryURL = envURL
			}
			if envToken := os.Getenv("CLAUDE_STACKS_TOKEN"); envToken != "" && app.token == "" {
				app.token = envToken
			}
			if os.Getenv("CLAUDE_STACKS_DEBUG") != "" {
				app.debug = true
			}
			if os.Getenv("CLAUDE_STACKS_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
				app.output.SetNoColor(true)
			}

			app.log = logging.New(app.debug)

			// Config is optional; missing or unreadable falls back to
			// defaults and env overrides.
			c, err := config.Load(paths.ConfigFile())
			if err != nil {
				app.output.Warning("Ignoring config file: %v", err)
				c = &config.Config{}
			}
			app.config = c
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&app.registryURL, "registry", "", "registry URL (overrides CLAUDE_STACKS_REGISTRY)")
	root.PersistentFlags().StringVar(&app.token, "token", "", "auth token (overrides CLAUDE_STACKS_TOKEN)")
	root.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&app.projectDir, "dir", ".", "project directory")

	root.AddCommand(
		app.newRestoreCmd(),
		app.newInstallCmd(),
		app.newListCmd(),
		app.newVersionCmd(),
	)

	app.rootCmd = root
	return app
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// newOrchestrator builds the restore engine for the configured project
// directory.
func (a *App) newOrchestrator() (*restore.Orchestrator, error) {
	layout, err := paths.NewLayout(a.projectDir)
	if err != nil {
		return nil, &ExitError{Code: exitConfig, Message: "resolving project directory: " + err.Error()}
	}
	return restore.NewOrchestrator(fsio.NewOS(), a.output, a.log, deps.NewChecker(), layout), nil
}

// newRegistryClient creates a registry client with the current settings.
func (a *App) newRegistryClient() *registryapi.Client {
	url := a.registryURL
	if url == "" && a.config != nil {
		url = a.config.Registry.URL
	}
	token := a.token
	if token == "" && a.config != nil {
		token = a.config.Registry.Token
	}

	opts := []registryapi.Option{}
	if url != "" {
		opts = append(opts, registryapi.WithBaseURL(url))
	}
	if token != "" {
		opts = append(opts, registryapi.WithToken(token))
	}
	return registryapi.NewClient(opts...)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			a.output.Info("claude-stacks %s (commit: %s, built: %s)", a.version, a.commit, a.date)
		},
	}
}

// Exit codes used by ExitError.
const (
	exitUsage   = 2
	exitConfig  = 3
	exitRestore = 4
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}
