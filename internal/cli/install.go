package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Commands-com/claude-stacks/internal/fsio"
	"github.com/Commands-com/claude-stacks/internal/restore"
	"github.com/Commands-com/claude-stacks/internal/stack"
	"github.com/Commands-com/claude-stacks/internal/ui"
)

func (a *App) newInstallCmd() *cobra.Command {
	var opts restore.Options

	cmd := &cobra.Command{
		Use:   "install <org/name>",
		Short: "Fetch a stack from the registry and restore it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "overwrite existing files and MCP server entries")
	cmd.Flags().BoolVar(&opts.GlobalOnly, "global-only", false, "restore only global components")
	cmd.Flags().BoolVar(&opts.LocalOnly, "local-only", false, "restore only project-local components")
	return cmd
}

func (a *App) runInstall(ctx context.Context, ref string, opts restore.Options) error {
	if opts.GlobalOnly && opts.LocalOnly {
		return &ExitError{Code: exitUsage, Message: "--global-only and --local-only are mutually exclusive"}
	}

	org, name, ok := strings.Cut(ref, "/")
	if !ok || org == "" || name == "" {
		return &ExitError{Code: exitUsage, Message: fmt.Sprintf("invalid stack reference %q, expected org/name", ref)}
	}

	client := a.newRegistryClient()

	var manifest *stack.Manifest
	err := ui.WithSpinner("Fetching "+ref+"...", func() error {
		var fetchErr error
		manifest, fetchErr = client.FetchStack(ctx, org, name)
		return fetchErr
	})
	if err != nil {
		return &ExitError{Code: exitRestore, Message: err.Error()}
	}

	if opts.Overwrite && !ui.IsCI() {
		confirmed, promptErr := ui.Confirm(fmt.Sprintf("Overwrite existing files with stack %q?", manifest.Name))
		if promptErr != nil {
			return promptErr
		}
		if !confirmed {
			a.output.Info("Installation cancelled.")
			return nil
		}
	}

	orch, err := a.newOrchestrator()
	if err != nil {
		return err
	}

	installer := restore.NewInstaller(fsio.NewOS(), a.output, orch)
	if err := installer.Install(manifest, client.BaseURL(), ref, opts); err != nil {
		return &ExitError{Code: exitRestore, Message: err.Error()}
	}
	return nil
}
