package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stackgen-dev/stackgen/internal/cli/wizard"
	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/runner"
	"github.com/stackgen-dev/stackgen/internal/scaffold"
	"github.com/stackgen-dev/stackgen/internal/template"
	"github.com/stackgen-dev/stackgen/pkg/version"
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Scaffold a new multi-service project",
	Long: `Scaffold a new project directory named after the project.

Interactive by default: a wizard collects the topology (frontends, ports,
database credentials, admin tool) and validates every answer as you type.

Non-interactive: supply --config with a YAML preset describing the full
topology, or run with a TTY-less stdin to force preset mode.

Examples:
  stackgen new                      Run the wizard
  stackgen new demo-app             Run the wizard, pre-filling the name
  stackgen new --config stack.yaml  Scaffold from a preset, no questions`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("config", "", "YAML preset file for non-interactive scaffolding")
	newCmd.Flags().Bool("force", false, "Overwrite the output directory if it already exists")
	newCmd.Flags().BoolP("verbose", "v", false, "Stream external command output and debug logs")
	newCmd.Flags().Bool("non-interactive", false, "Never start the wizard; requires --config")
	newCmd.Flags().Bool("skip-install", false, "Skip npm install after generation")
}

func runNew(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	force, _ := cmd.Flags().GetBool("force")
	skipInstall, _ := cmd.Flags().GetBool("skip-install")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	presetPath, _ := cmd.Flags().GetString("config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	defaultName := ""
	if len(args) > 0 {
		defaultName = args[0]
	}

	cfg, err := collectConfig(cmd, defaultName, presetPath, nonInteractive)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	tmplFS, err := template.Embedded()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}

	run := runner.New(verbose, logger)
	deployer := template.NewDeployer(tmplFS, logger)
	scaffolder := scaffold.New(deployer, run, cwd, logger)

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Generating %s...\n", cfg.ProjectName)

	result, err := scaffolder.Run(cmd.Context(), cfg, scaffold.Options{
		Force:       force,
		SkipInstall: skipInstall,
	})
	if err != nil {
		if errors.Is(err, scaffold.ErrDirectoryExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Path", result.Path},
			{"Files", fmt.Sprintf("%d generated", result.Files)},
			{"Services", fmt.Sprintf("%d", len(cfg.ServiceNames()))},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}
	details = append(details, cliDim.Render(fmt.Sprintf("Next: cd %s && make up", cfg.ProjectName)))

	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Project scaffolded", details...))
	return nil
}

// collectConfig obtains a validated ProjectConfig, either from a preset file
// or from the interactive wizard.
func collectConfig(cmd *cobra.Command, defaultName, presetPath string, nonInteractive bool) (*config.ProjectConfig, error) {
	if presetPath != "" {
		return config.LoadPreset(presetPath)
	}

	interactive := !nonInteractive && isatty.IsTerminal(os.Stdin.Fd())
	if !interactive {
		return nil, errors.New("no TTY available: supply --config with a preset file")
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), printBanner(version.Version))
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	return wizard.Run(defaultName)
}
