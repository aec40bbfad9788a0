package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackgen-dev/stackgen/internal/runner"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for required and optional tools",
	Long: `Check that the external tools stackgen relies on are installed.

git is required: scaffolding refuses to run without it. docker, node, and
npm are optional; missing ones limit what you can do with the generated
project but do not block generation.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorChecks lists the probed tools in display order.
var doctorChecks = []struct {
	name     string
	required bool
	hint     string
}{
	{"git", true, "required to initialize the generated repository"},
	{"docker", false, "needed to run the generated compose stack"},
	{"node", false, "needed for local frontend/backend development"},
	{"npm", false, "needed to install generated project dependencies"},
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	run := runner.New(false, nil)
	out := cmd.OutOrStdout()

	missingRequired := false
	for _, check := range doctorChecks {
		if run.Check(check.name) {
			_, _ = fmt.Fprintf(out, "%s %s\n", cliOK.Render("✓"), check.name)
			continue
		}
		if check.required {
			missingRequired = true
			_, _ = fmt.Fprintf(out, "%s %s  %s\n", cliErr.Render("✗"), check.name, cliDim.Render(check.hint))
		} else {
			_, _ = fmt.Fprintf(out, "%s %s  %s\n", cliWarn.Render("!"), check.name, cliDim.Render(check.hint))
		}
	}

	if missingRequired {
		return fmt.Errorf("required tools are missing")
	}
	return nil
}
