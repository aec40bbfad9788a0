// Package cli wires the stackgen command tree: "new" scaffolds a project,
// "doctor" checks the environment.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackgen-dev/stackgen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "stackgen",
	Short: "stackgen: scaffold multi-service web projects",
	Long: `stackgen generates a complete multi-service project: one or more
frontends (Nuxt or Vue), a NestJS backend, a Postgres database, and an
optional database admin tool, wired together with docker-compose, a
Makefile, and environment files, all initialized as a git repository.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("stackgen %s\n", version.Version))
}
