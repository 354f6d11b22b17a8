// Command seed prepares a gallery deployment: database migrations, the admin
// password hash, and an offline check of the catalog filter engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Shakya Gallery maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCommand(), newHashPasswordCommand(), newConformanceCommand())
	return root
}
