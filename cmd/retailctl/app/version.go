package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retailkit/retailkit/version"
)

// newVersionCommand creates the version command.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			fmt.Printf("%s %s\n", cliName, info.String())
			fmt.Printf("go: %s\n", info.GoVersion)
		},
	}
}
