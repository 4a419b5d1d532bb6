// Version command for the daylog CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daylog/pkg/daylog"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the daylog version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("daylog", daylog.Version)
	},
}
