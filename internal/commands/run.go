// internal/commands/run.go
package estbench

import "github.com/spf13/cobra"

// runCmd groups commands that execute benchmark workflows.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Group commands that execute benchmark workflows",
}

func init() {
	rootCmd.AddCommand(runCmd)
}
