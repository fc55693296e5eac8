// internal/commands/show_config.go
package estbench

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the
// resolved configuration after file values and flag overrides are merged.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		if file := viper.ConfigFileUsed(); file != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", file)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No config file loaded (using defaults).")
		}
		pp.Println(GetConfig())
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
