package cmd

import (
	"fmt"

	colors "github.com/inference-gateway/tilecfg/internal/ui/styles/colors"
	cobra "github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Display version information for tilecfg.`,
	Run: func(cmd *cobra.Command, args []string) {
		label := colors.DimColor.Style()
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "tilecfg version %s\n", colors.AccentColor.Style().Render(version))
		_, _ = fmt.Fprintf(out, "%s %s\n", label.Render("commit:"), commit)
		_, _ = fmt.Fprintf(out, "%s %s\n", label.Render("built at:"), date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
