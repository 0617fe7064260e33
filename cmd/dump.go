package cmd

import (
	"io"

	cobra "github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective config as YAML",
	Long: `Print the config after includes are merged over the defaults. Problems are
logged and the parts that decoded are still printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(out io.Writer) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	return encodeYAML(out, snap.Config)
}
