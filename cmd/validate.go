package cmd

import (
	"fmt"
	"io"

	icons "github.com/inference-gateway/tilecfg/internal/ui/styles/icons"
	cobra "github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a config document for problems",
	Long: `Load the config and every file it includes, then print each problem found.
Exits non-zero when the config has a syntax error or any diagnostics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(out io.Writer) error {
	snap, err := newConfigService().Reload()
	if err != nil {
		_, _ = fmt.Fprintf(out, "%s %s\n", icons.StyledCrossMark(), configPath())
		_, _ = fmt.Fprintf(out, "  %v\n", err)
		return fmt.Errorf("config is invalid")
	}

	if len(snap.Files) == 0 {
		_, _ = fmt.Fprintf(out, "%s %s not found, using defaults\n", icons.StyledWarningMark(), configPath())
		return nil
	}

	for i, file := range snap.Files {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s %s\n", icons.StyledCheckMark(), file)
			continue
		}
		_, _ = fmt.Fprintf(out, "  include %s\n", file)
	}

	if snap.Err == nil {
		_, _ = fmt.Fprintf(out, "%s %d binds, no problems found\n", icons.StyledCheckMark(), len(snap.Config.Binds))
		return nil
	}

	_, _ = fmt.Fprintf(out, "%s %d problems found\n", icons.StyledCrossMark(), len(snap.Err.Diagnostics))
	for _, d := range snap.Err.Diagnostics {
		_, _ = fmt.Fprintf(out, "  %s\n", d.Error())
	}
	return fmt.Errorf("config has %d problems", len(snap.Err.Diagnostics))
}
